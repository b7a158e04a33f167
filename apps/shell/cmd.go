package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/shareulbi/webcore/core/admin"
	"github.com/shareulbi/webcore/core/content"
	"github.com/shareulbi/webcore/core/identity"
	"github.com/shareulbi/webcore/core/session"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	store   *session.Store
	content *content.Service
	admin   *admin.Store
	toggler *content.Toggler
	out     io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -email EMAIL              - sign in and print the landing route")
	fmt.Fprintln(cli.out, "  posts -email EMAIL              - sign in and list the feed")
	fmt.Fprintln(cli.out, "  like -email EMAIL -id POST      - sign in and toggle a like")
	fmt.Fprintln(cli.out, "  bookmark -email EMAIL -id POST  - sign in and toggle a bookmark")
	fmt.Fprintln(cli.out, "  pending -email EMAIL            - sign in and print the pending-approval count")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	cmd := flag.NewFlagSet(args[1], flag.ExitOnError)
	email := cmd.String("email", "", "The account's email. The password will be prompted next.")
	postID := cmd.String("id", "", "The post id to act on.")

	switch args[1] {
	case "login", "posts", "like", "bookmark", "pending":
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		if *email == "" {
			cmd.Usage()
			return errHelp
		}
	default:
		cli.printUsage()
		return errHelp
	}

	idn, err := cli.signIn(*email)
	if err != nil {
		return err
	}

	switch args[1] {
	case "login":
		return cli.printLanding(idn)
	case "posts":
		return cli.listPosts()
	case "like", "bookmark":
		if *postID == "" {
			cmd.Usage()
			return errHelp
		}
		return cli.togglePost(args[1], *postID)
	case "pending":
		return cli.printPending(idn)
	}
	return nil
}

func (cli *commandLine) signIn(email string) (identity.Identity, error) {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(cli.out)
	if err != nil {
		return identity.Identity{}, err
	}

	return cli.store.Login(context.Background(), identity.Credentials{
		Email:    email,
		Password: string(pwd),
	})
}

// printLanding reports where the web app would send this account after
// login: the onboarding wait unless approved, then the role's home route.
func (cli *commandLine) printLanding(idn identity.Identity) error {
	route := session.RouteOnboarding
	if idn.IsApproved() {
		route = session.HomeRoute(idn.Role.Name)
	}
	fmt.Fprintf(cli.out, "signed in as %s (%s) -> %s\n", idn.FullName, idn.Role.Name, route)
	return nil
}

func (cli *commandLine) listPosts() error {
	posts, err := cli.content.Posts(context.Background(), 20, 0)
	if err != nil {
		return err
	}
	for _, p := range posts {
		liked := " "
		if p.IsLiked {
			liked = "*"
		}
		fmt.Fprintf(cli.out, "%s [%s] %-10s %s (likes: %d%s)\n", p.ID, p.Status, p.Type, p.Title, p.LikesCount, liked)
	}
	return nil
}

// togglePost fetches the post, applies the optimistic flip and waits for the
// background call before exiting; the printed state is the flipped one
// whether or not that call succeeded.
func (cli *commandLine) togglePost(action, id string) error {
	post, err := cli.content.Post(context.Background(), id)
	if err != nil {
		return err
	}

	if action == "like" {
		cli.toggler.ToggleLike(post.ID, &post.Reaction)
	} else {
		cli.toggler.ToggleBookmark(post.ID, &post.Reaction)
	}
	cli.toggler.Flush()

	fmt.Fprintf(cli.out, "%s: liked=%t likes=%d bookmarked=%t\n", post.Title, post.IsLiked, post.LikesCount, post.IsBookmarked)
	return nil
}

func (cli *commandLine) printPending(idn identity.Identity) error {
	if !idn.IsAdmin() {
		return fmt.Errorf("account %s is not an admin", idn.Email)
	}
	cli.admin.Refresh(context.Background())
	fmt.Fprintf(cli.out, "pending approvals: %d\n", cli.admin.PendingCount())
	return nil
}
