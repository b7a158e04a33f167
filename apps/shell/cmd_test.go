package main

import (
	"bytes"
	"io/ioutil"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shareulbi/webcore/core"
	"github.com/shareulbi/webcore/core/admin"
	"github.com/shareulbi/webcore/core/content"
	"github.com/shareulbi/webcore/core/identity"
	"github.com/shareulbi/webcore/core/session"
	logsvc "github.com/shareulbi/webcore/services/logger"
	restsvc "github.com/shareulbi/webcore/services/rest"
	testutil "github.com/shareulbi/webcore/tests"
)

const testPassword = "rahasia123"

func setup(t *testing.T) (*testutil.FakeAPI, *commandLine, *bytes.Buffer) {
	t.Helper()

	fake := testutil.NewFakeAPI()
	t.Cleanup(fake.Close)

	api, err := restsvc.NewClient(&core.Config{APIBaseURL: fake.URL()})
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}

	orig := readPasswordFunc
	readPasswordFunc = func(fd int) ([]byte, error) { return []byte(testPassword), nil }
	t.Cleanup(func() { readPasswordFunc = orig })

	var out bytes.Buffer
	cli := &commandLine{
		store:   session.NewStore(identity.NewService(api)),
		content: content.NewService(api),
		admin:   admin.NewStore(admin.NewService(api)),
		toggler: content.NewToggler(api, logsvc.NewConsoleLogger(log.New(ioutil.Discard, "", 0))),
		out:     &out,
	}
	return fake, cli, &out
}

func Test_commandLine_run_argParsing(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no subcommand", args: []string{"shell"}},
		{name: "unknown subcommand", args: []string{"shell", "lol"}},
		{name: "login without email", args: []string{"shell", "login"}},
		{name: "pending without email", args: []string{"shell", "pending"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cli, _ := setup(t)
			assert.Equal(t, errHelp, cli.run(tt.args))
		})
	}
}

func Test_commandLine_login(t *testing.T) {
	tests := []struct {
		name string
		idn  identity.Identity
		want string
	}{
		{name: "approved mahasiswa", idn: testutil.NewMahasiswa(identity.OnboardingApproved), want: "-> /dashboard"},
		{name: "admin", idn: testutil.NewAdmin(), want: "-> /admin"},
		{name: "pending account", idn: testutil.NewMahasiswa(identity.OnboardingPending), want: "-> /onboarding"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake, cli, out := setup(t)
			fake.AddAccount(tt.idn, testPassword)

			err := cli.run([]string{"shell", "login", "-email", tt.idn.Email})
			assert.NoError(t, err)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func Test_commandLine_login_badPassword(t *testing.T) {
	fake, cli, _ := setup(t)
	idn := testutil.NewMahasiswa(identity.OnboardingApproved)
	fake.AddAccount(idn, "sesuatu-lain")

	err := cli.run([]string{"shell", "login", "-email", idn.Email})
	assert.Error(t, err)
	assert.Equal(t, 401, core.HTTPStatus(err))
}

func Test_commandLine_posts(t *testing.T) {
	fake, cli, out := setup(t)
	idn := testutil.NewMahasiswa(identity.OnboardingApproved)
	fake.AddAccount(idn, testPassword)
	fake.AddPost(testutil.NewPost("42", content.TypeELearning))

	err := cli.run([]string{"shell", "posts", "-email", idn.Email})
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Pengantar Basis Data")
}

func Test_commandLine_like(t *testing.T) {
	fake, cli, out := setup(t)
	idn := testutil.NewMahasiswa(identity.OnboardingApproved)
	fake.AddAccount(idn, testPassword)
	fake.AddPost(testutil.NewPost("42", content.TypeELearning))

	err := cli.run([]string{"shell", "like", "-email", idn.Email, "-id", "42"})
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "liked=true likes=6")
	assert.Equal(t, 1, fake.ToggleCalls("42"))
}

func Test_commandLine_like_failureStillPrintsFlippedState(t *testing.T) {
	fake, cli, out := setup(t)
	idn := testutil.NewMahasiswa(identity.OnboardingApproved)
	fake.AddAccount(idn, testPassword)
	fake.AddPost(testutil.NewPost("42", content.TypeELearning))
	fake.SetFailToggles(true)

	err := cli.run([]string{"shell", "like", "-email", idn.Email, "-id", "42"})
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "liked=true likes=6")
}

func Test_commandLine_pending(t *testing.T) {
	fake, cli, out := setup(t)
	adminIdn := testutil.NewAdmin()
	fake.AddAccount(adminIdn, testPassword)
	fake.SetPendingCount(4)

	err := cli.run([]string{"shell", "pending", "-email", adminIdn.Email})
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "pending approvals: 4")
}

func Test_commandLine_pending_requiresAdmin(t *testing.T) {
	fake, cli, _ := setup(t)
	idn := testutil.NewMahasiswa(identity.OnboardingApproved)
	fake.AddAccount(idn, testPassword)

	err := cli.run([]string{"shell", "pending", "-email", idn.Email})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "is not an admin")
}
