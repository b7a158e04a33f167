package ui

import (
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/shareulbi/webcore/core/content"
)

// PostList renders the dashboard feed.
func PostList(posts []content.PostItem) Node {
	if len(posts) == 0 {
		return Div(Class("card empty-state"), P(Class("muted"), Text("Belum ada konten.")))
	}
	cards := make([]Node, 0, len(posts))
	for _, p := range posts {
		cards = append(cards, postCard(p))
	}
	return Div(Class("post-list"), Group(cards))
}

func postCard(p content.PostItem) Node {
	badges := make([]Node, 0, len(p.Categories))
	for _, c := range p.Categories {
		badges = append(badges, Span(Class("badge badge-secondary"), Text(c.Name)))
	}

	return Div(Class("card post-card"),
		Div(Class("post-card-header"),
			Span(Class("avatar"), Text(initial(p.AuthorName))),
			Div(
				P(Class("author-name"), Text(p.AuthorName)),
				P(Class("muted"), Text(p.AuthorRole)),
			),
		),
		Div(Class("post-card-body"),
			Group(badges),
			H2(A(Href("/"+string(p.Type)+"/"+p.ID), Text(p.Title))),
			P(Class("muted"), Text(p.Description)),
		),
		reactionBar(p.ID, p.Reaction),
	)
}

// PostDetailPage is the full-screen detail view with the like/bookmark bar.
func PostDetailPage(post content.PostDetail) Node {
	badges := make([]Node, 0, len(post.Categories))
	for _, c := range post.Categories {
		badges = append(badges, Span(Class("badge badge-secondary"), Text(c.Name)))
	}

	var media Node = P(Class("muted"), Text("Media belum tersedia"))
	if len(post.Files) > 0 {
		f := post.Files[0]
		if f.FileType == "pdf" {
			media = IFrame(Src(f.FileURL), Class("post-media"))
		} else {
			media = Video(Controls(), Class("post-media"), Source(Src(f.FileURL)))
		}
	}

	return shell(post.Title,
		Main(Class("detail-shell"),
			Header(Class("detail-header"),
				Span(Class("avatar"), Text(initial(post.Author.Name))),
				Div(
					P(Class("author-name"), Text(post.Author.Name)),
					P(Class("muted"), Text(post.Author.Role)),
				),
				Group(badges),
				If(post.Status == "validated",
					Span(Class("badge badge-outline"), Text("Tervalidasi")),
				),
			),
			Div(Class("detail-media"), media),
			Div(Class("detail-body"),
				H1(Text(post.Title)),
				P(Class("muted"), Text(post.Description)),
				reactionBar(post.ID, post.Reaction),
			),
		),
	)
}

// reactionBar draws the like and bookmark toggles. Each posts back to a
// toggle route; the handler flips state optimistically before the upstream
// call resolves.
func reactionBar(id string, r content.Reaction) Node {
	likeClass := "btn btn-ghost btn-sm"
	if r.IsLiked {
		likeClass += " liked"
	}
	bookmarkClass := "btn btn-ghost btn-sm"
	if r.IsBookmarked {
		bookmarkClass += " bookmarked"
	}
	return Div(Class("reaction-bar"),
		Form(Method("post"), Action("/posts/"+id+"/like"),
			Button(Type("submit"), Class(likeClass),
				I(Class("nav-icon"), Attr("data-lucide", "heart"), Attr("aria-hidden", "true")),
				Span(Text(strconv.Itoa(r.LikesCount))),
			),
		),
		Form(Method("post"), Action("/posts/"+id+"/bookmark"),
			Button(Type("submit"), Class(bookmarkClass),
				I(Class("nav-icon"), Attr("data-lucide", "bookmark"), Attr("aria-hidden", "true")),
			),
		),
	)
}

// ValidationQueuePage lists posts awaiting dosen review.
func ValidationQueuePage(posts []content.ValidatablePost) Node {
	if len(posts) == 0 {
		return Div(Class("card empty-state"), P(Class("muted"), Text("Tidak ada konten untuk divalidasi.")))
	}
	rows := make([]Node, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, Tr(
			Td(Text(p.Title)),
			Td(Text(string(p.Type))),
			Td(Text(p.Category)),
			Td(Text(p.AuthorName)),
			Td(
				Form(Method("post"), Action("/validation/posts/"+p.ID+"/validate"), Class("inline"),
					Input(Type("hidden"), Name("status"), Value(string(content.ActionValidated))),
					Button(Type("submit"), Class("btn btn-sm btn-primary"), Text("Validasi")),
				),
				Form(Method("post"), Action("/validation/posts/"+p.ID+"/validate"), Class("inline"),
					Input(Type("hidden"), Name("status"), Value(string(content.ActionRejected))),
					Button(Type("submit"), Class("btn btn-sm btn-destructive"), Text("Tolak")),
				),
			),
		))
	}
	return Div(Class("card table-wrap"),
		Table(Class("data-table"),
			THead(Tr(Th(Text("Judul")), Th(Text("Tipe")), Th(Text("Kategori")), Th(Text("Penulis")), Th(Text("Aksi")))),
			TBody(Group(rows)),
		),
	)
}

func initial(name string) string {
	if name == "" {
		return "U"
	}
	return string([]rune(name)[:1])
}
