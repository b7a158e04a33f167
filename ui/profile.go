package ui

import (
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/shareulbi/webcore/core/content"
	"github.com/shareulbi/webcore/core/identity"
)

// ProfilePage shows the signed-in account and hosts the publish and feedback
// dialogs: upload forms for both collections and the report form for general
// feedback.
func ProfilePage(idn identity.Identity, categories []content.Category, topics []content.FeedbackTopic) Node {
	dept := "-"
	if idn.Department != nil {
		dept = idn.Department.Name
	}

	return Group([]Node{
		Div(Class("card"),
			H1(Text(idn.FullName)),
			P(Class("muted"), Text(idn.Email)),
			Dl(Class("profile-meta"),
				Dt(Text("Role")), Dd(Text(string(idn.Role.Name))),
				Dt(Text("Jurusan")), Dd(Text(dept)),
			),
		),
		uploadForm("Upload E-Learning", "/e-learning/upload", categories),
		uploadForm("Upload Karya", "/works/upload", categories),
		feedbackForm(topics),
	})
}

func uploadForm(title, action string, categories []content.Category) Node {
	catOptions := make([]Node, 0, len(categories)+1)
	catOptions = append(catOptions, Option(Value(""), Text("Pilih kategori")))
	for _, c := range categories {
		catOptions = append(catOptions, Option(Value(strconv.Itoa(c.ID)), Text(c.Name)))
	}

	return Div(Class("card"),
		H2(Text(title)),
		Form(Method("post"), Action(action), EncType("multipart/form-data"),
			Label(For("title"), Text("Judul")),
			Input(Type("text"), Name("title")),
			Label(For("description"), Text("Deskripsi")),
			Textarea(Name("description"), Rows("3")),
			Label(For("category_id"), Text("Kategori")),
			Select(Name("category_id"), Group(catOptions)),
			Label(For("file"), Text("File")),
			Input(Type("file"), Name("file")),
			Button(Type("submit"), Class("btn btn-primary"), Text("Upload")),
		),
	)
}

func feedbackForm(topics []content.FeedbackTopic) Node {
	topicOptions := make([]Node, 0, len(topics)+1)
	topicOptions = append(topicOptions, Option(Value(""), Text("Pilih topik")))
	for _, t := range topics {
		if !t.IsActive {
			continue
		}
		topicOptions = append(topicOptions, Option(Value(t.ID), Text(t.Name)))
	}

	return Div(Class("card"),
		H2(Text("Laporan & Feedback")),
		Form(Method("post"), Action("/reports-feedbacks"),
			Label(For("topic_id"), Text("Topik")),
			Select(Name("topic_id"), Group(topicOptions)),
			Label(For("description"), Text("Deskripsi")),
			Textarea(Name("description"), Rows("3")),
			Button(Type("submit"), Class("btn btn-primary"), Text("Kirim")),
		),
	)
}
