package ui

import (
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/shareulbi/webcore/core/admin"
	"github.com/shareulbi/webcore/core/content"
	"github.com/shareulbi/webcore/core/identity"
)

// AdminHomePage is the admin landing view; count is the freshly refreshed
// pending-approval counter.
func AdminHomePage(count int) Node {
	return Div(Class("card"),
		H1(Text("Admin")),
		P(Class("muted"), Text("Akun menunggu persetujuan: "+strconv.Itoa(count))),
		P(A(Href("/admin/users"), Class("btn btn-primary"), Text("Kelola Users"))),
	)
}

// UsersPage is the user-administration view: the approval queue on top, the
// full account table below it.
func UsersPage(pending, accounts []admin.AccountRow) Node {
	return Group([]Node{
		Div(Class("card"),
			H2(Text("Menunggu Persetujuan")),
			PendingUsersTable(pending),
		),
		Div(Class("card"),
			H2(Text("Semua Akun")),
			accountsTable(accounts),
		),
	})
}

// PendingUsersTable lists accounts awaiting approval with their decisions.
// The buttons post to non-optimistic endpoints: a row only disappears after
// the server confirms.
func PendingUsersTable(users []admin.AccountRow) Node {
	if len(users) == 0 {
		return P(Class("muted"), Text("Tidak ada akun yang menunggu persetujuan."))
	}
	rows := make([]Node, 0, len(users))
	for _, u := range users {
		rows = append(rows, Tr(
			Td(Text(u.FullName)),
			Td(Text(u.Email)),
			Td(Text(u.Role)),
			Td(Text(u.Department)),
			Td(
				Form(Method("post"), Action("/admin/users/"+u.ID+"/approve"), Class("inline"),
					Button(Type("submit"), Class("btn btn-sm btn-primary"), Text("Setujui")),
				),
				Form(Method("post"), Action("/admin/users/"+u.ID+"/reject"), Class("inline"),
					Button(Type("submit"), Class("btn btn-sm btn-destructive"), Text("Tolak")),
				),
			),
		))
	}
	return Table(Class("data-table"),
		THead(Tr(Th(Text("Nama")), Th(Text("Email")), Th(Text("Role")), Th(Text("Jurusan")), Th(Text("Aksi")))),
		TBody(Group(rows)),
	)
}

func accountsTable(users []admin.AccountRow) Node {
	if len(users) == 0 {
		return P(Class("muted"), Text("Belum ada akun."))
	}
	rows := make([]Node, 0, len(users))
	for _, u := range users {
		active := "nonaktif"
		if u.IsActive == nil || *u.IsActive {
			active = "aktif"
		}
		rows = append(rows, Tr(
			Td(Text(u.FullName)),
			Td(Text(u.Email)),
			Td(Text(u.Role)),
			Td(Text(active)),
			Td(
				A(Href("/admin/users/"+u.ID+"/edit"), Class("btn btn-sm"), Text("Edit")),
				Form(Method("post"), Action("/admin/users/"+u.ID+"/delete"), Class("inline"),
					Button(Type("submit"), Class("btn btn-sm btn-destructive"), Text("Hapus")),
				),
			),
		))
	}
	return Table(Class("data-table"),
		THead(Tr(Th(Text("Nama")), Th(Text("Email")), Th(Text("Role")), Th(Text("Status")), Th(Text("Aksi")))),
		TBody(Group(rows)),
	)
}

// EditUserPage is the account edit form; it posts the full-replace payload.
func EditUserPage(u admin.AccountRow) Node {
	activeChecked := u.IsActive == nil || *u.IsActive
	return Div(Class("card"),
		H1(Text("Edit Akun")),
		Form(Method("post"), Action("/admin/users/"+u.ID),
			Label(For("fullname"), Text("Nama Lengkap")),
			Input(Type("text"), Name("fullname"), Value(u.FullName)),
			Label(For("email"), Text("Email")),
			Input(Type("email"), Name("email"), Value(u.Email)),
			Label(For("user_type"), Text("Tipe Akun")),
			Select(Name("user_type"),
				userTypeOption(identity.UserTypeMahasiswa, "Mahasiswa", u.UserType),
				userTypeOption(identity.UserTypeDosen, "Dosen", u.UserType),
				userTypeOption(identity.UserTypeOthers, "Lainnya", u.UserType),
			),
			Label(
				Input(Type("checkbox"), Name("is_active"), If(activeChecked, Checked())),
				Text(" Aktif"),
			),
			Button(Type("submit"), Class("btn btn-primary"), Text("Simpan")),
			A(Href("/admin/users"), Class("btn btn-ghost"), Text("Batal")),
		),
	)
}

func userTypeOption(ut identity.UserType, label string, current identity.UserType) Node {
	return Option(Value(string(ut)), If(ut == current, Selected()), Text(label))
}

// ContentsPage is the content-administration table. Deletion is the only
// admin action on a post; everything else lives on the detail views.
func ContentsPage(posts []content.PostItem) Node {
	if len(posts) == 0 {
		return Div(Class("card empty-state"), P(Class("muted"), Text("Belum ada konten.")))
	}
	rows := make([]Node, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, Tr(
			Td(A(Href("/"+string(p.Type)+"/"+p.ID), Text(p.Title))),
			Td(Text(string(p.Type))),
			Td(Text(p.AuthorName)),
			Td(
				Form(Method("post"), Action("/admin/posts/"+p.ID+"/delete"), Class("inline"),
					Button(Type("submit"), Class("btn btn-sm btn-destructive"), Text("Hapus")),
				),
			),
		))
	}
	return Div(Class("card table-wrap"),
		Table(Class("data-table"),
			THead(Tr(Th(Text("Judul")), Th(Text("Tipe")), Th(Text("Penulis")), Th(Text("Aksi")))),
			TBody(Group(rows)),
		),
	)
}

// CategoriesPage manages categories and shows the known departments. The
// campus checkbox on the create form decides whether department links are
// kept server-side.
func CategoriesPage(categories []content.Category, departments []identity.Department) Node {
	catRows := make([]Node, 0, len(categories))
	for _, c := range categories {
		campus := "umum"
		if c.IsRelatedToCampus {
			campus = "kampus"
		}
		catRows = append(catRows, Tr(
			Td(
				Form(Method("post"), Action("/admin/categories/"+strconv.Itoa(c.ID)), Class("inline"),
					Input(Type("text"), Name("name"), Value(c.Name)),
					If(c.IsRelatedToCampus, Input(Type("hidden"), Name("is_related_to_campus"), Value("on"))),
					Button(Type("submit"), Class("btn btn-sm"), Text("Simpan")),
				),
			),
			Td(Text(campus)),
			Td(
				Form(Method("post"), Action("/admin/categories/"+strconv.Itoa(c.ID)+"/delete"), Class("inline"),
					Button(Type("submit"), Class("btn btn-sm btn-destructive"), Text("Hapus")),
				),
			),
		))
	}

	deptItems := make([]Node, 0, len(departments))
	for _, d := range departments {
		deptItems = append(deptItems, Li(Text(d.Name)))
	}

	return Group([]Node{
		Div(Class("card"),
			H2(Text("Kategori")),
			Form(Method("post"), Action("/admin/categories"),
				Label(For("name"), Text("Nama Kategori")),
				Input(Type("text"), Name("name")),
				Label(
					Input(Type("checkbox"), Name("is_related_to_campus")),
					Text(" Terkait kampus"),
				),
				Button(Type("submit"), Class("btn btn-primary"), Text("Tambah")),
			),
			Table(Class("data-table"),
				THead(Tr(Th(Text("Nama")), Th(Text("Jenis")), Th(Text("Aksi")))),
				TBody(Group(catRows)),
			),
		),
		Div(Class("card"),
			H2(Text("Jurusan")),
			Ul(Group(deptItems)),
		),
	})
}

// ReportsPage lists filed reports with their moderation status and manages
// the feedback topics the report dialog offers.
func ReportsPage(reports []admin.Report, topics []admin.FeedbackTopic) Node {
	reportRows := make([]Node, 0, len(reports))
	for _, r := range reports {
		subject := "feedback umum"
		if r.PostTitle != nil {
			subject = *r.PostTitle
		}
		reportRows = append(reportRows, Tr(
			Td(Text(r.Topic)),
			Td(Text(subject)),
			Td(Text(r.Description)),
			Td(Text(r.Reporter)),
			Td(
				Form(Method("post"), Action("/admin/reports/"+r.ID+"/status"), Class("inline"),
					Select(Name("status"),
						statusOption(admin.ReportPending, r.Status),
						statusOption(admin.ReportReviewed, r.Status),
						statusOption(admin.ReportResolved, r.Status),
						statusOption(admin.ReportRejected, r.Status),
					),
					Button(Type("submit"), Class("btn btn-sm"), Text("Ubah")),
				),
			),
		))
	}

	topicRows := make([]Node, 0, len(topics))
	for _, t := range topics {
		topicRows = append(topicRows, Tr(
			Td(
				Form(Method("post"), Action("/admin/topics/"+t.ID), Class("inline"),
					Input(Type("text"), Name("name"), Value(t.Name)),
					Button(Type("submit"), Class("btn btn-sm"), Text("Simpan")),
				),
			),
			Td(
				Form(Method("post"), Action("/admin/topics/"+t.ID+"/delete"), Class("inline"),
					Button(Type("submit"), Class("btn btn-sm btn-destructive"), Text("Hapus")),
				),
			),
		))
	}

	return Group([]Node{
		Div(Class("card table-wrap"),
			H2(Text("Laporan")),
			Table(Class("data-table"),
				THead(Tr(Th(Text("Topik")), Th(Text("Subjek")), Th(Text("Deskripsi")), Th(Text("Pelapor")), Th(Text("Status")))),
				TBody(Group(reportRows)),
			),
		),
		Div(Class("card"),
			H2(Text("Topik Feedback")),
			Form(Method("post"), Action("/admin/topics"),
				Label(For("name"), Text("Nama Topik")),
				Input(Type("text"), Name("name")),
				Button(Type("submit"), Class("btn btn-primary"), Text("Tambah")),
			),
			Table(Class("data-table"), TBody(Group(topicRows))),
		),
	})
}

func statusOption(s, current admin.ReportStatus) Node {
	return Option(Value(string(s)), If(s == current, Selected()), Text(string(s)))
}

// ActivityLogsPage lists the audit trail, newest first as the API returns
// it.
func ActivityLogsPage(logs []admin.ActivityLog) Node {
	if len(logs) == 0 {
		return Div(Class("card empty-state"), P(Class("muted"), Text("Belum ada aktivitas.")))
	}
	rows := make([]Node, 0, len(logs))
	for _, l := range logs {
		desc := ""
		if l.Description != nil {
			desc = *l.Description
		}
		rows = append(rows, Tr(
			Td(Text(l.CreatedAt)),
			Td(Text(l.FullName)),
			Td(Text(l.Action)),
			Td(Text(desc)),
		))
	}
	return Div(Class("card table-wrap"),
		Table(Class("data-table"),
			THead(Tr(Th(Text("Waktu")), Th(Text("Akun")), Th(Text("Aksi")), Th(Text("Deskripsi")))),
			TBody(Group(rows)),
		),
	)
}

// ErrorPage is the minimal failure view; failures stay local to the
// triggering page, this just says what happened.
func ErrorPage(code int, message string) Node {
	return shell("Error",
		Main(Class("auth-shell"),
			Div(Class("card auth-card center"),
				H1(Text(strconv.Itoa(code))),
				P(Class("muted"), Text(message)),
				A(Href("/dashboard"), Text("Kembali")),
			),
		),
	)
}
