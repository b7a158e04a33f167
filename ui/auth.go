package ui

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/shareulbi/webcore/core/identity"
)

// LoginPage renders the login form; errMsg is shown above the form when a
// previous attempt failed.
func LoginPage(errMsg string) Node {
	return shell("Login",
		Main(Class("auth-shell"),
			Div(Class("card auth-card"),
				H1(Text("Login to your account")),
				P(Class("muted"), Text("Enter your email below to login to your account")),
				If(errMsg != "",
					Div(Class("alert alert-destructive"), Text(errMsg)),
				),
				Form(Method("post"), Action("/login"),
					Label(For("email"), Text("Email")),
					Input(Type("email"), ID("email"), Name("email"), Placeholder("name@example.com")),
					Label(For("password"), Text("Password")),
					Input(Type("password"), ID("password"), Name("password"), Placeholder("password")),
					Button(Type("submit"), Class("btn btn-primary"), Text("Login")),
				),
				P(Class("muted"),
					Text("Don't have an account? "),
					A(Href("/register"), Text("Sign up")),
				),
			),
		),
	)
}

// RegisterPage renders the sign-up form. The per-user-type fields (NPM,
// NIDN, department, occupation) are all rendered; which ones are required is
// the registration validator's call, surfaced through errMsg on failure.
func RegisterPage(departments []identity.Department, errMsg string) Node {
	deptOptions := make([]Node, 0, len(departments)+1)
	deptOptions = append(deptOptions, Option(Value(""), Text("Pilih jurusan")))
	for _, d := range departments {
		deptOptions = append(deptOptions, Option(Value(d.ID), Text(d.Name)))
	}

	return shell("Register",
		Main(Class("auth-shell"),
			Div(Class("card auth-card"),
				H1(Text("Create an account")),
				P(Class("muted"), Text("Enter your details below to create your account")),
				If(errMsg != "",
					Div(Class("alert alert-destructive"), Text(errMsg)),
				),
				Form(Method("post"), Action("/register"),
					Label(For("fullname"), Text("Nama Lengkap")),
					Input(Type("text"), ID("fullname"), Name("fullname")),
					Label(For("email"), Text("Email")),
					Input(Type("email"), ID("email"), Name("email"), Placeholder("name@example.com")),
					Label(For("password"), Text("Password")),
					Input(Type("password"), ID("password"), Name("password")),
					Label(For("confirm_password"), Text("Konfirmasi Password")),
					Input(Type("password"), ID("confirm_password"), Name("confirm_password")),
					Label(For("user_type"), Text("Tipe Akun")),
					Select(ID("user_type"), Name("user_type"),
						Option(Value(string(identity.UserTypeMahasiswa)), Text("Mahasiswa")),
						Option(Value(string(identity.UserTypeDosen)), Text("Dosen")),
						Option(Value(string(identity.UserTypeOthers)), Text("Lainnya")),
					),
					Label(For("npm"), Text("NPM")),
					Input(Type("text"), ID("npm"), Name("npm")),
					Label(For("nidn"), Text("NIDN")),
					Input(Type("text"), ID("nidn"), Name("nidn")),
					Label(For("department_id"), Text("Jurusan")),
					Select(ID("department_id"), Name("department_id"), Group(deptOptions)),
					Label(For("occupation"), Text("Pekerjaan")),
					Input(Type("text"), ID("occupation"), Name("occupation")),
					Button(Type("submit"), Class("btn btn-primary"), Text("Sign up")),
				),
				P(Class("muted"),
					Text("Already have an account? "),
					A(Href("/login"), Text("Login")),
				),
			),
		),
	)
}

// OnboardingPage is the wait screen for accounts the admin has not approved
// yet.
func OnboardingPage() Node {
	return shell("Onboarding",
		Main(Class("auth-shell"),
			Div(Class("card auth-card center"),
				H1(Text("Akun Anda Sedang Ditinjau")),
				P(Class("muted"),
					Text("Pendaftaran berhasil."),
					Br(),
					Text("Silakan tunggu admin untuk menyetujui akun Anda."),
				),
				A(Href("/login"), Class("btn btn-primary"), Text("Kembali ke Login")),
			),
		),
	)
}
