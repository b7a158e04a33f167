package ui

import (
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/shareulbi/webcore/core/identity"
	"github.com/shareulbi/webcore/core/nav"
)

func shell(title string, body ...Node) Node {
	return HTML(
		Lang("id"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text(title+" | ShareULBI")),
			Link(Rel("icon"), Href("/static/favicon.ico")),
			Link(Rel("stylesheet"), Href("/static/app.css")),
			Script(Src("https://unpkg.com/lucide@latest/dist/umd/lucide.min.js")),
		),
		Body(
			Group(body),
			Script(Raw("if (window.lucide) { window.lucide.createIcons(); }")),
		),
	)
}

// AppPage is the authenticated layout: sidebar on the left, content on the
// right. entries comes from nav.Visible for the signed-in identity.
func AppPage(title string, idn identity.Identity, entries []nav.Entry, body ...Node) Node {
	return shell(title,
		Main(Class("app-shell"),
			Sidebar(idn, entries),
			Section(Class("app-main"),
				Div(Class("content"), Group(body)),
			),
		),
	)
}

// Sidebar renders the navigation for one identity. The caller filters
// entries per role; this only draws them, admin entries under their divider.
func Sidebar(idn identity.Identity, entries []nav.Entry) Node {
	links := make([]Node, 0, len(entries)+2)
	var adminDivider bool
	for _, e := range entries {
		if e.Admin && !adminDivider {
			adminDivider = true
			links = append(links,
				Div(Class("nav-divider")),
				P(Class("nav-section-label"), Text("Admin")),
			)
		}
		links = append(links, navLink(e))
	}

	return Aside(Class("app-sidebar"),
		A(Href("/dashboard"), Class("brand"),
			Img(Src("/static/shareulbi_logo.png"), Alt("ShareULBI"), Class("brand-logo")),
		),
		Nav(Class("app-nav"), Group(links)),
		Div(Class("sidebar-footer"),
			P(Class("footer-name"), Text(idn.FullName)),
			P(Class("footer-email"), Text(idn.Email)),
			Form(Method("post"), Action("/logout"),
				Button(Type("submit"), Class("btn btn-ghost btn-sm"), Text("Logout")),
			),
		),
	)
}

func navLink(e nav.Entry) Node {
	className := "nav-link"
	if e.Active {
		className += " active"
	}
	return A(Href(e.Route), Class(className),
		I(Class("nav-icon"), Attr("data-lucide", e.Icon), Attr("aria-hidden", "true")),
		Span(Class("nav-label"), Text(e.Label)),
		If(e.Badge > 0,
			Span(Class("nav-badge"), Text(strconv.Itoa(e.Badge))),
		),
	)
}
