package nav

import "github.com/shareulbi/webcore/core/identity"

// Entry is one sidebar item. Entries come from the static master table; Badge
// and Active are filled in per render.
type Entry struct {
	ID    string
	Label string
	Route string
	Icon  string
	// Roles that may see the entry; nil means every signed-in role.
	Roles []identity.Role
	// Admin entries render under the admin divider.
	Admin bool

	Badge  int
	Active bool
}

var adminOnly = []identity.Role{identity.RoleAdmin}

// master is the declarative source of the whole sidebar, in display order.
var master = []Entry{
	{ID: "dashboard", Label: "Home", Route: "/dashboard", Icon: "home"},
	{ID: "e-learning", Label: "E-Learning", Route: "/e-learning", Icon: "book-open"},
	{ID: "works", Label: "Works", Route: "/works", Icon: "file-text"},
	{ID: "profile", Label: "Profile", Route: "/profile", Icon: "user"},
	{ID: "validation", Label: "Validation", Route: "/validation", Icon: "check-square",
		Roles: []identity.Role{identity.RoleDosen}},
	{ID: "admin-contents", Label: "Kelola Konten", Route: "/admin/contents", Icon: "file-text",
		Roles: adminOnly, Admin: true},
	{ID: "admin-users", Label: "Kelola Users", Route: "/admin/users", Icon: "user",
		Roles: adminOnly, Admin: true},
	{ID: "admin-categories", Label: "Kategori & Jurusan", Route: "/admin/categories", Icon: "file-text",
		Roles: adminOnly, Admin: true},
	{ID: "admin-reports", Label: "Reports & Feedback", Route: "/admin/reports", Icon: "message-square",
		Roles: adminOnly, Admin: true},
	{ID: "admin-activity-logs", Label: "Activity Logs", Route: "/admin/activity-logs", Icon: "history",
		Roles: adminOnly, Admin: true},
}

func (e Entry) visibleTo(role identity.Role) bool {
	if e.Roles == nil {
		return true
	}
	for _, r := range e.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Visible returns the ordered entries idn may see. A nil identity sees
// nothing. activeID marks at most one entry as active; an id matching no
// entry simply marks none (pages outside the sidebar's own list do this).
// pendingCount becomes the badge on the user-administration entry when it is
// greater than zero.
func Visible(idn *identity.Identity, activeID string, pendingCount int) []Entry {
	if idn == nil {
		return nil
	}

	entries := make([]Entry, 0, len(master))
	for _, e := range master {
		if !e.visibleTo(idn.Role.Name) {
			continue
		}
		e.Active = e.ID == activeID
		if e.ID == "admin-users" && pendingCount > 0 {
			e.Badge = pendingCount
		}
		entries = append(entries, e)
	}
	return entries
}
