package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shareulbi/webcore/core/identity"
)

func withRole(role identity.Role) *identity.Identity {
	return &identity.Identity{
		ID:               "1",
		FullName:         "Seseorang",
		OnboardingStatus: identity.OnboardingApproved,
		Role:             identity.RoleRef{Name: role},
	}
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func Test_Visible_roleFiltering(t *testing.T) {
	base := []string{"dashboard", "e-learning", "works", "profile"}

	tests := []struct {
		name string
		idn  *identity.Identity
		want []string
	}{
		{name: "nil identity sees nothing", idn: nil, want: nil},
		{name: "mahasiswa", idn: withRole(identity.RoleMahasiswa), want: base},
		{name: "others", idn: withRole(identity.RoleOthers), want: base},
		{name: "dosen gains validation", idn: withRole(identity.RoleDosen),
			want: append(append([]string{}, base...), "validation")},
		{name: "admin gains the admin section", idn: withRole(identity.RoleAdmin),
			want: append(append([]string{}, base...),
				"admin-contents", "admin-users", "admin-categories", "admin-reports", "admin-activity-logs")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(tt.idn, "", 0)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func Test_Visible_activeAndBadge(t *testing.T) {
	admin := withRole(identity.RoleAdmin)

	entries := Visible(admin, "admin-users", 3)
	for _, e := range entries {
		switch e.ID {
		case "admin-users":
			assert.True(t, e.Active)
			assert.Equal(t, 3, e.Badge)
		default:
			assert.False(t, e.Active, e.ID)
			assert.Zero(t, e.Badge, e.ID)
		}
	}
}

func Test_Visible_zeroPendingShowsNoBadge(t *testing.T) {
	entries := Visible(withRole(identity.RoleAdmin), "", 0)
	for _, e := range entries {
		assert.Zero(t, e.Badge, e.ID)
	}
}

func Test_Visible_unknownActiveIDMarksNone(t *testing.T) {
	entries := Visible(withRole(identity.RoleMahasiswa), "upload-elearning", 0)
	for _, e := range entries {
		assert.False(t, e.Active, e.ID)
	}
}
