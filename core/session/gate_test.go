package session

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shareulbi/webcore/core"
	"github.com/shareulbi/webcore/core/identity"
)

func identityWith(role identity.Role, status identity.OnboardingStatus) *identity.Identity {
	return &identity.Identity{
		ID:               "1",
		FullName:         "Seseorang",
		Email:            "seseorang@ulbi.ac.id",
		OnboardingStatus: status,
		Role:             identity.RoleRef{Name: role},
	}
}

func Test_Evaluate(t *testing.T) {
	anyApproved := Requirement{}
	dosenOnly := Requirement{Roles: []identity.Role{identity.RoleDosen}}
	adminOnly := Requirement{Roles: []identity.Role{identity.RoleAdmin}}

	tests := []struct {
		name         string
		snap         Snapshot
		req          Requirement
		wantState    State
		wantRedirect string
	}{
		{
			name:      "loading yields pending and no redirect",
			snap:      Snapshot{Loading: true},
			req:       anyApproved,
			wantState: StatePending,
		},
		{
			name:      "loading wins even with an identity present",
			snap:      Snapshot{Loading: true, Identity: identityWith(identity.RoleAdmin, identity.OnboardingApproved)},
			req:       adminOnly,
			wantState: StatePending,
		},
		{
			name:         "anonymous goes to login",
			snap:         Snapshot{},
			req:          anyApproved,
			wantState:    StateAnonymous,
			wantRedirect: RouteLogin,
		},
		{
			name:         "pending mahasiswa goes to onboarding",
			snap:         Snapshot{Identity: identityWith(identity.RoleMahasiswa, identity.OnboardingPending)},
			req:          anyApproved,
			wantState:    StateUnapproved,
			wantRedirect: RouteOnboarding,
		},
		{
			name:         "rejected account goes to onboarding too",
			snap:         Snapshot{Identity: identityWith(identity.RoleMahasiswa, identity.OnboardingRejected)},
			req:          anyApproved,
			wantState:    StateUnapproved,
			wantRedirect: RouteOnboarding,
		},
		{
			name:         "approval is checked before role",
			snap:         Snapshot{Identity: identityWith(identity.RoleDosen, identity.OnboardingPending)},
			req:          dosenOnly,
			wantState:    StateUnapproved,
			wantRedirect: RouteOnboarding,
		},
		{
			name:         "dosen on an admin view lands on dashboard",
			snap:         Snapshot{Identity: identityWith(identity.RoleDosen, identity.OnboardingApproved)},
			req:          adminOnly,
			wantState:    StateWrongRole,
			wantRedirect: RouteDashboard,
		},
		{
			name:         "admin on a dosen view lands on the admin home",
			snap:         Snapshot{Identity: identityWith(identity.RoleAdmin, identity.OnboardingApproved)},
			req:          dosenOnly,
			wantState:    StateWrongRole,
			wantRedirect: RouteAdminHome,
		},
		{
			name:      "approved mahasiswa passes an open view",
			snap:      Snapshot{Identity: identityWith(identity.RoleMahasiswa, identity.OnboardingApproved)},
			req:       anyApproved,
			wantState: StateAuthorized,
		},
		{
			name:      "approved admin passes an admin view",
			snap:      Snapshot{Identity: identityWith(identity.RoleAdmin, identity.OnboardingApproved)},
			req:       adminOnly,
			wantState: StateAuthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(tt.snap, tt.req)
			assert.Equal(t, tt.wantState, d.State)
			assert.Equal(t, tt.wantRedirect, d.Redirect)
		})
	}
}

func Test_Gate_Attach_redirectsOncePerStateEntry(t *testing.T) {
	store := newStore(&stubAPI{meErr: &core.HTTPError{Status: http.StatusUnauthorized}})
	gate := NewGate(store, Requirement{})

	var renders []State
	var redirects []string
	detach := gate.Attach(
		func(d Decision) { renders = append(renders, d.State) },
		func(to string) { redirects = append(redirects, to) },
	)
	defer detach()

	// still loading: evaluated, nothing fired
	assert.Equal(t, []State{StatePending}, renders)
	assert.Empty(t, redirects)

	store.Bootstrap(context.Background())
	assert.Equal(t, []string{RouteLogin}, redirects)

	// same state again must not redirect a second time
	store.SetIdentity(nil)
	store.SetIdentity(nil)
	assert.Equal(t, []string{RouteLogin}, redirects)

	// leaving and re-entering the state arms the redirect again
	store.SetIdentity(identityWith(identity.RoleMahasiswa, identity.OnboardingApproved))
	store.SetIdentity(nil)
	assert.Equal(t, []string{RouteLogin, RouteLogin}, redirects)

	// render ran on every evaluation
	assert.Equal(t, []State{
		StatePending,
		StateAnonymous,
		StateAnonymous,
		StateAnonymous,
		StateAuthorized,
		StateAnonymous,
	}, renders)
}

func Test_Gate_neverRedirectsWhileLoading(t *testing.T) {
	store := newStore(&stubAPI{})
	gate := NewGate(store, Requirement{Roles: []identity.Role{identity.RoleAdmin}})

	var redirects int
	detach := gate.Attach(nil, func(string) { redirects++ })
	defer detach()

	// churn the store while bootstrap has not resolved
	idn := identityWith(identity.RoleMahasiswa, identity.OnboardingApproved)
	store.SetIdentity(idn)
	store.SetIdentity(nil)
	store.SetIdentity(idn)

	assert.Equal(t, 0, redirects)
	assert.Equal(t, StatePending, gate.Check().State)
}

func Test_Gate_detachStopsEvaluation(t *testing.T) {
	store := newStore(&stubAPI{})
	gate := NewGate(store, Requirement{})

	var renders int
	detach := gate.Attach(func(Decision) { renders++ }, nil)
	assert.Equal(t, 1, renders)

	detach()
	store.SetIdentity(identityWith(identity.RoleMahasiswa, identity.OnboardingApproved))
	assert.Equal(t, 1, renders)
}
