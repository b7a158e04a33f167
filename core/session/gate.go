package session

import (
	"sync"

	"github.com/shareulbi/webcore/core/identity"
)

// State is the auth gate's decision space for one protected view.
type State int

const (
	// StatePending: session bootstrap still in flight; render a neutral
	// loading indicator and take no redirect action.
	StatePending State = iota
	StateAnonymous
	StateUnapproved
	StateWrongRole
	StateAuthorized
)

func (st State) String() string {
	switch st {
	case StatePending:
		return "pending"
	case StateAnonymous:
		return "anonymous"
	case StateUnapproved:
		return "unapproved"
	case StateWrongRole:
		return "wrong-role"
	case StateAuthorized:
		return "authorized"
	}
	return "unknown"
}

// Requirement declares which roles may see a view. An empty set admits any
// approved identity.
type Requirement struct {
	Roles []identity.Role
}

func (req Requirement) allows(role identity.Role) bool {
	if len(req.Roles) == 0 {
		return true
	}
	for _, r := range req.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Decision is the outcome of one gate evaluation: what state the view is in,
// and where to send the user when that state demands a redirect.
type Decision struct {
	State    State
	Redirect string // empty unless the state requires a redirect
}

// Evaluate computes the gate decision for a session snapshot. It is a pure
// function of (snapshot, requirement); redirect-once bookkeeping lives on
// Gate. While the snapshot is loading no redirect is ever produced, so a
// still-valid session is never bounced to the login page during the startup
// window.
func Evaluate(snap Snapshot, req Requirement) Decision {
	switch {
	case snap.Loading:
		return Decision{State: StatePending}
	case snap.Identity == nil:
		return Decision{State: StateAnonymous, Redirect: RouteLogin}
	case !snap.Identity.IsApproved():
		return Decision{State: StateUnapproved, Redirect: RouteOnboarding}
	case !req.allows(snap.Identity.Role.Name):
		return Decision{State: StateWrongRole, Redirect: HomeRoute(snap.Identity.Role.Name)}
	}
	return Decision{State: StateAuthorized}
}

// Gate guards one protected view instance. It re-evaluates whenever the
// store changes and fires each redirect at most once per state entry, so a
// repeat notification with an unchanged state cannot loop the navigation.
type Gate struct {
	store *Store
	req   Requirement

	mu      sync.Mutex
	entered bool
	last    State
}

func NewGate(store *Store, req Requirement) *Gate {
	return &Gate{store: store, req: req}
}

// Check evaluates the gate once against the store's current state.
func (g *Gate) Check() Decision {
	return Evaluate(g.store.Snapshot(), g.req)
}

// Attach evaluates immediately and then on every store change. render runs on
// every evaluation with the fresh decision; redirect runs only when a
// decision with a redirect target is entered. The returned func detaches the
// gate from the store.
func (g *Gate) Attach(render func(Decision), redirect func(string)) func() {
	apply := func(snap Snapshot) {
		d := Evaluate(snap, g.req)

		g.mu.Lock()
		entered := !g.entered || d.State != g.last
		g.entered = true
		g.last = d.State
		g.mu.Unlock()

		if render != nil {
			render(d)
		}
		if entered && d.Redirect != "" && redirect != nil {
			redirect(d.Redirect)
		}
	}

	apply(g.store.Snapshot())
	return g.store.Subscribe(apply)
}
