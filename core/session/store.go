package session

import (
	"context"
	"sync"

	"github.com/shareulbi/webcore/core/identity"
)

type (
	// Snapshot is a value copy of the store's state at one point in time.
	// Identity is nil while anonymous; mutating the copy cannot touch the
	// store's own state.
	Snapshot struct {
		Identity *identity.Identity
		Loading  bool
	}

	Subscriber func(Snapshot)

	// Store is the single source of truth for "who is logged in". It starts
	// in the loading state and leaves it exactly once, when Bootstrap
	// resolves; gates must not conclude anything while it is loading.
	Store struct {
		svc *identity.Service

		mu       sync.Mutex
		once     sync.Once
		identity *identity.Identity
		loading  bool
		subs     map[int]Subscriber
		nextSub  int
	}
)

func NewStore(svc *identity.Service) *Store {
	return &Store{
		svc:     svc,
		loading: true,
		subs:    make(map[int]Subscriber),
	}
}

// Bootstrap resolves the current session via GET /me, exactly once per store.
// Any failure (401, unreachable server, anything) normalizes to anonymous:
// the rest of the app never distinguishes "not logged in" from "could not
// ask". Repeat calls are no-ops.
func (s *Store) Bootstrap(ctx context.Context) {
	s.once.Do(func() {
		idn, err := s.svc.Me(ctx)

		s.mu.Lock()
		if err != nil {
			s.identity = nil
		} else {
			s.identity = &idn
		}
		s.loading = false
		s.mu.Unlock()

		s.notify()
	})
}

// Login authenticates and, on success, replaces the stored identity
// wholesale with the one the API returned.
func (s *Store) Login(ctx context.Context, creds identity.Credentials) (identity.Identity, error) {
	idn, err := s.svc.Login(ctx, creds)
	if err != nil {
		return identity.Identity{}, err
	}
	s.SetIdentity(&idn)
	return idn, nil
}

// Logout invalidates the server session and clears the stored identity. The
// identity is cleared even when the call fails; the cookie is gone either way
// as far as this client is concerned.
func (s *Store) Logout(ctx context.Context) error {
	err := s.svc.Logout(ctx)
	s.SetIdentity(nil)
	return err
}

// SetIdentity synchronously replaces the stored identity. The store keeps its
// own copy so no caller holds a mutable reference into it.
func (s *Store) SetIdentity(idn *identity.Identity) {
	s.mu.Lock()
	if idn == nil {
		s.identity = nil
	} else {
		cp := *idn
		s.identity = &cp
	}
	s.mu.Unlock()

	s.notify()
}

// Identity returns a copy of the stored identity; ok is false while anonymous.
func (s *Store) Identity() (identity.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return identity.Identity{}, false
	}
	return *s.identity, true
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{Loading: s.loading}
	if s.identity != nil {
		cp := *s.identity
		snap.Identity = &cp
	}
	return snap
}

// Subscribe registers fn to run after every state change. The returned func
// unsubscribes; a view must call it when it goes away.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	snap := s.snapshotLocked()
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}
