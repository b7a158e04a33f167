package admin

import (
	"context"
	"sync"
)

// Store holds the administrative badge state shared across admin views. The
// pending counter is only ever replaced by Refresh with the server's value,
// never incremented or decremented locally, so the badge cannot drift from
// backend truth.
type Store struct {
	svc *Service

	mu    sync.Mutex
	count int
}

func NewStore(svc *Service) *Store {
	return &Store{svc: svc}
}

// Refresh re-fetches the true pending-approval count. Any failure resets the
// counter to zero; a stale nonzero badge after an error would be a lie.
// Called once on admin-area entry, not on a timer.
func (s *Store) Refresh(ctx context.Context) {
	n, err := s.svc.PendingCount(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.count = 0
		return
	}
	s.count = n
}

func (s *Store) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
