package draft

import (
	"context"
	"sync"
	"time"
)

// Store is the keyed per-user draft map. Turns for one user are serial, so a
// single mutex around the map is enough; user keys are disjoint.
type Store struct {
	mu     sync.Mutex
	drafts map[string]*Draft
	ttl    time.Duration
	cancel context.CancelFunc
}

// NewStore creates a store. A zero ttl disables draft expiry.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		drafts: make(map[string]*Draft),
		ttl:    ttl,
	}
}

// Put inserts or replaces the user's draft.
func (s *Store) Put(user string, d *Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[user] = d
}

// Get returns the user's open draft. An expired draft is removed and
// reported as absent.
func (s *Store) Get(user string) (*Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[user]
	if !ok {
		return nil, false
	}
	if d.Expired(s.ttl, time.Now()) {
		delete(s.drafts, user)
		return nil, false
	}
	return d, true
}

// Remove deletes the user's draft, reporting whether one existed.
func (s *Store) Remove(user string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.drafts[user]
	delete(s.drafts, user)
	return ok
}

// Len returns the number of open drafts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}

// Sweep removes expired drafts and returns how many were reaped.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	reaped := 0
	for user, d := range s.drafts {
		if d.Expired(s.ttl, now) {
			delete(s.drafts, user)
			reaped++
		}
	}
	return reaped
}

// StartSweeper begins periodic expiry sweeps. No-op when expiry is disabled.
func (s *Store) StartSweeper(ctx context.Context) {
	if s.ttl <= 0 {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(s.ttl / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-ctx.Done():
				return
			}
		}
	}()
}

// StopSweeper stops the sweeper loop.
func (s *Store) StopSweeper() {
	if s.cancel != nil {
		s.cancel()
	}
}
