package ui

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sessions maps visitor session ids to their view state and evicts
// sessions that have been idle longer than the TTL.
type Sessions struct {
	mu     sync.RWMutex
	states map[string]*ViewState
	ttl    time.Duration
	now    func() time.Time
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		states: make(map[string]*ViewState),
		ttl:    ttl,
		now:    time.Now,
	}
}

// New creates a fresh session and returns its id.
func (s *Sessions) New() (string, *ViewState) {
	id := uuid.NewString()
	vs := NewViewState(s.now())

	s.mu.Lock()
	s.states[id] = vs
	s.mu.Unlock()

	return id, vs
}

// Get returns the session and marks it as seen. A session idle longer than
// the TTL is removed and reported as missing, even before the next Sweep.
func (s *Sessions) Get(id string) (*ViewState, bool) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	vs, ok := s.states[id]
	if !ok {
		return nil, false
	}
	if vs.idleSince(now) > s.ttl {
		delete(s.states, id)
		return nil, false
	}
	vs.touch(now)
	return vs, true
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}

// Sweep removes idle sessions and returns how many were removed.
func (s *Sessions) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, vs := range s.states {
		if vs.idleSince(now) > s.ttl {
			delete(s.states, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *Sessions) Run(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}
