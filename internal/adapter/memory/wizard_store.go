package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"edu-dashboard/internal/core/port"
	"edu-dashboard/internal/core/wizard"
)

// WizardStore implements port.WizardStore in process memory. Sessions
// not touched for ttl are dropped.
type WizardStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

type session struct {
	mu      sync.Mutex
	owner   string
	state   wizard.State
	touched time.Time
}

// NewWizardStore creates a store. A zero ttl keeps sessions forever.
func NewWizardStore(ttl time.Duration) *WizardStore {
	return &WizardStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create stores state under a new random id.
func (s *WizardStore) Create(_ context.Context, owner string, state wizard.State) (string, error) {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &session{owner: owner, state: state, touched: s.now()}
	s.mu.Unlock()
	return id, nil
}

// Update runs fn with the session locked. The store lock is released
// before fn runs, so slow effects only block their own session.
func (s *WizardStore) Update(ctx context.Context, id string, fn func(owner string, state *wizard.State) error) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return port.ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.expired(sess) {
		return port.ErrSessionNotFound
	}
	state := sess.state
	if err := fn(sess.owner, &state); err != nil {
		return err
	}
	sess.state = state
	sess.touched = s.now()
	return nil
}

// Prune drops expired sessions and returns how many were removed.
// Sessions busy in Update are skipped; they are not expired by
// definition and are looked at again on the next run.
func (s *WizardStore) Prune() int {
	s.mu.Lock()
	candidates := make(map[string]*session, len(s.sessions))
	maps.Copy(candidates, s.sessions)
	s.mu.Unlock()

	var expired []string
	for id, sess := range candidates {
		if !sess.mu.TryLock() {
			continue
		}
		if s.expired(sess) {
			expired = append(expired, id)
		}
		sess.mu.Unlock()
	}
	if len(expired) == 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for _, id := range expired {
		if s.sessions[id] == candidates[id] {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run prunes expired sessions every interval until ctx is done.
func (s *WizardStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Prune()
		}
	}
}

// Len returns the number of stored sessions.
func (s *WizardStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *WizardStore) expired(sess *session) bool {
	return s.ttl > 0 && s.now().Sub(sess.touched) > s.ttl
}
