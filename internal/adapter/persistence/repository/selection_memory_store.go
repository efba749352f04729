package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"plotsite/internal/domain/selection"
	"plotsite/internal/usecase/interfaces"
)

var ErrSessionExists = errors.New("session already exists")

// DefaultSessionTTL is how long an untouched session is kept.
const DefaultSessionTTL = 30 * time.Minute

type sessionEntry struct {
	session  selection.Session
	lastSeen time.Time
}

// SelectionMemoryStore keeps visitor sessions in process memory. Sessions
// are lost on restart, like the page state they mirror, and are dropped
// once idle for longer than the ttl. A ttl <= 0 keeps them forever.
type SelectionMemoryStore struct {
	mu        sync.Mutex
	sessions  map[string]sessionEntry
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

var _ interfaces.ISelectionStore = (*SelectionMemoryStore)(nil)

func NewSelectionMemoryStore(ttl time.Duration) *SelectionMemoryStore {
	return &SelectionMemoryStore{
		sessions: make(map[string]sessionEntry),
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *SelectionMemoryStore) Create(_ context.Context, sess selection.Session) (selection.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweep(now)
	if _, ok := s.live(sess.ID, now); ok {
		return selection.Session{}, ErrSessionExists
	}
	seen := sess.UpdatedAt
	if seen.IsZero() || seen.After(now) {
		seen = now
	}
	s.sessions[sess.ID] = sessionEntry{session: cloneSession(sess), lastSeen: seen}
	return cloneSession(sess), nil
}

// Get returns the zero Session for unknown or expired ids. A hit counts as
// activity.
func (s *SelectionMemoryStore) Get(_ context.Context, id string) (selection.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	e, ok := s.live(id, now)
	if !ok {
		return selection.Session{}, nil
	}
	e.lastSeen = now
	s.sessions[id] = e
	return cloneSession(e.session), nil
}

func (s *SelectionMemoryStore) Update(_ context.Context, id string, fn func(selection.State) selection.State) (selection.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	e, ok := s.live(id, now)
	if !ok {
		return selection.Session{}, nil
	}
	e.session.State = fn(cloneSession(e.session).State)
	e.session.UpdatedAt = now
	e.session = cloneSession(e.session)
	e.lastSeen = now
	s.sessions[id] = e
	return cloneSession(e.session), nil
}

// Len reports the number of stored sessions, expired ones included until
// the next sweep.
func (s *SelectionMemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// live looks id up and deletes it when expired. Callers hold mu.
func (s *SelectionMemoryStore) live(id string, now time.Time) (sessionEntry, bool) {
	e, ok := s.sessions[id]
	if !ok {
		return sessionEntry{}, false
	}
	if s.expired(e, now) {
		delete(s.sessions, id)
		return sessionEntry{}, false
	}
	return e, true
}

func (s *SelectionMemoryStore) expired(e sessionEntry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.lastSeen) > s.ttl
}

// sweep drops every expired session, at most once per tenth of the ttl so
// that Create stays cheap. Callers hold mu.
func (s *SelectionMemoryStore) sweep(now time.Time) {
	if s.ttl <= 0 || now.Sub(s.lastSweep) < s.ttl/10 {
		return
	}
	s.lastSweep = now
	for id, e := range s.sessions {
		if s.expired(e, now) {
			delete(s.sessions, id)
		}
	}
}

// cloneSession detaches the selected id pointer so callers never share it
// with the stored copy.
func cloneSession(sess selection.Session) selection.Session {
	if sess.State.SelectedParcelID != nil {
		id := *sess.State.SelectedParcelID
		sess.State.SelectedParcelID = &id
	}
	return sess
}
