package review

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
)

// Store keeps live review sessions in memory. Sessions are ephemeral: they
// expire after the configured idle TTL and are lost on restart, which only
// costs the user their in-progress run, never any persisted counters.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a session store with the given idle TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Put registers a session, replacing any previous session the same user had
// for the same deck, so a deck has at most one live run per user.
func (st *Store) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for id, existing := range st.sessions {
		if existing.UserID == s.UserID && existing.DeckID == s.DeckID {
			delete(st.sessions, id)
		}
	}

	s.UpdatedAt = st.now()
	st.sessions[s.ID] = s
}

// Update runs fn against the session under the store lock, touching its
// idle timer on success. Returns domain.ErrNotFound for unknown, expired,
// or foreign sessions.
func (st *Store) Update(sessionID, userID uuid.UUID, fn func(s *Session) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[sessionID]
	if !ok || s.UserID != userID {
		return domain.ErrNotFound
	}
	if st.now().Sub(s.UpdatedAt) > st.ttl {
		delete(st.sessions, sessionID)
		return domain.ErrNotFound
	}

	if err := fn(s); err != nil {
		return err
	}

	s.UpdatedAt = st.now()
	return nil
}

// Delete drops a session. Unknown ids are a no-op.
func (st *Store) Delete(sessionID, userID uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sessions[sessionID]; ok && s.UserID == userID {
		delete(st.sessions, sessionID)
	}
}

// Sweep drops all expired sessions and returns how many were removed.
// Called periodically from the app's janitor goroutine.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	removed := 0
	for id, s := range st.sessions {
		if now.Sub(s.UpdatedAt) > st.ttl {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
