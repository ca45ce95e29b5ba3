package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in a mutex-guarded map. Sessions do not
// survive a restart, an accepted trade-off for the single admin account.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore builds a store with the given token lifetime.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Issue mints a token and opportunistically sweeps expired entries,
// keeping the map bounded without a background goroutine.
func (s *MemoryStore) Issue(ctx context.Context, userID int64, username string) (*Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}

	sess := &Session{
		Token:     token,
		UserID:    userID,
		Username:  username,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.sweepLocked()
	s.sessions[token] = sess
	s.mu.Unlock()

	return sess, nil
}

// Verify returns the session when the token is known and unexpired.
func (s *MemoryStore) Verify(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	if s.expired(sess) {
		delete(s.sessions, token)
		return nil, nil
	}

	copied := *sess
	return &copied, nil
}

// Revoke removes the token; removing an unknown token is not an error.
func (s *MemoryStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// Sweep removes all expired sessions and reports how many were dropped.
func (s *MemoryStore) Sweep(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(), nil
}

func (s *MemoryStore) sweepLocked() int {
	removed := 0
	for token, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) expired(sess *Session) bool {
	return s.now().UTC().Sub(sess.CreatedAt) >= s.ttl
}
