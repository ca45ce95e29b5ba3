// Package session holds admin dashboard sessions behind an injectable
// store so the token table is never process-global state: an in-memory
// map serves the single-instance deployment and tests, a Redis backend
// serves multi-instance ones.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Session is one issued admin token. Tokens are opaque random strings
// valid for a fixed window from issuance.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Store issues and verifies session tokens.
//
// Verify returns (nil, nil) for an unknown or expired token; a non-nil
// error indicates a backend failure, not an invalid token. Revoke is
// idempotent. Sweep removes expired entries where the backend does not
// expire them itself.
type Store interface {
	Issue(ctx context.Context, userID int64, username string) (*Session, error)
	Verify(ctx context.Context, token string) (*Session, error)
	Revoke(ctx context.Context, token string) error
	Sweep(ctx context.Context) (int, error)
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
