package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreIssueAndVerify(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	sess, err := store.Issue(context.Background(), 1, "admin")
	require.NoError(t, err)
	assert.Len(t, sess.Token, 64)
	assert.Equal(t, "admin", sess.Username)

	verified, err := store.Verify(context.Background(), sess.Token)
	require.NoError(t, err)
	require.NotNil(t, verified)
	assert.Equal(t, int64(1), verified.UserID)
}

func TestMemoryStoreVerifyUnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	sess, err := store.Verify(context.Background(), "deadbeef")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestMemoryStoreVerifyEmptyToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	sess, err := store.Verify(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestMemoryStoreTokensAreUnique(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	a, err := store.Issue(context.Background(), 1, "admin")
	require.NoError(t, err)
	b, err := store.Issue(context.Background(), 1, "admin")
	require.NoError(t, err)
	assert.NotEqual(t, a.Token, b.Token)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(24 * time.Hour)
	now := time.Now()
	store.now = func() time.Time { return now }

	sess, err := store.Issue(context.Background(), 1, "admin")
	require.NoError(t, err)

	// One minute before the cutoff the token is still good.
	store.now = func() time.Time { return now.Add(24*time.Hour - time.Minute) }
	verified, err := store.Verify(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.NotNil(t, verified)

	store.now = func() time.Time { return now.Add(24 * time.Hour) }
	verified, err = store.Verify(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Nil(t, verified)
}

func TestMemoryStoreRevoke(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	sess, err := store.Issue(context.Background(), 1, "admin")
	require.NoError(t, err)
	require.NoError(t, store.Revoke(context.Background(), sess.Token))

	verified, err := store.Verify(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Nil(t, verified)

	// Revoking again is fine.
	require.NoError(t, store.Revoke(context.Background(), sess.Token))
}

func TestMemoryStoreIssueSweepsExpired(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	now := time.Now()
	store.now = func() time.Time { return now }

	stale, err := store.Issue(context.Background(), 1, "admin")
	require.NoError(t, err)

	store.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = store.Issue(context.Background(), 1, "admin")
	require.NoError(t, err)

	store.mu.Lock()
	_, present := store.sessions[stale.Token]
	store.mu.Unlock()
	assert.False(t, present, "issuing evicts expired sessions")
}

func TestMemoryStoreSweepCounts(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	now := time.Now()
	store.now = func() time.Time { return now }

	_, err := store.Issue(context.Background(), 1, "admin")
	require.NoError(t, err)
	_, err = store.Issue(context.Background(), 1, "admin")
	require.NoError(t, err)

	store.now = func() time.Time { return now.Add(2 * time.Hour) }
	removed, err := store.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
}
