package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionExpired(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		lastActivity time.Time
		now          time.Time
		expired      bool
	}{
		{"fresh", start, start.Add(time.Minute), false},
		{"idle just under limit", start, start.Add(SessionIdleTimeout), false},
		{"idle past limit", start, start.Add(SessionIdleTimeout + time.Second), true},
		{"active but past max age", start.Add(24 * time.Hour), start.Add(SessionMaxAge + time.Second), true},
		{"kept alive within max age", start.Add(23 * time.Hour), start.Add(23*time.Hour + time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, SessionExpired(start, tt.lastActivity, tt.now))
		})
	}
}

func TestSessionsTouch(t *testing.T) {
	store := NewSessions()
	sess := store.Create("user-1")

	got, ok := store.Touch(sess.ID, time.Now())
	require.True(t, ok)
	assert.Equal(t, "user-1", got.UserID)
}

func TestSessionsTouchExpiredRemoves(t *testing.T) {
	store := NewSessions()
	sess := store.Create("user-1")

	_, ok := store.Touch(sess.ID, time.Now().Add(SessionIdleTimeout+time.Minute))
	assert.False(t, ok)

	// gone for good, even at a sane time
	_, ok = store.Touch(sess.ID, time.Now())
	assert.False(t, ok)
}

func TestSessionsDelete(t *testing.T) {
	store := NewSessions()
	sess := store.Create("user-1")

	store.Delete(sess.ID)

	_, ok := store.Touch(sess.ID, time.Now())
	assert.False(t, ok)
}

func TestSessionsTouchUnknown(t *testing.T) {
	store := NewSessions()

	_, ok := store.Touch("missing", time.Now())
	assert.False(t, ok)
}
