package sessions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionIDShapeAndUniqueness(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := newSessionID()
		assert.NoError(t, err)
		assert.Len(t, id, 64)
		assert.Regexp(t, `^[0-9a-f]+$`, id)
		assert.False(t, seen[id], "session ids must not repeat")
		seen[id] = true
	}
}

func TestSessionKeyNamespacing(t *testing.T) {
	assert.Equal(t, "session:abc123", sessionKey("abc123"))
}

func TestNewStoreDefaultsTTL(t *testing.T) {
	store := NewStore(nil, 0)
	assert.Equal(t, DefaultTTL, store.ttl)
}
