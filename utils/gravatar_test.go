package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravatarKey(t *testing.T) {
	// Reference hash from the gravatar documentation
	assert.Equal(t, "0bc83cb571cd1c50ba6f3e8a78ef1346", GravatarKey("MyEmailAddress@example.com "))
}

func TestGravatarKeyNormalizes(t *testing.T) {
	key := GravatarKey("someone@example.com")
	assert.Equal(t, key, GravatarKey("  SOMEONE@example.com"))
	assert.Equal(t, key, GravatarKey("Someone@Example.Com  "))
	assert.Len(t, key, 32)
}
