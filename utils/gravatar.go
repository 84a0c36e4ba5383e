package utils

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// GravatarKey derives the avatar key for an email the way the gravatar
// service expects it: md5 hex of the trimmed, lowercased address.
func GravatarKey(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
