package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken is the form refresh tokens are stored and looked up in, so a
// leaked authentications table does not hand out sessions.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
