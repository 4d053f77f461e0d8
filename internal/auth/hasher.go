package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword digests salt+password with a single sha256 round.
//
// This reproduces the scheme the original deployment shipped with so that
// existing credential rows keep verifying. It is NOT a production-grade
// password hash; do not reuse outside this service.
func HashPassword(salt, password string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword recomputes the digest and compares in constant time, so
// comparison duration does not depend on where a mismatch occurs.
func VerifyPassword(salt, password, digest string) bool {
	return hmac.Equal([]byte(HashPassword(salt, password)), []byte(digest))
}
