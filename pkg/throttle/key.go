package throttle

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
)

// maxKeyLength caps counter key length to keep storage keys reasonable in
// backends like Redis.
const maxKeyLength = 64

// KeyFunc extracts the caller identity key from an HTTP request, e.g. the
// client IP for anonymous endpoints or an account identifier once known.
// Returning "" means no identity could be established.
type KeyFunc func(*http.Request) string

// counterKey builds the storage key for an (identity, class) pair. Long
// identities are hashed to a fixed length; 128 bits of SHA-256 is plenty of
// collision resistance for counter keys.
func counterKey(identityKey string, class OperationClass) string {
	if len(identityKey) > maxKeyLength {
		sum := sha256.Sum256([]byte(identityKey))
		identityKey = hex.EncodeToString(sum[:16])
	}
	return "throttle:" + string(class) + ":" + identityKey
}
