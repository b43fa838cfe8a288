package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the hex-encoded SHA256 hash of the input bytes.
func SHA256Hex(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Dataset returns a short version identifier for a raw dataset payload.
// Reported in API responses and used to scope cache keys, so two processes
// serving the same bytes always agree on the version string.
func Dataset(data []byte) string {
	return SHA256Hex(data)[:12]
}
