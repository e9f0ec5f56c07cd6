package service

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// DefaultPBKDF2Iterations is the default PBKDF2 work factor.
//
// 100,000 iterations of HMAC-SHA256 is a deliberate trade between interactive
// latency and the cost of offline password guessing. The count is configurable
// but not recorded in the blob, so changing it invalidates previously stored
// blobs.
const DefaultPBKDF2Iterations = 100000

// derivedKeySize is the length of derived keys in bytes (256 bits).
const derivedKeySize = 32

// PBKDF2KeyDeriver implements the KeyDeriver interface using PBKDF2-HMAC-SHA256.
//
// The deriver is stateless apart from its iteration count and safe for
// concurrent use. DeriveKey is a pure function of (password, salt): the same
// inputs always produce the same key, which is what allows decryption to
// recompute the key instead of storing it.
type PBKDF2KeyDeriver struct {
	iterations int
}

// NewPBKDF2KeyDeriver creates a key deriver with the given iteration count.
// Counts below 1 fall back to DefaultPBKDF2Iterations.
func NewPBKDF2KeyDeriver(iterations int) *PBKDF2KeyDeriver {
	if iterations < 1 {
		iterations = DefaultPBKDF2Iterations
	}
	return &PBKDF2KeyDeriver{iterations: iterations}
}

// DeriveKey derives a 256-bit key from a password and salt using PBKDF2-HMAC-SHA256.
//
// The call is CPU-expensive on purpose and blocks for the duration of the
// derivation; callers wanting responsiveness should run it off their main
// execution path. The returned key is held only in volatile memory and should
// be zeroed by the caller after use.
func (d *PBKDF2KeyDeriver) DeriveKey(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, d.iterations, derivedKeySize, sha256.New)
}

// Iterations returns the configured PBKDF2 work factor.
func (d *PBKDF2KeyDeriver) Iterations() int {
	return d.iterations
}
