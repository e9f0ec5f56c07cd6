// Package service provides the cryptographic primitives behind the secret box:
// AEAD ciphers (AES-256-GCM, ChaCha20-Poly1305) and PBKDF2 key derivation.
package service

import (
	"github.com/davidkarpay/tokenvault/internal/secretbox/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg domain.Algorithm) (AEAD, error)
}

// KeyDeriver defines the interface for deriving symmetric keys from passwords.
//
// Implementations are deliberately slow: the work factor trades call latency
// for offline brute-force cost. DeriveKey is a pure function of (password,
// salt) and must return a 32-byte key suitable for the AEAD ciphers above.
type KeyDeriver interface {
	// DeriveKey derives a 256-bit key from a password and salt.
	DeriveKey(password, salt []byte) []byte
}
