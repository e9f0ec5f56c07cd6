// Package domain defines the core domain models for the secret box: the
// encoded blob format, the token format check, and the error taxonomy.
//
// A blob is the single persisted artifact produced by encryption. Its decoded
// layout is:
//
//	version(1B) ∥ salt(16B) ∥ nonce(12B) ∥ ciphertext+tag
//
// encoded with standard base64 for storage transport. The version byte selects
// the AEAD algorithm and leaves room for future format changes without making
// them indistinguishable from corruption.
package domain

import (
	"encoding/base64"
	"fmt"
)

// Blob layout sizes in bytes.
const (
	// SaltSize is the length of the random salt mixed into key derivation.
	SaltSize = 16

	// NonceSize is the length of the AEAD nonce.
	NonceSize = 12

	// headerSize is the length of the fixed-size prefix before the ciphertext.
	headerSize = 1 + SaltSize + NonceSize
)

// EncodedBlob represents a parsed encrypted blob.
//
// Salt and Nonce are public values generated fresh on every encryption; the
// ciphertext includes the authentication tag appended by the AEAD cipher.
type EncodedBlob struct {
	Version    byte
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
}

// NewEncodedBlob parses the textual representation of an encrypted blob.
//
// Returns:
//   - ErrDecodeFailed if the input is not valid standard base64
//   - ErrMalformedBlob if the decoded bytes are shorter than the fixed header
//   - ErrUnsupportedVersion if the version byte is unknown
func NewEncodedBlob(content string) (EncodedBlob, error) {
	raw, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return EncodedBlob{}, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	if len(raw) < headerSize {
		return EncodedBlob{}, fmt.Errorf(
			"%w: got %d bytes, need at least %d",
			ErrMalformedBlob,
			len(raw),
			headerSize,
		)
	}

	version := raw[0]
	if _, err := AlgorithmForVersion(version); err != nil {
		return EncodedBlob{}, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, version)
	}

	return EncodedBlob{
		Version:    version,
		Salt:       raw[1 : 1+SaltSize],
		Nonce:      raw[1+SaltSize : headerSize],
		Ciphertext: raw[headerSize:],
	}, nil
}

// Algorithm returns the AEAD algorithm selected by the blob's version byte.
func (eb EncodedBlob) Algorithm() (Algorithm, error) {
	return AlgorithmForVersion(eb.Version)
}

// String serializes the blob into its base64 textual representation.
//
// Round-trips with NewEncodedBlob:
//
//	original := EncodedBlob{Version: VersionAESGCM, Salt: salt, Nonce: nonce, Ciphertext: ct}
//	parsed, _ := NewEncodedBlob(original.String())
//	// parsed equals original
func (eb EncodedBlob) String() string {
	raw := make([]byte, 0, headerSize+len(eb.Ciphertext))
	raw = append(raw, eb.Version)
	raw = append(raw, eb.Salt...)
	raw = append(raw, eb.Nonce...)
	raw = append(raw, eb.Ciphertext...)
	return base64.StdEncoding.EncodeToString(raw)
}
