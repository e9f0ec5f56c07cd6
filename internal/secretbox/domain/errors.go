package domain

import (
	"github.com/davidkarpay/tokenvault/internal/errors"
)

// Secret box error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for encryption and storage failures. The CLI layer maps
// them to user-facing messages; none of them are retried automatically since
// no failure mode here is transient.
var (
	// ErrInvalidInput indicates an empty secret or empty password was supplied.
	//
	// This is a caller error: the operation is rejected before any key
	// derivation or encryption takes place.
	ErrInvalidInput = errors.Wrap(errors.ErrInvalidInput, "secret and password must be non-empty")

	// ErrDecodeFailed indicates the stored value is not valid base64 text.
	//
	// This points at corrupted storage. The recommended remedy is to discard
	// the stored blob and re-enter the secret.
	ErrDecodeFailed = errors.Wrap(errors.ErrInvalidInput, "blob is not valid base64")

	// ErrMalformedBlob indicates the decoded bytes are too short to contain
	// the version, salt, and nonce header. Same remedy as ErrDecodeFailed.
	ErrMalformedBlob = errors.Wrap(errors.ErrInvalidInput, "blob too short")

	// ErrUnsupportedVersion indicates the blob version byte does not match any
	// known format version. Either the blob was produced by a newer release or
	// the first byte was corrupted.
	ErrUnsupportedVersion = errors.Wrap(errors.ErrInvalidInput, "unsupported blob version")

	// ErrUnsupportedAlgorithm indicates the requested AEAD algorithm is not supported.
	//
	// Supported algorithms: AESGCM (AES-256-GCM), ChaCha20 (ChaCha20-Poly1305)
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates the derived key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrDecryptionFailed indicates the authentication tag did not verify.
	//
	// This can occur due to:
	//   - Wrong password (derived key does not match)
	//   - Ciphertext has been tampered with or corrupted
	//
	// The two causes are indistinguishable on purpose: an attacker must not
	// learn whether a guessed password was close. Retrying with the same
	// inputs cannot succeed.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "wrong password or corrupted data")

	// ErrPersistence indicates the underlying key-value store failed.
	//
	// Surfaced immediately with no retry; callers may fall back to operating
	// without persistence.
	ErrPersistence = errors.Wrap(errors.ErrUnavailable, "persistence failure")
)
