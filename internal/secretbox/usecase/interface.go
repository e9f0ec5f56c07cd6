// Package usecase implements the secret box business logic: turning a
// (plaintext secret, password) pair into a durable encoded blob and back, plus
// the storage accessors over the injected key-value persistence collaborator.
package usecase

import (
	"context"
)

// KeyValueStore defines the interface for the persistence collaborator.
//
// Implementations hold opaque text values under string keys. Absence is
// reported as errors.ErrNotFound. The store is assumed synchronous; failures
// are surfaced immediately and never retried by the secret box.
type KeyValueStore interface {
	Put(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Remove(ctx context.Context, key string) error
}

// SecretBox defines the interface for password-based secret encryption.
//
// All operations are independent single-shot computations with no shared
// mutable state: every call generates its own salt/nonce and derives its own
// key, so concurrent calls are safe without locking. Key derivation is
// CPU-expensive and blocks for its duration; mid-flight cancellation is not
// supported.
type SecretBox interface {
	// Encrypt turns a plaintext secret and password into an encoded blob.
	// Two encryptions of the same inputs produce different blobs.
	Encrypt(ctx context.Context, secret, password string) (string, error)

	// Decrypt recovers the plaintext secret from a blob and password.
	// Success implies the returned bytes are identical to the original secret.
	Decrypt(ctx context.Context, blob, password string) (string, error)

	// ValidateTokenFormat reports whether a candidate secret looks like an
	// API token. Advisory only; never blocks other operations.
	ValidateTokenFormat(token string) bool

	// Save encrypts the secret and stores the blob under the configured slot key.
	Save(ctx context.Context, secret, password string) error

	// Load retrieves the stored blob and decrypts it.
	// Returns errors.ErrNotFound if no blob is stored.
	Load(ctx context.Context, password string) (string, error)

	// Clear removes the stored blob.
	Clear(ctx context.Context) error
}

// Options controls Save behavior.
//
// This replaces a loose options bag with named, typed fields and documented
// defaults (see DefaultOptions).
type Options struct {
	// ValidateOnSet runs the advisory token format check before storing.
	// A non-conforming value logs a warning but is still stored. Default true.
	ValidateOnSet bool

	// AssumeEncrypted treats the value passed to Save as an already-encoded
	// blob and stores it without re-encrypting. The value must still parse as
	// a structurally valid blob. Default false.
	AssumeEncrypted bool
}

// DefaultOptions returns the documented default Save behavior.
func DefaultOptions() Options {
	return Options{ValidateOnSet: true, AssumeEncrypted: false}
}
