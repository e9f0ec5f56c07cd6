package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"

	"github.com/davidkarpay/tokenvault/internal/errors"
	"github.com/davidkarpay/tokenvault/internal/secretbox/domain"
	"github.com/davidkarpay/tokenvault/internal/secretbox/service"
)

// secretBoxUseCase implements SecretBox.
//
// Each call derives its own key from the password and a fresh salt, uses it
// for exactly one AEAD operation, and zeroes it before returning. Nothing
// derived from the password ever reaches the store or the logger.
type secretBoxUseCase struct {
	deriver     service.KeyDeriver
	aeadManager service.AEADManager
	store       KeyValueStore
	slotKey     string
	algorithm   domain.Algorithm
	options     Options
	logger      *slog.Logger
}

// NewSecretBox creates a SecretBox over the given collaborators.
//
// slotKey is the fixed persistence slot for Save/Load/Clear. algorithm selects
// the AEAD used for new encryptions; decryption always follows the blob's
// version byte, so previously stored blobs remain readable after the
// configured algorithm changes.
func NewSecretBox(
	deriver service.KeyDeriver,
	aeadManager service.AEADManager,
	store KeyValueStore,
	slotKey string,
	algorithm domain.Algorithm,
	options Options,
	logger *slog.Logger,
) SecretBox {
	return &secretBoxUseCase{
		deriver:     deriver,
		aeadManager: aeadManager,
		store:       store,
		slotKey:     slotKey,
		algorithm:   algorithm,
		options:     options,
		logger:      logger,
	}
}

// Encrypt turns a plaintext secret and password into an encoded blob.
//
// Generates a fresh 16-byte salt and lets the cipher generate a fresh 12-byte
// nonce, so two encryptions of the same inputs never produce the same blob.
// Returns domain.ErrInvalidInput if secret or password is empty.
func (b *secretBoxUseCase) Encrypt(ctx context.Context, secret, password string) (string, error) {
	if secret == "" || password == "" {
		return "", domain.ErrInvalidInput
	}

	version, err := domain.VersionForAlgorithm(b.algorithm)
	if err != nil {
		return "", err
	}

	salt := make([]byte, domain.SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := b.deriver.DeriveKey([]byte(password), salt)
	defer domain.Zero(key)

	cipher, err := b.aeadManager.CreateCipher(key, b.algorithm)
	if err != nil {
		return "", err
	}

	ciphertext, nonce, err := cipher.Encrypt([]byte(secret), nil)
	if err != nil {
		return "", err
	}

	blob := domain.EncodedBlob{
		Version:    version,
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: ciphertext,
	}
	return blob.String(), nil
}

// Decrypt recovers the plaintext secret from a blob and password.
//
// The derived key is recomputed from the password and the blob's salt; it is
// never stored. An authentication tag mismatch surfaces as
// domain.ErrDecryptionFailed whether the cause is a wrong password or a
// tampered blob; the two are indistinguishable on purpose.
func (b *secretBoxUseCase) Decrypt(ctx context.Context, blob, password string) (string, error) {
	eb, err := domain.NewEncodedBlob(blob)
	if err != nil {
		return "", err
	}

	alg, err := eb.Algorithm()
	if err != nil {
		return "", err
	}

	key := b.deriver.DeriveKey([]byte(password), eb.Salt)
	defer domain.Zero(key)

	cipher, err := b.aeadManager.CreateCipher(key, alg)
	if err != nil {
		return "", err
	}

	plaintext, err := cipher.Decrypt(eb.Ciphertext, eb.Nonce, nil)
	if err != nil {
		return "", domain.ErrDecryptionFailed
	}
	return string(plaintext), nil
}

// ValidateTokenFormat reports whether a candidate secret looks like an API token.
func (b *secretBoxUseCase) ValidateTokenFormat(token string) bool {
	return domain.ValidTokenFormat(token)
}

// Save encrypts the secret and stores the blob under the configured slot key.
//
// With Options.AssumeEncrypted the value is treated as an already-encoded blob:
// it must parse structurally but is stored as-is and the password is unused.
func (b *secretBoxUseCase) Save(ctx context.Context, secret, password string) error {
	if b.options.ValidateOnSet && !b.options.AssumeEncrypted && !domain.ValidTokenFormat(secret) {
		// Advisory only; the token value itself is never logged.
		b.logger.Warn("token does not match the expected format, storing anyway")
	}

	blob := secret
	if b.options.AssumeEncrypted {
		if _, err := domain.NewEncodedBlob(secret); err != nil {
			return err
		}
	} else {
		var err error
		blob, err = b.Encrypt(ctx, secret, password)
		if err != nil {
			return err
		}
	}

	if err := b.store.Put(ctx, b.slotKey, blob); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// Load retrieves the stored blob and decrypts it.
func (b *secretBoxUseCase) Load(ctx context.Context, password string) (string, error) {
	blob, err := b.store.Get(ctx, b.slotKey)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return b.Decrypt(ctx, blob, password)
}

// Clear removes the stored blob.
func (b *secretBoxUseCase) Clear(ctx context.Context) error {
	if err := b.store.Remove(ctx, b.slotKey); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}
