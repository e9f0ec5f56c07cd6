package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidkarpay/tokenvault/internal/secretbox/domain"
)

func TestNewAEADManager(t *testing.T) {
	manager := NewAEADManager()
	assert.NotNil(t, manager)
}

func TestAEADManagerService_CreateCipher(t *testing.T) {
	manager := NewAEADManager()
	validKey := make([]byte, 32)
	_, err := rand.Read(validKey)
	require.NoError(t, err)

	t.Run("create AES-GCM cipher", func(t *testing.T) {
		cipher, err := manager.CreateCipher(validKey, domain.AESGCM)
		require.NoError(t, err)
		assert.NotNil(t, cipher)

		_, ok := cipher.(*AESGCMCipher)
		assert.True(t, ok, "cipher should be of type *AESGCMCipher")
	})

	t.Run("create ChaCha20-Poly1305 cipher", func(t *testing.T) {
		cipher, err := manager.CreateCipher(validKey, domain.ChaCha20)
		require.NoError(t, err)
		assert.NotNil(t, cipher)

		_, ok := cipher.(*ChaCha20Poly1305Cipher)
		assert.True(t, ok, "cipher should be of type *ChaCha20Poly1305Cipher")
	})

	t.Run("create cipher with unsupported algorithm", func(t *testing.T) {
		_, err := manager.CreateCipher(validKey, domain.Algorithm("unsupported"))
		assert.ErrorIs(t, err, domain.ErrUnsupportedAlgorithm)
	})

	t.Run("create cipher with invalid key size - too short", func(t *testing.T) {
		shortKey := make([]byte, 16)
		_, err := manager.CreateCipher(shortKey, domain.AESGCM)
		assert.ErrorIs(t, err, domain.ErrInvalidKeySize)
	})

	t.Run("create cipher with invalid key size - too long", func(t *testing.T) {
		longKey := make([]byte, 64)
		_, err := manager.CreateCipher(longKey, domain.AESGCM)
		assert.ErrorIs(t, err, domain.ErrInvalidKeySize)
	})

	t.Run("create cipher with nil key", func(t *testing.T) {
		_, err := manager.CreateCipher(nil, domain.AESGCM)
		assert.ErrorIs(t, err, domain.ErrInvalidKeySize)
	})
}

func TestAEADManagerService_CreateCipher_Functional(t *testing.T) {
	manager := NewAEADManager()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	for _, alg := range []domain.Algorithm{domain.AESGCM, domain.ChaCha20} {
		t.Run("created "+string(alg)+" cipher can encrypt and decrypt", func(t *testing.T) {
			cipher, err := manager.CreateCipher(key, alg)
			require.NoError(t, err)

			plaintext := []byte("secret message")

			ciphertext, nonce, err := cipher.Encrypt(plaintext, nil)
			require.NoError(t, err)
			assert.NotNil(t, ciphertext)
			assert.Len(t, nonce, domain.NonceSize)
			// Tag adds 16 bytes over the plaintext.
			assert.Len(t, ciphertext, len(plaintext)+16)

			decrypted, err := cipher.Decrypt(ciphertext, nonce, nil)
			require.NoError(t, err)
			assert.Equal(t, plaintext, decrypted)
		})

		t.Run(string(alg)+" rejects tampered ciphertext", func(t *testing.T) {
			cipher, err := manager.CreateCipher(key, alg)
			require.NoError(t, err)

			ciphertext, nonce, err := cipher.Encrypt([]byte("secret message"), nil)
			require.NoError(t, err)

			ciphertext[0] ^= 0x01
			_, err = cipher.Decrypt(ciphertext, nonce, nil)
			assert.Error(t, err)
		})

		t.Run(string(alg)+" rejects wrong key", func(t *testing.T) {
			cipher, err := manager.CreateCipher(key, alg)
			require.NoError(t, err)

			ciphertext, nonce, err := cipher.Encrypt([]byte("secret message"), nil)
			require.NoError(t, err)

			otherKey := make([]byte, 32)
			_, err = rand.Read(otherKey)
			require.NoError(t, err)

			otherCipher, err := manager.CreateCipher(otherKey, alg)
			require.NoError(t, err)

			_, err = otherCipher.Decrypt(ciphertext, nonce, nil)
			assert.Error(t, err)
		})
	}
}
