package domain

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestNewEncodedBlob(t *testing.T) {
	salt := randomBytes(t, SaltSize)
	nonce := randomBytes(t, NonceSize)
	ciphertext := randomBytes(t, 48)

	t.Run("round-trip", func(t *testing.T) {
		original := EncodedBlob{
			Version:    VersionAESGCM,
			Salt:       salt,
			Nonce:      nonce,
			Ciphertext: ciphertext,
		}

		parsed, err := NewEncodedBlob(original.String())
		require.NoError(t, err)
		assert.Equal(t, original.Version, parsed.Version)
		assert.Equal(t, original.Salt, parsed.Salt)
		assert.Equal(t, original.Nonce, parsed.Nonce)
		assert.Equal(t, original.Ciphertext, parsed.Ciphertext)
	})

	t.Run("round-trip with chacha20 version", func(t *testing.T) {
		original := EncodedBlob{
			Version:    VersionChaCha20,
			Salt:       salt,
			Nonce:      nonce,
			Ciphertext: ciphertext,
		}

		parsed, err := NewEncodedBlob(original.String())
		require.NoError(t, err)
		assert.Equal(t, VersionChaCha20, parsed.Version)

		alg, err := parsed.Algorithm()
		require.NoError(t, err)
		assert.Equal(t, ChaCha20, alg)
	})

	t.Run("invalid base64", func(t *testing.T) {
		_, err := NewEncodedBlob("not-valid-base64!!!")
		assert.ErrorIs(t, err, ErrDecodeFailed)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := NewEncodedBlob("")
		assert.ErrorIs(t, err, ErrMalformedBlob)
	})

	t.Run("decoded bytes shorter than header", func(t *testing.T) {
		// 28 bytes: version byte pushes the minimum header to 29.
		short := base64.StdEncoding.EncodeToString(make([]byte, 28))
		_, err := NewEncodedBlob(short)
		assert.ErrorIs(t, err, ErrMalformedBlob)
	})

	t.Run("header with empty ciphertext parses", func(t *testing.T) {
		raw := append([]byte{VersionAESGCM}, append(salt, nonce...)...)
		parsed, err := NewEncodedBlob(base64.StdEncoding.EncodeToString(raw))
		require.NoError(t, err)
		assert.Empty(t, parsed.Ciphertext)
	})

	t.Run("unknown version byte", func(t *testing.T) {
		raw := append([]byte{99}, make([]byte, SaltSize+NonceSize)...)
		_, err := NewEncodedBlob(base64.StdEncoding.EncodeToString(raw))
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Algorithm
		wantErr error
	}{
		{"aes-gcm", "aes-gcm", AESGCM, nil},
		{"chacha20-poly1305", "chacha20-poly1305", ChaCha20, nil},
		{"unknown", "des-cbc", "", ErrUnsupportedAlgorithm},
		{"empty", "", "", ErrUnsupportedAlgorithm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alg, err := ParseAlgorithm(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, alg)
		})
	}
}

func TestVersionAlgorithmMapping(t *testing.T) {
	t.Run("version and algorithm round-trip", func(t *testing.T) {
		for _, alg := range []Algorithm{AESGCM, ChaCha20} {
			version, err := VersionForAlgorithm(alg)
			require.NoError(t, err)

			back, err := AlgorithmForVersion(version)
			require.NoError(t, err)
			assert.Equal(t, alg, back)
		}
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := VersionForAlgorithm(Algorithm("unknown"))
		assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
	})

	t.Run("unknown version", func(t *testing.T) {
		_, err := AlgorithmForVersion(0)
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})
}
