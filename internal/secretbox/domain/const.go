package domain

// Algorithm represents the AEAD algorithm used for encryption.
//
// All supported algorithms provide Authenticated Encryption with Associated Data (AEAD),
// ensuring both confidentiality and authenticity of encrypted data. AEAD prevents both
// unauthorized reading and tampering with encrypted data.
//
// Algorithm selection guidelines:
//   - Use AESGCM on modern CPUs with AES-NI hardware acceleration
//   - Use ChaCha20 on mobile devices or systems without AES-NI
//   - Both provide equivalent 256-bit security when used correctly
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	//
	// Key features:
	//   - 256-bit key size
	//   - 12-byte nonce (96 bits)
	//   - 16-byte authentication tag
	//   - Hardware acceleration on modern CPUs
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	//
	// Key features:
	//   - 256-bit key size
	//   - 12-byte nonce (96 bits)
	//   - 16-byte authentication tag
	//   - Constant-time software implementation
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// Blob format versions. The version byte is the first byte of every decoded
// blob and selects the AEAD algorithm used for the ciphertext that follows.
const (
	// VersionAESGCM marks a blob whose ciphertext was produced with AES-256-GCM.
	VersionAESGCM byte = 1

	// VersionChaCha20 marks a blob whose ciphertext was produced with ChaCha20-Poly1305.
	VersionChaCha20 byte = 2
)

// ParseAlgorithm converts a configuration string into an Algorithm.
// Returns ErrUnsupportedAlgorithm for unknown names.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case AESGCM:
		return AESGCM, nil
	case ChaCha20:
		return ChaCha20, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}

// VersionForAlgorithm returns the blob format version byte for an algorithm.
func VersionForAlgorithm(alg Algorithm) (byte, error) {
	switch alg {
	case AESGCM:
		return VersionAESGCM, nil
	case ChaCha20:
		return VersionChaCha20, nil
	default:
		return 0, ErrUnsupportedAlgorithm
	}
}

// AlgorithmForVersion returns the AEAD algorithm selected by a blob version byte.
func AlgorithmForVersion(version byte) (Algorithm, error) {
	switch version {
	case VersionAESGCM:
		return AESGCM, nil
	case VersionChaCha20:
		return ChaCha20, nil
	default:
		return "", ErrUnsupportedVersion
	}
}
