package service

import (
	"github.com/davidkarpay/tokenvault/internal/secretbox/domain"
)

// AEADManagerService implements the AEADManager interface for creating AEAD cipher instances.
type AEADManagerService struct{}

// NewAEADManager creates a new AEADManagerService.
func NewAEADManager() *AEADManagerService {
	return &AEADManagerService{}
}

// CreateCipher creates an AEAD cipher instance for the specified algorithm.
// Returns ErrInvalidKeySize if key is not 32 bytes or ErrUnsupportedAlgorithm if algorithm is unknown.
func (am *AEADManagerService) CreateCipher(key []byte, alg domain.Algorithm) (AEAD, error) {
	if len(key) != 32 {
		return nil, domain.ErrInvalidKeySize
	}

	switch alg {
	case domain.AESGCM:
		return NewAESGCM(key)
	case domain.ChaCha20:
		return NewChaCha20Poly1305(key)
	default:
		return nil, domain.ErrUnsupportedAlgorithm
	}
}
