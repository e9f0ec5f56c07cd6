package app

import (
	"github.com/davidkarpay/tokenvault/internal/secretbox/domain"
	"github.com/davidkarpay/tokenvault/internal/secretbox/repository"
	"github.com/davidkarpay/tokenvault/internal/secretbox/service"
	"github.com/davidkarpay/tokenvault/internal/secretbox/usecase"
)

// SecretBox returns the secret box use case, wrapped with metrics when enabled.
func (c *Container) SecretBox() (usecase.SecretBox, error) {
	var err error
	c.secretBoxInit.Do(func() {
		c.secretBox, err = c.initSecretBox()
		if err != nil {
			c.initErrors["secretBox"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["secretBox"]; exists {
		return nil, storedErr
	}
	return c.secretBox, nil
}

// initSecretBox assembles the secret box from its collaborators.
func (c *Container) initSecretBox() (usecase.SecretBox, error) {
	algorithm, err := domain.ParseAlgorithm(c.config.Algorithm)
	if err != nil {
		return nil, err
	}

	store, err := c.Store()
	if err != nil {
		return nil, err
	}

	box := usecase.NewSecretBox(
		service.NewPBKDF2KeyDeriver(c.config.PBKDF2Iterations),
		service.NewAEADManager(),
		store,
		c.config.StorageSlotKey,
		algorithm,
		usecase.Options{
			ValidateOnSet:   c.config.ValidateOnSet,
			AssumeEncrypted: c.config.AssumeEncrypted,
		},
		c.Logger(),
	)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}
	if c.config.MetricsEnabled {
		box = usecase.NewSecretBoxWithMetrics(box, businessMetrics)
	}

	return box, nil
}

// initStore opens the file-backed store at the configured path, falling back
// to an in-memory store when the file store cannot be opened. The fallback
// keeps encryption usable in operate-without-persistence mode; the failure is
// logged but never retried.
func (c *Container) initStore() (usecase.KeyValueStore, error) {
	store, err := repository.NewFileStore(c.config.StoragePath)
	if err != nil {
		c.Logger().Warn("file store unavailable, operating without persistence", "error", err)
		return repository.NewMemoryStore(), nil
	}
	return store, nil
}
