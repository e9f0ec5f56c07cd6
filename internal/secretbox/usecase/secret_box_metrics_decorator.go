package usecase

import (
	"context"
	"time"

	"github.com/davidkarpay/tokenvault/internal/metrics"
)

// secretBoxWithMetrics decorates SecretBox with metrics instrumentation.
type secretBoxWithMetrics struct {
	next    SecretBox
	metrics metrics.BusinessMetrics
}

// NewSecretBoxWithMetrics wraps a SecretBox with metrics recording.
func NewSecretBoxWithMetrics(box SecretBox, m metrics.BusinessMetrics) SecretBox {
	return &secretBoxWithMetrics{
		next:    box,
		metrics: m,
	}
}

// Encrypt records metrics for encryption operations.
func (s *secretBoxWithMetrics) Encrypt(ctx context.Context, secret, password string) (string, error) {
	start := time.Now()
	blob, err := s.next.Encrypt(ctx, secret, password)
	s.record(ctx, "encrypt", start, err)
	return blob, err
}

// Decrypt records metrics for decryption operations.
func (s *secretBoxWithMetrics) Decrypt(ctx context.Context, blob, password string) (string, error) {
	start := time.Now()
	secret, err := s.next.Decrypt(ctx, blob, password)
	s.record(ctx, "decrypt", start, err)
	return secret, err
}

// ValidateTokenFormat delegates without instrumentation; the check is a pure
// pattern match with no failure mode worth counting.
func (s *secretBoxWithMetrics) ValidateTokenFormat(token string) bool {
	return s.next.ValidateTokenFormat(token)
}

// Save records metrics for token store operations.
func (s *secretBoxWithMetrics) Save(ctx context.Context, secret, password string) error {
	start := time.Now()
	err := s.next.Save(ctx, secret, password)
	s.record(ctx, "token_save", start, err)
	return err
}

// Load records metrics for token retrieval operations.
func (s *secretBoxWithMetrics) Load(ctx context.Context, password string) (string, error) {
	start := time.Now()
	secret, err := s.next.Load(ctx, password)
	s.record(ctx, "token_load", start, err)
	return secret, err
}

// Clear records metrics for token removal operations.
func (s *secretBoxWithMetrics) Clear(ctx context.Context) error {
	start := time.Now()
	err := s.next.Clear(ctx)
	s.record(ctx, "token_clear", start, err)
	return err
}

func (s *secretBoxWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "secretbox", operation, status)
	s.metrics.RecordDuration(ctx, "secretbox", operation, time.Since(start), status)
}
