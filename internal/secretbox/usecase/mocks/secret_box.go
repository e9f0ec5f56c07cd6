// Package mocks provides mock implementations for testing CLI commands.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSecretBox is a mock implementation of SecretBox for testing.
type MockSecretBox struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of SecretBox.
func (m *MockSecretBox) Encrypt(ctx context.Context, secret, password string) (string, error) {
	args := m.Called(ctx, secret, password)
	return args.String(0), args.Error(1)
}

// Decrypt mocks the Decrypt method of SecretBox.
func (m *MockSecretBox) Decrypt(ctx context.Context, blob, password string) (string, error) {
	args := m.Called(ctx, blob, password)
	return args.String(0), args.Error(1)
}

// ValidateTokenFormat mocks the ValidateTokenFormat method of SecretBox.
func (m *MockSecretBox) ValidateTokenFormat(token string) bool {
	args := m.Called(token)
	return args.Bool(0)
}

// Save mocks the Save method of SecretBox.
func (m *MockSecretBox) Save(ctx context.Context, secret, password string) error {
	args := m.Called(ctx, secret, password)
	return args.Error(0)
}

// Load mocks the Load method of SecretBox.
func (m *MockSecretBox) Load(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

// Clear mocks the Clear method of SecretBox.
func (m *MockSecretBox) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
