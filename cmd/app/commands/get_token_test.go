package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/davidkarpay/tokenvault/internal/errors"
	"github.com/davidkarpay/tokenvault/internal/secretbox/usecase/mocks"
)

func TestRunGetToken(t *testing.T) {
	ctx := context.Background()
	logger := testCommandLogger()

	t.Run("success", func(t *testing.T) {
		mockBox := &mocks.MockSecretBox{}
		mockBox.On("Load", ctx, "secret-pass").Return("hf_token_value", nil)

		tuple, out := testIO("secret-pass\n")
		err := RunGetToken(ctx, mockBox, logger, tuple)
		require.NoError(t, err)
		require.Contains(t, out.String(), "hf_token_value")
		mockBox.AssertExpectations(t)
	})

	t.Run("nothing-stored", func(t *testing.T) {
		mockBox := &mocks.MockSecretBox{}
		mockBox.On("Load", ctx, "pass").
			Return("", apperrors.Wrap(apperrors.ErrNotFound, "slot empty"))

		tuple, _ := testIO("pass\n")
		err := RunGetToken(ctx, mockBox, logger, tuple)
		require.Error(t, err)
		require.Contains(t, err.Error(), "no token stored")
		mockBox.AssertExpectations(t)
	})

	t.Run("decryption-failure", func(t *testing.T) {
		mockBox := &mocks.MockSecretBox{}
		mockBox.On("Load", ctx, "wrong").
			Return("", errors.New("wrong password or corrupted data"))

		tuple, _ := testIO("wrong\n")
		err := RunGetToken(ctx, mockBox, logger, tuple)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to load token")
		mockBox.AssertExpectations(t)
	})

	t.Run("empty-password-input", func(t *testing.T) {
		mockBox := &mocks.MockSecretBox{}

		tuple, _ := testIO("\n")
		err := RunGetToken(ctx, mockBox, logger, tuple)
		require.Error(t, err)
		mockBox.AssertNotCalled(t, "Load")
	})
}
