package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError(t *testing.T) {
	err := &APIError{StatusCode: 404, Path: "/wiki/api/v2/pages/123"}
	assert.Equal(t, "confluence API returned 404 for /wiki/api/v2/pages/123", err.Error())
}

func TestIsAPIError(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		apiErr, ok := IsAPIError(&APIError{StatusCode: 500})
		require.True(t, ok)
		assert.Equal(t, 500, apiErr.StatusCode)
	})

	t.Run("wrapped", func(t *testing.T) {
		wrapped := fmt.Errorf("fetch page: %w", &APIError{StatusCode: 403})
		apiErr, ok := IsAPIError(wrapped)
		require.True(t, ok)
		assert.Equal(t, 403, apiErr.StatusCode)
	})

	t.Run("other error", func(t *testing.T) {
		_, ok := IsAPIError(ErrNotALink)
		assert.False(t, ok)
	})
}

func TestCredentialIsValid(t *testing.T) {
	assert.True(t, Credential{Username: "user@example.com", Secret: "token"}.IsValid())
	assert.False(t, Credential{Username: "user@example.com"}.IsValid())
	assert.False(t, Credential{Secret: "token"}.IsValid())
	assert.False(t, Credential{}.IsValid())
}
