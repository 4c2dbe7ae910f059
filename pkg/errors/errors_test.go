package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	plain := NewNotFoundError("city not found")
	assert.Equal(t, "NOT_FOUND_ERROR: city not found", plain.Error())

	cause := fmt.Errorf("connection refused")
	wrapped := NewExternalAPIError("geocoding request failed", cause)
	assert.Contains(t, wrapped.Error(), "EXTERNAL_API_ERROR")
	assert.Contains(t, wrapped.Error(), "connection refused")
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	wrapped := NewExternalAPIError("geocoding request failed", cause)

	assert.True(t, stderrors.Is(wrapped, cause))
}

func TestTypeCheckers(t *testing.T) {
	tests := []struct {
		err     error
		checker func(error) bool
	}{
		{NewValidationError("bad input"), IsValidationError},
		{NewNotFoundError("missing"), IsNotFoundError},
		{NewExternalAPIError("down", nil), IsExternalAPIError},
		{NewMalformedResponseError("garbage", nil), IsMalformedResponseError},
		{NewCacheError("write failed", nil), IsCacheError},
		{NewConfigurationError("bad config", nil), IsConfigurationError},
	}

	for _, tt := range tests {
		assert.True(t, tt.checker(tt.err))
		assert.False(t, tt.checker(fmt.Errorf("plain error")))
	}

	// Checkers must not cross-match
	assert.False(t, IsNotFoundError(NewValidationError("bad input")))
	assert.False(t, IsValidationError(NewNotFoundError("missing")))
}
