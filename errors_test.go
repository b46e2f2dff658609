package crypt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name:     "with field",
			err:      &ValidationError{Field: "Suffix", Value: "bin", Message: `must be "none" or start with "."`},
			expected: `validation error: Suffix: must be "none" or start with "."`,
		},
		{
			name:     "without field",
			err:      &ValidationError{Message: "config cannot be nil"},
			expected: "validation error: config cannot be nil",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	underlying := errors.New("boom")
	err := &ValidationError{Field: "Password", Message: "bad", Err: underlying}
	assert.Equal(t, underlying, errors.Unwrap(err))
	assert.True(t, errors.Is(err, underlying))

	err = &ValidationError{Message: "bad"}
	assert.Nil(t, errors.Unwrap(err))
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(&ValidationError{Message: "bad"}))
	assert.True(t, IsValidationError(fmt.Errorf("wrapped: %w", &ValidationError{Message: "bad"})))
	assert.False(t, IsValidationError(errors.New("plain")))
	assert.False(t, IsValidationError(nil))
	assert.False(t, IsValidationError(ErrNotAnEncryptedFile))
}
