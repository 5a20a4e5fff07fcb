package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedFormat", ErrUnsupportedFormat},
		{"ErrMissingDependency", ErrMissingDependency},
		{"ErrNoIdentifiersFound", ErrNoIdentifiersFound},
		{"ErrSubstitutionFailed", ErrSubstitutionFailed},
		{"ErrNoTargetFile", ErrNoTargetFile},
		{"ErrReservedCategory", ErrReservedCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrUnsupportedFormat, ErrMissingDependency))
	assert.False(t, errors.Is(ErrNoIdentifiersFound, ErrSubstitutionFailed))
	assert.False(t, errors.Is(ErrNotFound, ErrAlreadyExists))
}

func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("parsing book.xlsx: %w", ErrMissingDependency)
	assert.True(t, errors.Is(wrapped, ErrMissingDependency))
}
