package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesChain(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(cause, KindPersistence, "PERSISTENCE_ERROR", "failed to write report file")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to write report file: disk full", err.Error())
	assert.True(t, IsKind(err, KindPersistence))
	assert.False(t, IsKind(err, KindValidation))
}

func TestValidationCarriesDetails(t *testing.T) {
	details := []string{"Activity type is required", "Start date is required"}
	err := Validation(details)

	assert.True(t, IsKind(err, KindValidation))
	assert.Equal(t, details, err.Details)

	// The details slice is copied, not aliased.
	details[0] = "mutated"
	assert.Equal(t, "Activity type is required", err.Details[0])
}

func TestCloneDoesNotMutatePredefined(t *testing.T) {
	err := Clone(ErrValidation, "save general information first")
	assert.Equal(t, "save general information first", err.Message)
	assert.Equal(t, "validation failed", ErrValidation.Message)
	assert.Equal(t, KindValidation, err.Kind)
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	typed := New(KindNotFound, "NOT_FOUND", "record not found")
	assert.Same(t, typed, FromError(typed))

	plain := errors.New("boom")
	normalized := FromError(plain)
	require.NotNil(t, normalized)
	assert.Equal(t, KindInternal, normalized.Kind)
	assert.ErrorIs(t, normalized, plain)
}

func TestIsKindOnForeignError(t *testing.T) {
	assert.False(t, IsKind(errors.New("plain"), KindInternal))
	assert.False(t, IsKind(nil, KindInternal))
}
