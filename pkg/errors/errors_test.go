package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromErrorPassesTypedErrorsThrough(t *testing.T) {
	err := Clone(ErrNotFound, "project not found")
	normalized := FromError(err)
	assert.Equal(t, http.StatusNotFound, normalized.Status)
	assert.Equal(t, "project not found", normalized.Message)
}

func TestFromErrorHidesUnknownErrors(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	normalized := FromError(cause)
	require.NotNil(t, normalized)
	assert.Equal(t, http.StatusInternalServerError, normalized.Status)
	assert.Equal(t, ErrInternal.Message, normalized.Message, "driver message never reaches the wire")
	assert.ErrorIs(t, normalized, cause)
}

func TestFromErrorUnwrapsWrappedTypedError(t *testing.T) {
	inner := Clone(ErrValidation, "title is required")
	wrapped := errors.Join(errors.New("outer"), inner)
	normalized := FromError(wrapped)
	assert.Equal(t, http.StatusBadRequest, normalized.Status)
}

func TestCloneDoesNotMutateOriginal(t *testing.T) {
	clone := Clone(ErrUnauthorized, "different message")
	assert.Equal(t, "different message", clone.Message)
	assert.Equal(t, "not authenticated", ErrUnauthorized.Message)
	assert.Equal(t, ErrUnauthorized.Code, clone.Code)
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, ErrInternal.Code, ErrInternal.Status, "failed to fetch projects")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to fetch projects")
	assert.Contains(t, err.Error(), "boom")
}
