package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itsatony/agrisynth/internal/errors"
)

func TestTypedErrors(t *testing.T) {
	cause := stderrors.New("boom")

	v := errors.NewValidationError("count must not be negative", cause)
	assert.Equal(t, http.StatusBadRequest, v.Code)
	assert.True(t, errors.IsValidation(v))
	assert.False(t, errors.IsNotFound(v))
	assert.ErrorIs(t, v, cause)
	assert.Contains(t, v.Error(), "internal: boom")

	nf := errors.NewNotFoundError("dataset not found", nil).WithRequestID("req_1")
	wrapped := fmt.Errorf("lookup: %w", nf)
	assert.True(t, errors.IsNotFound(wrapped))
	assert.Equal(t, "req_1", errors.AsAPIError(wrapped).RequestID)

	assert.Equal(t, http.StatusServiceUnavailable, errors.NewUnavailableError("redis down", cause).Code)
}

func TestAsAPIErrorWrapsUnknown(t *testing.T) {
	apiErr := errors.AsAPIError(stderrors.New("disk on fire"))
	assert.Equal(t, errors.ErrorTypeInternal, apiErr.Type)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
	assert.Equal(t, "internal server error", apiErr.Message)
}
