package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorKeepsTypedErrors(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", Clone(ErrNotFound, "artist not found"))

	got := FromError(wrapped)
	assert.Equal(t, ErrNotFound.Code, got.Code)
	assert.Equal(t, "artist not found", got.Message)
	assert.Equal(t, http.StatusNotFound, got.Status)
}

func TestFromErrorWrapsUnknown(t *testing.T) {
	got := FromError(errors.New("boom"))
	assert.Equal(t, ErrInternal.Code, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Nil(t, FromError(nil))
}

func TestIs(t *testing.T) {
	err := Wrap(errors.New("dial tcp"), ErrUnavailable.Code, ErrUnavailable.Status, "booking store unavailable")
	assert.True(t, Is(err, ErrUnavailable))
	assert.False(t, Is(err, ErrInternal))
	assert.False(t, Is(errors.New("plain"), ErrInternal))
}

func TestWithDetailsDoesNotMutateTemplate(t *testing.T) {
	got := WithDetails(ErrConflict, "show cannot be listed", map[string]bool{"ok": false})
	assert.NotNil(t, got.Details)
	assert.Nil(t, ErrConflict.Details)
	assert.Equal(t, "conflict", ErrConflict.Message)
}
