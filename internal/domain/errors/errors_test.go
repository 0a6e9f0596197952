package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapKeepsAppError(t *testing.T) {
	err := ErrOrderNotFound.WrapMessage("update status")

	var appErr AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "Order not found", appErr.Message())
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrInvalidStatusTransition.WithDetails("Completed -> Pending")

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.NotErrorIs(t, err, ErrStatusConflict)
	assert.Equal(t, "Completed -> Pending", err.Details())
}

func TestFieldCollector(t *testing.T) {
	var c FieldCollector
	assert.NoError(t, c.Err())

	c.Check(true, "name", "required")
	c.Check(false, "guestCount", "Guest count must be at least 10")
	c.Add("venueAddress", "Venue address is required")

	err := c.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)

	var ve *ValidationError
	require.True(t, stderrors.As(pkgerrors.Wrap(err, "submit"), &ve))
	assert.Len(t, ve.Fields(), 2)
	assert.Equal(t, "Guest count must be at least 10", ve.Message())
	assert.Equal(t, http.StatusBadRequest, ve.HTTPCode())
}

func TestNewValidationError_EmptyIsNil(t *testing.T) {
	assert.NoError(t, NewValidationError(nil))
}
