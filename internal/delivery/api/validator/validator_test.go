package validator

import (
	"testing"

	domainerrors "dabeli/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addressRequest struct {
	Street  string `json:"street" validate:"required"`
	Pincode string `json:"pincode" validate:"required,pincode"`
	Kind    string `json:"addressType" validate:"omitempty,oneof=Home Work Other"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, v.Validate(&addressRequest{Street: "MG Road", Pincode: "411001", Kind: "Home"}))
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := v.Validate(&addressRequest{Pincode: "011001", Kind: "Moon"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))

		fields := map[string]string{}
		for _, f := range validationErr.Fields() {
			fields[f.Field] = f.Message
		}
		assert.Equal(t, "street is required", fields["street"])
		assert.Equal(t, "pincode must be a valid 6 digit code", fields["pincode"])
		assert.Contains(t, fields["addressType"], "Home Work Other")
	})
}
