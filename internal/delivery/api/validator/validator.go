// Package validator adapts go-playground/validator to echo request binding.
package validator

import (
	"reflect"
	"strings"

	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON names.
func New() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			name, _, _ = strings.Cut(field.Tag.Get("form"), ",")
		}

		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = validate.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return entity.ValidPincode(fl.Field().String())
	})

	return &RequestValidator{validate: validate}
}

// Validate returns a domain ValidationError listing every rejected field.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	fields := make([]domainerrors.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, domainerrors.FieldError{
			Field:   fieldErr.Field(),
			Message: messageFor(fieldErr),
		})
	}

	return domainerrors.NewValidationError(fields)
}

func messageFor(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "pincode":
		return field + " must be a valid 6 digit code"
	case "oneof":
		return field + " must be one of: " + fieldErr.Param()
	case "min":
		return field + " must be at least " + fieldErr.Param()
	case "max":
		return field + " must be at most " + fieldErr.Param()
	case "gt":
		return field + " must be greater than " + fieldErr.Param()
	case "gte":
		return field + " must be at least " + fieldErr.Param()
	case "len":
		return field + " must have length " + fieldErr.Param()
	case "numeric":
		return field + " must contain only digits"
	default:
		return field + " is invalid"
	}
}
