// Package handler contains the HTTP handlers of the API.
package handler

import (
	"strconv"
	"strings"
	"time"

	"dabeli/internal/delivery/api/middleware"
	domainerrors "dabeli/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.Invalid("body", "Invalid request body")
	}

	return c.Validate(req)
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.Invalid(name, "Invalid ID")
	}

	return id, nil
}

func subject(c echo.Context) (uuid.UUID, error) {
	return middleware.Subject(c)
}

// queryBool parses an optional boolean query parameter.
func queryBool(c echo.Context, name string) (*bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domainerrors.Invalid(name, name+" must be true or false")
	}

	return &value, nil
}

// queryString returns nil for an absent or blank parameter.
func queryString(c echo.Context, name string) *string {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil
	}

	return &raw
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.Invalid(name, name+" must be a number")
	}

	return value, nil
}

// queryTime accepts RFC 3339 timestamps or plain dates. A plain date used as an
// upper bound covers the whole day.
func queryTime(c echo.Context, name string, upper bool) (*time.Time, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, domainerrors.Invalid(name, name+" must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
	}
	if upper {
		t = t.AddDate(0, 0, 1)
	}

	return &t, nil
}
