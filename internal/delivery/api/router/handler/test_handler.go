package handler

import (
	"net/http"

	"dabeli/internal/delivery/api/response"
	"dabeli/internal/domain/constants"
	"dabeli/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware echoes the identity the auth middleware put on the context.
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	sub, err := subject(c)
	if err != nil {
		return err
	}

	role, _ := c.Get(constants.ContextKeyRole).(entity.Role)

	return response.OK(c, map[string]any{
		"msg":     "Authentication middleware test successful",
		"subject": sub,
		"role":    role,
		"status":  "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.OK(c, map[string]any{
		"msg":    "Public endpoint test successful",
		"status": "public",
	})
}
