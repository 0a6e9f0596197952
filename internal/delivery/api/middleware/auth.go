package middleware

import (
	"strings"

	deliverycontext "dabeli/internal/delivery/context"
	"dabeli/internal/domain/constants"
	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates bearer session tokens and guards routes by identity claim.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// BearerToken extracts the token from an Authorization header value.
// A header without the Bearer prefix is taken as the raw token.
func BearerToken(header string) string {
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		token = header
	}

	return strings.TrimSpace(token)
}

// Authenticate requires any valid session token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if token == "" {
			return domainerrors.ErrNoToken
		}

		claims, err := m.tokenSvc.ValidateToken(token)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		c.Set(constants.ContextKeySubject, claims.Subject)
		c.Set(constants.ContextKeyRole, claims.Role)

		ctx := deliverycontext.WithActor(c.Request().Context(), deliverycontext.Actor{
			Subject: claims.Subject,
			Role:    claims.Role,
		})
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireCustomer authenticates and rejects tokens without the customer claim.
func (m *AuthMiddleware) RequireCustomer(next echo.HandlerFunc) echo.HandlerFunc {
	return m.Authenticate(m.requireRole(entity.RoleCustomer, domainerrors.ErrNotCustomerToken, next))
}

// RequireAdmin authenticates and rejects tokens without the admin claim.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.Authenticate(m.requireRole(entity.RoleAdmin, domainerrors.ErrNotAdminToken, next))
}

func (m *AuthMiddleware) requireRole(role entity.Role, rejected error, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if got, ok := c.Get(constants.ContextKeyRole).(entity.Role); !ok || got != role {
			return rejected
		}

		return next(c)
	}
}

// Subject returns the authenticated subject set by Authenticate.
func Subject(c echo.Context) (uuid.UUID, error) {
	subject, ok := c.Get(constants.ContextKeySubject).(uuid.UUID)
	if !ok || subject == uuid.Nil {
		return uuid.Nil, domainerrors.ErrTokenInvalid
	}

	return subject, nil
}
