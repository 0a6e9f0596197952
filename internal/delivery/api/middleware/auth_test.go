package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/service"
	mockSvc "dabeli/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "abc", BearerToken("abc"))
	assert.Equal(t, "abc", BearerToken("Bearer  abc "))
	assert.Empty(t, BearerToken(""))
}

func runAuth(t *testing.T, mw echo.MiddlewareFunc, header string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})(c)

	return c, err
}

func TestAuthMiddleware(t *testing.T) {
	customerID := uuid.New()
	adminID := uuid.New()

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("customer").Return(&service.Claims{Subject: customerID, Role: entity.RoleCustomer}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken("admin").Return(&service.Claims{Subject: adminID, Role: entity.RoleAdmin}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Maybe()

	m := NewAuthMiddleware(tokenSvc)

	tests := []struct {
		name    string
		mw      echo.MiddlewareFunc
		header  string
		wantErr error
		wantSub uuid.UUID
	}{
		{name: "missing header", mw: m.Authenticate, wantErr: domainerrors.ErrNoToken},
		{name: "bearer without token", mw: m.Authenticate, header: "Bearer ", wantErr: domainerrors.ErrNoToken},
		{name: "expired token", mw: m.Authenticate, header: "Bearer expired", wantErr: domainerrors.ErrTokenInvalid},
		{name: "any role authenticates", mw: m.Authenticate, header: "Bearer admin", wantSub: adminID},
		{name: "customer route accepts customer", mw: m.RequireCustomer, header: "Bearer customer", wantSub: customerID},
		{name: "customer route rejects admin", mw: m.RequireCustomer, header: "Bearer admin", wantErr: domainerrors.ErrNotCustomerToken},
		{name: "admin route accepts raw token", mw: m.RequireAdmin, header: "admin", wantSub: adminID},
		{name: "admin route rejects customer", mw: m.RequireAdmin, header: "Bearer customer", wantErr: domainerrors.ErrNotAdminToken},
		{name: "admin route rejects missing token", mw: m.RequireAdmin, wantErr: domainerrors.ErrNoToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := runAuth(t, tt.mw, tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			subject, err := Subject(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSub, subject)
		})
	}
}

func TestSubject_Missing(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := Subject(c)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}
