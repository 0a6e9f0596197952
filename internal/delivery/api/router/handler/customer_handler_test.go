package handler

import (
	"net/http"
	"testing"

	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	mockUC "dabeli/internal/mocks/usecase"
	"dabeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type customerTestServer struct {
	echo            *echo.Echo
	customerUC      *mockUC.MockCustomerUsecase
	passwordResetUC *mockUC.MockPasswordResetUsecase
}

func newCustomerTestServer(t *testing.T, customerID uuid.UUID) customerTestServer {
	customerUC := mockUC.NewMockCustomerUsecase(t)
	passwordResetUC := mockUC.NewMockPasswordResetUsecase(t)
	h := NewCustomerHandler(CustomerHandlerParams{
		CustomerUC:      customerUC,
		PasswordResetUC: passwordResetUC,
		Logger:          testLogger(),
	})

	e := newTestEcho()
	customer := as(entity.RoleCustomer, customerID)

	e.POST("/api/customers/register", h.Register)
	e.POST("/api/customers/login", h.Login)
	e.POST("/api/customers/forgot-password", h.ForgotPassword)
	e.POST("/api/customers/reset-password", h.ResetPassword)
	e.PUT("/api/customers/password", h.ChangePassword, customer)
	e.POST("/api/customers/addresses", h.AddAddress, customer)
	e.DELETE("/api/customers/addresses/:id", h.DeleteAddress, customer)

	return customerTestServer{echo: e, customerUC: customerUC, passwordResetUC: passwordResetUC}
}

func TestCustomerHandler_Register(t *testing.T) {
	srv := newCustomerTestServer(t, uuid.New())
	customerID := uuid.New()

	srv.customerUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterCustomerInput{Name: "Asha", Phone: "9876543210", Password: "secret123"}).
		Return(&usecase.CustomerAuthOutput{
			Token:    "session-token",
			Customer: &entity.Customer{ID: customerID, Name: "Asha", Phone: "9876543210"},
		}, nil)

	rec := serveJSON(srv.echo, http.MethodPost, "/api/customers/register", map[string]any{
		"name": "Asha", "phone": "9876543210", "password": "secret123",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	out := decodeJSON[usecase.CustomerAuthOutput](t, rec)
	assert.Equal(t, "session-token", out.Token)
	assert.Equal(t, customerID, out.Customer.ID)
}

func TestCustomerHandler_Register_Validation(t *testing.T) {
	srv := newCustomerTestServer(t, uuid.New())

	rec := serveJSON(srv.echo, http.MethodPost, "/api/customers/register", map[string]any{
		"name": "Asha", "email": "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fields := map[string]bool{}
	for _, f := range decodeError(t, rec).Details {
		fields[f.Field] = true
	}
	assert.Equal(t, map[string]bool{"phone": true, "email": true, "password": true}, fields)
}

func TestCustomerHandler_Login_InvalidCredentials(t *testing.T) {
	srv := newCustomerTestServer(t, uuid.New())

	srv.customerUC.EXPECT().
		Login(mock.Anything, "9876543210", "wrong").
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := serveJSON(srv.echo, http.MethodPost, "/api/customers/login", map[string]any{
		"phone": "9876543210", "password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Invalid credentials", body.Msg)
	assert.Empty(t, body.Details)
}

func TestCustomerHandler_ForgotPassword(t *testing.T) {
	srv := newCustomerTestServer(t, uuid.New())

	srv.passwordResetUC.EXPECT().
		ForgotPassword(mock.Anything, "9876543210").
		Return(&usecase.ForgotPasswordOutput{Message: "If the phone is registered, a reset code has been sent"}, nil)

	rec := serveJSON(srv.echo, http.MethodPost, "/api/customers/forgot-password", map[string]any{"phone": "9876543210"})

	assert.Equal(t, http.StatusOK, rec.Code)
	out := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "If the phone is registered, a reset code has been sent", out["msg"])
	assert.NotContains(t, out, "resetCode")
}

func TestCustomerHandler_ResetPassword(t *testing.T) {
	srv := newCustomerTestServer(t, uuid.New())
	body := map[string]any{"phone": "9876543210", "token": "123456", "newPassword": "n3w-secret"}

	t.Run("expired code", func(t *testing.T) {
		srv.passwordResetUC.EXPECT().
			ResetPassword(mock.Anything, "9876543210", "123456", "n3w-secret").
			Return(domainerrors.ErrInvalidResetToken).Once()

		rec := serveJSON(srv.echo, http.MethodPost, "/api/customers/reset-password", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_RESET_TOKEN", decodeError(t, rec).Code)
	})

	t.Run("reset", func(t *testing.T) {
		srv.passwordResetUC.EXPECT().
			ResetPassword(mock.Anything, "9876543210", "123456", "n3w-secret").
			Return(nil).Once()

		rec := serveJSON(srv.echo, http.MethodPost, "/api/customers/reset-password", body)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Password has been reset successfully", decodeJSON[map[string]string](t, rec)["msg"])
	})
}

func TestCustomerHandler_ChangePassword(t *testing.T) {
	customerID := uuid.New()
	srv := newCustomerTestServer(t, customerID)

	srv.customerUC.EXPECT().ChangePassword(mock.Anything, customerID, "old-secret", "new-secret").Return(nil)

	rec := serveJSON(srv.echo, http.MethodPut, "/api/customers/password", map[string]any{
		"currentPassword": "old-secret", "newPassword": "new-secret",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Password updated successfully", decodeJSON[map[string]string](t, rec)["msg"])
}

func TestCustomerHandler_AddAddress(t *testing.T) {
	customerID := uuid.New()
	srv := newCustomerTestServer(t, customerID)

	t.Run("rejects bad pincode and type", func(t *testing.T) {
		rec := serveJSON(srv.echo, http.MethodPost, "/api/customers/addresses", map[string]any{
			"addressType": "Office", "street": "12 MG Road", "city": "Pune", "pincode": "4110",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		fields := map[string]string{}
		for _, f := range decodeError(t, rec).Details {
			fields[f.Field] = f.Message
		}
		assert.Contains(t, fields, "addressType")
		assert.Equal(t, "pincode must be a valid 6 digit code", fields["pincode"])
	})

	t.Run("added", func(t *testing.T) {
		addressID := uuid.New()
		srv.customerUC.EXPECT().
			AddAddress(mock.Anything, customerID, &usecase.AddressInput{
				AddressType: entity.AddressTypeHome, Street: "12 MG Road", City: "Pune", Pincode: "411001",
			}).
			Return(&entity.Address{ID: addressID, Street: "12 MG Road"}, nil).Once()

		rec := serveJSON(srv.echo, http.MethodPost, "/api/customers/addresses", map[string]any{
			"addressType": "Home", "street": "12 MG Road", "city": "Pune", "pincode": "411001",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, addressID, decodeJSON[entity.Address](t, rec).ID)
	})
}

func TestCustomerHandler_DeleteAddress_NotOwned(t *testing.T) {
	customerID := uuid.New()
	srv := newCustomerTestServer(t, customerID)
	addressID := uuid.New()

	srv.customerUC.EXPECT().DeleteAddress(mock.Anything, customerID, addressID).Return(domainerrors.ErrAddressNotFound)

	rec := serveJSON(srv.echo, http.MethodDelete, "/api/customers/addresses/"+addressID.String(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
