package handler

import (
	"log/slog"

	"dabeli/internal/delivery/api/response"
	"dabeli/internal/domain/entity"
	"dabeli/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	msgPasswordChanged = "Password updated successfully"
	msgPasswordReset   = "Password has been reset successfully"
	msgAddressDeleted  = "Address removed"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC      usecase.CustomerUsecase
	PasswordResetUC usecase.PasswordResetUsecase
	Logger          *slog.Logger
}

// CustomerHandler serves customer accounts, profiles, addresses and password reset.
type CustomerHandler struct {
	customerUC      usecase.CustomerUsecase
	passwordResetUC usecase.PasswordResetUsecase
	logger          *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC:      params.CustomerUC,
		passwordResetUC: params.PasswordResetUC,
		logger:          params.Logger,
	}
}

// RegisterRequest is the body of POST /api/customers/register
type RegisterRequest struct {
	Name     string  `json:"name" validate:"required"`
	Phone    string  `json:"phone" validate:"required"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password string  `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /api/customers/login
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest is the body of POST /api/customers/forgot-password
type ForgotPasswordRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// ResetPasswordRequest is the body of POST /api/customers/reset-password
type ResetPasswordRequest struct {
	Phone       string `json:"phone" validate:"required"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// UpdateProfileRequest is the body of PUT /api/customers/profile
type UpdateProfileRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email"`
}

// ChangePasswordRequest is the body of PUT /api/customers/password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// AddressRequest is the body of the address endpoints
type AddressRequest struct {
	AddressType entity.AddressType `json:"addressType" validate:"required,oneof=Home Work Other"`
	Street      string             `json:"street" validate:"required"`
	City        string             `json:"city" validate:"required"`
	Pincode     string             `json:"pincode" validate:"required,pincode"`
}

func (r *AddressRequest) toInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		AddressType: r.AddressType,
		Street:      r.Street,
		City:        r.City,
		Pincode:     r.Pincode,
	}
}

// Register opens a customer account and signs the customer in.
func (h *CustomerHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.customerUC.Register(c.Request().Context(), &usecase.RegisterCustomerInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, output)
}

// Login signs a customer in by phone and password.
func (h *CustomerHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.customerUC.Login(c.Request().Context(), req.Phone, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}

// ForgotPassword always answers with the same message, whether or not the phone exists.
func (h *CustomerHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.passwordResetUC.ForgotPassword(c.Request().Context(), req.Phone)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}

// ResetPassword redeems a reset code.
func (h *CustomerHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.passwordResetUC.ResetPassword(c.Request().Context(), req.Phone, req.Token, req.NewPassword); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, msgPasswordReset)
}

// GetProfile returns the authenticated customer with saved addresses.
func (h *CustomerHandler) GetProfile(c echo.Context) error {
	customerID, err := subject(c)
	if err != nil {
		return err
	}

	customer, err := h.customerUC.GetProfile(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, customer)
}

// UpdateProfile edits name and email.
func (h *CustomerHandler) UpdateProfile(c echo.Context) error {
	customerID, err := subject(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	customer, err := h.customerUC.UpdateProfile(c.Request().Context(), customerID, &usecase.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, customer)
}

// ChangePassword requires the current password.
func (h *CustomerHandler) ChangePassword(c echo.Context) error {
	customerID, err := subject(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.customerUC.ChangePassword(c.Request().Context(), customerID, req.CurrentPassword, req.NewPassword); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, msgPasswordChanged)
}

// AddAddress saves a new address.
func (h *CustomerHandler) AddAddress(c echo.Context) error {
	customerID, err := subject(c)
	if err != nil {
		return err
	}

	var req AddressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	address, err := h.customerUC.AddAddress(c.Request().Context(), customerID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, address)
}

// UpdateAddress edits one of the customer's addresses.
func (h *CustomerHandler) UpdateAddress(c echo.Context) error {
	customerID, err := subject(c)
	if err != nil {
		return err
	}

	addressID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req AddressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	address, err := h.customerUC.UpdateAddress(c.Request().Context(), customerID, addressID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, address)
}

// DeleteAddress removes one of the customer's addresses.
func (h *CustomerHandler) DeleteAddress(c echo.Context) error {
	customerID, err := subject(c)
	if err != nil {
		return err
	}

	addressID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.customerUC.DeleteAddress(c.Request().Context(), customerID, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, msgAddressDeleted)
}
