package usecase

import "context"

// ForgotPasswordOutput is the same for known and unknown phones.
type ForgotPasswordOutput struct {
	Message string `json:"msg"`

	// ResetCode is only filled outside production when explicitly enabled.
	ResetCode string `json:"resetCode,omitempty"`
}

// PasswordResetUsecase issues and redeems one-time reset codes.
type PasswordResetUsecase interface {
	// ForgotPassword issues a new code for the phone, replacing any earlier one.
	ForgotPassword(ctx context.Context, phone string) (*ForgotPasswordOutput, error)

	// ResetPassword redeems a live code and sets a new password.
	ResetPassword(ctx context.Context, phone, code, newPassword string) error
}
