package usecase

import (
	"context"

	"dabeli/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterCustomerInput represents the data needed to open a customer account.
type RegisterCustomerInput struct {
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Email    *string `json:"email,omitempty"`
	Password string  `json:"password"`
}

// CustomerAuthOutput is returned by register and login.
type CustomerAuthOutput struct {
	Token    string           `json:"token"`
	Customer *entity.Customer `json:"customer"`
}

// UpdateProfileInput carries the editable profile fields.
type UpdateProfileInput struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

// AddressInput carries the fields of a saved address.
type AddressInput struct {
	AddressType entity.AddressType `json:"addressType"`
	Street      string             `json:"street"`
	City        string             `json:"city"`
	Pincode     string             `json:"pincode"`
}

// CustomerUsecase covers customer accounts, profiles and saved addresses.
type CustomerUsecase interface {
	Register(ctx context.Context, input *RegisterCustomerInput) (*CustomerAuthOutput, error)

	// Login never reveals whether the phone exists.
	Login(ctx context.Context, phone, password string) (*CustomerAuthOutput, error)

	GetProfile(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error)
	UpdateProfile(ctx context.Context, customerID uuid.UUID, input *UpdateProfileInput) (*entity.Customer, error)
	ChangePassword(ctx context.Context, customerID uuid.UUID, currentPassword, newPassword string) error

	AddAddress(ctx context.Context, customerID uuid.UUID, input *AddressInput) (*entity.Address, error)
	UpdateAddress(ctx context.Context, customerID, addressID uuid.UUID, input *AddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, customerID, addressID uuid.UUID) error
}
