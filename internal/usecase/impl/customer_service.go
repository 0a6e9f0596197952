package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "dabeli/internal/delivery/context"
	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/repository"
	"dabeli/internal/domain/service"
	"dabeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	addressRepo  repository.AddressRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	AddressRepo  repository.AddressRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		addressRepo:  params.AddressRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register opens a customer account and signs the customer in.
func (srv *customerService) Register(ctx context.Context, input *usecase.RegisterCustomerInput) (*usecase.CustomerAuthOutput, error) {
	customer := &entity.Customer{
		Name:      strings.TrimSpace(input.Name),
		Phone:     strings.TrimSpace(input.Phone),
		Email:     entity.NormalizeEmail(input.Email),
		Addresses: []*entity.Address{},
	}

	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if err := entity.ValidatePassword("password", input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	customer.PasswordHash = hash

	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		srv.log(ctx).Warn("Customer registration failed", slog.String("phone", customer.Phone), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create customer")
	}

	token, err := srv.tokenService.GenerateToken(customer.ID, entity.RoleCustomer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Info("Customer registered", slog.String("customer_id", customer.ID.String()))

	return &usecase.CustomerAuthOutput{Token: token, Customer: customer}, nil
}

// Login verifies phone and password. Unknown phones and wrong passwords look the same.
func (srv *customerService) Login(ctx context.Context, phone, password string) (*usecase.CustomerAuthOutput, error) {
	phone = strings.TrimSpace(phone)

	customer, err := srv.customerRepo.FindByPhone(ctx, phone)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("phone", phone), slog.Any("error", err))

		if errors.Is(err, domainerrors.ErrCustomerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load customer for login")
	}

	if !srv.hasher.Check(password, customer.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("phone", phone), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.GenerateToken(customer.ID, entity.RoleCustomer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Debug("Customer logged in", slog.String("customer_id", customer.ID.String()))

	return &usecase.CustomerAuthOutput{Token: token, Customer: customer}, nil
}

func (srv *customerService) GetProfile(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get customer profile")
	}

	return customer, nil
}

// UpdateProfile changes name and email. A blank name keeps the current one; a blank email clears it.
func (srv *customerService) UpdateProfile(ctx context.Context, customerID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load customer profile")
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		customer.Name = name
	}
	if input.Email != nil {
		customer.Email = entity.NormalizeEmail(input.Email)
	}

	if err := customer.Validate(); err != nil {
		return nil, err
	}

	if err := srv.customerRepo.UpdateProfile(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to update customer profile")
	}

	return customer, nil
}

func (srv *customerService) ChangePassword(ctx context.Context, customerID uuid.UUID, currentPassword, newPassword string) error {
	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return errors.Wrap(err, "failed to load customer for password change")
	}

	if !srv.hasher.Check(currentPassword, customer.PasswordHash) {
		return domainerrors.ErrCurrentPasswordMismatch
	}
	if err := entity.ValidatePassword("newPassword", newPassword); err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	if err := srv.customerRepo.UpdatePassword(ctx, customerID, hash); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Customer password changed", slog.String("customer_id", customerID.String()))

	return nil
}

func (srv *customerService) AddAddress(ctx context.Context, customerID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	address := &entity.Address{CustomerID: customerID}
	applyAddressInput(address, input)

	if err := address.Validate(); err != nil {
		return nil, err
	}

	if err := srv.addressRepo.CreateAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	return address, nil
}

func (srv *customerService) UpdateAddress(ctx context.Context, customerID, addressID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	address, err := srv.ownedAddress(ctx, customerID, addressID)
	if err != nil {
		return nil, err
	}

	applyAddressInput(address, input)
	if err := address.Validate(); err != nil {
		return nil, err
	}

	if err := srv.addressRepo.UpdateAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	return address, nil
}

func (srv *customerService) DeleteAddress(ctx context.Context, customerID, addressID uuid.UUID) error {
	if _, err := srv.ownedAddress(ctx, customerID, addressID); err != nil {
		return err
	}

	if err := srv.addressRepo.DeleteAddress(ctx, addressID); err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}

func (srv *customerService) ownedAddress(ctx context.Context, customerID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := srv.addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find address")
	}

	if address.CustomerID != customerID {
		srv.log(ctx).Warn("Address ownership violation",
			slog.String("customer_id", customerID.String()),
			slog.String("address_id", addressID.String()),
		)

		return nil, domainerrors.ErrAddressOwnershipViolation
	}

	return address, nil
}

func applyAddressInput(address *entity.Address, input *usecase.AddressInput) {
	address.AddressType = input.AddressType
	address.Street = strings.TrimSpace(input.Street)
	address.City = strings.TrimSpace(input.City)
	address.Pincode = strings.TrimSpace(input.Pincode)
}
