package impl

import (
	"context"
	"testing"

	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	mockRepo "dabeli/internal/mocks/repository"
	mockSvc "dabeli/internal/mocks/service"
	"dabeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	customerRepo *mockRepo.MockCustomerRepository
	addressRepo  *mockRepo.MockAddressRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return customerServiceFixtures{
		service: NewCustomerService(CustomerServiceParams{
			CustomerRepo: customerRepo,
			AddressRepo:  addressRepo,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       testLogger(),
		}),
		customerRepo: customerRepo,
		addressRepo:  addressRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestCustomerService_Register_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()
	email := "  Asha@Example.com "

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.customerRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Customer) bool {
			return c.Phone == "9876543210" && c.PasswordHash == "hashed" && *c.Email == "asha@example.com"
		})).
		RunAndReturn(func(_ context.Context, c *entity.Customer) error {
			c.ID = customerID

			return nil
		})
	fx.tokenService.EXPECT().GenerateToken(customerID, entity.RoleCustomer).Return("jwt", nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterCustomerInput{
		Name:     "Asha",
		Phone:    " 9876543210 ",
		Email:    &email,
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt", out.Token)
	assert.Equal(t, customerID, out.Customer.ID)
	assert.NotNil(t, out.Customer.Addresses)
}

func TestCustomerService_Register_ShortPassword(t *testing.T) {
	fx := createTestCustomerService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterCustomerInput{
		Name:     "Asha",
		Phone:    "9876543210",
		Password: "123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCustomerService_Register_DuplicatePhone(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.customerRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrPhoneAlreadyRegistered)

	_, err := fx.service.Register(ctx, &usecase.RegisterCustomerInput{
		Name:     "Asha",
		Phone:    "9876543210",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPhoneAlreadyRegistered)
}

func TestCustomerService_Login(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Phone: "9876543210", PasswordHash: "hashed"}

	t.Run("success", func(t *testing.T) {
		fx := createTestCustomerService(t)
		ctx := context.Background()

		fx.customerRepo.EXPECT().FindByPhone(ctx, "9876543210").Return(customer, nil)
		fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
		fx.tokenService.EXPECT().GenerateToken(customer.ID, entity.RoleCustomer).Return("jwt", nil)

		out, err := fx.service.Login(ctx, "9876543210", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "jwt", out.Token)
	})

	t.Run("unknown phone", func(t *testing.T) {
		fx := createTestCustomerService(t)
		ctx := context.Background()

		fx.customerRepo.EXPECT().FindByPhone(ctx, "0000000000").Return(nil, domainerrors.ErrCustomerNotFound)

		_, err := fx.service.Login(ctx, "0000000000", "secret1")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestCustomerService(t)
		ctx := context.Background()

		fx.customerRepo.EXPECT().FindByPhone(ctx, "9876543210").Return(customer, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.Login(ctx, "9876543210", "nope")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestCustomerService_UpdateProfile_ClearsBlankEmail(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	customerID := uuid.New()
	old := "old@example.com"
	blank := "   "

	fx.customerRepo.EXPECT().
		FindByID(ctx, customerID).
		Return(&entity.Customer{ID: customerID, Name: "Asha", Phone: "9876543210", Email: &old}, nil)
	fx.customerRepo.EXPECT().
		UpdateProfile(ctx, mock.MatchedBy(func(c *entity.Customer) bool {
			return c.Name == "Asha" && c.Email == nil
		})).
		Return(nil)

	customer, err := fx.service.UpdateProfile(ctx, customerID, &usecase.UpdateProfileInput{Email: &blank})
	require.NoError(t, err)
	assert.Nil(t, customer.Email)
}

func TestCustomerService_ChangePassword(t *testing.T) {
	customerID := uuid.New()
	customer := &entity.Customer{ID: customerID, PasswordHash: "hashed"}

	t.Run("wrong current password", func(t *testing.T) {
		fx := createTestCustomerService(t)
		ctx := context.Background()

		fx.customerRepo.EXPECT().FindByID(ctx, customerID).Return(customer, nil)
		fx.hasher.EXPECT().Check("bad", "hashed").Return(false)

		err := fx.service.ChangePassword(ctx, customerID, "bad", "newsecret")
		assert.ErrorIs(t, err, domainerrors.ErrCurrentPasswordMismatch)
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestCustomerService(t)
		ctx := context.Background()

		fx.customerRepo.EXPECT().FindByID(ctx, customerID).Return(customer, nil)
		fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
		fx.hasher.EXPECT().Hash("newsecret").Return("rehashed", nil)
		fx.customerRepo.EXPECT().UpdatePassword(ctx, customerID, "rehashed").Return(nil)

		require.NoError(t, fx.service.ChangePassword(ctx, customerID, "secret1", "newsecret"))
	})
}

func TestCustomerService_AddAddress_InvalidPincode(t *testing.T) {
	fx := createTestCustomerService(t)

	_, err := fx.service.AddAddress(context.Background(), uuid.New(), &usecase.AddressInput{
		AddressType: entity.AddressTypeHome,
		Street:      "12 MG Road",
		City:        "Pune",
		Pincode:     "011001",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCustomerService_UpdateAddress_Ownership(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	addressID := uuid.New()
	fx.addressRepo.EXPECT().
		FindAddressByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, CustomerID: uuid.New()}, nil)

	_, err := fx.service.UpdateAddress(ctx, uuid.New(), addressID, &usecase.AddressInput{
		AddressType: entity.AddressTypeWork,
		Street:      "1 FC Road",
		City:        "Pune",
		Pincode:     "411004",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAddressOwnershipViolation)
}

func TestCustomerService_DeleteAddress(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	customerID := uuid.New()
	addressID := uuid.New()
	fx.addressRepo.EXPECT().
		FindAddressByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, CustomerID: customerID}, nil)
	fx.addressRepo.EXPECT().DeleteAddress(ctx, addressID).Return(nil)

	require.NoError(t, fx.service.DeleteAddress(ctx, customerID, addressID))
}
