package postgres

import (
	"context"

	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/repository"
	"dabeli/internal/infra/persistence/model"
	"dabeli/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	q *query.Query
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		q: query.Use(db),
	}
}

// Create persists a new customer.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.q.CustomerModel.WithContext(ctx).Create(customerM); err != nil {
		return customerWriteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt
	if customer.Addresses == nil {
		customer.Addresses = []*entity.Address{}
	}

	return nil
}

// FindByID loads a customer with saved addresses, oldest address first.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	c := repo.q.CustomerModel

	customerM, err := c.WithContext(ctx).
		Preload(c.Addresses.Order(repo.q.AddressModel.CreatedAt)).
		Where(c.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(customerM), nil
}

// FindByPhone loads a customer by phone number.
func (repo *customerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	customerM, err := repo.q.CustomerModel.WithContext(ctx).
		Where(repo.q.CustomerModel.Phone.Eq(phone)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by phone")
	}

	return toCustomerDomain(customerM), nil
}

// UpdateProfile writes name and email.
func (repo *customerRepository) UpdateProfile(ctx context.Context, customer *entity.Customer) error {
	result, err := repo.q.CustomerModel.WithContext(ctx).
		Where(repo.q.CustomerModel.ID.Eq(customer.ID)).
		Updates(map[string]any{
			"name":  customer.Name,
			"email": customer.Email,
		})

	if err != nil {
		return customerWriteError(err, "failed to update customer profile")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrCustomerNotFound
	}

	return nil
}

// UpdatePassword replaces the stored password hash.
func (repo *customerRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result, err := repo.q.CustomerModel.WithContext(ctx).
		Where(repo.q.CustomerModel.ID.Eq(id)).
		Update(repo.q.CustomerModel.PasswordHash, passwordHash)

	if err != nil {
		return errors.Wrap(err, "failed to update customer password")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrCustomerNotFound
	}

	return nil
}

// customerWriteError maps the unique indexes on phone and email to their domain errors.
func customerWriteError(err error, details string) error {
	if constraint, ok := isUniqueConstraintViolation(err); ok {
		if constraint == model.CustomerEmailIndex {
			return domainerrors.ErrEmailAlreadyRegistered
		}

		return domainerrors.ErrPhoneAlreadyRegistered
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails("missing required customer information")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// Create persists a new admin account.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminM := &model.AdminModel{
		ID:           admin.ID,
		Username:     admin.Username,
		PasswordHash: admin.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if _, ok := isUniqueConstraintViolation(err); ok {
			return domainerrors.ErrAdminAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

// FindByUsername retrieves an admin by login name.
func (repo *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var adminM model.AdminModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find admin by username")
	}

	return &entity.Admin{
		ID:           adminM.ID,
		Username:     adminM.Username,
		PasswordHash: adminM.PasswordHash,
		CreatedAt:    adminM.CreatedAt,
		UpdatedAt:    adminM.UpdatedAt,
	}, nil
}

// --- Mapper Functions ---

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	addresses := make([]*entity.Address, 0, len(data.Addresses))
	for _, addressM := range data.Addresses {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return &entity.Customer{
		ID:           data.ID,
		Name:         data.Name,
		Phone:        data.Phone,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Addresses:    addresses,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:           data.ID,
		Name:         data.Name,
		Phone:        data.Phone,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
