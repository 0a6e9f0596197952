package impl

import (
	"context"

	"dabeli/internal/domain/entity"
	"dabeli/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// customerContact is the name, phone and email a signed-in customer registered with.
type customerContact struct {
	Name  string
	Phone string
	Email string
}

// loadCustomerContact reads the stored contact details of customerID. It is
// used when an order or catering request leaves them out.
func loadCustomerContact(ctx context.Context, customerRepo repository.CustomerRepository, customerID uuid.UUID) (*customerContact, error) {
	customer, err := customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load customer contact details")
	}

	return contactOf(customer), nil
}

func contactOf(customer *entity.Customer) *customerContact {
	contact := &customerContact{
		Name:  customer.Name,
		Phone: customer.Phone,
	}
	if customer.Email != nil {
		contact.Email = *customer.Email
	}

	return contact
}

func fillIfBlank(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}
