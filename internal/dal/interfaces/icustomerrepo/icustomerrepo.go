package icustomerrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/tesodev/commerce-backend/internal/service/models/customer"
)

// ICustomerRepository is an interface for the customer document repository.
type ICustomerRepository interface {
	Insert(ctx context.Context, c customer.Customer) error
	Update(ctx context.Context, id uuid.UUID, c customer.Customer) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Get(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	List(ctx context.Context) ([]customer.Customer, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	GetAddress(ctx context.Context, id uuid.UUID) (*customer.Address, error)
}
