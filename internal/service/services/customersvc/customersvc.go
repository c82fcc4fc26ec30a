package customersvc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tesodev/commerce-backend/internal/dal/interfaces/icustomerrepo"
	"github.com/tesodev/commerce-backend/internal/service/models/customer"
	"go.opentelemetry.io/otel"
)

// CustomerService is a service for managing customers.
type CustomerService struct {
	customerRepo icustomerrepo.ICustomerRepository
}

// option is a function that configures the CustomerService.
type option func(*CustomerService)

// MustNewCustomerService creates a new CustomerService.
func MustNewCustomerService(opts ...option) *CustomerService {
	s := &CustomerService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithCustomerRepository sets the customer repository for the CustomerService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithCustomerRepository(customerRepo icustomerrepo.ICustomerRepository) option {
	return func(s *CustomerService) {
		s.customerRepo = customerRepo
	}
}

// Create assigns a new id, stamps both timestamps and persists the
// customer. Returns the id of the new customer.
func (s *CustomerService) Create(ctx context.Context, c customer.Customer) (uuid.UUID, error) {
	ctx, span := otel.Tracer("customersvc").Start(ctx, "CustomerService.Create")
	defer span.End()

	now := time.Now().UTC()
	c.ID = uuid.New()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.customerRepo.Insert(ctx, c); err != nil {
		return uuid.Nil, err
	}

	return c.ID, nil
}

// Update replaces the mutable fields of a customer and refreshes the
// update timestamp. Reports whether a customer matched. The id is never
// changed.
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, c customer.Customer) (bool, error) {
	ctx, span := otel.Tracer("customersvc").Start(ctx, "CustomerService.Update")
	defer span.End()

	c.UpdatedAt = time.Now().UTC()

	return s.customerRepo.Update(ctx, id, c)
}

// Delete removes a customer by id. Reports whether a customer was removed.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	ctx, span := otel.Tracer("customersvc").Start(ctx, "CustomerService.Delete")
	defer span.End()

	return s.customerRepo.Delete(ctx, id)
}

// Get retrieves a single customer by id.
func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	ctx, span := otel.Tracer("customersvc").Start(ctx, "CustomerService.Get")
	defer span.End()

	return s.customerRepo.Get(ctx, id)
}

// List retrieves all customers.
func (s *CustomerService) List(ctx context.Context) ([]customer.Customer, error) {
	ctx, span := otel.Tracer("customersvc").Start(ctx, "CustomerService.List")
	defer span.End()

	return s.customerRepo.List(ctx)
}

// Exists reports whether a customer with the given id is stored.
func (s *CustomerService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ctx, span := otel.Tracer("customersvc").Start(ctx, "CustomerService.Exists")
	defer span.End()

	return s.customerRepo.Exists(ctx, id)
}
