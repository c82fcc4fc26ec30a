package ordersvc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tesodev/commerce-backend/internal/dal/interfaces/iauditpublisher"
	"github.com/tesodev/commerce-backend/internal/dal/interfaces/icustomerrepo"
	"github.com/tesodev/commerce-backend/internal/dal/interfaces/iorderrepo"
	"github.com/tesodev/commerce-backend/internal/service/models/audit"
	"github.com/tesodev/commerce-backend/internal/service/models/order"
	"go.opentelemetry.io/otel"
)

// OrderService is a service for managing orders.
//
// Order creation is best-effort across the store and the queue: the order
// is persisted first, then the audit event is published. A publish failure
// fails the call but does not roll back the insert.
type OrderService struct {
	orderRepo      iorderrepo.IOrderRepository
	customerRepo   icustomerrepo.ICustomerRepository
	auditPublisher iauditpublisher.IAuditPublisher
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithOrderRepository sets the order repository for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderRepository(orderRepo iorderrepo.IOrderRepository) option {
	return func(s *OrderService) {
		s.orderRepo = orderRepo
	}
}

// WithCustomerRepository sets the customer repository for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithCustomerRepository(customerRepo icustomerrepo.ICustomerRepository) option {
	return func(s *OrderService) {
		s.customerRepo = customerRepo
	}
}

// WithAuditPublisher sets the audit publisher for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithAuditPublisher(auditPublisher iauditpublisher.IAuditPublisher) option {
	return func(s *OrderService) {
		s.auditPublisher = auditPublisher
	}
}

// Create validates that the owning customer exists, snapshots the
// customer's address into the order, persists it and publishes an audit
// event. Returns the id of the new order.
//
// The existence check and the insert are not atomic: a customer deleted in
// between still ends up referenced by the order. Accepted behavior.
func (s *OrderService) Create(ctx context.Context, o order.Order) (uuid.UUID, error) {
	ctx, span := otel.Tracer("ordersvc").Start(ctx, "OrderService.Create")
	defer span.End()

	address, err := s.customerRepo.GetAddress(ctx, o.CustomerID)
	if err != nil {
		return uuid.Nil, err
	}

	now := time.Now().UTC()
	o.ID = uuid.New()
	o.Address = *address
	o.CreatedAt = now
	o.UpdatedAt = now

	if err := s.orderRepo.Insert(ctx, o); err != nil {
		return uuid.Nil, err
	}

	if err := s.auditPublisher.PublishOrderCreated(ctx, audit.EventFromOrder(o)); err != nil {
		return uuid.Nil, err
	}

	return o.ID, nil
}

// Update replaces all mutable fields of an order and refreshes the update
// timestamp. Reports whether an order matched. The customer reference is
// not re-validated and the address snapshot is not refreshed.
func (s *OrderService) Update(ctx context.Context, id uuid.UUID, o order.Order) (bool, error) {
	ctx, span := otel.Tracer("ordersvc").Start(ctx, "OrderService.Update")
	defer span.End()

	o.UpdatedAt = time.Now().UTC()

	return s.orderRepo.Update(ctx, id, o)
}

// Delete removes an order by id. Reports whether an order was removed.
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	ctx, span := otel.Tracer("ordersvc").Start(ctx, "OrderService.Delete")
	defer span.End()

	return s.orderRepo.Delete(ctx, id)
}

// Get retrieves a single order by id.
func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	ctx, span := otel.Tracer("ordersvc").Start(ctx, "OrderService.Get")
	defer span.End()

	return s.orderRepo.Get(ctx, id)
}

// List retrieves all orders.
func (s *OrderService) List(ctx context.Context) ([]order.Order, error) {
	ctx, span := otel.Tracer("ordersvc").Start(ctx, "OrderService.List")
	defer span.End()

	return s.orderRepo.List(ctx)
}

// ListByCustomer retrieves all orders owned by the given customer.
func (s *OrderService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]order.Order, error) {
	ctx, span := otel.Tracer("ordersvc").Start(ctx, "OrderService.ListByCustomer")
	defer span.End()

	return s.orderRepo.ListByCustomer(ctx, customerID)
}

// ChangeStatus sets only the status field of an order. The update
// timestamp is left as is, mirroring the partial update the store
// performs. Reports whether an order matched.
func (s *OrderService) ChangeStatus(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	ctx, span := otel.Tracer("ordersvc").Start(ctx, "OrderService.ChangeStatus")
	defer span.End()

	return s.orderRepo.UpdateStatus(ctx, id, status)
}
