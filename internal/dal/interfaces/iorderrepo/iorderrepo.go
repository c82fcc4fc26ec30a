package iorderrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/tesodev/commerce-backend/internal/service/models/order"
)

// IOrderRepository is an interface for the order document repository.
type IOrderRepository interface {
	Insert(ctx context.Context, o order.Order) error
	Update(ctx context.Context, id uuid.UUID, o order.Order) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Get(ctx context.Context, id uuid.UUID) (*order.Order, error)
	List(ctx context.Context) ([]order.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]order.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (bool, error)
}
