package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/tesodev/commerce-backend/internal/service/models/customer"
)

// Product represents the product embedded in an order.
type Product struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"imageUrl"`
}

// Order represents an order in the system.
//
// Address is a snapshot of the owning customer's address taken at creation
// time; later customer updates do not touch it.
type Order struct {
	ID         uuid.UUID        `json:"id"`
	CustomerID uuid.UUID        `json:"customerId"`
	Quantity   int              `json:"quantity"`
	Price      float64          `json:"price"`
	Status     string           `json:"status"`
	Address    customer.Address `json:"address"`
	Product    Product          `json:"product"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}
