package audit

import (
	"time"

	"github.com/tesodev/commerce-backend/internal/service/models/customer"
	"github.com/tesodev/commerce-backend/internal/service/models/order"
)

// Product mirrors order.Product with the id in canonical text form.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// Event is the audit payload published for every created order.
//
// The queue transport only carries text-safe JSON, so every opaque
// identifier is encoded as canonical UUID text and every timestamp as
// RFC 3339.
type Event struct {
	ID         string           `json:"id"`
	CustomerID string           `json:"customerId"`
	Quantity   int              `json:"quantity"`
	Price      float64          `json:"price"`
	Status     string           `json:"status"`
	Address    customer.Address `json:"address"`
	Product    Product          `json:"product"`
	CreatedAt  string           `json:"createdAt"`
	UpdatedAt  string           `json:"updatedAt"`
}

// EventFromOrder converts an order into its interchange-safe audit form.
func EventFromOrder(o order.Order) Event {
	return Event{
		ID:         o.ID.String(),
		CustomerID: o.CustomerID.String(),
		Quantity:   o.Quantity,
		Price:      o.Price,
		Status:     o.Status,
		Address:    o.Address,
		Product: Product{
			ID:       o.Product.ID.String(),
			Name:     o.Product.Name,
			ImageURL: o.Product.ImageURL,
		},
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}
