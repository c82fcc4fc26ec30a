package createorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/tesodev/commerce-backend/internal/errs"
	"github.com/tesodev/commerce-backend/internal/service/models/order"
)

// service is an interface for the service layer.
type service interface {
	Create(ctx context.Context, o order.Order) (uuid.UUID, error)
}

// productInOrderRequest represents the product embedded in an order request.
type productInOrderRequest struct {
	ID       string `json:"id"       validate:"required,uuid"`
	Name     string `json:"name"     validate:"required"`
	ImageURL string `json:"imageUrl"`
}

// OrderRequest represents the order payload of create and update requests.
type OrderRequest struct {
	CustomerID string                `json:"customerId" validate:"required,uuid"`
	Quantity   int                   `json:"quantity"   validate:"gt=0"`
	Price      float64               `json:"price"      validate:"gte=0"`
	Status     string                `json:"status"     validate:"required"`
	Product    productInOrderRequest `json:"product"    validate:"required"`
}

// Validate validates the order request.
func (r *OrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// ToModel converts OrderRequest to order.Order.
func (r *OrderRequest) ToModel() (*order.Order, error) {
	customerID, err := uuid.Parse(r.CustomerID)
	if err != nil {
		return nil, err
	}
	productID, err := uuid.Parse(r.Product.ID)
	if err != nil {
		return nil, err
	}

	return &order.Order{
		CustomerID: customerID,
		Quantity:   r.Quantity,
		Price:      r.Price,
		Status:     r.Status,
		Product: order.Product{
			ID:       productID,
			Name:     r.Product.Name,
			ImageURL: r.Product.ImageURL,
		},
	}, nil
}

// Create handles the create order request.
func Create(w http.ResponseWriter, r *http.Request, service service) {
	req := OrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error validating request body for create order", "error", err)

		return
	}

	model, err := req.ToModel()
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error converting create order request to model", "error", err)

		return
	}

	id, err := service.Create(r.Context(), *model)
	if err != nil {
		if errors.Is(err, errs.ErrCustomerNotFound) {
			http.Error(w, errs.ErrCustomerNotFound.Error(), http.StatusNotFound)

			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error creating order", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for create order", "error", err)
	}
}
