package createcustomer

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/tesodev/commerce-backend/internal/service/models/customer"
)

// service is an interface for the service layer.
type service interface {
	Create(ctx context.Context, c customer.Customer) (uuid.UUID, error)
}

// addressInCustomerRequest represents the embedded address of a customer request.
type addressInCustomerRequest struct {
	AddressLine string `json:"addressLine"`
	City        string `json:"city"     validate:"required"`
	Country     string `json:"country"  validate:"required"`
	CityCode    int    `json:"cityCode" validate:"gt=0"`
}

// CustomerRequest represents the customer payload of create and update requests.
type CustomerRequest struct {
	Name    string                   `json:"name"    validate:"required"`
	Email   string                   `json:"email"   validate:"required,email"`
	Address addressInCustomerRequest `json:"address" validate:"required"`
}

// Validate validates the customer request.
func (r *CustomerRequest) Validate() error {
	return validator.New().Struct(r)
}

// ToModel converts CustomerRequest to customer.Customer.
func (r *CustomerRequest) ToModel() *customer.Customer {
	return &customer.Customer{
		Name:    r.Name,
		Email:   r.Email,
		Address: customer.Address(r.Address),
	}
}

// Create handles the create customer request.
func Create(w http.ResponseWriter, r *http.Request, service service) {
	req := CustomerRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for create customer", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error validating request body for create customer", "error", err)

		return
	}

	id, err := service.Create(r.Context(), *req.ToModel())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error creating customer", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for create customer", "error", err)
	}
}
