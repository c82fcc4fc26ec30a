package updatecustomer

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tesodev/commerce-backend/internal/errs"
	"github.com/tesodev/commerce-backend/internal/service/models/customer"
	createcustomer "github.com/tesodev/commerce-backend/internal/transport/http/customer/create_customer"
)

// service is an interface for the service layer.
type service interface {
	Update(ctx context.Context, id uuid.UUID, c customer.Customer) (bool, error)
}

// Update handles the update customer request. An unknown id is a 404.
func Update(w http.ResponseWriter, r *http.Request, service service) {
	customerID, err := uuid.Parse(chi.URLParam(r, "customerId"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error parsing customer id for update customer", "error", err)

		return
	}

	req := createcustomer.CustomerRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for update customer", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error validating request body for update customer", "error", err)

		return
	}

	matched, err := service.Update(r.Context(), customerID, *req.ToModel())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error updating customer", "error", err)

		return
	}

	if !matched {
		http.Error(w, errs.ErrCustomerNotFound.Error(), http.StatusNotFound)

		return
	}

	if err := json.NewEncoder(w).Encode(true); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for update customer", "error", err)
	}
}
