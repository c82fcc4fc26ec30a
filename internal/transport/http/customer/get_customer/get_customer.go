package getcustomer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tesodev/commerce-backend/internal/errs"
	"github.com/tesodev/commerce-backend/internal/service/models/customer"
)

// service is an interface for the service layer.
type service interface {
	Get(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
}

// Get handles the get customer request.
func Get(w http.ResponseWriter, r *http.Request, service service) {
	customerID, err := uuid.Parse(chi.URLParam(r, "customerId"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error parsing customer id for get customer", "error", err)

		return
	}

	c, err := service.Get(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, errs.ErrCustomerNotFound) {
			http.Error(w, errs.ErrCustomerNotFound.Error(), http.StatusNotFound)

			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error getting customer", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(c); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for get customer", "error", err)
	}
}
