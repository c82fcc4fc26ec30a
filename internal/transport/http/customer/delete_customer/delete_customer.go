package deletecustomer

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tesodev/commerce-backend/internal/errs"
)

// service is an interface for the service layer.
type service interface {
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Delete handles the delete customer request. An unknown id is a 404.
func Delete(w http.ResponseWriter, r *http.Request, service service) {
	customerID, err := uuid.Parse(chi.URLParam(r, "customerId"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error parsing customer id for delete customer", "error", err)

		return
	}

	deleted, err := service.Delete(r.Context(), customerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error deleting customer", "error", err)

		return
	}

	if !deleted {
		http.Error(w, errs.ErrCustomerNotFound.Error(), http.StatusNotFound)

		return
	}

	if err := json.NewEncoder(w).Encode(true); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for delete customer", "error", err)
	}
}
