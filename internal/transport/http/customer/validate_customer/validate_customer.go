package validatecustomer

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// service is an interface for the service layer.
type service interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Validate handles the existence-check request. The response body is a
// plain boolean.
func Validate(w http.ResponseWriter, r *http.Request, service service) {
	customerID, err := uuid.Parse(chi.URLParam(r, "customerId"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error parsing customer id for validate customer", "error", err)

		return
	}

	exists, err := service.Exists(r.Context(), customerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error validating customer", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(exists); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for validate customer", "error", err)
	}
}
