package listcustomers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tesodev/commerce-backend/internal/service/models/customer"
)

// service is an interface for the service layer.
type service interface {
	List(ctx context.Context) ([]customer.Customer, error)
}

// List handles the list customers request.
func List(w http.ResponseWriter, r *http.Request, service service) {
	customers, err := service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error listing customers", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(customers); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for list customers", "error", err)
	}
}
