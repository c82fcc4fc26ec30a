package listorders

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tesodev/commerce-backend/internal/service/models/order"
)

// service is an interface for the service layer.
type service interface {
	List(ctx context.Context) ([]order.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]order.Order, error)
}

// List handles the list orders request.
func List(w http.ResponseWriter, r *http.Request, service service) {
	orders, err := service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error listing orders", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(orders); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for list orders", "error", err)
	}
}

// ListByCustomer handles the list orders by customer request.
func ListByCustomer(w http.ResponseWriter, r *http.Request, service service) {
	customerID, err := uuid.Parse(chi.URLParam(r, "customerId"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error parsing customer id for list orders", "error", err)

		return
	}

	orders, err := service.ListByCustomer(r.Context(), customerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error listing orders by customer", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(orders); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for list orders by customer", "error", err)
	}
}
