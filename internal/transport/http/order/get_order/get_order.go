package getorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tesodev/commerce-backend/internal/errs"
	"github.com/tesodev/commerce-backend/internal/service/models/order"
)

// service is an interface for the service layer.
type service interface {
	Get(ctx context.Context, id uuid.UUID) (*order.Order, error)
}

// Get handles the get order request.
func Get(w http.ResponseWriter, r *http.Request, service service) {
	orderID, err := uuid.Parse(chi.URLParam(r, "orderId"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error parsing order id for get order", "error", err)

		return
	}

	ord, err := service.Get(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			http.Error(w, errs.ErrOrderNotFound.Error(), http.StatusNotFound)

			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error getting order", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(ord); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for get order", "error", err)
	}
}
