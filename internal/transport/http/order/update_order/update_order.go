package updateorder

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tesodev/commerce-backend/internal/service/models/order"
	createorder "github.com/tesodev/commerce-backend/internal/transport/http/order/create_order"
)

// service is an interface for the service layer.
type service interface {
	Update(ctx context.Context, id uuid.UUID, o order.Order) (bool, error)
}

// Update handles the update order request. The response body reports
// whether an order matched the given id.
func Update(w http.ResponseWriter, r *http.Request, service service) {
	orderID, err := uuid.Parse(chi.URLParam(r, "orderId"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error parsing order id for update order", "error", err)

		return
	}

	req := createorder.OrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for update order", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error validating request body for update order", "error", err)

		return
	}

	model, err := req.ToModel()
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error converting update order request to model", "error", err)

		return
	}

	matched, err := service.Update(r.Context(), orderID, *model)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error updating order", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(matched); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for update order", "error", err)
	}
}
