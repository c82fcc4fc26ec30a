package deleteorder

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
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Delete handles the delete order request. The response body reports
// whether an order was removed.
func Delete(w http.ResponseWriter, r *http.Request, service service) {
	orderID, err := uuid.Parse(chi.URLParam(r, "orderId"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error parsing order id for delete order", "error", err)

		return
	}

	deleted, err := service.Delete(r.Context(), orderID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error deleting order", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(deleted); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for delete order", "error", err)
	}
}
