package changestatus

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/schema"
)

// service is an interface for the service layer.
type service interface {
	ChangeStatus(ctx context.Context, id uuid.UUID, status string) (bool, error)
}

type changeStatusRequest struct {
	Status string `schema:"status,required"`
}

// ChangeStatus handles the change status request. Only the status field of
// the order is touched. The response body reports whether an order
// matched.
func ChangeStatus(w http.ResponseWriter, r *http.Request, service service) {
	orderID, err := uuid.Parse(chi.URLParam(r, "orderId"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error parsing order id for change status", "error", err)

		return
	}

	decoder := schema.NewDecoder()
	query := &changeStatusRequest{}
	if err := decoder.Decode(query, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error decoding query for change status", "error", err)

		return
	}

	matched, err := service.ChangeStatus(r.Context(), orderID, query.Status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error changing order status", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(matched); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for change status", "error", err)
	}
}
