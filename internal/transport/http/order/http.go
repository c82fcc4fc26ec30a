package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/tesodev/commerce-backend/internal/service/models/order"
	changestatus "github.com/tesodev/commerce-backend/internal/transport/http/order/change_status"
	createorder "github.com/tesodev/commerce-backend/internal/transport/http/order/create_order"
	deleteorder "github.com/tesodev/commerce-backend/internal/transport/http/order/delete_order"
	getorder "github.com/tesodev/commerce-backend/internal/transport/http/order/get_order"
	listorders "github.com/tesodev/commerce-backend/internal/transport/http/order/list_orders"
	updateorder "github.com/tesodev/commerce-backend/internal/transport/http/order/update_order"
	"github.com/tesodev/commerce-backend/pkg/http/middleware/trace"
	"github.com/tesodev/commerce-backend/pkg/logger"
)

type service interface {
	Create(ctx context.Context, o order.Order) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, o order.Order) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Get(ctx context.Context, id uuid.UUID) (*order.Order, error)
	List(ctx context.Context) ([]order.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]order.Order, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, status string) (bool, error)
}

type HTTPTransport struct {
	server  *http.Server
	router  *chi.Mux
	service service
}

func NewHTTPTransport(service service) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:  server,
		router:  router,
		service: service,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/order", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Get("/getByCustomer/{customerId}", h.listByCustomer)
		r.Get("/getByOrder/{orderId}", h.get)
		r.Put("/changeStatus/{orderId}", h.changeStatus)
		r.Put("/{orderId}", h.update)
		r.Delete("/{orderId}", h.delete)
	})
}

func (h *HTTPTransport) create(w http.ResponseWriter, r *http.Request) {
	createorder.Create(w, r, h.service)
}

func (h *HTTPTransport) update(w http.ResponseWriter, r *http.Request) {
	updateorder.Update(w, r, h.service)
}

func (h *HTTPTransport) delete(w http.ResponseWriter, r *http.Request) {
	deleteorder.Delete(w, r, h.service)
}

func (h *HTTPTransport) get(w http.ResponseWriter, r *http.Request) {
	getorder.Get(w, r, h.service)
}

func (h *HTTPTransport) list(w http.ResponseWriter, r *http.Request) {
	listorders.List(w, r, h.service)
}

func (h *HTTPTransport) listByCustomer(w http.ResponseWriter, r *http.Request) {
	listorders.ListByCustomer(w, r, h.service)
}

func (h *HTTPTransport) changeStatus(w http.ResponseWriter, r *http.Request) {
	changestatus.ChangeStatus(w, r, h.service)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(trace.NewTraceMiddleware("order-svc"))
	router.Use(logger.NewLoggerMiddleware(slog.Default()))

	c := cors.New(cors.Options{
		AllowedOrigins: viper.GetStringSlice("server.http.cors.allowed_origins"),
		AllowedMethods: viper.GetStringSlice("server.http.cors.allowed_methods"),
		AllowedHeaders: viper.GetStringSlice("server.http.cors.allowed_headers"),
		MaxAge:         viper.GetInt("server.http.cors.max_age"),
	})
	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.order.port"),
		Handler: router,
	}
}
