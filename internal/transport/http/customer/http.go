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
	"github.com/tesodev/commerce-backend/internal/service/models/customer"
	createcustomer "github.com/tesodev/commerce-backend/internal/transport/http/customer/create_customer"
	deletecustomer "github.com/tesodev/commerce-backend/internal/transport/http/customer/delete_customer"
	getcustomer "github.com/tesodev/commerce-backend/internal/transport/http/customer/get_customer"
	listcustomers "github.com/tesodev/commerce-backend/internal/transport/http/customer/list_customers"
	updatecustomer "github.com/tesodev/commerce-backend/internal/transport/http/customer/update_customer"
	validatecustomer "github.com/tesodev/commerce-backend/internal/transport/http/customer/validate_customer"
	"github.com/tesodev/commerce-backend/pkg/http/middleware/trace"
	"github.com/tesodev/commerce-backend/pkg/logger"
)

type service interface {
	Create(ctx context.Context, c customer.Customer) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, c customer.Customer) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Get(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	List(ctx context.Context) ([]customer.Customer, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
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
	h.router.Route("/customer", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Get("/validate/{customerId}", h.validate)
		r.Get("/{customerId}", h.get)
		r.Put("/{customerId}", h.update)
		r.Delete("/{customerId}", h.delete)
	})
}

func (h *HTTPTransport) create(w http.ResponseWriter, r *http.Request) {
	createcustomer.Create(w, r, h.service)
}

func (h *HTTPTransport) update(w http.ResponseWriter, r *http.Request) {
	updatecustomer.Update(w, r, h.service)
}

func (h *HTTPTransport) delete(w http.ResponseWriter, r *http.Request) {
	deletecustomer.Delete(w, r, h.service)
}

func (h *HTTPTransport) get(w http.ResponseWriter, r *http.Request) {
	getcustomer.Get(w, r, h.service)
}

func (h *HTTPTransport) list(w http.ResponseWriter, r *http.Request) {
	listcustomers.List(w, r, h.service)
}

func (h *HTTPTransport) validate(w http.ResponseWriter, r *http.Request) {
	validatecustomer.Validate(w, r, h.service)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(trace.NewTraceMiddleware("customer-svc"))
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
		Addr:    "0.0.0.0:" + viper.GetString("server.customer.port"),
		Handler: router,
	}
}
