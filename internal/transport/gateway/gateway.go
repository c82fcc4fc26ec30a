package gateway

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/viper"
	"github.com/tesodev/commerce-backend/internal/errs"
	"github.com/tesodev/commerce-backend/pkg/http/middleware/trace"
	"github.com/tesodev/commerce-backend/pkg/logger"
)

// Routes is the static routing table mapping a service name to its
// backend base URL.
type Routes map[string]string

// MustLoadRoutes reads the routing table from configuration.
func MustLoadRoutes() Routes {
	routes := viper.GetStringMapString("gateway.services")
	if len(routes) == 0 {
		panic("gateway.services is not set in config")
	}

	for service, base := range routes {
		routes[service] = strings.TrimSuffix(base, "/")
	}

	return routes
}

// HTTPTransport is the reverse-proxy gateway transport. It is stateless
// between requests; every inbound request results in at most one outbound
// call.
type HTTPTransport struct {
	server *http.Server
	router *chi.Mux
	routes Routes
	client *http.Client
}

func NewHTTPTransport(routes Routes) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server: server,
		router: router,
		routes: routes,
		// Zero timeout: a forwarded call may block indefinitely.
		client: &http.Client{Timeout: 0},
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the catch-all proxy route for all methods.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.HandleFunc("/*", h.proxy)
}

// proxy forwards the request to the backend selected by the first path
// segment, mirroring method, query, headers and raw body both ways.
func (h *HTTPTransport) proxy(w http.ResponseWriter, r *http.Request) {
	service, rest := splitServicePath(r.URL.Path)

	base, ok := h.routes[service]
	if !ok {
		http.Error(w, errs.ErrServiceNotFound.Error(), http.StatusNotFound)

		return
	}

	url := base + "/" + service + rest
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	outbound, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error building outbound request", "url", url, "error", err)

		return
	}
	outbound.Header = r.Header.Clone()

	response, err := h.client.Do(outbound)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error forwarding request", "url", url, "error", err)

		return
	}
	defer response.Body.Close()

	for key, values := range response.Header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	w.WriteHeader(response.StatusCode)

	if _, err := io.Copy(w, response.Body); err != nil {
		slog.Error("Error copying response body", "url", url, "error", err)
	}
}

// splitServicePath splits "/customer/validate/42" into "customer" and
// "/validate/42".
func splitServicePath(path string) (string, string) {
	trimmed := strings.TrimPrefix(path, "/")
	service, rest, found := strings.Cut(trimmed, "/")
	if !found {
		return service, ""
	}

	return service, "/" + rest
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(trace.NewTraceMiddleware("gateway"))
	router.Use(logger.NewLoggerMiddleware(slog.Default()))

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.gateway.port"),
		Handler: router,
	}
}
