package customer

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tesodev/commerce-backend/internal/dal/mongodb"
	customerrepo "github.com/tesodev/commerce-backend/internal/dal/repositories/customer/mongodb"
	"github.com/tesodev/commerce-backend/internal/otel"
	"github.com/tesodev/commerce-backend/internal/service/services/customersvc"
	httptransport "github.com/tesodev/commerce-backend/internal/transport/http/customer"
)

// App represents the customer service application.
type App struct {
	customerSvc    *customersvc.CustomerService
	transport      *httptransport.HTTPTransport
	mongoClient    *mongodb.Client
	otelController *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	otelController := otel.MustInitOtel("customer-svc")
	mongoClient := mongodb.MustNewClient()

	customerRepository := customerrepo.NewMongoCustomerRepository(mongoClient)

	customerSvc := customersvc.MustNewCustomerService(
		customersvc.WithCustomerRepository(customerRepository),
	)

	transport := httptransport.NewHTTPTransport(customerSvc)
	transport.RegisterRoutes()

	return &App{
		customerSvc:    customerSvc,
		transport:      transport,
		mongoClient:    mongoClient,
		otelController: otelController,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	if err := a.mongoClient.Close(ctx); err != nil {
		slog.Error("Store connection close error", "error", err)
	} else {
		slog.Info("Store connection closed gracefully")
	}

	if err := a.otelController.Shutdown(); err != nil {
		slog.Error("Otel trace provider close error", "error", err)
	}

	slog.Info("Application shutdown complete")
}
