package order

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tesodev/commerce-backend/internal/dal/mongodb"
	"github.com/tesodev/commerce-backend/internal/dal/rabbitmq"
	auditrepo "github.com/tesodev/commerce-backend/internal/dal/repositories/audit"
	customerrepo "github.com/tesodev/commerce-backend/internal/dal/repositories/customer/mongodb"
	orderrepo "github.com/tesodev/commerce-backend/internal/dal/repositories/order/mongodb"
	"github.com/tesodev/commerce-backend/internal/otel"
	"github.com/tesodev/commerce-backend/internal/service/services/ordersvc"
	httptransport "github.com/tesodev/commerce-backend/internal/transport/http/order"
)

// App represents the order service application.
type App struct {
	orderSvc       *ordersvc.OrderService
	transport      *httptransport.HTTPTransport
	mongoClient    *mongodb.Client
	rabbitMqClient *rabbitmq.Client
	otelController *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	otelController := otel.MustInitOtel("order-svc")
	mongoClient := mongodb.MustNewClient()
	rabbitMqClient := rabbitmq.MustNewClient()

	orderRepository := orderrepo.NewMongoOrderRepository(mongoClient)
	customerRepository := customerrepo.NewMongoCustomerRepository(mongoClient)
	auditPublisher := auditrepo.NewAuditRabbitMQRepository(rabbitMqClient)

	orderSvc := ordersvc.MustNewOrderService(
		ordersvc.WithOrderRepository(orderRepository),
		ordersvc.WithCustomerRepository(customerRepository),
		ordersvc.WithAuditPublisher(auditPublisher),
	)

	transport := httptransport.NewHTTPTransport(orderSvc)
	transport.RegisterRoutes()

	return &App{
		orderSvc:       orderSvc,
		transport:      transport,
		mongoClient:    mongoClient,
		rabbitMqClient: rabbitMqClient,
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

	if err := a.rabbitMqClient.Close(); err != nil {
		slog.Error("RabbitMQ connection close error", "error", err)
	} else {
		slog.Info("RabbitMQ connection closed gracefully")
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
