package consumer

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tesodev/commerce-backend/internal/dal/mongodb"
	"github.com/tesodev/commerce-backend/internal/dal/rabbitmq"
	auditlogrepo "github.com/tesodev/commerce-backend/internal/dal/repositories/auditlog/mongodb"
	"github.com/tesodev/commerce-backend/internal/otel"
	"github.com/tesodev/commerce-backend/internal/service/services/consumersvc"
	"github.com/tesodev/commerce-backend/internal/transport/consumer"
)

// App represents the audit consumer application.
type App struct {
	consumerSvc    *consumersvc.ConsumerService
	consumerTransp *consumer.Consumer
	rabbitMqClient *rabbitmq.Client
	mongoClient    *mongodb.Client
	otelController *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	otelController := otel.MustInitOtel("audit-consumer")
	rabbitMqClient := rabbitmq.MustNewClient()
	mongoClient := mongodb.MustNewClient()

	auditLogRepository := auditlogrepo.NewMongoAuditLogRepository(mongoClient)

	consumerSvc := consumersvc.MustNewConsumerService(
		consumersvc.WithAuditLogRepository(auditLogRepository),
	)

	consumerTransp := consumer.NewConsumer(rabbitMqClient, consumerSvc)

	return &App{
		consumerSvc:    consumerSvc,
		consumerTransp: consumerTransp,
		rabbitMqClient: rabbitMqClient,
		mongoClient:    mongoClient,
		otelController: otelController,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		slog.Info("Starting consumer")
		if err := a.consumerTransp.Run(ctx); err != nil {
			slog.Error("Consumer error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")
	cancel()

	a.gracefulShutdown()
}

// gracefulShutdown shuts down the consumer, the queue connection, the
// store connection and the trace provider in order.
func (a *App) gracefulShutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.consumerTransp.Shutdown(); err != nil {
		slog.Error("Consumer shutdown error", "error", err)
	} else {
		slog.Info("Consumer stopped gracefully")
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
