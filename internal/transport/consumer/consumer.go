package consumer

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"github.com/tesodev/commerce-backend/internal/dal/rabbitmq"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

// service represents the service layer interface.
type service interface {
	ProcessAuditRecord(ctx context.Context, record map[string]any) error
}

// queueClient is the queue surface the consumer needs.
type queueClient interface {
	DeclareQueue(cfg rabbitmq.DeclareQueueConfig) (amqp.Queue, error)
	Consume(cfg rabbitmq.ConsumeConfig) (<-chan amqp.Delivery, error)
	Qos(prefetchCount int) error
}

// Consumer is the audit-log queue consumer transport.
//
// It keeps at most one unacknowledged delivery in flight: the queue is
// consumed with a prefetch limit of one and a delivery is acknowledged
// only after the record is persisted. A failed persistence leaves the
// delivery unacknowledged so the broker redelivers it.
type Consumer struct {
	client  queueClient
	service service
	queue   amqp.Queue
	stop    chan struct{}
	done    chan struct{}
}

// NewConsumer creates a new Consumer and idempotently declares the
// durable audit queue.
func NewConsumer(client queueClient, service service) *Consumer {
	queueName := viper.GetString("rabbitmq.queue")
	if queueName == "" {
		queueName = "order_audit_log"
	}

	queue, err := client.DeclareQueue(rabbitmq.DeclareQueueConfig{
		Name:       queueName,
		Durable:    true,
		AutoDelete: false,
		Exclusive:  false,
		NoWait:     false,
	})
	if err != nil {
		panic(err)
	}

	return &Consumer{
		client:  client,
		service: service,
		queue:   queue,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Run starts consuming messages from the queue.
func (c *Consumer) Run(ctx context.Context) error {
	if err := c.client.Qos(1); err != nil {
		return err
	}

	consumerTag := viper.GetString("rabbitmq.consumer_tag")
	if consumerTag == "" {
		consumerTag = "audit-consumer"
	}

	msgs, err := c.client.Consume(rabbitmq.ConsumeConfig{
		Queue:    c.queue.Name,
		Consumer: consumerTag,
		AutoAck:  false,
	})
	if err != nil {
		return err
	}

	slog.Info("Consumer started", "queue", c.queue.Name, "consumer_tag", consumerTag)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(1)

	go func() {
		for {
			select {
			case <-c.stop:
				slog.Info("Stopping consumer")
				close(c.done)

				return
			case msg, ok := <-msgs:
				if !ok {
					slog.Info("Message channel closed")
					close(c.done)

					return
				}

				g.Go(func() error {
					return c.processMessage(gctx, msg)
				})
			}
		}
	}()

	<-c.done
	if err := g.Wait(); err != nil {
		slog.Error("Error processing messages", "error", err)
	}

	return nil
}

// processMessage handles a single delivery: decode, persist, acknowledge.
func (c *Consumer) processMessage(ctx context.Context, msg amqp.Delivery) error {
	ctx, span := otel.Tracer("consumer").Start(ctx, "Consumer.processMessage")
	defer span.End()

	slog.Info("Received message", "delivery_tag", msg.DeliveryTag)

	var record map[string]any
	if err := json.Unmarshal(msg.Body, &record); err != nil {
		slog.Error("Failed to unmarshal audit record", "error", err)
		// Poison message, reject without requeuing
		if err := msg.Nack(false, false); err != nil {
			slog.Error("Failed to nack message", "error", err)
		}

		return err
	}

	if err := c.service.ProcessAuditRecord(ctx, record); err != nil {
		slog.Error("Failed to process audit record", "error", err)
		// Withhold the ack and requeue; redelivery is the recovery mechanism
		if err := msg.Nack(false, true); err != nil {
			slog.Error("Failed to nack message", "error", err)
		}

		return err
	}

	if err := msg.Ack(false); err != nil {
		slog.Error("Failed to ack message", "error", err)

		return err
	}

	slog.Info("Message processed successfully", "delivery_tag", msg.DeliveryTag)

	return nil
}

// Shutdown gracefully shuts down the consumer.
func (c *Consumer) Shutdown() error {
	slog.Info("Shutting down consumer")
	close(c.stop)

	select {
	case <-c.done:
		slog.Info("Consumer stopped successfully")
	case <-time.After(10 * time.Second):
		slog.Warn("Consumer shutdown timeout")
	}

	return nil
}
