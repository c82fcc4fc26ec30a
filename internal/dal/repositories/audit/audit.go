package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"github.com/tesodev/commerce-backend/internal/dal/rabbitmq"
	"github.com/tesodev/commerce-backend/internal/service/models/audit"
)

// AuditRabbitMQRepository publishes audit events to the durable audit queue.
type AuditRabbitMQRepository struct {
	client *rabbitmq.Client
	queue  amqp.Queue
}

// NewAuditRabbitMQRepository creates the publisher and idempotently
// declares the durable audit queue.
func NewAuditRabbitMQRepository(client *rabbitmq.Client) *AuditRabbitMQRepository {
	queueName := viper.GetString("rabbitmq.queue")
	if queueName == "" {
		queueName = "order_audit_log"
	}

	queue, err := client.DeclareQueue(rabbitmq.DeclareQueueConfig{
		Name:       queueName,
		Durable:    true,
		Exclusive:  false,
		AutoDelete: false,
	})
	if err != nil {
		panic(err)
	}

	return &AuditRabbitMQRepository{
		client: client,
		queue:  queue,
	}
}

// PublishOrderCreated publishes a single order-created event with
// persistent delivery. The call is synchronous; a failure here is the
// caller's to surface.
func (r *AuditRabbitMQRepository) PublishOrderCreated(_ context.Context, event audit.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	err = r.client.Channel().Publish(
		"",
		r.queue.Name,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish audit event: %w", err)
	}

	return nil
}
