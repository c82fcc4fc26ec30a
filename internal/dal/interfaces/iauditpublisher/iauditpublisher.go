package iauditpublisher

import (
	"context"

	"github.com/tesodev/commerce-backend/internal/service/models/audit"
)

// IAuditPublisher is an interface for publishing audit events to the queue.
type IAuditPublisher interface {
	PublishOrderCreated(ctx context.Context, event audit.Event) error
}
