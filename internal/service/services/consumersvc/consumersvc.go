package consumersvc

import (
	"context"
	"log/slog"

	"github.com/tesodev/commerce-backend/internal/dal/interfaces/iauditlogrepo"
	"go.opentelemetry.io/otel"
)

// ConsumerService is a service for materializing audit records.
type ConsumerService struct {
	auditLogRepo iauditlogrepo.IAuditLogRepository
}

// option is a function that configures the ConsumerService.
type option func(*ConsumerService)

// MustNewConsumerService creates a new ConsumerService.
func MustNewConsumerService(opts ...option) *ConsumerService {
	s := &ConsumerService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithAuditLogRepository sets the audit-log repository for the ConsumerService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithAuditLogRepository(auditLogRepo iauditlogrepo.IAuditLogRepository) option {
	return func(s *ConsumerService) {
		s.auditLogRepo = auditLogRepo
	}
}

// ProcessAuditRecord persists a single audit record as delivered.
func (s *ConsumerService) ProcessAuditRecord(ctx context.Context, record map[string]any) error {
	ctx, span := otel.Tracer("consumersvc").Start(ctx, "ConsumerService.ProcessAuditRecord")
	defer span.End()

	if err := s.auditLogRepo.Save(ctx, record); err != nil {
		slog.Error("Failed to save audit record", "error", err)

		return err
	}

	return nil
}
