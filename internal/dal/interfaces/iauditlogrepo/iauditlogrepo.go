package iauditlogrepo

import "context"

// IAuditLogRepository is an interface for the audit-log document repository.
//
// Records are persisted exactly as they arrived from the queue; the audit
// log is append-only.
type IAuditLogRepository interface {
	Save(ctx context.Context, record map[string]any) error
}
