package mongorepo

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"github.com/tesodev/commerce-backend/internal/dal/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAuditLogRepository is the MongoDB-backed audit-log repository.
type MongoAuditLogRepository struct {
	collection *mongo.Collection
}

// NewMongoAuditLogRepository creates a new audit-log repository.
func NewMongoAuditLogRepository(client *mongodb.Client) *MongoAuditLogRepository {
	name := viper.GetString("mongodb.collections.audit_log")
	if name == "" {
		name = "AuditLog"
	}

	return &MongoAuditLogRepository{
		collection: client.Collection(name),
	}
}

// Save appends a record to the audit log exactly as it arrived from the
// queue. Records are never updated or deleted; redelivered messages
// produce duplicate records.
func (r *MongoAuditLogRepository) Save(ctx context.Context, record map[string]any) error {
	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert audit record: %w", err)
	}

	return nil
}
