package mongodb

import (
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BinaryFromUUID converts a UUID to its opaque BSON representation
// (binary subtype 4), the form every `id` field is stored in.
func BinaryFromUUID(id uuid.UUID) primitive.Binary {
	return primitive.Binary{
		Subtype: bson.TypeBinaryUUID,
		Data:    id[:],
	}
}

// UUIDFromBinary converts the stored opaque identifier back to a UUID.
func UUIDFromBinary(b primitive.Binary) (uuid.UUID, error) {
	if b.Subtype != bson.TypeBinaryUUID && b.Subtype != bson.TypeBinaryUUIDOld {
		return uuid.Nil, fmt.Errorf("unexpected binary subtype %d for uuid field", b.Subtype)
	}

	id, err := uuid.FromBytes(b.Data)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to decode uuid from binary: %w", err)
	}

	return id, nil
}
