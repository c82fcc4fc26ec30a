package mongodb

import (
	"testing"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUUIDBinaryRoundTrip(t *testing.T) {
	id := uuid.New()

	bin := BinaryFromUUID(id)
	if bin.Subtype != bson.TypeBinaryUUID {
		t.Errorf("expected binary subtype %d, got %d", bson.TypeBinaryUUID, bin.Subtype)
	}

	got, err := UUIDFromBinary(bin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != id {
		t.Errorf("expected %s, got %s", id, got)
	}
}

func TestUUIDFromBinary_RejectsForeignSubtype(t *testing.T) {
	id := uuid.New()

	_, err := UUIDFromBinary(primitive.Binary{Subtype: bson.TypeBinaryGeneric, Data: id[:]})
	if err == nil {
		t.Fatal("expected an error for a non-uuid binary subtype")
	}
}

func TestUUIDFromBinary_RejectsShortData(t *testing.T) {
	_, err := UUIDFromBinary(primitive.Binary{Subtype: bson.TypeBinaryUUID, Data: []byte{1, 2, 3}})
	if err == nil {
		t.Fatal("expected an error for truncated uuid bytes")
	}
}
