package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/tesodev/commerce-backend/internal/dal/mongodb"
	"github.com/tesodev/commerce-backend/internal/errs"
	"github.com/tesodev/commerce-backend/internal/service/models/customer"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AddressDal represents the embedded address document.
type AddressDal struct {
	AddressLine string `bson:"addressLine"`
	City        string `bson:"city"`
	Country     string `bson:"country"`
	CityCode    int    `bson:"cityCode"`
}

// CustomerDal represents the customer document as stored.
type CustomerDal struct {
	ID        primitive.Binary `bson:"id"`
	Name      string           `bson:"name"`
	Email     string           `bson:"email"`
	Address   AddressDal       `bson:"address"`
	CreatedAt time.Time        `bson:"createdAt"`
	UpdatedAt time.Time        `bson:"updatedAt"`
}

// ToModel converts CustomerDal to the service layer Customer model.
func (d *CustomerDal) ToModel() (*customer.Customer, error) {
	id, err := mongodb.UUIDFromBinary(d.ID)
	if err != nil {
		return nil, err
	}

	return &customer.Customer{
		ID:        id,
		Name:      d.Name,
		Email:     d.Email,
		Address:   customer.Address(d.Address),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

// CustomerDalFromModel converts the service layer Customer model to CustomerDal.
func CustomerDalFromModel(c *customer.Customer) *CustomerDal {
	return &CustomerDal{
		ID:        mongodb.BinaryFromUUID(c.ID),
		Name:      c.Name,
		Email:     c.Email,
		Address:   AddressDal(c.Address),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// MongoCustomerRepository is the MongoDB-backed customer repository.
type MongoCustomerRepository struct {
	collection *mongo.Collection
}

// NewMongoCustomerRepository creates a new customer repository.
func NewMongoCustomerRepository(client *mongodb.Client) *MongoCustomerRepository {
	name := viper.GetString("mongodb.collections.customers")
	if name == "" {
		name = "customers"
	}

	return &MongoCustomerRepository{
		collection: client.Collection(name),
	}
}

// Insert persists a new customer document.
func (r *MongoCustomerRepository) Insert(ctx context.Context, c customer.Customer) error {
	if _, err := r.collection.InsertOne(ctx, CustomerDalFromModel(&c)); err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}

	return nil
}

// Update replaces the mutable fields of a customer document.
// The id field is never part of the update, keeping it immutable.
func (r *MongoCustomerRepository) Update(
	ctx context.Context,
	id uuid.UUID,
	c customer.Customer,
) (bool, error) {
	update := bson.M{"$set": bson.M{
		"name":      c.Name,
		"email":     c.Email,
		"address":   AddressDal(c.Address),
		"updatedAt": c.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"id": mongodb.BinaryFromUUID(id)},
		update,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update customer: %w", err)
	}

	return result.MatchedCount > 0, nil
}

// Delete removes a customer document by id.
func (r *MongoCustomerRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": mongodb.BinaryFromUUID(id)})
	if err != nil {
		return false, fmt.Errorf("failed to delete customer: %w", err)
	}

	return result.DeletedCount > 0, nil
}

// Get retrieves a customer by id, excluding the store's internal row id.
func (r *MongoCustomerRepository) Get(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})

	var dal CustomerDal
	err := r.collection.FindOne(ctx, bson.M{"id": mongodb.BinaryFromUUID(id)}, opts).Decode(&dal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return dal.ToModel()
}

// List retrieves all customers.
func (r *MongoCustomerRepository) List(ctx context.Context) ([]customer.Customer, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer cursor.Close(ctx)

	result := []customer.Customer{}
	for cursor.Next(ctx) {
		var dal CustomerDal
		if err := cursor.Decode(&dal); err != nil {
			return nil, fmt.Errorf("failed to decode customer: %w", err)
		}
		model, err := dal.ToModel()
		if err != nil {
			return nil, err
		}
		result = append(result, *model)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor iteration error: %w", err)
	}

	return result, nil
}

// Exists reports whether a customer with the given id is stored.
func (r *MongoCustomerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	opts := options.FindOne().SetProjection(bson.M{"id": 1, "_id": 0})

	err := r.collection.FindOne(ctx, bson.M{"id": mongodb.BinaryFromUUID(id)}, opts).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}

		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}

	return true, nil
}

// GetAddress retrieves only the address field of a customer.
func (r *MongoCustomerRepository) GetAddress(ctx context.Context, id uuid.UUID) (*customer.Address, error) {
	opts := options.FindOne().SetProjection(bson.M{"address": 1, "_id": 0})

	var dal struct {
		Address AddressDal `bson:"address"`
	}
	err := r.collection.FindOne(ctx, bson.M{"id": mongodb.BinaryFromUUID(id)}, opts).Decode(&dal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("failed to find customer address: %w", err)
	}

	address := customer.Address(dal.Address)

	return &address, nil
}
