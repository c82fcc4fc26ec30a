package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/tesodev/commerce-backend/internal/dal/mongodb"
	customerrepo "github.com/tesodev/commerce-backend/internal/dal/repositories/customer/mongodb"
	"github.com/tesodev/commerce-backend/internal/errs"
	"github.com/tesodev/commerce-backend/internal/service/models/customer"
	"github.com/tesodev/commerce-backend/internal/service/models/order"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductDal represents the embedded product document.
type ProductDal struct {
	ID       primitive.Binary `bson:"id"`
	Name     string           `bson:"name"`
	ImageURL string           `bson:"imageUrl"`
}

// OrderDal represents the order document as stored.
type OrderDal struct {
	ID         primitive.Binary        `bson:"id"`
	CustomerID primitive.Binary        `bson:"customerId"`
	Quantity   int                     `bson:"quantity"`
	Price      float64                 `bson:"price"`
	Status     string                  `bson:"status"`
	Address    customerrepo.AddressDal `bson:"address"`
	Product    ProductDal              `bson:"product"`
	CreatedAt  time.Time               `bson:"createdAt"`
	UpdatedAt  time.Time               `bson:"updatedAt"`
}

// ToModel converts OrderDal to the service layer Order model.
func (d *OrderDal) ToModel() (*order.Order, error) {
	id, err := mongodb.UUIDFromBinary(d.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := mongodb.UUIDFromBinary(d.CustomerID)
	if err != nil {
		return nil, err
	}
	productID, err := mongodb.UUIDFromBinary(d.Product.ID)
	if err != nil {
		return nil, err
	}

	return &order.Order{
		ID:         id,
		CustomerID: customerID,
		Quantity:   d.Quantity,
		Price:      d.Price,
		Status:     d.Status,
		Address:    customer.Address(d.Address),
		Product: order.Product{
			ID:       productID,
			Name:     d.Product.Name,
			ImageURL: d.Product.ImageURL,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

// OrderDalFromModel converts the service layer Order model to OrderDal.
func OrderDalFromModel(o *order.Order) *OrderDal {
	return &OrderDal{
		ID:         mongodb.BinaryFromUUID(o.ID),
		CustomerID: mongodb.BinaryFromUUID(o.CustomerID),
		Quantity:   o.Quantity,
		Price:      o.Price,
		Status:     o.Status,
		Address:    customerrepo.AddressDal(o.Address),
		Product: ProductDal{
			ID:       mongodb.BinaryFromUUID(o.Product.ID),
			Name:     o.Product.Name,
			ImageURL: o.Product.ImageURL,
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// MongoOrderRepository is the MongoDB-backed order repository.
type MongoOrderRepository struct {
	collection *mongo.Collection
}

// NewMongoOrderRepository creates a new order repository.
func NewMongoOrderRepository(client *mongodb.Client) *MongoOrderRepository {
	name := viper.GetString("mongodb.collections.orders")
	if name == "" {
		name = "orders"
	}

	return &MongoOrderRepository{
		collection: client.Collection(name),
	}
}

// Insert persists a new order document.
func (r *MongoOrderRepository) Insert(ctx context.Context, o order.Order) error {
	if _, err := r.collection.InsertOne(ctx, OrderDalFromModel(&o)); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

// Update replaces all mutable fields of an order document. The customer
// reference is not re-validated and the address snapshot is not refreshed.
func (r *MongoOrderRepository) Update(
	ctx context.Context,
	id uuid.UUID,
	o order.Order,
) (bool, error) {
	update := bson.M{"$set": bson.M{
		"customerId": mongodb.BinaryFromUUID(o.CustomerID),
		"quantity":   o.Quantity,
		"price":      o.Price,
		"status":     o.Status,
		"product": ProductDal{
			ID:       mongodb.BinaryFromUUID(o.Product.ID),
			Name:     o.Product.Name,
			ImageURL: o.Product.ImageURL,
		},
		"updatedAt": o.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"id": mongodb.BinaryFromUUID(id)},
		update,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update order: %w", err)
	}

	return result.MatchedCount > 0, nil
}

// Delete removes an order document by id.
func (r *MongoOrderRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": mongodb.BinaryFromUUID(id)})
	if err != nil {
		return false, fmt.Errorf("failed to delete order: %w", err)
	}

	return result.DeletedCount > 0, nil
}

// Get retrieves an order by id, excluding the store's internal row id.
func (r *MongoOrderRepository) Get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})

	var dal OrderDal
	err := r.collection.FindOne(ctx, bson.M{"id": mongodb.BinaryFromUUID(id)}, opts).Decode(&dal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrOrderNotFound
		}

		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return dal.ToModel()
}

// List retrieves all orders.
func (r *MongoOrderRepository) List(ctx context.Context) ([]order.Order, error) {
	return r.query(ctx, bson.M{})
}

// ListByCustomer retrieves all orders owned by the given customer.
func (r *MongoOrderRepository) ListByCustomer(
	ctx context.Context,
	customerID uuid.UUID,
) ([]order.Order, error) {
	return r.query(ctx, bson.M{"customerId": mongodb.BinaryFromUUID(customerID)})
}

func (r *MongoOrderRepository) query(ctx context.Context, filter bson.M) ([]order.Order, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer cursor.Close(ctx)

	result := []order.Order{}
	for cursor.Next(ctx) {
		var dal OrderDal
		if err := cursor.Decode(&dal); err != nil {
			return nil, fmt.Errorf("failed to decode order: %w", err)
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

// UpdateStatus sets only the status field of an order. The update
// timestamp is intentionally left untouched here.
func (r *MongoOrderRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status string,
) (bool, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"id": mongodb.BinaryFromUUID(id)},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}

	return result.MatchedCount > 0, nil
}
