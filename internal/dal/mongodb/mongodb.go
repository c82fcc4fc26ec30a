package mongodb

import (
	"context"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client represents a MongoDB client bound to the application database.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Collection returns a handle to the named collection.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Close closes the connection for graceful shutdown.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// MustNewClient creates a new MongoDB client.
func MustNewClient() *Client {
	connStr := os.Getenv("MONGO_CONN_STR")
	if connStr == "" {
		panic("MONGO_CONN_STR is not set")
	}

	opts := options.Client().
		ApplyURI(connStr).
		SetServerSelectionTimeout(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		panic("Failed to connect to MongoDB: " + err.Error())
	}

	if err := client.Ping(ctx, nil); err != nil {
		panic("Failed to ping MongoDB: " + err.Error())
	}

	dbName := viper.GetString("mongodb.database")
	if dbName == "" {
		dbName = "Tesodev"
	}

	return &Client{
		client: client,
		db:     client.Database(dbName),
	}
}
