package mongoclient

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mukhtarmk/ecommerce-api/cmd/config"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

// New initializes the Mongo client using provided configuration and verifies connectivity.
func New(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config provided")
	}

	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("unable to connect mongo at %s: %w", cfg.Mongo.URI, err)
	}

	if err := c.Ping(ctx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return fmt.Errorf("unable to ping mongo at %s: %w", cfg.Mongo.URI, err)
	}

	client = c
	db = c.Database(cfg.Mongo.Database)
	return nil
}

// EnsureIndexes creates the access-path indexes: product name (text),
// product price, and order userId.
func EnsureIndexes(ctx context.Context) error {
	if db == nil {
		return fmt.Errorf("mongo client not initialized")
	}

	products := db.Collection("products")
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: "text"}},
	}); err != nil {
		return fmt.Errorf("create products name index: %w", err)
	}
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "price", Value: 1}},
	}); err != nil {
		return fmt.Errorf("create products price index: %w", err)
	}

	orders := db.Collection("orders")
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	}); err != nil {
		return fmt.Errorf("create orders userId index: %w", err)
	}

	return nil
}

func Get() *mongo.Database {
	return db
}

func Close() error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
