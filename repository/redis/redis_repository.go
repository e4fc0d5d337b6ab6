package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	redisclient "github.com/mukhtarmk/ecommerce-api/cmd/redis"
	"github.com/mukhtarmk/ecommerce-api/model"
)

// Repository is the product read cache consulted before store lookups during
// order creation and listing. All methods degrade to no-ops when no Redis
// client is configured.
type Repository interface {
	GetProduct(ctx context.Context, id model.ProductID) (*model.Product, error)
	SetProduct(ctx context.Context, product *model.Product, ttl time.Duration) error
	DeleteProduct(ctx context.Context, id model.ProductID) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func productKey(id model.ProductID) string {
	return "product:" + string(id)
}

// GetProduct returns the cached product, or (nil, nil) on a cache miss.
func (r *redis) GetProduct(ctx context.Context, id model.ProductID) (*model.Product, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	val, err := client.Get(ctx, productKey(id)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var product model.Product
	if err := json.Unmarshal([]byte(val), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// SetProduct stores the product as JSON with a time-to-live
func (r *redis) SetProduct(ctx context.Context, product *model.Product, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	body, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return client.Set(ctx, productKey(product.ID), body, ttl).Err()
}

// DeleteProduct removes a cached product
func (r *redis) DeleteProduct(ctx context.Context, id model.ProductID) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, productKey(id)).Err()
}
