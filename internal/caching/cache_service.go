package caching

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"foodcart/internal/models"

	"github.com/redis/go-redis/v9"
)

const availableProductsKey = "foodcart:products:available"

type CacheService interface {
	// Available-product listing caching. Get returns (nil, nil) on miss.
	GetAvailableProducts(ctx context.Context) ([]*models.AvailableProduct, error)
	SetAvailableProducts(ctx context.Context, products []*models.AvailableProduct, ttl time.Duration) error
	InvalidateAvailableProducts(ctx context.Context) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", err, addr)
	}

	return &redisCacheService{client: client}
}

func (r *redisCacheService) GetAvailableProducts(ctx context.Context) ([]*models.AvailableProduct, error) {
	data, err := r.client.Get(ctx, availableProductsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var products []*models.AvailableProduct
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *redisCacheService) SetAvailableProducts(ctx context.Context, products []*models.AvailableProduct, ttl time.Duration) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, availableProductsKey, data, ttl).Err()
}

func (r *redisCacheService) InvalidateAvailableProducts(ctx context.Context) error {
	return r.client.Del(ctx, availableProductsKey).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
