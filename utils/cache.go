// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"huduma/config"

	"github.com/go-redis/redis/v8"
)

// CartCacheClient is the dedicated client for cart persistence.
var CartCacheClient *redis.Client

// InitCartCache initializes the Redis client used for cart persistence
// (using DB from AppConfig).
func InitCartCache() {
	CartCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCartDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CartCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cart Cache): %v", err)
	}
}

// GetCartCacheClient returns the Redis client for cart persistence.
func GetCartCacheClient() *redis.Client {
	if CartCacheClient == nil {
		InitCartCache()
	}
	return CartCacheClient
}
