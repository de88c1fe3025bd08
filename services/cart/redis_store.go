package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"huduma/config"
	"huduma/models"
	"huduma/utils"

	"github.com/go-redis/redis/v8"
)

// RedisCartStore persists carts as JSON blobs in Redis so a cart survives
// a page reload within the same session.
type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisCartStore builds a store on the shared cart cache client, with
// the TTL taken from configuration.
func NewRedisCartStore() *RedisCartStore {
	return &RedisCartStore{
		Client: utils.GetCartCacheClient(),
		TTL:    time.Duration(config.AppConfig.CartTTLHours) * time.Hour,
	}
}

func cartKey(customerID string) string {
	return "cart:" + customerID
}

func (s *RedisCartStore) Load(ctx context.Context, customerID string) (*models.Cart, error) {
	data, err := s.Client.Get(ctx, cartKey(customerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &models.Cart{CustomerID: customerID}, nil
		}
		return nil, fmt.Errorf("failed to read cart from cache: %w", err)
	}

	var c models.Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to parse stored cart: %w", err)
	}
	c.CustomerID = customerID
	return &c, nil
}

func (s *RedisCartStore) Save(ctx context.Context, c *models.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := s.Client.Set(ctx, cartKey(c.CustomerID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store cart: %w", err)
	}
	return nil
}

func (s *RedisCartStore) Delete(ctx context.Context, customerID string) error {
	if err := s.Client.Del(ctx, cartKey(customerID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
