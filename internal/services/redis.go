package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

const listingCacheTTL = time.Minute

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opt)

	ctx := context.Background()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	RedisClient = client
	return nil
}

// CacheListing stores a serialized listing response. A nil client (Redis
// unavailable) turns caching into a no-op.
func CacheListing(ctx context.Context, key string, payload []byte) error {
	if RedisClient == nil {
		return nil
	}
	return RedisClient.Set(ctx, "cache:"+key, payload, listingCacheTTL).Err()
}

// GetCachedListing retrieves a cached listing response. redis.Nil means a
// cache miss.
func GetCachedListing(ctx context.Context, key string) ([]byte, error) {
	if RedisClient == nil {
		return nil, redis.Nil
	}
	data, err := RedisClient.Get(ctx, "cache:"+key).Result()
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

// InvalidateListings drops the cached listing responses after a mutation.
func InvalidateListings(ctx context.Context, keys ...string) {
	if RedisClient == nil {
		return
	}
	for _, key := range keys {
		RedisClient.Del(ctx, "cache:"+key)
	}
}

// PublishBookingEvent publishes a booking lifecycle event to Redis pub/sub
func PublishBookingEvent(ctx context.Context, bookingID, agencyID, status string) error {
	if RedisClient == nil {
		return nil
	}

	eventData := map[string]interface{}{
		"bookingId": bookingID,
		"agencyId":  agencyID,
		"status":    status,
		"timestamp": time.Now().Unix(),
	}

	data, err := json.Marshal(eventData)
	if err != nil {
		return err
	}

	return RedisClient.Publish(ctx, "booking:updates", data).Err()
}
