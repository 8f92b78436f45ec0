package configuration

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

// Client variable can used to save key value pairs in redis
var Client *redis.Client

// InitRedis function initializes redis server
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	var err error
	MaxRetries := 5
	RetryDelay := time.Second * 5
	for i := 0; i < MaxRetries; i++ {
		Client = redis.NewClient(&redis.Options{
			Network:  "tcp",
			Addr:     addr,
			Password: "", // no password set
			DB:       0,  // use default DB
		})

		_, err = Client.Ping(ctx).Result()
		if err == nil {
			break
		}

		Log.Warn().Err(err).Msgf("Failed to connect to Redis (Attempt %d/%d)", i+1, MaxRetries)
		time.Sleep(RetryDelay)
	}
	if err != nil {
		Log.Fatal().Err(err).Msg("Failed to connect to Redis after multiple attempts")
	}
}

// SetRedis willset a key value in redis server
func SetRedis(key string, value any, expirationTime time.Duration) error {
	if err := Client.Set(context.Background(), key, value, expirationTime).Err(); err != nil {
		return err
	}
	return nil
}

// GetRedis will get the value from redis server using key
func GetRedis(key string) (string, error) {
	jsonData, err := Client.Get(context.Background(), key).Result()
	if err != nil {
		return "", err
	}
	return jsonData, nil
}

// DelRedis removes a key from redis server
func DelRedis(key string) error {
	return Client.Del(context.Background(), key).Err()
}

// SlotCacheKey builds the cache key for a doctor's computed slots on a date
func SlotCacheKey(doctorID int, date string) string {
	return fmt.Sprintf("slots:%d:%s", doctorID, date)
}
