package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

// Init connects to redis. Caching is best-effort: if redis is unreachable
// the client stays nil and every helper becomes a no-op.
func Init(addr string) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis not reachable at %s, listing cache disabled: %v", addr, err)
		Client = nil
		return
	}

	Client = client
	log.Println("✅ Redis connected successfully")
}

func GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if Client == nil {
		return false
	}

	raw, err := Client.Get(ctx, key).Result()
	if err != nil {
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.Printf("⚠️ Corrupt cache entry for %s, dropping it: %v", key, err)
		Client.Del(ctx, key)
		return false
	}
	return true
}

func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if Client == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := Client.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("⚠️ Failed to cache %s: %v", key, err)
	}
}

func Invalidate(ctx context.Context, keys ...string) {
	if Client == nil || len(keys) == 0 {
		return
	}

	if err := Client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("⚠️ Failed to invalidate cache keys %v: %v", keys, err)
	}
}
