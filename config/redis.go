package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect_redis connects to the redis used for wizard drafts and verifies
// the connection with a ping.
func Connect_redis(redisURL string) (*redis.Client, error) {
	var client *redis.Client
	if opt, err := redis.ParseURL(redisURL); err == nil {
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Println("Redis connection established")
	return client, nil
}
