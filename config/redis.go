package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis connects to the Redis instance holding session records.
func ConnectRedis() (*redis.Client, error) {
	redisURI := os.Getenv("REDIS_URL")

	var client *redis.Client
	if redisURI != "" && redisURI != "localhost:6379" {
		opt, err := redis.ParseURL(redisURI)
		if err != nil {
			return nil, fmt.Errorf("error parsing Redis URL: %v", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: "localhost:6379",
		})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	log.Println("Successfully connected to Redis")
	return client, nil
}

// CloseRedis gracefully closes the Redis connection
func CloseRedis(client *redis.Client) error {
	if err := client.Close(); err != nil {
		return fmt.Errorf("error closing Redis connection: %v", err)
	}
	return nil
}
