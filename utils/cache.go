// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"bookday/config"

	"github.com/go-redis/redis/v8"
)

// SessionClient is the dedicated client for checkout session caching.
var SessionClient *redis.Client

// InitSessionCache initializes the Redis client for checkout sessions.
func InitSessionCache() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for checkout sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionClient == nil {
		InitSessionCache()
	}
	return SessionClient
}
