// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"telecare/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// HoldCacheClient is the dedicated client for slot-hold bookkeeping.
	HoldCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitHoldCache initializes the Redis client used for slot holds
// (using the dedicated DB from AppConfig so TTL sweeps stay isolated).
func InitHoldCache() {
	HoldCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisHoldDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := HoldCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Holds): %v", err)
	}
}

// GetHoldCacheClient returns the Redis client for slot holds.
func GetHoldCacheClient() *redis.Client {
	if HoldCacheClient == nil {
		InitHoldCache()
	}
	return HoldCacheClient
}
