package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// NewRedisClient connects to Redis for the employee-list cache. The cache
// is optional infrastructure: when disabled or unreachable it returns nil
// and callers fall through to the database.
func NewRedisClient(config RedisConfig) *redis.Client {
	if !config.Enabled {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password:     config.Password,
		DB:           config.DB,
		PoolSize:     10,
		MinIdleConns: 5,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx := context.Background()
	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		log.Printf("Redis unavailable, running without cache: %v", err)
		return nil
	}
	log.Printf("Redis connected: %s", pong)

	return rdb
}
