package database

import (
	"context"
	"log"

	"api/config"

	"github.com/redis/go-redis/v9"
)

var REDIS *redis.Client

// InitRedis initializes the Redis client used for response caching and the shared login
// attempt counters
func InitRedis() {
    REDIS = redis.NewClient(&redis.Options{
        Addr:     config.RedisAddress,
        Password: config.RedisPassword,
    })

    if err := REDIS.Ping(context.Background()).Err(); err != nil {
        log.Println("Redis unavailable, caching and login throttling degraded: ", err)
    }
}
