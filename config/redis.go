package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient backs the second-level envelope cache. Nil when Redis is
// not configured or not reachable.
var RedisClient *redis.Client

// InitRedis builds RedisClient from REDIS_URL, or REDIS_ADDR, REDIS_PASS
// and REDIS_DB.
func InitRedis() {
	RedisClient = nil
	if url := os.Getenv("REDIS_URL"); url != "" {
		opts, err := redis.ParseURL(url)
		if err != nil {
			log.Printf("REDIS_URL ignored: %v", err)
			return
		}
		RedisClient = redis.NewClient(opts)
		return
	}
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return
	}
	db, _ := strconv.Atoi(GetEnv("REDIS_DB", "0"))
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       db,
	})
}

// PingRedis disables the client when the server is not reachable.
func PingRedis() string {
	if RedisClient == nil {
		return "Redis not configured, second-level cache disabled."
	}
	ctx, cancel := context.WithTimeout(RedisCtx(), 2*time.Second)
	defer cancel()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		_ = RedisClient.Close()
		RedisClient = nil
		return "Redis configured but not reachable, second-level cache disabled."
	}
	return "Redis connection successful."
}

func RedisCtx() context.Context {
	return context.Background()
}
