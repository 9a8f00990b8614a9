package infra_redis_init

import (
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/matchroom/internal/config"
)

// Bounded timeouts so a dead backend surfaces as an error instead of a
// hung request.
const opTimeout = 3 * time.Second

func MustEstablishConn(cfg config.RedisCache) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:    cfg.Password,
		DB:          0,
		DialTimeout: opTimeout,
		ReadTimeout: opTimeout,
	})

	if err := client.Ping().Err(); err != nil {
		log.Fatal("redis ping failed", err)
	}

	return client
}
