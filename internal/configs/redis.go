package config

import (
	"log"

	"github.com/redis/rueidis"

	"curtisos.com/curtisos/internal/notify"
)

func NewRedisClient(addr string) rueidis.Client {
	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress: []string{addr},
		},
	)
	if err != nil {
		log.Fatalf("failed to create redis client: %v", err)
	}

	return redisClient
}

// NewNotifier returns a Redis-backed notifier when Redis is configured and a
// no-op one otherwise. The returned close func is always safe to call.
func NewNotifier(cfg Config) (notify.Notifier, func()) {
	if cfg.RedisAddr == "" {
		return notify.NopNotifier{}, func() {}
	}

	client := NewRedisClient(cfg.RedisAddr)
	return notify.NewRedisNotifier(client, cfg.RedisChannel), client.Close
}
