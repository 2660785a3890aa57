package worker

import (
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// asynqRedisOpt übernimmt die Verbindungsdaten des bestehenden go-redis-Clients.
func asynqRedisOpt(redis *redis.Client) asynq.RedisClientOpt {
	opts := redis.Options()
	return asynq.RedisClientOpt{
		Addr:      opts.Addr,
		Username:  opts.Username,
		Password:  opts.Password,
		DB:        opts.DB,
		TLSConfig: opts.TLSConfig,
	}
}
