package worker

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var queues = map[string]int{
	"email":   6, // Benachrichtigungen zuerst
	"default": 3,
	"low":     1, // periodische Hintergrundjobs
}

func NewWorkerServer(redis *redis.Client) *asynq.Server {
	return asynq.NewServer(
		asynqRedisOpt(redis),
		asynq.Config{
			Concurrency: 10,
			Queues:      queues,
			RetryDelayFunc: func(n int, err error, t *asynq.Task) time.Duration {
				return time.Duration(n*n) * time.Second
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().
					Err(err).
					Str("task", task.Type()).
					Bytes("payload", task.Payload()).
					Msg("task failed")
			}),
		},
	)
}

// NewScheduler plant Cron-Ausdrücke in der konfigurierten Zeitzone.
func NewScheduler(redis *redis.Client, loc *time.Location) *asynq.Scheduler {
	return asynq.NewScheduler(
		asynqRedisOpt(redis),
		&asynq.SchedulerOpts{
			Location: loc,
			LogLevel: asynq.InfoLevel,
		},
	)
}
