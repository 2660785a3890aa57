package worker

import (
	"context"
	"fmt"
	"time"

	worker_handler "github.com/dogaculudag/repro-dashboard-sub001/internal/worker/handlers"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RunWorker startet Server und Scheduler und blockiert, bis ctx beendet ist.
// Signale behandelt der Aufrufer.
func RunWorker(ctx context.Context, redis *redis.Client, handler *worker_handler.WorkerHandler, loc *time.Location) error {
	srv := NewWorkerServer(redis)
	scheduler := NewScheduler(redis, loc)

	mux := asynq.NewServeMux()
	RegisterWorkerHandlers(mux, handler)

	if err := RegisterCronJobs(scheduler); err != nil {
		return fmt.Errorf("failed to register scheduler: %w", err)
	}

	if err := scheduler.Start(); err != nil {
		return fmt.Errorf("scheduler error: %w", err)
	}
	if err := srv.Start(mux); err != nil {
		scheduler.Shutdown()
		return fmt.Errorf("worker server error: %w", err)
	}

	<-ctx.Done()
	log.Info().Msg("shutting down worker server...")

	scheduler.Shutdown()
	srv.Shutdown()

	return nil
}
