package worker

import (
	"fmt"

	worker_handler "github.com/dogaculudag/repro-dashboard-sub001/internal/worker/handlers"
	worker_task "github.com/dogaculudag/repro-dashboard-sub001/internal/worker/tasks"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func RegisterWorkerHandlers(mux *asynq.ServeMux, h *worker_handler.WorkerHandler) {
	mux.HandleFunc(worker_task.TaskFileAssignedEmail, h.FileAssignedEmail())
	mux.HandleFunc(worker_task.TaskLongRunningEntries, h.LongRunningEntries())
}

// cronJob ist ein periodischer Task für den Scheduler.
type cronJob struct {
	cron  string
	task  string
	queue string
	desc  string
}

var cronJobs = []cronJob{
	{
		cron:  "*/30 * * * *",
		task:  worker_task.TaskLongRunningEntries,
		queue: "low",
		desc:  "remind long running time entries",
	},
}

func RegisterCronJobs(s *asynq.Scheduler) error {
	for _, job := range cronJobs {
		if _, err := s.Register(job.cron, asynq.NewTask(job.task, nil), asynq.Queue(job.queue)); err != nil {
			return fmt.Errorf("register %s failed: %w", job.desc, err)
		}
		log.Info().Msgf("scheduled: %s", job.desc)
	}

	return nil
}
