package queue

import (
	worker_task "github.com/dogaculudag/repro-dashboard-sub001/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type TaskQueueClient interface {
	EnqueueFileAssignedEmail(payload *worker_task.FileAssignedPayload) error
}

type TaskQueue struct {
	client *asynq.Client
}

func NewTaskQueue(redis *redis.Client) *TaskQueue {
	return &TaskQueue{
		client: asynq.NewClientFromRedisClient(redis),
	}
}

func (q *TaskQueue) EnqueueFileAssignedEmail(payload *worker_task.FileAssignedPayload) error {
	p, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(worker_task.TaskFileAssignedEmail, p, asynq.Queue("email"), asynq.MaxRetry(5))

	info, err := q.client.Enqueue(task)
	if err != nil {
		return err
	}
	log.Debug().Str("task_id", info.ID).Str("file_id", payload.FileID).Msg("file assignment mail enqueued")
	return nil
}
