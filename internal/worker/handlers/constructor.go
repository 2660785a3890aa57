package worker_handler

import (
	"time"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/abstraction/cache"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/mail"
	file_repo "github.com/dogaculudag/repro-dashboard-sub001/internal/repo/file-repo"
	time_entry_repo "github.com/dogaculudag/repro-dashboard-sub001/internal/repo/time-entry-repo"
	user_repo "github.com/dogaculudag/repro-dashboard-sub001/internal/repo/user-repo"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// WorkerHandler liest nur. Zeiteinträge werden vom Worker nie verändert.
type WorkerHandler struct {
	ur        user_repo.UserRepoContract
	fr        file_repo.FileRepoContract
	ter       time_entry_repo.TimeEntryRepoContract
	cache     cache.Cache
	mailer    mail.Mailer
	threshold time.Duration
	now       func() time.Time
}

func NewWorkerHandler(db *pgxpool.Pool, redis *redis.Client, mailer mail.Mailer, longRunning time.Duration) *WorkerHandler {
	return &WorkerHandler{
		ur:        user_repo.NewUserRepo(db),
		fr:        file_repo.NewFileRepo(db),
		ter:       time_entry_repo.NewTimeEntryRepo(db),
		cache:     cache.NewRedisCache(redis),
		mailer:    mailer,
		threshold: longRunning,
		now:       time.Now,
	}
}
