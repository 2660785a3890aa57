package routers

import (
	"net"
	"strconv"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/abstraction/cache"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/config"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/handlers"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/i18n"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/middleware"
	file_case "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases/file-case"
	report_case "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases/report-case"
	time_entry_case "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases/time-entry-case"
	work_session_case "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases/work-session-case"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/utils"
	"github.com/gofiber/fiber/v2"
	redis_fiber "github.com/gofiber/storage/redis/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Services bündelt die Use-Cases, die sich Gate und Cache teilen.
type Services struct {
	Files        file_case.FileServiceContract
	TimeEntries  time_entry_case.TimeEntryServiceContract
	WorkSessions work_session_case.WorkSessionServiceContract
	Reports      report_case.ReportServiceContract
}

func NewServices(db *pgxpool.Pool, redis *redis.Client, cfg *config.AppConfig) *Services {
	sessionCache := cache.NewRedisCache(redis)
	files := file_case.NewFileService(db, redis)

	return &Services{
		Files:        files,
		TimeEntries:  time_entry_case.NewTimeEntryService(db, sessionCache, files, cfg),
		WorkSessions: work_session_case.NewWorkSessionService(db, sessionCache, files, cfg),
		Reports:      report_case.NewReportService(db, cfg),
	}
}

// SetupRoutes richtet die API-Routen ein.
func SetupRoutes(app *fiber.App, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, cfg *config.AppConfig) {
	api := app.Group("/api/v1")
	HealthRouter(api, db, redis)

	svc := NewServices(db, redis, cfg)
	validate := handlers.NewValidator()
	limiterStore := newLimiterStorage(redis)

	secured := api.Group("", middleware.AuthMiddleware(paseto))
	TimeEntryRouter(secured, svc.TimeEntries, validate, i18n, limiterStore)
	WorkSessionRouter(secured, svc.WorkSessions, validate, i18n, limiterStore)
	FileRouter(secured, svc.Files, validate, i18n)
	ReportRouter(secured, svc.Reports, validate, i18n)
}

// newLimiterStorage legt die Zähler des Rate-Limiters in Redis-DB 1 ab.
func newLimiterStorage(redis *redis.Client) fiber.Storage {
	host, portStr, err := net.SplitHostPort(redis.Options().Addr)
	if err != nil {
		host, portStr = redis.Options().Addr, "6379"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = 6379
	}

	return redis_fiber.New(redis_fiber.Config{
		Host:     host,
		Port:     port,
		Password: redis.Options().Password,
		Database: 1,
	})
}
