package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/config"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/db"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/mail"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/worker"
	worker_handler "github.com/dogaculudag/repro-dashboard-sub001/internal/worker/handlers"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Fehler beim Laden der Konfiguration")
	}
	if level, err := zerolog.ParseLevel(cfg.APP.LogLevel); err == nil && level != zerolog.NoLevel {
		zerolog.SetGlobalLevel(level)
	}

	dbPool, err := db.ConnectPool(context.Background(), cfg.DATABASE.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Fehler beim Initialisieren des DB-Pools")
	}
	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("Fehler beim Initialisieren des Redis-Pools")
	}

	mailer := mail.NewMailer(cfg)
	handler := worker_handler.NewWorkerHandler(dbPool, redisPool, mailer, cfg.LongRunningThreshold())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Msg("Starting worker server...")
	if err := worker.RunWorker(ctx, redisPool, handler, cfg.Location()); err != nil {
		log.Error().Err(err).Msg("worker crashed")
	}

	dbPool.Close()
	redisPool.Close()
	log.Info().Msg("worker shutdown complete")
}
