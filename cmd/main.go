package main

// Package main startet die HTTP-API von Repro Dosya Takip: Konfiguration laden,
// Postgres und Redis verbinden, PASETO-Verifizierer aufsetzen, Fiber mit
// Middleware und Routern starten und bei SIGINT/SIGTERM sauber herunterfahren.

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/config"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/db"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/i18n"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/middleware"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/routers"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/utils"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// 1. Konfiguration laden
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Fehler beim Laden der Konfiguration")
	}
	setLogLevel(cfg)

	// 2. I18N
	i18nSvc := i18n.NewInitI18nService()

	// 3. Postgres und Redis
	dbPool, err := db.ConnectPool(context.Background(), cfg.DATABASE.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Fehler beim Initialisieren des DB-Pools")
	}
	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("Fehler beim Initialisieren des Redis-Pools")
	}

	// 4. PASETO-Verifizierer für die Tokens des Identity-Providers
	paseto, err := utils.NewPasetoMaker(cfg.IDENTITY.Paseto.HexKey, cfg.IDENTITY.Paseto.Audience)
	if err != nil {
		log.Fatal().Err(err).Msg("Fehler beim Initialisieren des Paseto-Makers")
	}

	// 5. Fiber-App mit ErrorHandler, RequestID-, Sprach- und Logger-Middleware
	app := fiber.New(fiber.Config{
		AppName:      cfg.APP.Name,
		ErrorHandler: middleware.ErrorHandlerMiddleware(i18nSvc),
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.AcceptLanguageMiddleware("tr"))
	app.Use(middleware.LoggerMiddleware())

	// 6. Routen
	routers.SetupRoutes(app, dbPool, redisPool, i18nSvc, paseto, cfg)

	go func() {
		log.Info().Msgf("Starte %s auf Port %s (Zeitzone %s)", cfg.APP.Name, cfg.APP.Port, cfg.APP.Timezone)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.APP.Port)); err != nil {
			log.Fatal().Err(err).Msg("Der Server konnte nicht gestartet werden")
		}
	}()

	// 7. Graceful Shutdown: erst Fiber, dann die Pools
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	<-ctx.Done()
	stop()
	log.Warn().Msg("Shutdown-Signal empfangen... Vorbereitung zum Herunterfahren.")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("Beim Herunterfahren ist ein Fehler aufgetreten")
	}

	redisPool.Close()
	log.Info().Msg("Redis-Pool erfolgreich geschlossen.")
	dbPool.Close()
	log.Info().Msg("DB-Pool erfolgreich geschlossen.")
	log.Info().Msg("Server ordnungsgemäß heruntergefahren.")
}

func setLogLevel(cfg *config.AppConfig) {
	level, err := zerolog.ParseLevel(cfg.APP.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.APP.State == "prod" {
		// JSON-Logs für die Log-Pipeline
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Str("app", cfg.APP.Name).Logger()
	}
}
