package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPool richtet einen Verbindungs-Pool zur Datenbank ein und prüft ihn mit einem Ping.
func ConnectPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("Fehler beim Parsen der Datenbank-DSN: %w", err)
	}

	cfg.MaxConns = 20                       // Maximale Anzahl der Verbindungen im Pool
	cfg.MinConns = 5                        // Minimale Anzahl der Verbindungen im Pool
	cfg.MaxConnIdleTime = time.Hour         // Maximale Leerlaufzeit einer Verbindung
	cfg.HealthCheckPeriod = time.Minute * 5 // Periodische Überprüfung der Verbindungen

	ctx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("Fehler beim Erstellen des Datenbank-Pools: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("Datenbank nicht erreichbar: %w", err)
	}

	return pool, nil
}
