package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxRetries     = 5
	retryInterval  = 2 * time.Second
	connectTimeout = 5 * time.Second
)

// NewPool opens a pgx connection pool for the networked record store.
// Connection attempts are bounded so a partitioned database surfaces as an
// error instead of hanging the process at startup.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	config.MaxConns = 8
	config.MinConns = 1
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = time.Minute
	config.ConnConfig.ConnectTimeout = connectTimeout

	var pool *pgxpool.Pool
	for attempt := 1; attempt <= maxRetries; attempt++ {
		pool, err = pgxpool.NewWithConfig(ctx, config)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
			pingErr := pool.Ping(pingCtx)
			cancel()
			if pingErr == nil {
				log.Println("database connected")
				return pool, nil
			}
			pool.Close()
			err = pingErr
		}

		log.Printf("database connection attempt %d/%d failed: %v", attempt, maxRetries, err)
		if attempt < maxRetries {
			time.Sleep(retryInterval)
		}
	}

	return nil, fmt.Errorf("database connection failed after %d attempts: %w", maxRetries, err)
}
