package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore-api/internal/config"
	"bookstore-api/pkg/logger"
)

// Querier is the subset of pgxpool.Pool the repositories use. Tests
// substitute a pgxmock pool.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresDB owns the pgx connection pool and its lifecycle.
type PostgresDB struct {
	Pool *pgxpool.Pool

	cfg config.DatabaseConfig
	log logger.Logger
}

func NewPostgresDB(cfg config.DatabaseConfig, log logger.Logger) *PostgresDB {
	return &PostgresDB{cfg: cfg, log: log}
}

func (db *PostgresDB) connString() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s",
		db.cfg.User, db.cfg.Password, db.cfg.Host, db.cfg.Port, db.cfg.Database,
	)
}

func (db *PostgresDB) poolConfig() (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(db.connString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	cfg.MaxConns = db.cfg.MaxConns
	cfg.MinConns = db.cfg.MinConns
	cfg.MaxConnLifetime = db.cfg.MaxConnLifetime
	cfg.MaxConnIdleTime = db.cfg.MaxConnIdleTime
	cfg.HealthCheckPeriod = db.cfg.HealthCheckPeriod
	cfg.ConnConfig.ConnectTimeout = db.cfg.ConnectTimeout

	return cfg, nil
}

// Connect establishes the pool, retrying with exponential backoff.
func (db *PostgresDB) Connect(ctx context.Context) error {
	cfg, err := db.poolConfig()
	if err != nil {
		return err
	}

	var pool *pgxpool.Pool
	var lastErr error

	for attempt := 1; attempt <= db.cfg.MaxRetries; attempt++ {
		connectCtx, cancel := context.WithTimeout(ctx, db.cfg.ConnectTimeout)
		pool, lastErr = pgxpool.NewWithConfig(connectCtx, cfg)
		cancel()

		if lastErr == nil {
			if err := pool.Ping(ctx); err != nil {
				pool.Close()
				lastErr = err
			} else {
				db.Pool = pool
				db.log.Info("database connected", map[string]interface{}{
					"host":    db.cfg.Host,
					"attempt": attempt,
				})
				return nil
			}
		}

		db.log.Warn("database connection attempt failed", map[string]interface{}{
			"attempt": attempt,
			"error":   lastErr.Error(),
		})

		if attempt < db.cfg.MaxRetries {
			delay := db.cfg.RetryDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return fmt.Errorf("failed to connect after %d attempts: %w", db.cfg.MaxRetries, lastErr)
}

// HealthCheck pings the pool with a short deadline.
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(healthCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
