package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ride-dispatch/internal/config"
	"ride-dispatch/internal/mylogger"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	_ "ride-dispatch/migration"
)

type DB struct {
	ctx   context.Context
	cfg   *config.DBconfig
	mylog mylogger.Logger
	pool  *pgxpool.Pool
}

// New initializes and returns a pooled DB handle. Per-request concurrency is
// delegated entirely to the pool.
func New(ctx context.Context, dbCfg *config.DBconfig, mylog mylogger.Logger) (*DB, error) {
	d := &DB{
		cfg:   dbCfg,
		ctx:   ctx,
		mylog: mylog,
	}

	pool, err := pgxpool.New(ctx, dsn(dbCfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %v", err)
	}
	d.pool = pool

	return d, nil
}

func (d *DB) Pool() *pgxpool.Pool {
	return d.pool
}

// Close releases the pool
func (d *DB) Close() error {
	d.pool.Close()
	return nil
}

// IsAlive pings the DB to verify it's responsive
func (d *DB) IsAlive() error {
	if d.pool == nil {
		return fmt.Errorf("DB is not initialized")
	}
	return d.pool.Ping(d.ctx)
}

// Migrate runs the goose migrations over pgx's database/sql driver.
func Migrate(ctx context.Context, dbCfg *config.DBconfig) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %v", err)
	}

	sqlDB, err := sql.Open("pgx", dsn(dbCfg))
	if err != nil {
		return fmt.Errorf("open database: %v", err)
	}
	defer sqlDB.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping database: %v", err)
	}

	if err := goose.UpContext(ctx, sqlDB, "migration"); err != nil {
		return fmt.Errorf("goose up: %v", err)
	}
	return nil
}

func dsn(cfg *config.DBconfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
	)
}
