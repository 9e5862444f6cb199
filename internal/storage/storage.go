// Package storage opens the configured durable key-value backend and
// brings its schema up to date.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"vocablayers/internal/config"
	"vocablayers/internal/repository"
	"vocablayers/internal/repository/memory"
	"vocablayers/internal/repository/postgres"
	"vocablayers/internal/repository/sqlite"
	"vocablayers/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitedb "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	maxRetries = 30
	retryDelay = 2 * time.Second
)

// Backend is an opened key-value repository together with its database handle
type Backend struct {
	Repo repository.KeyValueRepository
	db   *sql.DB
}

// Close releases the database handle, if any
func (b *Backend) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// Open connects to the backend selected by cfg.Driver and runs migrations
func Open(cfg config.StorageConfig, logger *zap.Logger) (*Backend, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		logger.Warn("Using in-memory storage, data will be lost on restart")
		return &Backend{Repo: memory.NewKVRepo()}, nil

	case config.DriverSQLite:
		db, err := OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := runMigrations(db, config.DriverSQLite, logger); err != nil {
			db.Close()
			return nil, err
		}
		return &Backend{Repo: sqlite.NewKVRepo(db), db: db}, nil

	case config.DriverPostgres:
		db, err := connectPostgres(cfg.DSN(), logger)
		if err != nil {
			return nil, err
		}
		if err := runMigrations(db, config.DriverPostgres, logger); err != nil {
			db.Close()
			return nil, err
		}
		return &Backend{Repo: postgres.NewKVRepo(db), db: db}, nil
	}

	return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
}

// OpenSQLite opens a SQLite database file
func OpenSQLite(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	return db, nil
}

// connectPostgres connects to PostgreSQL with retries
func connectPostgres(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations applies the embedded migrations for driver
func runMigrations(db *sql.DB, driver string, logger *zap.Logger) error {
	var (
		instance database.Driver
		err      error
	)
	switch driver {
	case config.DriverPostgres:
		instance, err = postgresdb.WithInstance(db, &postgresdb.Config{})
	case config.DriverSQLite:
		instance, err = sqlitedb.WithInstance(db, &sqlitedb.Config{})
	default:
		return fmt.Errorf("no migrations for driver %q", driver)
	}
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrations.FS, driver)
	if err != nil {
		return fmt.Errorf("failed to open migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, instance)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply", zap.String("driver", driver))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied successfully", zap.String("driver", driver))
	return nil
}
