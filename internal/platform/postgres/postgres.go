package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	pingTimeout  = 5 * time.Second
	maxOpenConns = 10
	maxIdleConns = 2
)

// ErrEmptyDSN is returned by Connect when no DSN was configured.
var ErrEmptyDSN = errors.New("postgres DSN is empty")

// Connect opens the catalog database and pings it. The catalog is read far
// more than written, so the pool stays small.
func Connect(ctx context.Context, dsn string, logger *slog.Logger) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, ErrEmptyDSN
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: newGormLogger(logger)})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap postgres pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// ConnectOptional is Connect for callers that can run without a database.
// Any failure is logged and yields a nil DB with a no-op cleanup.
func ConnectOptional(ctx context.Context, dsn string, logger *slog.Logger) (*gorm.DB, func()) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := Connect(ctx, dsn, logger)
	switch {
	case errors.Is(err, ErrEmptyDSN):
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory catalog")
		return nil, func() {}
	case err != nil:
		logger.Warn("failed to connect to postgres, falling back to in-memory catalog", slog.String("error", err.Error()))
		return nil, func() {}
	}
	logger.Info("postgres connection established")
	return db, Closer(db)
}

// Closer returns a cleanup func that closes the pool behind db.
func Closer(db *gorm.DB) func() {
	return func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

// newGormLogger routes GORM warnings and errors to slog at warn level. Slow
// queries are reported above 200ms; record-not-found is a normal catalog miss.
func newGormLogger(logger *slog.Logger) gormlogger.Interface {
	if logger == nil {
		logger = slog.Default()
	}
	return gormlogger.New(slog.NewLogLogger(logger.Handler(), slog.LevelWarn), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
