package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // database/sql driver, registered as "sqlite"

	"github.com/studysphere/backend/internal/config"
	"github.com/studysphere/backend/internal/pkg/logger"
)

// SQLiteDB wraps the database handle together with the file it lives in.
type SQLiteDB struct {
	DB   *sql.DB
	Path string
}

// NewSQLiteDB opens the database file, creating it (and its directory)
// on first run. SQLite serializes concurrent writers itself; the
// busy_timeout pragma makes waiting writers block instead of failing.
func NewSQLiteDB(cfg *config.Config) (*SQLiteDB, error) {
	path := cfg.Database.Path

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	_, statErr := os.Stat(path)
	firstRun := os.IsNotExist(statErr)

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		url.PathEscape(path))
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	maxLifetime, err := time.ParseDuration(cfg.Database.ConnMaxLifetime)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to parse connection max lifetime: %w", err)
	}
	sqlDB.SetConnMaxLifetime(maxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	if firstRun {
		logger.Info().Str("path", path).Msg("Database file created")
	}

	return &SQLiteDB{DB: sqlDB, Path: path}, nil
}

// Close closes the underlying handle
func (db *SQLiteDB) Close() error {
	if db.DB != nil {
		return db.DB.Close()
	}
	return nil
}
