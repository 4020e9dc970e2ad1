package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/amlds-dept/activity-reporter/pkg/config"
)

// NewSQLite opens (creating if necessary) the local report database.
// Foreign keys are enabled so child rows cascade with their activity.
func NewSQLite(cfg config.StorageConfig) (*sqlx.DB, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("database path not configured")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", cfg.DBPath)
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// Single-user desktop store; one writer connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
