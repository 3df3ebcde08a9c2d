package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/okhapkin/go-match-sync/internal/config"
	"github.com/okhapkin/go-match-sync/internal/logger"
)

// NewConnectSQLite opens the device-local SQLite database named by cfg.DSN,
// creating the file (and its parent directory) on first run. The connection
// is pinged before use so a corrupt or unreadable file fails at startup
// rather than on the first swipe.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if err := ensureDBFile(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("create database file %q: %w", cfg.DSN, err)
	}

	// foreign_keys is off by default in sqlite3; busy_timeout lets the
	// sync job and the UI thread share the single writer politely.
	conn, err := sql.Open("sqlite3", cfg.DSN+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening database")
		return nil, fmt.Errorf("open sqlite database %q: %w", cfg.DSN, err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error pinging database")
		return nil, fmt.Errorf("ping sqlite database %q: %w", cfg.DSN, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", cfg.DSN).Msg("connected to local database")

	return &DB{DB: conn, logger: log}, nil
}

func ensureDBFile(dbFile string) error {
	if _, err := os.Stat(dbFile); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if dir := filepath.Dir(dbFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(dbFile)
	if err != nil {
		return err
	}
	return f.Close()
}
