package store

import (
	"database/sql"

	"github.com/okhapkin/go-match-sync/internal/logger"
	"github.com/okhapkin/go-match-sync/migrations"
)

// DB wraps the raw connection handle shared by both repositories. All
// repositories embed it, so query methods are promoted from *sql.DB.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations to this connection.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
