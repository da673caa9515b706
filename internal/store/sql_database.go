package store

import (
	"database/sql"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/migrations"
)

// DB is the store's connection to the SQLite file.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate runs the idempotent schema initialization.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
