package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// Storages groups the repositories of the item store into a single value
// that can be passed around the service layer.
type Storages struct {
	// ItemRepository is the SQLite-backed item collection, or the
	// unavailable stand-in when the store could not be opened.
	ItemRepository ItemRepository

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens an SQLite connection to the file path in cfg.DB.DSN, creating
//     the file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a fresh [ItemRepository].
//
// Opening an existing store never alters its rows.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite connection error: %w", ErrStoreUnavailable, err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: migration failed: %w", ErrStoreUnavailable, err)
	}

	return &Storages{
		ItemRepository: NewItemRepository(db, logger),
		db:             db,
	}, nil
}

// NewUnavailableStorages returns storages whose every operation fails with
// [ErrStoreUnavailable] wrapping cause. Applications use it to keep serving
// an error state when [NewStorages] fails.
func NewUnavailableStorages(cause error) *Storages {
	return &Storages{
		ItemRepository: NewUnavailableItemRepository(cause),
	}
}

// Available reports whether the storages are backed by an open store file.
func (s *Storages) Available() bool {
	return s.db != nil
}

// Close releases the underlying connection. It is a no-op for unavailable
// storages.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
