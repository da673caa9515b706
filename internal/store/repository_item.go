package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// itemRepository is the SQLite-backed implementation of [ItemRepository].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so database failures are traced with the item id.
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] on db.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func scanItem(row rowScanner) (models.Item, error) {
	var (
		item        models.Item
		description sql.NullString
		dueDate     models.Date
	)

	err := row.Scan(
		&item.ID,
		&item.Title,
		&description,
		&item.Completed,
		&item.Priority,
		&dueDate,
	)
	if err != nil {
		return models.Item{}, err
	}

	item.Description = description.String
	if !dueDate.IsZero() {
		item.DueDate = &dueDate
	}

	return item, nil
}

// ListAll returns every stored item in ascending id order, which is the
// order of insertion. An empty store yields an empty, non-nil slice.
func (r *itemRepository) ListAll(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery()
	if err != nil {
		log.Err(err).Str("func", "itemRepository.ListAll").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.ListAll").Msg("failed to execute query for listing items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 32)
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "itemRepository.ListAll").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "itemRepository.ListAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// Create inserts the item and reads the stored row back inside the same
// transaction, so the returned item reflects column defaults.
func (r *itemRepository) Create(ctx context.Context, create models.ItemCreate) (models.Item, error) {
	log := logger.FromContext(ctx)

	if !create.HasTitle() {
		return models.Item{}, validators.ErrEmptyTitle
	}

	query, args, err := buildInsertItemQuery(create)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Create").Msg("failed to create query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Create").Msg("failed to begin transaction")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Create").Msg("failed to insert item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Create").Msg("failed to read generated id")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	item, err := r.get(ctx, tx, id)
	if err != nil {
		return models.Item{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "itemRepository.Create").Int64("item_id", id).Msg("failed to commit transaction")
		return models.Item{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return item, nil
}

// Get returns one item by id.
func (r *itemRepository) Get(ctx context.Context, id int64) (models.Item, error) {
	return r.get(ctx, r.DB, id)
}

func (r *itemRepository) get(ctx context.Context, q queryRower, id int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetItemQuery(id)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.get").Int64("item_id", id).Msg("failed to create query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanItem(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "itemRepository.get").Int64("item_id", id).Msg("failed to scan item row")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// Update writes the provided fields and returns the resulting row. An empty
// update writes nothing and returns the current row.
func (r *itemRepository) Update(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return r.Get(ctx, id)
	}
	if update.Title != nil && !(models.ItemCreate{Title: *update.Title}).HasTitle() {
		return models.Item{}, validators.ErrEmptyTitle
	}

	query, args, err := buildUpdateItemQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Update").Int64("item_id", id).Msg("failed to create query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Update").Msg("failed to begin transaction")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Update").Int64("item_id", id).Msg("failed to update item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Update").Int64("item_id", id).Msg("failed to read affected rows")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Item{}, ErrItemNotFound
	}

	item, err := r.get(ctx, tx, id)
	if err != nil {
		return models.Item{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "itemRepository.Update").Int64("item_id", id).Msg("failed to commit transaction")
		return models.Item{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return item, nil
}

// Delete removes the row permanently and reports whether it existed.
func (r *itemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(id)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Delete").Int64("item_id", id).Msg("failed to create query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Delete").Int64("item_id", id).Msg("failed to delete item")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Delete").Int64("item_id", id).Msg("failed to read affected rows")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}
