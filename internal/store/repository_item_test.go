package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	selectAllSQL = "SELECT id, title, description, completed, priority, due_date FROM items ORDER BY id"
	selectOneSQL = "SELECT id, title, description, completed, priority, due_date FROM items WHERE id = ?"
	insertSQL    = "INSERT INTO items (title,description,completed,priority,due_date) VALUES (?,?,?,?,?)"
	completeSQL  = "UPDATE items SET completed = ? WHERE id = ?"
	deleteSQL    = "DELETE FROM items WHERE id = ?"
)

var itemRowColumns = []string{"id", "title", "description", "completed", "priority", "due_date"}

func newTestItemRepo(t *testing.T) (*itemRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &itemRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock
}

func TestItemRepository_ListAll_Success(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	rows := sqlmock.NewRows(itemRowColumns).
		AddRow(int64(1), "Buy milk", nil, false, nil, nil).
		AddRow(int64(2), "Pay rent", "before noon", true, "High", "2026-11-03")

	mock.ExpectQuery(regexp.QuoteMeta(selectAllSQL)).WillReturnRows(rows)

	items, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, models.Item{ID: 1, Title: "Buy milk"}, items[0])
	assert.Equal(t, int64(2), items[1].ID)
	assert.Equal(t, "before noon", items[1].Description)
	assert.True(t, items[1].Completed)
	assert.Equal(t, models.PriorityHigh, items[1].Priority)
	require.NotNil(t, items[1].DueDate)
	assert.Equal(t, "2026-11-03", items[1].DueDate.String())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_ListAll_Empty(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectAllSQL)).WillReturnRows(sqlmock.NewRows(itemRowColumns))

	items, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestItemRepository_ListAll_QueryError(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectAllSQL)).WillReturnError(errors.New("disk I/O error"))

	_, err := repo.ListAll(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestItemRepository_ListAll_ScanError(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	rows := sqlmock.NewRows(itemRowColumns).
		AddRow("not-a-number", "x", nil, false, nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta(selectAllSQL)).WillReturnRows(rows)

	_, err := repo.ListAll(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestItemRepository_Create_Success(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertSQL)).
		WithArgs("Buy milk", nil, false, nil, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectOneSQL)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(itemRowColumns).AddRow(int64(1), "Buy milk", nil, false, nil, nil))
	mock.ExpectCommit()

	item, err := repo.Create(context.Background(), models.ItemCreate{Title: "Buy milk"})
	require.NoError(t, err)

	assert.Equal(t, models.Item{ID: 1, Title: "Buy milk"}, item)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Create_BlankTitleWritesNothing(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	_, err := repo.Create(context.Background(), models.ItemCreate{Title: "   "})
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)

	// no statements expected
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Create_ExecErrorRollsBack(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertSQL)).WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), models.ItemCreate{Title: "Buy milk"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Create_BeginError(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("readonly database"))

	_, err := repo.Create(context.Background(), models.ItemCreate{Title: "Buy milk"})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestItemRepository_Create_CommitError(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertSQL)).WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectOneSQL)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(itemRowColumns).AddRow(int64(4), "Buy milk", nil, false, nil, nil))
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	_, err := repo.Create(context.Background(), models.ItemCreate{Title: "Buy milk"})
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestItemRepository_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestItemRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(selectOneSQL)).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(itemRowColumns).AddRow(int64(5), "Walk dog", "", false, "Low", nil))

		item, err := repo.Get(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, models.Item{ID: 5, Title: "Walk dog", Priority: models.PriorityLow}, item)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestItemRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(selectOneSQL)).
			WithArgs(int64(5)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), 5)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestItemRepository_Update_Complete(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(completeSQL)).
		WithArgs(true, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectOneSQL)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(itemRowColumns).AddRow(int64(2), "Pay rent", nil, true, nil, nil))
	mock.ExpectCommit()

	item, err := repo.Update(context.Background(), 2, models.MarkCompleted())
	require.NoError(t, err)
	assert.True(t, item.Completed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Update_MissingID(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(completeSQL)).
		WithArgs(true, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), 99, models.MarkCompleted())
	assert.ErrorIs(t, err, ErrItemNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Update_EmptyReadsCurrentRow(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectOneSQL)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(itemRowColumns).AddRow(int64(2), "Pay rent", nil, false, nil, nil))

	item, err := repo.Update(context.Background(), 2, models.ItemUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "Pay rent", item.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Update_BlankTitle(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	_, err := repo.Update(context.Background(), 2, models.ItemUpdate{Title: ptr("")})
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "existing", affected: 1, want: true},
		{name: "missing", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestItemRepo(t)

			mock.ExpectExec(regexp.QuoteMeta(deleteSQL)).
				WithArgs(int64(8)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			deleted, err := repo.Delete(context.Background(), 8)
			require.NoError(t, err)
			assert.Equal(t, tt.want, deleted)
		})
	}
}

func TestItemRepository_Delete_ExecError(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteSQL)).WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Delete(context.Background(), 8)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
