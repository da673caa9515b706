package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/models"
)

const itemsTable = "items"

// itemColumns is the column order every item query selects and scanItem reads.
var itemColumns = []string{"id", "title", "description", "completed", "priority", "due_date"}

// sqlite understands "?" placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildListItemsQuery() (string, []any, error) {
	return builder.
		Select(itemColumns...).
		From(itemsTable).
		OrderBy("id").
		ToSql()
}

func buildGetItemQuery(id int64) (string, []any, error) {
	return builder.
		Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertItemQuery(create models.ItemCreate) (string, []any, error) {
	return builder.
		Insert(itemsTable).
		Columns("title", "description", "completed", "priority", "due_date").
		Values(
			strings.TrimSpace(create.Title),
			nullableString(create.Description),
			false,
			create.Priority,
			nullableDate(create.DueDate),
		).
		ToSql()
}

// buildUpdateItemQuery sets only the columns present in update. Column order
// in the statement is alphabetical.
func buildUpdateItemQuery(id int64, update models.ItemUpdate) (string, []any, error) {
	set := make(map[string]any, 5)

	if update.Title != nil {
		set["title"] = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		set["description"] = nullableString(*update.Description)
	}
	if update.Completed != nil {
		set["completed"] = *update.Completed
	}
	if update.Priority != nil {
		set["priority"] = *update.Priority
	}
	if update.DueDate != nil {
		set["due_date"] = nullableDate(update.DueDate)
	}

	return builder.
		Update(itemsTable).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteItemQuery(id int64) (string, []any, error) {
	return builder.
		Delete(itemsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableDate(d *models.Date) any {
	if d == nil || d.IsZero() {
		return nil
	}
	return d.String()
}
