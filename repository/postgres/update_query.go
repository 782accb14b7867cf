package postgres

import (
	"fmt"
	"strings"

	"github.com/gotodo/backend/repository"
)

// buildUpdateQuery assembles a partial UPDATE from the supplied fields as an
// ordered list of (column, value) pairs. Columns are always emitted in
// title, description, completed order so the generated statement is
// reproducible regardless of request field order. updated_at is refreshed
// whenever at least one field is present.
func buildUpdateQuery(id int64, fields repository.UpdateFields) (string, []interface{}) {
	set := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if fields.Title != nil {
		add("title", *fields.Title)
	}
	if fields.Description != nil {
		add("description", *fields.Description)
	}
	if fields.Completed != nil {
		add("completed", *fields.Completed)
	}
	set = append(set, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE todos SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "),
		len(args),
		todoColumns,
	)
	return query, args
}
