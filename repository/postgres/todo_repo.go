package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gotodo/backend/domain"
	"github.com/gotodo/backend/repository"
)

const todoColumns = "id, title, description, completed, created_at, updated_at"

type todoRepository struct {
	pool *pgxpool.Pool
}

// NewTodoRepository returns a Postgres-backed implementation of TodoRepository.
func NewTodoRepository(pool *pgxpool.Pool) repository.TodoRepository {
	return &todoRepository{pool: pool}
}

func (r *todoRepository) List(ctx context.Context) ([]domain.Todo, error) {
	const query = `
	SELECT id, title, description, completed, created_at, updated_at
	FROM todos
	ORDER BY created_at DESC, id DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := make([]domain.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, *todo)
	}
	return todos, rows.Err()
}

func (r *todoRepository) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	const query = `
	SELECT id, title, description, completed, created_at, updated_at
	FROM todos
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanTodo(row)
}

func (r *todoRepository) Create(ctx context.Context, title string, description *string) (*domain.Todo, error) {
	const query = `
	INSERT INTO todos (title, description, completed)
	VALUES ($1, $2, false)
	RETURNING id, title, description, completed, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query, title, description)
	return scanTodo(row)
}

// Update applies only the supplied fields in one statement and returns the
// resulting row. Callers are expected to pass at least one field; the
// zero-field read fallback lives in the use case.
func (r *todoRepository) Update(ctx context.Context, id int64, fields repository.UpdateFields) (*domain.Todo, error) {
	if fields.Empty() {
		return nil, domain.ErrInvalidPayload
	}
	query, args := buildUpdateQuery(id, fields)
	row := r.pool.QueryRow(ctx, query, args...)
	return scanTodo(row)
}

func (r *todoRepository) Toggle(ctx context.Context, id int64) (*domain.Todo, error) {
	// The negation runs inside the statement so concurrent toggles on the
	// same row cannot lose updates.
	const query = `
	UPDATE todos
	SET completed = NOT completed, updated_at = NOW()
	WHERE id = $1
	RETURNING id, title, description, completed, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanTodo(row)
}

func (r *todoRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM todos WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

func scanTodo(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Todo, error) {
	var todo domain.Todo
	if err := row.Scan(
		&todo.ID,
		&todo.Title,
		&todo.Description,
		&todo.Completed,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, err
	}
	return &todo, nil
}
