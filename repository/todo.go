package repository

import (
	"context"

	"github.com/gotodo/backend/domain"
)

// UpdateFields carries the subset of todo fields a caller wants to change.
// A nil pointer means "leave untouched".
type UpdateFields struct {
	Title       *string
	Description *string
	Completed   *bool
}

// Empty reports whether no field was supplied.
func (f UpdateFields) Empty() bool {
	return f.Title == nil && f.Description == nil && f.Completed == nil
}

type TodoRepository interface {
	List(ctx context.Context) ([]domain.Todo, error)
	GetByID(ctx context.Context, id int64) (*domain.Todo, error)
	Create(ctx context.Context, title string, description *string) (*domain.Todo, error)
	Update(ctx context.Context, id int64, fields UpdateFields) (*domain.Todo, error)
	Toggle(ctx context.Context, id int64) (*domain.Todo, error)
	Delete(ctx context.Context, id int64) error
}
