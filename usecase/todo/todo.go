package todo

import (
	"context"

	"go.uber.org/zap"

	"github.com/gotodo/backend/domain"
	"github.com/gotodo/backend/repository"
)

type UseCase struct {
	todos  repository.TodoRepository
	logger *zap.Logger
}

func New(todos repository.TodoRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		todos:  todos,
		logger: logger,
	}
}

func (uc *UseCase) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	return uc.todos.List(ctx)
}

func (uc *UseCase) GetTodo(ctx context.Context, id int64) (*domain.Todo, error) {
	return uc.todos.GetByID(ctx, id)
}

func (uc *UseCase) CreateTodo(ctx context.Context, title string, description *string) (*domain.Todo, error) {
	created, err := uc.todos.Create(ctx, title, description)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("todo created", zap.Int64("id", created.ID))
	return created, nil
}

// UpdateTodo applies the supplied fields. With no fields at all it degrades
// to a plain read and leaves updated_at untouched.
func (uc *UseCase) UpdateTodo(ctx context.Context, id int64, fields repository.UpdateFields) (*domain.Todo, error) {
	if fields.Empty() {
		return uc.todos.GetByID(ctx, id)
	}
	return uc.todos.Update(ctx, id, fields)
}

func (uc *UseCase) ToggleTodo(ctx context.Context, id int64) (*domain.Todo, error) {
	return uc.todos.Toggle(ctx, id)
}

func (uc *UseCase) DeleteTodo(ctx context.Context, id int64) error {
	if err := uc.todos.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("todo deleted", zap.Int64("id", id))
	return nil
}
