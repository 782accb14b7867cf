package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/gotodo/backend/api/handler"
	"github.com/gotodo/backend/domain"
	"github.com/gotodo/backend/repository"
	todoUC "github.com/gotodo/backend/usecase/todo"
)

// --- fakes ---

type fakeRepo struct {
	listFn   func(ctx context.Context) ([]domain.Todo, error)
	getFn    func(ctx context.Context, id int64) (*domain.Todo, error)
	createFn func(ctx context.Context, title string, description *string) (*domain.Todo, error)
	updateFn func(ctx context.Context, id int64, fields repository.UpdateFields) (*domain.Todo, error)
	toggleFn func(ctx context.Context, id int64) (*domain.Todo, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeRepo) List(ctx context.Context) ([]domain.Todo, error) { return f.listFn(ctx) }
func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	return f.getFn(ctx, id)
}
func (f *fakeRepo) Create(ctx context.Context, title string, description *string) (*domain.Todo, error) {
	return f.createFn(ctx, title, description)
}
func (f *fakeRepo) Update(ctx context.Context, id int64, fields repository.UpdateFields) (*domain.Todo, error) {
	return f.updateFn(ctx, id, fields)
}
func (f *fakeRepo) Toggle(ctx context.Context, id int64) (*domain.Todo, error) {
	return f.toggleFn(ctx, id)
}
func (f *fakeRepo) Delete(ctx context.Context, id int64) error { return f.deleteFn(ctx, id) }

// --- helpers ---

func newHandler(repo repository.TodoRepository) *handler.TodoHandler {
	return handler.NewTodoHandler(todoUC.New(repo, nil), nil, nil)
}

func newRequestCtx(method, body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	return ctx
}

type envelope struct {
	OK      bool            `json:"ok"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func decodeEnvelope(t *testing.T, ctx *fasthttp.RequestCtx) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &env))
	return env
}

// --- tests ---

func TestCreate_TrimsTitleAndReturns201(t *testing.T) {
	now := time.Now().UTC()
	repo := &fakeRepo{
		createFn: func(ctx context.Context, title string, description *string) (*domain.Todo, error) {
			require.Equal(t, "Buy milk", title)
			require.Nil(t, description)
			return &domain.Todo{ID: 1, Title: title, CreatedAt: now, UpdatedAt: now}, nil
		},
	}

	ctx := newRequestCtx(http.MethodPost, `{"title":" Buy milk "}`)
	newHandler(repo).Create(ctx)

	require.Equal(t, http.StatusCreated, ctx.Response.StatusCode())
	env := decodeEnvelope(t, ctx)
	require.True(t, env.OK)
	require.Equal(t, "todo created successfully", env.Message)

	var created domain.Todo
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.Equal(t, "Buy milk", created.Title)
	require.False(t, created.Completed)
	require.Nil(t, created.Description)
}

func TestCreate_BlankTitleRejected(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, title string, description *string) (*domain.Todo, error) {
			t.Fatalf("Create() should not be reached on invalid input")
			return nil, nil
		},
	}

	for _, body := range []string{`{}`, `{"title":"   "}`} {
		ctx := newRequestCtx(http.MethodPost, body)
		newHandler(repo).Create(ctx)

		require.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
		env := decodeEnvelope(t, ctx)
		require.False(t, env.OK)
		require.Equal(t, "title is required", env.Message)
	}
}

func TestCreate_MalformedBodyRejected(t *testing.T) {
	ctx := newRequestCtx(http.MethodPost, `{bad json}`)
	newHandler(&fakeRepo{}).Create(ctx)

	require.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestGetByID_InvalidID(t *testing.T) {
	ctx := newRequestCtx(http.MethodGet, "")
	ctx.SetUserValue("id", "abc")
	newHandler(&fakeRepo{}).GetByID(ctx)

	require.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	env := decodeEnvelope(t, ctx)
	require.False(t, env.OK)
	require.Equal(t, "invalid id", env.Message)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeRepo{
		getFn: func(ctx context.Context, id int64) (*domain.Todo, error) {
			return nil, domain.ErrTodoNotFound
		},
	}

	ctx := newRequestCtx(http.MethodGet, "")
	ctx.SetUserValue("id", "99")
	newHandler(repo).GetByID(ctx)

	require.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
	env := decodeEnvelope(t, ctx)
	require.False(t, env.OK)
	require.Equal(t, "todo not found", env.Message)
}

func TestList_ReturnsData(t *testing.T) {
	repo := &fakeRepo{
		listFn: func(ctx context.Context) ([]domain.Todo, error) {
			return []domain.Todo{{ID: 2, Title: "b"}, {ID: 1, Title: "a"}}, nil
		},
	}

	ctx := newRequestCtx(http.MethodGet, "")
	newHandler(repo).List(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	env := decodeEnvelope(t, ctx)
	require.True(t, env.OK)

	var todos []domain.Todo
	require.NoError(t, json.Unmarshal(env.Data, &todos))
	require.Len(t, todos, 2)
	require.Equal(t, int64(2), todos[0].ID)
}

func TestUpdate_EmptyBodyRejected(t *testing.T) {
	repo := &fakeRepo{
		updateFn: func(ctx context.Context, id int64, fields repository.UpdateFields) (*domain.Todo, error) {
			t.Fatalf("Update() should not be reached on empty body")
			return nil, nil
		},
		getFn: func(ctx context.Context, id int64) (*domain.Todo, error) {
			t.Fatalf("GetByID() should not be reached on empty body")
			return nil, nil
		},
	}

	ctx := newRequestCtx(http.MethodPut, `{}`)
	ctx.SetUserValue("id", "1")
	newHandler(repo).Update(ctx)

	require.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	env := decodeEnvelope(t, ctx)
	require.False(t, env.OK)
	require.Equal(t, "at least one field is required", env.Message)
}

func TestUpdate_PartialFieldsForwarded(t *testing.T) {
	repo := &fakeRepo{
		updateFn: func(ctx context.Context, id int64, fields repository.UpdateFields) (*domain.Todo, error) {
			require.Equal(t, int64(5), id)
			require.NotNil(t, fields.Title)
			require.Equal(t, "Walk the dog", *fields.Title)
			require.Nil(t, fields.Description)
			require.Nil(t, fields.Completed)
			return &domain.Todo{ID: 5, Title: *fields.Title}, nil
		},
	}

	ctx := newRequestCtx(http.MethodPut, `{"title":"  Walk the dog  "}`)
	ctx.SetUserValue("id", "5")
	newHandler(repo).Update(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	env := decodeEnvelope(t, ctx)
	require.True(t, env.OK)
	require.Equal(t, "todo updated successfully", env.Message)
}

func TestUpdate_CompletedOnly(t *testing.T) {
	repo := &fakeRepo{
		updateFn: func(ctx context.Context, id int64, fields repository.UpdateFields) (*domain.Todo, error) {
			require.Nil(t, fields.Title)
			require.Nil(t, fields.Description)
			require.NotNil(t, fields.Completed)
			require.True(t, *fields.Completed)
			return &domain.Todo{ID: id, Completed: true}, nil
		},
	}

	ctx := newRequestCtx(http.MethodPut, `{"completed":true}`)
	ctx.SetUserValue("id", "3")
	newHandler(repo).Update(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
}

func TestToggle_ReturnsUpdatedEntity(t *testing.T) {
	repo := &fakeRepo{
		toggleFn: func(ctx context.Context, id int64) (*domain.Todo, error) {
			return &domain.Todo{ID: id, Title: "x", Completed: true}, nil
		},
	}

	ctx := newRequestCtx(http.MethodPatch, "")
	ctx.SetUserValue("id", "7")
	newHandler(repo).Toggle(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	env := decodeEnvelope(t, ctx)
	require.True(t, env.OK)

	var todo domain.Todo
	require.NoError(t, json.Unmarshal(env.Data, &todo))
	require.True(t, todo.Completed)
}

func TestDelete_SuccessHasMessageOnly(t *testing.T) {
	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, id int64) error { return nil },
	}

	ctx := newRequestCtx(http.MethodDelete, "")
	ctx.SetUserValue("id", "1")
	newHandler(repo).Delete(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &raw))
	require.Equal(t, true, raw["ok"])
	require.Equal(t, "todo deleted successfully", raw["message"])
	require.NotContains(t, raw, "data")
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, id int64) error { return domain.ErrTodoNotFound },
	}

	ctx := newRequestCtx(http.MethodDelete, "")
	ctx.SetUserValue("id", "12")
	newHandler(repo).Delete(ctx)

	require.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
}

func TestStorageError_YieldsServerErrorBody(t *testing.T) {
	repo := &fakeRepo{
		listFn: func(ctx context.Context) ([]domain.Todo, error) {
			return nil, errors.New("connection reset by peer")
		},
	}

	ctx := newRequestCtx(http.MethodGet, "")
	newHandler(repo).List(ctx)

	require.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
	require.Equal(t, "Error", body.Status)
	require.Equal(t, "connection reset by peer", body.Message)
}
