package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/gotodo/backend/api/handler"
)

type Handlers struct {
	Todo   *apiHandler.TodoHandler
	Health *apiHandler.HealthHandler
}

func New(handlers Handlers, recoverMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	wrap := recoverMiddleware
	if wrap == nil {
		wrap = func(next fasthttp.RequestHandler) fasthttp.RequestHandler { return next }
	}

	r.GET("/health", wrap(handlers.Health.Check))

	// Todo routes
	r.GET("/api/todos", wrap(handlers.Todo.List))
	r.GET("/api/todos/{id}", wrap(handlers.Todo.GetByID))
	r.POST("/api/todos", wrap(handlers.Todo.Create))
	r.PUT("/api/todos/{id}", wrap(handlers.Todo.Update))
	r.PATCH("/api/todos/{id}/toggle", wrap(handlers.Todo.Toggle))
	r.DELETE("/api/todos/{id}", wrap(handlers.Todo.Delete))

	return r
}
