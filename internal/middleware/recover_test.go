package middleware_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/gotodo/backend/internal/middleware"
)

func TestRecover_PanicYieldsErrorBody(t *testing.T) {
	wrapped := middleware.Recover(nil)(func(ctx *fasthttp.RequestCtx) {
		panic("boom")
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(http.MethodGet)
	ctx.Request.SetRequestURI("/api/todos")

	require.NotPanics(t, func() { wrapped(ctx) })
	require.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
	require.Equal(t, "Error", body.Status)
	require.Equal(t, "internal server error", body.Message)
}

func TestRecover_PassThrough(t *testing.T) {
	called := false
	wrapped := middleware.Recover(nil)(func(ctx *fasthttp.RequestCtx) {
		called = true
		ctx.SetStatusCode(http.StatusOK)
	})

	ctx := &fasthttp.RequestCtx{}
	wrapped(ctx)

	require.True(t, called)
	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
}
