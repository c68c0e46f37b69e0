package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHelloRouter(greeting string) chi.Router {
	r := chi.NewRouter()
	handler := NewHelloHandler(greeting, slog.Default())
	r.Get("/api/hello/", handler.GetHello)
	return r
}

func TestGetHelloDefaultGreeting(t *testing.T) {
	r := newHelloRouter("Hello from Django backend!")

	req := httptest.NewRequest("GET", "/api/hello/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Hello from Django backend!"}`, rr.Body.String())
}

func TestGetHelloMethodNotAllowed(t *testing.T) {
	r := newHelloRouter("Hello from Django backend!")

	req := httptest.NewRequest("POST", "/api/hello/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
