package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler captures slog records for assertions.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) recorded() []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]slog.Record(nil), h.records...)
}

func recordAttrs(r slog.Record) map[string]string {
	attrs := make(map[string]string)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.String()
		return true
	})
	return attrs
}

func TestRequestLoggerLogsCompletedRequests(t *testing.T) {
	rec := &recordingHandler{}
	logger := slog.New(rec)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	records := rec.recorded()
	require.Len(t, records, 1)
	assert.Equal(t, "request completed", records[0].Message)
	assert.Equal(t, slog.LevelInfo, records[0].Level)

	attrs := recordAttrs(records[0])
	assert.Equal(t, "GET", attrs["method"])
	assert.Equal(t, "/ping", attrs["path"])
	assert.Equal(t, "204", attrs["status"])
	assert.NotEmpty(t, attrs["request_id"])
}

func TestRequestLoggerQuietsHealthProbes(t *testing.T) {
	rec := &recordingHandler{}
	logger := slog.New(rec)

	r := chi.NewRouter()
	r.Use(RequestLogger(logger))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	records := rec.recorded()
	require.Len(t, records, 1)
	assert.Equal(t, slog.LevelDebug, records[0].Level)
}
