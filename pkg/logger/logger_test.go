package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture returns a Logger writing JSON lines into the buffer.
func capture(buf *bytes.Buffer) *Logger {
	return NewWithHandler(slog.NewJSONHandler(buf, nil))
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	return record
}

func TestWithComponentTagsRecords(t *testing.T) {
	var buf bytes.Buffer
	log := capture(&buf).WithComponent("api")

	log.Info("hello")

	record := lastRecord(t, &buf)
	assert.Equal(t, "api", record["component"])
	assert.Equal(t, "hello", record["msg"])
}

func TestWithErrorTagsRecords(t *testing.T) {
	var buf bytes.Buffer
	log := capture(&buf).WithError(errors.New("boom"))

	log.Error("failed")

	record := lastRecord(t, &buf)
	assert.Equal(t, "boom", record["error"])
}

func TestWithContextExtractsRequestID(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithRequestID(context.Background(), "req-123")

	capture(&buf).WithContext(ctx).Info("handled")

	record := lastRecord(t, &buf)
	assert.Equal(t, "req-123", record["request_id"])
}

func TestWithContextWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer

	capture(&buf).WithContext(context.Background()).Info("handled")

	record := lastRecord(t, &buf)
	_, present := record["request_id"]
	assert.False(t, present)
}

func TestRequestIDFromContext(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-456")

	assert.Equal(t, "req-456", RequestIDFromContext(ctx))
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}

func TestNewRespectsLevel(t *testing.T) {
	// Debug records are dropped at the default info level.
	var buf bytes.Buffer
	log := NewWithHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	log.Debug("invisible")
	assert.Zero(t, buf.Len())

	log.Info("visible")
	assert.NotZero(t, buf.Len())
}
