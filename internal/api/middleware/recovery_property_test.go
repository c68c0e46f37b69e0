package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestRecoveryConvertsPanicsToInternalErrors tests that any panicking handler
// produces a structured 500 response and exactly one error log record.
func TestRecoveryConvertsPanicsToInternalErrors(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("panics become 500 responses with one error log", prop.ForAll(
		func(panicMsg string) bool {
			rec := &recordingHandler{}
			logger := slog.New(rec)

			r := chi.NewRouter()
			r.Use(Recovery(logger))
			r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
				panic(panicMsg)
			})

			req := httptest.NewRequest("GET", "/boom", nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if rr.Code != http.StatusInternalServerError {
				t.Logf("unexpected status %d", rr.Code)
				return false
			}

			if !strings.Contains(rr.Body.String(), "internal_error") {
				t.Logf("unexpected body %q", rr.Body.String())
				return false
			}

			records := rec.recorded()
			if len(records) != 1 {
				t.Logf("expected 1 log record, got %d", len(records))
				return false
			}

			if records[0].Level != slog.LevelError || records[0].Message != "panic recovered" {
				t.Logf("unexpected record %q at %v", records[0].Message, records[0].Level)
				return false
			}

			return true
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
