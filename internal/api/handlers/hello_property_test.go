package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestHelloGreetingRoundTrip tests that any configured greeting comes back
// verbatim in the message field.
func TestHelloGreetingRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)
	logger := slog.Default()

	properties.Property("configured greeting is returned verbatim", prop.ForAll(
		func(greeting string) bool {
			handler := NewHelloHandler(greeting, logger)

			r := chi.NewRouter()
			r.Get("/api/hello/", handler.GetHello)

			req := httptest.NewRequest("GET", "/api/hello/", nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if rr.Code != http.StatusOK {
				t.Logf("unexpected status %d: %s", rr.Code, rr.Body.String())
				return false
			}

			if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
				t.Logf("unexpected content type %q", ct)
				return false
			}

			var resp HelloResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Logf("failed to decode response: %v", err)
				return false
			}

			return resp.Message == greeting
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
