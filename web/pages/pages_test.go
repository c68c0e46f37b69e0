package pages

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thiyagadurden/Kanini-Hackathon/web/greeting"
)

func TestIndexRendersHeadingAndMessage(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = renderer.Index(rec, IndexData{
		Title:        "Kanini Hackathon",
		Heading:      "Kanini Hackathon",
		Message:      "Hello from Django backend!",
		MessageClass: MessageClass("text-emerald-600"),
	})
	require.NoError(t, err)

	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Kanini Hackathon</title>")
	assert.Contains(t, body, "Kanini Hackathon")
	assert.Contains(t, body, "Hello from Django backend!")
	assert.Contains(t, body, "text-emerald-600")
}

func TestIndexEscapesMessage(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = renderer.Index(rec, IndexData{
		Title:   "Kanini Hackathon",
		Heading: "Kanini Hackathon",
		Message: "<script>alert(1)</script>",
	})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestIndexRendersEveryDisplayState(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	states := []string{
		greeting.LoadingText,
		"Hello from Django backend!",
		greeting.FallbackText,
	}

	for _, state := range states {
		rec := httptest.NewRecorder()
		err := renderer.Index(rec, IndexData{
			Title:   "Kanini Hackathon",
			Heading: "Kanini Hackathon",
			Message: state,
		})
		require.NoError(t, err)
		assert.Contains(t, rec.Body.String(), state)
	}
}

func TestMessageClassAccentWins(t *testing.T) {
	merged := MessageClass("text-red-600")

	assert.Contains(t, merged, "text-red-600")
	assert.Contains(t, merged, "text-lg")
	assert.NotContains(t, merged, "text-slate-500")
}
