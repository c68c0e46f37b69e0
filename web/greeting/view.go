// Package greeting implements the greeting view shown on the landing page.
//
// A View models one mounted instance of the component: it is created in the
// loading state, performs a single fetch against the backend when
// initialized, and settles on either the fetched message or a fixed fallback
// text. Both transitions are terminal for the lifetime of the mount.
package greeting

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

const (
	// LoadingText is the display state from construction until the fetch
	// resolves.
	LoadingText = "Loading message from Django..."

	// FallbackText is the display state after a fetch failure of any kind.
	FallbackText = "Error connecting to Django backend. Make sure it is running!"
)

// Fetcher retrieves the greeting from the backend.
type Fetcher interface {
	Hello(ctx context.Context) (string, error)
}

// View holds the display state for one mounted greeting component.
type View struct {
	id      string
	fetcher Fetcher
	logger  *slog.Logger

	init sync.Once
	mu   sync.RWMutex
	text string
}

// NewView creates a view in the loading state. The fetch does not start
// until Init is called by whoever owns the view's lifecycle.
func NewView(fetcher Fetcher, logger *slog.Logger) *View {
	if logger == nil {
		logger = slog.Default()
	}
	return &View{
		id:      uuid.New().String(),
		fetcher: fetcher,
		logger:  logger,
		text:    LoadingText,
	}
}

// ID returns the mount identifier used in diagnostics.
func (v *View) ID() string {
	return v.id
}

// Init performs the one-shot fetch and settles the display state. Repeated
// calls, concurrent or not, never issue a second request. A failure of any
// kind sets the fallback text and emits a single diagnostic record; the
// error never escapes the view.
func (v *View) Init(ctx context.Context) {
	v.init.Do(func() {
		message, err := v.fetcher.Hello(ctx)
		if err != nil {
			v.logger.Error("failed to fetch greeting",
				"error", err,
				"view_id", v.id,
			)
			v.setText(FallbackText)
			return
		}
		v.setText(message)
	})
}

// Text returns the current display state. It is safe to call while a fetch
// is in flight.
func (v *View) Text() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.text
}

func (v *View) setText(text string) {
	v.mu.Lock()
	v.text = text
	v.mu.Unlock()
}
