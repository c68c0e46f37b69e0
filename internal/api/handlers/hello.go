// Package handlers provides HTTP request handlers for the API.
package handlers

import (
	"log/slog"
	"net/http"
)

// HelloHandler handles the greeting endpoint.
type HelloHandler struct {
	greeting string
	logger   *slog.Logger
}

// NewHelloHandler creates a new hello handler serving the given greeting.
func NewHelloHandler(greeting string, logger *slog.Logger) *HelloHandler {
	return &HelloHandler{
		greeting: greeting,
		logger:   logger,
	}
}

// HelloResponse is the payload returned by GET /api/hello/.
type HelloResponse struct {
	Message string `json:"message"`
}

// GetHello handles GET /api/hello/ - returns the configured greeting.
func (h *HelloHandler) GetHello(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("serving greeting")
	WriteJSON(w, http.StatusOK, HelloResponse{Message: h.greeting})
}
