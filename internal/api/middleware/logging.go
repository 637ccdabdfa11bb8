package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/connect4-arena/internal/middleware"
)

// Logging creates request logging middleware for the API
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("component", "api")))
}
