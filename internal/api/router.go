package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/connect4-arena/internal/api/apierr"
	"github.com/mcoot/connect4-arena/internal/api/handler"
	"github.com/mcoot/connect4-arena/internal/api/middleware"
	"github.com/mcoot/connect4-arena/internal/api/response"
	"github.com/mcoot/connect4-arena/internal/services/match"
	"github.com/mcoot/connect4-arena/internal/services/player"
	"github.com/mcoot/connect4-arena/internal/services/search"
	"github.com/mcoot/connect4-arena/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger     *slog.Logger
	Storage    storage.Storage
	Engine     *search.Engine
	Players    *player.Factory
	Controller *match.Controller
	Series     *match.Series
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	analysisHandler := handler.NewAnalysisHandler(cfg.Engine)
	standingsHandler := handler.NewStandingsHandler(cfg.Storage)
	matchHandler := handler.NewMatchHandler(cfg.Players, cfg.Controller, cfg.Series)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Known paths with the wrong method answer 405, not 404
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)
	api.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	api.HandleFunc("/analyze", analysisHandler.Analyze).Methods(http.MethodPost)

	api.HandleFunc("/standings", standingsHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/standings", standingsHandler.Reset).Methods(http.MethodDelete)
	api.HandleFunc("/standings/{player}", standingsHandler.Get).Methods(http.MethodGet)

	api.HandleFunc("/matches", matchHandler.Play).Methods(http.MethodPost)
	api.HandleFunc("/series", matchHandler.Series).Methods(http.MethodPost)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func methodNotAllowedHandler(w http.ResponseWriter, _ *http.Request) {
	apierr.WriteError(w, apierr.NewMethodNotAllowedError())
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
