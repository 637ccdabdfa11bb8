package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/connect4-arena/internal/api/request"
	"github.com/mcoot/connect4-arena/internal/api/response"
	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/services/match"
	"github.com/mcoot/connect4-arena/internal/services/player"
)

// MatchHandler plays matches between computer players
type MatchHandler struct {
	players    *player.Factory
	controller *match.Controller
	series     *match.Series
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(players *player.Factory, controller *match.Controller, series *match.Series) *MatchHandler {
	return &MatchHandler{
		players:    players,
		controller: controller,
		series:     series,
	}
}

// Play handles POST /api/v1/matches
func (h *MatchHandler) Play(w http.ResponseWriter, r *http.Request) {
	var req request.PlayMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	redKind, blueKind, err := parseBotKinds(req.Red, req.Blue)
	if err != nil {
		WriteError(w, err)
		return
	}

	redName, blueName := req.RedName, req.BlueName
	if redName == "" && blueName == "" {
		redName, blueName = match.SeriesPlayerNames(redKind, blueKind)
	}

	red, err := h.players.New(redKind, redName)
	if err != nil {
		WriteError(w, err)
		return
	}
	blue, err := h.players.New(blueKind, blueName)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.controller.Play(r.Context(), red, blue)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, result)
}

// Series handles POST /api/v1/series
func (h *MatchHandler) Series(w http.ResponseWriter, r *http.Request) {
	var req request.SeriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	redKind, blueKind, err := parseBotKinds(req.Red, req.Blue)
	if err != nil {
		WriteError(w, err)
		return
	}
	if req.Games < 1 {
		WriteError(w, NewInvalidRequestError("games must be at least 1"))
		return
	}

	summary, err := h.series.Run(r.Context(), match.SeriesConfig{
		RedKind:  redKind,
		BlueKind: blueKind,
		Games:    req.Games,
		Parallel: req.Parallel,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SeriesFromSummary(summary))
}

// parseBotKinds parses both kinds. Humans cannot play over the API.
func parseBotKinds(red, blue string) (model.PlayerKind, model.PlayerKind, error) {
	redKind, err := model.ParsePlayerKind(red)
	if err != nil {
		return "", "", err
	}
	blueKind, err := model.ParsePlayerKind(blue)
	if err != nil {
		return "", "", err
	}
	if redKind == model.PlayerKindHuman || blueKind == model.PlayerKindHuman {
		return "", "", NewInvalidRequestError("human players cannot play over the API")
	}
	return redKind, blueKind, nil
}
