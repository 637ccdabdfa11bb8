package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/connect4-arena/internal/api/response"
	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/storage"
)

// StandingsHandler handles standings endpoints
type StandingsHandler struct {
	storage storage.Storage
}

// NewStandingsHandler creates a new standings handler
func NewStandingsHandler(storage storage.Storage) *StandingsHandler {
	return &StandingsHandler{storage: storage}
}

// List handles GET /api/v1/standings
func (h *StandingsHandler) List(w http.ResponseWriter, r *http.Request) {
	standings, err := h.storage.ListStandings(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	if standings == nil {
		standings = []model.Standing{}
	}

	response.JSON(w, http.StatusOK, response.Standings{Standings: standings})
}

// Get handles GET /api/v1/standings/{player}
func (h *StandingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["player"]

	standing, err := h.storage.GetStanding(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, standing)
}

// Reset handles DELETE /api/v1/standings
func (h *StandingsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.ResetStandings(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
