package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mcoot/connect4-arena/internal/api/request"
	"github.com/mcoot/connect4-arena/internal/api/response"
	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/services/search"
)

// MaxBudget caps the time budget a request may ask for
const MaxBudget = 10 * time.Second

// AnalysisHandler handles position analysis
type AnalysisHandler struct {
	engine *search.Engine
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(engine *search.Engine) *AnalysisHandler {
	return &AnalysisHandler{engine: engine}
}

// Analyze handles POST /api/v1/analyze
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req request.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Board == "" {
		WriteError(w, NewInvalidRequestError("board is required"))
		return
	}
	if req.Depth < 0 {
		WriteError(w, NewInvalidRequestError("depth must not be negative"))
		return
	}
	budget := time.Duration(req.BudgetMS) * time.Millisecond
	if req.BudgetMS < 0 || budget > MaxBudget {
		WriteError(w, NewInvalidRequestError("budget_ms must be between 0 and 10000"))
		return
	}

	b, err := model.ParseBoard(req.Board)
	if err != nil {
		WriteError(w, err)
		return
	}

	side := b.SideToMove()
	if req.Side != "" {
		if side, err = model.ParseSide(req.Side); err != nil {
			WriteError(w, err)
			return
		}
	}

	engine := h.engine
	if budget > 0 {
		cfg := engine.Config()
		cfg.TimeBudget = budget
		engine = engine.WithConfig(cfg)
	}

	var result search.Result
	if req.Depth > 0 {
		result, err = engine.SearchDepth(b, side, req.Depth)
	} else {
		result, err = engine.Search(r.Context(), b, side)
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AnalysisFromResult(b, side, result))
}
