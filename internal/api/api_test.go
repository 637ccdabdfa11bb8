package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connect4-arena/internal/api"
	"github.com/mcoot/connect4-arena/internal/api/apierr"
	"github.com/mcoot/connect4-arena/internal/api/response"
	"github.com/mcoot/connect4-arena/internal/factory"
	"github.com/mcoot/connect4-arena/internal/model"
)

type APISuite struct {
	suite.Suite
	app     *factory.TestApp
	handler http.Handler
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	s.app = factory.NewTestApp(4)
	s.handler = api.NewRouter(api.RouterConfig{
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Storage:    s.app.Storage,
		Engine:     s.app.Engine,
		Players:    s.app.Players,
		Controller: s.app.Controller,
		Series:     s.app.Series,
	})
}

func (s *APISuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	switch b := body.(type) {
	case nil:
		reqBody = bytes.NewBuffer(nil)
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		s.Require().NoError(err)
		reqBody = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	return rr
}

func (s *APISuite) decode(rr *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), v), rr.Body.String())
}

func (s *APISuite) requireErrorCode(rr *httptest.ResponseRecorder, status int, code string) {
	s.Require().Equal(status, rr.Code, rr.Body.String())
	var resp apierr.ErrorResponse
	s.decode(rr, &resp)
	s.Equal(code, resp.Error.Code)
}

// Health

func (s *APISuite) TestHealthCheck() {
	rr := s.request(http.MethodGet, "/api/v1/health", nil)
	s.Equal(http.StatusOK, rr.Code)

	var resp response.Health
	s.decode(rr, &resp)
	s.Equal("ok", resp.Status)
}

// Analysis

// Red has three stacked stones in column 0
const redToWin = "XOO....-X......-X......-......."

func (s *APISuite) TestAnalyzeFindsWin() {
	rr := s.request(http.MethodPost, "/api/v1/analyze", map[string]any{
		"board": redToWin,
		"side":  "red",
	})
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())

	var resp response.Analysis
	s.decode(rr, &resp)
	s.Equal(21, resp.Move)
	s.Equal(0, resp.Column)
	s.Equal(3, resp.Row)
	s.Equal("red", resp.Side)
	s.Equal(4, resp.Depth)
	s.Greater(resp.Score, 0)
}

func (s *APISuite) TestAnalyzeAtFixedDepth() {
	rr := s.request(http.MethodPost, "/api/v1/analyze", map[string]any{
		"board": redToWin,
		"side":  "red",
		"depth": 1,
	})
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())

	var resp response.Analysis
	s.decode(rr, &resp)
	s.Equal(21, resp.Move)
	s.Equal(1, resp.Depth)
}

func (s *APISuite) TestAnalyzeWithBudget() {
	// The test clock only moves when told to, so the budget never runs out
	rr := s.request(http.MethodPost, "/api/v1/analyze", map[string]any{
		"board":     redToWin,
		"side":      "red",
		"budget_ms": 50,
	})
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())

	var resp response.Analysis
	s.decode(rr, &resp)
	s.Equal(21, resp.Move)
	s.Equal(4, resp.Depth)
}

func (s *APISuite) TestAnalyzeInfersSideToMove() {
	rr := s.request(http.MethodPost, "/api/v1/analyze", map[string]any{
		"board": redToWin,
	})
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())

	var resp response.Analysis
	s.decode(rr, &resp)
	s.Equal("blue", resp.Side)
	s.Equal(21, resp.Move, "blue has to block")
}

func (s *APISuite) TestAnalyzeRejectsBadInput() {
	rr := s.request(http.MethodPost, "/api/v1/analyze", "{not json")
	s.requireErrorCode(rr, http.StatusBadRequest, apierr.CodeInvalidRequest)

	rr = s.request(http.MethodPost, "/api/v1/analyze", map[string]any{})
	s.requireErrorCode(rr, http.StatusBadRequest, apierr.CodeInvalidRequest)

	rr = s.request(http.MethodPost, "/api/v1/analyze", map[string]any{"board": ".......-X......-.......-......."})
	s.requireErrorCode(rr, http.StatusBadRequest, apierr.CodeInvalidBoard)

	rr = s.request(http.MethodPost, "/api/v1/analyze", map[string]any{"board": redToWin, "side": "green"})
	s.requireErrorCode(rr, http.StatusBadRequest, apierr.CodeInvalidSide)

	rr = s.request(http.MethodPost, "/api/v1/analyze", map[string]any{"board": redToWin, "depth": -1})
	s.requireErrorCode(rr, http.StatusBadRequest, apierr.CodeInvalidRequest)

	rr = s.request(http.MethodPost, "/api/v1/analyze", map[string]any{"board": redToWin, "budget_ms": 60000})
	s.requireErrorCode(rr, http.StatusBadRequest, apierr.CodeInvalidRequest)
}

func (s *APISuite) TestAnalyzeFullBoard() {
	rr := s.request(http.MethodPost, "/api/v1/analyze", map[string]any{
		"board": "XOXOXOX-XOXOXOX-OXOXOXO-OXOXOXO",
		"side":  "red",
	})
	s.requireErrorCode(rr, http.StatusConflict, apierr.CodeNoLegalMove)
}

// Matches and standings

func (s *APISuite) TestPlayMatchRecordsStandings() {
	rr := s.request(http.MethodPost, "/api/v1/matches", map[string]any{
		"red":  "search",
		"blue": "greedy",
	})
	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())

	var result model.MatchResult
	s.decode(rr, &result)
	s.Equal("search", result.Red)
	s.Equal("greedy", result.Blue)
	s.NotEmpty(result.ID)
	s.NotEmpty(result.Moves)

	rr = s.request(http.MethodGet, "/api/v1/standings", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	var standings response.Standings
	s.decode(rr, &standings)
	s.Len(standings.Standings, 2)

	rr = s.request(http.MethodGet, "/api/v1/standings/search", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	var standing model.Standing
	s.decode(rr, &standing)
	s.Equal("search", standing.Player)
	s.Equal(1, standing.Played())
}

func (s *APISuite) TestPlayMatchWithNames() {
	rr := s.request(http.MethodPost, "/api/v1/matches", map[string]any{
		"red":       "greedy",
		"blue":      "greedy",
		"red_name":  "left",
		"blue_name": "right",
	})
	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())

	var result model.MatchResult
	s.decode(rr, &result)
	s.Equal("left", result.Red)
	s.Equal("right", result.Blue)
}

func (s *APISuite) TestPlayMatchRejectsBadPlayers() {
	rr := s.request(http.MethodPost, "/api/v1/matches", map[string]any{"red": "human", "blue": "search"})
	s.requireErrorCode(rr, http.StatusBadRequest, apierr.CodeInvalidRequest)

	rr = s.request(http.MethodPost, "/api/v1/matches", map[string]any{"red": "oracle", "blue": "search"})
	s.requireErrorCode(rr, http.StatusBadRequest, apierr.CodeUnknownPlayerKind)

	rr = s.request(http.MethodPost, "/api/v1/matches", map[string]any{
		"red": "greedy", "blue": "random", "red_name": "same", "blue_name": "same",
	})
	s.requireErrorCode(rr, http.StatusBadRequest, apierr.CodeSamePlayer)
}

func (s *APISuite) TestSeries() {
	rr := s.request(http.MethodPost, "/api/v1/series", map[string]any{
		"red":      "greedy",
		"blue":     "random",
		"games":    4,
		"parallel": 2,
	})
	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())

	var resp response.Series
	s.decode(rr, &resp)
	s.Equal(4, resp.Games)
	s.Len(resp.Results, 4)

	played := 0
	for _, st := range resp.Standings {
		played += st.Played()
	}
	s.Equal(8, played)
}

func (s *APISuite) TestSeriesRejectsNoGames() {
	rr := s.request(http.MethodPost, "/api/v1/series", map[string]any{"red": "greedy", "blue": "random"})
	s.requireErrorCode(rr, http.StatusBadRequest, apierr.CodeInvalidRequest)
}

func (s *APISuite) TestStandingNotFound() {
	rr := s.request(http.MethodGet, "/api/v1/standings/nobody", nil)
	s.requireErrorCode(rr, http.StatusNotFound, apierr.CodeStandingNotFound)
}

func (s *APISuite) TestEmptyStandingsIsAnArray() {
	rr := s.request(http.MethodGet, "/api/v1/standings", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.JSONEq(`{"standings":[]}`, rr.Body.String())
}

func (s *APISuite) TestResetStandings() {
	rr := s.request(http.MethodPost, "/api/v1/matches", map[string]any{"red": "greedy", "blue": "random"})
	s.Require().Equal(http.StatusCreated, rr.Code)

	rr = s.request(http.MethodDelete, "/api/v1/standings", nil)
	s.Equal(http.StatusNoContent, rr.Code)

	rr = s.request(http.MethodGet, "/api/v1/standings", nil)
	s.JSONEq(`{"standings":[]}`, rr.Body.String())
}

func (s *APISuite) TestUnknownRouteAndMethod() {
	rr := s.request(http.MethodGet, "/api/v1/nope", nil)
	s.Equal(http.StatusNotFound, rr.Code)

	rr = s.request(http.MethodGet, "/api/v1/analyze", nil)
	s.requireErrorCode(rr, http.StatusMethodNotAllowed, apierr.CodeMethodNotAllowed)

	rr = s.request(http.MethodPut, "/api/v1/standings", nil)
	s.requireErrorCode(rr, http.StatusMethodNotAllowed, apierr.CodeMethodNotAllowed)
}
