package response

import (
	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/services/match"
	"github.com/mcoot/connect4-arena/internal/services/search"
)

// Health is the health check response
type Health struct {
	Status string `json:"status"`
}

// Analysis is the response for a position analysis
type Analysis struct {
	Board     string `json:"board"`
	Side      string `json:"side"`
	Move      int    `json:"move"`
	Column    int    `json:"column"`
	Row       int    `json:"row"`
	Score     int    `json:"score"`
	Depth     int    `json:"depth"`
	Nodes     int64  `json:"nodes"`
	ElapsedMS int64  `json:"elapsed_ms"`
}

// AnalysisFromResult converts a search result
func AnalysisFromResult(b model.Board, side model.Side, r search.Result) Analysis {
	return Analysis{
		Board:     b.DebugString(),
		Side:      side.String(),
		Move:      r.Move,
		Column:    model.ColOf(r.Move),
		Row:       model.RowOf(r.Move),
		Score:     r.Score,
		Depth:     r.Depth,
		Nodes:     r.Nodes,
		ElapsedMS: r.Elapsed.Milliseconds(),
	}
}

// Standings is the response for the standings table
type Standings struct {
	Standings []model.Standing `json:"standings"`
}

// Series is the response for a finished series
type Series struct {
	Games     int                  `json:"games"`
	Draws     int                  `json:"draws"`
	Standings []model.Standing     `json:"standings"`
	Results   []*model.MatchResult `json:"results,omitempty"`
}

// SeriesFromSummary converts a series summary
func SeriesFromSummary(s *match.SeriesSummary) Series {
	standings := s.Standings
	if standings == nil {
		standings = []model.Standing{}
	}
	return Series{
		Games:     s.Games,
		Draws:     s.Draws,
		Standings: standings,
		Results:   s.Results,
	}
}
