package request

// AnalyzeRequest is the request body for analysing a position
type AnalyzeRequest struct {
	Board string `json:"board"`
	// Side defaults to the side to move
	Side string `json:"side,omitempty"`
	// Depth fixes the search depth. Zero uses the time budget.
	Depth int `json:"depth,omitempty"`
	// BudgetMS overrides the server's time budget for this request
	BudgetMS int `json:"budget_ms,omitempty"`
}

// PlayMatchRequest is the request body for playing a match between two bots
type PlayMatchRequest struct {
	Red      string `json:"red"`
	Blue     string `json:"blue"`
	RedName  string `json:"red_name,omitempty"`
	BlueName string `json:"blue_name,omitempty"`
}

// SeriesRequest is the request body for playing a series
type SeriesRequest struct {
	Red      string `json:"red"`
	Blue     string `json:"blue"`
	Games    int    `json:"games"`
	Parallel int    `json:"parallel,omitempty"`
}
