package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/services/match"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// IsJSON reports whether output is JSON
func (o *Output) IsJSON() bool {
	return o.format == "json"
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.IsJSON() {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.IsJSON() {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.errW, string(data))
	} else {
		_, _ = fmt.Fprintf(o.errW, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.IsJSON() {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *model.MatchResult:
		o.printMatchResult(v, true)
	case *match.SeriesSummary:
		o.printSeriesSummary(v)
	case []model.Standing:
		o.printStandings(v)
	case *model.Standing:
		o.printStandings([]model.Standing{*v})
	case AnalysisResult:
		o.printAnalysis(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// AnalysisResult is the answer to "what should side play here"
type AnalysisResult struct {
	Board  string `json:"board"`
	Side   string `json:"side"`
	Move   int    `json:"move"`
	Column int    `json:"column"`
	Row    int    `json:"row"`
	Score  int    `json:"score"`
	Depth  int    `json:"depth"`
	Nodes  int64  `json:"nodes"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// RenderBoard draws b top row first. Stones show as X (red) and O (blue), cells
// that can be played next show their index, other empty cells a dot.
func RenderBoard(b model.Board) string {
	var sb strings.Builder
	border := "+" + strings.Repeat("---", model.Width) + "+\n"

	sb.WriteString(border)
	for row := model.Height - 1; row >= 0; row-- {
		sb.WriteString("|")
		for col := 0; col < model.Width; col++ {
			index := model.Index(row, col)
			switch {
			case b.At(index) != model.Empty:
				fmt.Fprintf(&sb, "  %c", model.Side(b.At(index)).Symbol())
			case b.IsPlayable(index):
				fmt.Fprintf(&sb, " %2d", index)
			default:
				sb.WriteString("  .")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}

// PrintMatchResult prints a finished match. showBoard is false when the
// board was already drawn move by move.
func (o *Output) PrintMatchResult(r *model.MatchResult, showBoard bool) {
	if o.IsJSON() {
		o.printJSON(r)
		return
	}
	o.printMatchResult(r, showBoard)
}

func (o *Output) printMatchResult(r *model.MatchResult, showBoard bool) {
	if showBoard {
		_, _ = fmt.Fprint(o.w, RenderBoard(r.Final))
	}
	_, _ = fmt.Fprintf(o.w, "Match: %s\n", r.ID)
	_, _ = fmt.Fprintf(o.w, "Red (X): %s\n", r.Red)
	_, _ = fmt.Fprintf(o.w, "Blue (O): %s\n", r.Blue)
	if r.IsDraw() {
		_, _ = fmt.Fprintln(o.w, "Result: draw")
	} else {
		_, _ = fmt.Fprintf(o.w, "Result: %s wins\n", r.Winner)
	}
	_, _ = fmt.Fprintf(o.w, "Moves (%d): %s\n", len(r.Moves), joinInts(r.Moves))
}

func (o *Output) printSeriesSummary(s *match.SeriesSummary) {
	_, _ = fmt.Fprintf(o.w, "Games: %d\n", s.Games)
	_, _ = fmt.Fprintf(o.w, "Draws: %d\n", s.Draws)
	_, _ = fmt.Fprintln(o.w)
	o.printStandings(s.Standings)
}

func (o *Output) printStandings(standings []model.Standing) {
	if len(standings) == 0 {
		_, _ = fmt.Fprintln(o.w, "No standings recorded")
		return
	}
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "PLAYER\tPLAYED\tWINS\tLOSSES\tDRAWS")
	for _, st := range standings {
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", st.Player, st.Played(), st.Wins, st.Losses, st.Draws)
	}
	_ = tw.Flush()
}

func (o *Output) printAnalysis(a AnalysisResult) {
	if b, err := model.ParseBoard(a.Board); err == nil {
		_, _ = fmt.Fprint(o.w, RenderBoard(b))
	}
	_, _ = fmt.Fprintf(o.w, "Side: %s\n", a.Side)
	_, _ = fmt.Fprintf(o.w, "Best move: %d (column %d, row %d)\n", a.Move, a.Column, a.Row)
	_, _ = fmt.Fprintf(o.w, "Score: %d\n", a.Score)
	_, _ = fmt.Fprintf(o.w, "Depth: %d (%d nodes)\n", a.Depth, a.Nodes)
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
