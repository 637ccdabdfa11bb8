package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connect4-arena/internal/api"
	"github.com/mcoot/connect4-arena/internal/factory"
	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/services/match"
)

type CLISuite struct {
	suite.Suite
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	// Keep the environment from changing defaults
	s.T().Setenv("CONNECT4_STORAGE", "memory")
	s.T().Setenv("CONNECT4_MAX_DEPTH", "")
	s.T().Setenv("CONNECT4_SEED", "")
}

// run executes the root command with stdin and returns what went to stdout
func (s *CLISuite) run(stdin string, args ...string) (string, error) {
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

// Red has three stacked stones in column 0
const redToWin = "XOO....-X......-X......-......."

// Play tests

func (s *CLISuite) TestPlayJSON() {
	out, err := s.run("", "--output", "json", "--max-depth", "3", "play", "--red", "search", "--blue", "greedy")
	s.Require().NoError(err)

	var result model.MatchResult
	s.Require().NoError(json.Unmarshal([]byte(out), &result), out)
	s.Equal("search", result.Red)
	s.Equal("greedy", result.Blue)
	s.NotEmpty(result.Outcome)
	s.NotEmpty(result.Moves)
}

func (s *CLISuite) TestPlayHumanAgainstGreedy() {
	// greedy stacks the leftmost open column, so column 3 stays open
	input := "abc\n3\n10\n17\n24\n"
	out, err := s.run(input, "play", "--red", "human", "--blue", "greedy")
	s.Require().NoError(err)

	s.Contains(out, "red (X) to move, choose one of [3 2 4 1 5 0 6]: ")
	s.Contains(out, `"abc" is not a cell index`)
	s.Contains(out, "1. human (X) plays 3")
	s.Contains(out, "2. greedy (O) plays 0")
	s.Contains(out, "Result: human wins")
	s.Contains(out, "4. greedy (O) plays 7")
	s.Contains(out, "Moves (7): 3 0 10 7 17 14 24")

	// the empty board, then one board per move; the result adds none
	border := "+" + strings.Repeat("---", model.Width) + "+\n"
	s.Equal(2*(1+7), strings.Count(out, border))
}

func (s *CLISuite) TestPlayHumanInputClosed() {
	_, err := s.run("3\n", "play", "--red", "human", "--blue", "greedy")
	s.ErrorIs(err, model.ErrInputClosed)
}

func (s *CLISuite) TestPlayQuietOnlyPrintsResult() {
	out, err := s.run("", "--max-depth", "1", "play", "--red", "greedy", "--blue", "random", "--quiet", "--seed", "7")
	s.Require().NoError(err)
	s.NotContains(out, "plays")
	s.Contains(out, "Result:")

	border := "+" + strings.Repeat("---", model.Width) + "+\n"
	s.Equal(2, strings.Count(out, border), "final board drawn once")
}

func (s *CLISuite) TestPlayRejectsUnknownKind() {
	_, err := s.run("", "play", "--red", "oracle")
	s.ErrorIs(err, model.ErrUnknownPlayerKind)
}

func (s *CLISuite) TestPlaySameNamesRejected() {
	_, err := s.run("", "play", "--red", "greedy", "--blue", "random", "--red-name", "x", "--blue-name", "x")
	s.ErrorIs(err, model.ErrSamePlayer)
}

// Tournament tests

func (s *CLISuite) TestTournamentJSON() {
	out, err := s.run("", "-o", "json", "--max-depth", "1", "tournament",
		"--red", "greedy", "--blue", "random", "--games", "4", "--parallel", "2")
	s.Require().NoError(err)

	var summary match.SeriesSummary
	s.Require().NoError(json.Unmarshal([]byte(out), &summary), out)
	s.Equal(4, summary.Games)
	s.Empty(summary.Results)

	played := 0
	for _, st := range summary.Standings {
		played += st.Played()
	}
	s.Equal(8, played)
}

func (s *CLISuite) TestTournamentRejectsHumans() {
	_, err := s.run("", "tournament", "--red", "human", "--blue", "random")
	s.ErrorIs(err, model.ErrInvalidSeries)
}

// Analyze tests

func (s *CLISuite) TestAnalyzeJSON() {
	out, err := s.run("", "-o", "json", "analyze", redToWin, "--side", "red", "--depth", "2")
	s.Require().NoError(err)

	var result AnalysisResult
	s.Require().NoError(json.Unmarshal([]byte(out), &result), out)
	s.Equal(21, result.Move)
	s.Equal(0, result.Column)
	s.Equal(3, result.Row)
	s.Equal(2, result.Depth)
	s.Equal("red", result.Side)
}

func (s *CLISuite) TestAnalyzeText() {
	out, err := s.run("", "--max-depth", "2", "analyze", redToWin)
	s.Require().NoError(err)
	s.Contains(out, "Side: blue")
	s.Contains(out, "Best move: 21 (column 0, row 3)")
}

func (s *CLISuite) TestAnalyzeRejectsBadInput() {
	_, err := s.run("", "analyze", "XXXX")
	s.ErrorIs(err, model.ErrInvalidBoard)

	_, err = s.run("", "analyze", redToWin, "--side", "green")
	s.ErrorIs(err, model.ErrInvalidSide)

	_, err = s.run("", "analyze")
	s.Error(err)
}

// Standings tests

func (s *CLISuite) TestStandingsEmpty() {
	out, err := s.run("", "standings")
	s.Require().NoError(err)
	s.Contains(out, "No standings recorded")

	_, err = s.run("", "standings", "nobody")
	s.ErrorIs(err, model.ErrStandingNotFound)
}

func (s *CLISuite) TestStandingsReset() {
	out, err := s.run("", "standings", "reset")
	s.Require().NoError(err)
	s.Contains(out, "Standings reset")
}

// Config tests

func (s *CLISuite) TestRejectsBadGlobalFlags() {
	_, err := s.run("", "--output", "yaml", "standings")
	s.ErrorContains(err, "unknown output format")

	_, err = s.run("", "--max-depth=-1", "standings")
	s.ErrorContains(err, "max depth")

	_, err = s.run("", "--storage", "sqlite", "standings")
	s.Error(err)
}

// Remote tests

func (s *CLISuite) newServer() *httptest.Server {
	app := factory.NewTestApp(3)
	srv := httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Storage:    app.Storage,
		Engine:     app.Engine,
		Players:    app.Players,
		Controller: app.Controller,
		Series:     app.Series,
	}))
	s.T().Cleanup(srv.Close)
	return srv
}

func (s *CLISuite) TestRemoteHealth() {
	srv := s.newServer()

	out, err := s.run("", "remote", "--server", srv.URL, "health")
	s.Require().NoError(err)
	s.Contains(out, "Status: ok")
}

func (s *CLISuite) TestRemoteAnalyze() {
	srv := s.newServer()

	out, err := s.run("", "-o", "json", "remote", "--server", srv.URL, "analyze", redToWin, "--side", "red")
	s.Require().NoError(err)

	var result AnalysisResult
	s.Require().NoError(json.Unmarshal([]byte(out), &result), out)
	s.Equal(21, result.Move)
	s.Equal(3, result.Depth)
}

func (s *CLISuite) TestRemoteMatchThenStandings() {
	srv := s.newServer()

	_, err := s.run("", "remote", "--server", srv.URL, "match", "--red", "greedy", "--blue", "random")
	s.Require().NoError(err)

	out, err := s.run("", "-o", "json", "remote", "--server", srv.URL, "standings")
	s.Require().NoError(err)

	var standings []model.Standing
	s.Require().NoError(json.Unmarshal([]byte(out), &standings), out)
	s.Len(standings, 2)

	out, err = s.run("", "remote", "--server", srv.URL, "standings", "greedy")
	s.Require().NoError(err)
	s.Contains(out, "greedy")
}

func (s *CLISuite) TestRemoteErrorsCarryCode() {
	srv := s.newServer()

	_, err := s.run("", "remote", "--server", srv.URL, "standings", "nobody")
	s.ErrorContains(err, "STANDING_NOT_FOUND")
}

// Rendering tests

func (s *CLISuite) TestRenderBoard() {
	b, err := model.ParseBoard("XO.....-.......-.......-.......")
	s.Require().NoError(err)

	want := "" +
		"+---------------------+\n" +
		"|  .  .  .  .  .  .  .|\n" +
		"|  .  .  .  .  .  .  .|\n" +
		"|  7  8  .  .  .  .  .|\n" +
		"|  X  O  2  3  4  5  6|\n" +
		"+---------------------+\n"
	s.Equal(want, RenderBoard(b))
}
