package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/services/search"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		sideName string
		depth    int
	)

	cmd := &cobra.Command{
		Use:   "analyze BOARD",
		Short: "Find the best move for a position",
		Long: `Search a position and print the chosen move.

BOARD lists the rows bottom first, one symbol per cell ('.', 'X' red, 'O' blue),
with '-' between rows:

  connect4 analyze 'XXO....-O......-.......-.......' --side red

Without --side the side to move is inferred from the stone counts. With
--depth the search runs to exactly that depth and ignores the time budget.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := model.ParseBoard(args[0])
			if err != nil {
				return err
			}
			side := b.SideToMove()
			if sideName != "" {
				if side, err = model.ParseSide(sideName); err != nil {
					return err
				}
			}

			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			var result search.Result
			if depth > 0 {
				result, err = app.Engine.SearchDepth(b, side, depth)
			} else {
				result, err = app.Engine.Search(cmd.Context(), b, side)
			}
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(NewAnalysisResult(b, side, result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&sideName, "side", "s", "", "Side to move: red, blue")
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "Fixed search depth")

	return cmd
}

// NewAnalysisResult describes a search result for display
func NewAnalysisResult(b model.Board, side model.Side, r search.Result) AnalysisResult {
	return AnalysisResult{
		Board:  b.DebugString(),
		Side:   side.String(),
		Move:   r.Move,
		Column: model.ColOf(r.Move),
		Row:    model.RowOf(r.Move),
		Score:  r.Score,
		Depth:  r.Depth,
		Nodes:  r.Nodes,
	}
}
