package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/services/match"
)

func newTournamentCmd() *cobra.Command {
	var (
		redKind, blueKind string
		games, parallel   int
		showResults       bool
	)

	cmd := &cobra.Command{
		Use:   "tournament",
		Short: "Play a series of matches between two player kinds",
		Long: `Play a series of matches, swapping colours after every game. Matches run
concurrently, up to --parallel at a time. Results are added to the standings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			red, err := model.ParsePlayerKind(redKind)
			if err != nil {
				return err
			}
			blue, err := model.ParsePlayerKind(blueKind)
			if err != nil {
				return err
			}

			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			summary, err := app.Series.Run(cmd.Context(), match.SeriesConfig{
				RedKind:  red,
				BlueKind: blue,
				Games:    games,
				Parallel: parallel,
			})
			if err != nil {
				return err
			}
			if !showResults {
				summary.Results = nil
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&redKind, "red", string(model.PlayerKindSearch), "Kind of the first player (red in odd games)")
	cmd.Flags().StringVar(&blueKind, "blue", string(model.PlayerKindRandom), "Kind of the second player")
	cmd.Flags().IntVarP(&games, "games", "n", 10, "Number of matches")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 4, "Matches to run at once")
	cmd.Flags().BoolVar(&showResults, "results", false, "Include every match result in the output")

	return cmd
}
