package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/services/match"
)

func newPlayCmd() *cobra.Command {
	var (
		redKind, blueKind string
		redName, blueName string
		quiet             bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a single match",
		Long: `Play one match between two players. Red moves first.

Player kinds: search, greedy, random, human. A human player is asked for a
cell index on standard input each turn.`,
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

			if redName == "" && blueName == "" {
				redName, blueName = match.SeriesPlayerNames(red, blue)
			}
			redPlayer, err := app.Players.New(red, redName)
			if err != nil {
				return err
			}
			bluePlayer, err := app.Players.New(blue, blueName)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			var opts []match.PlayOption
			watching := !quiet && !out.IsJSON()
			if watching {
				opts = append(opts, match.WithObserver(newEventPrinter(cmd.OutOrStdout())))
			}

			result, err := app.Controller.Play(cmd.Context(), redPlayer, bluePlayer, opts...)
			if err != nil {
				return err
			}
			out.PrintMatchResult(result, !watching)
			return nil
		},
	}

	cmd.Flags().StringVar(&redKind, "red", string(model.PlayerKindSearch), "Red player kind")
	cmd.Flags().StringVar(&blueKind, "blue", string(model.PlayerKindHuman), "Blue player kind")
	cmd.Flags().StringVar(&redName, "red-name", "", "Red player name (default: its kind)")
	cmd.Flags().StringVar(&blueName, "blue-name", "", "Blue player name (default: its kind)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the result")

	return cmd
}
