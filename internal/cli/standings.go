package cli

import (
	"github.com/spf13/cobra"
)

func newStandingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standings [player]",
		Short: "Show recorded standings",
		Long: `Show win/loss/draw standings. With the default in-memory storage standings
only live as long as one command, so use --storage redis to keep them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if len(args) == 1 {
				standing, err := app.Storage.GetStanding(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				out.Print(standing)
				return nil
			}

			standings, err := app.Storage.ListStandings(cmd.Context())
			if err != nil {
				return err
			}
			out.Print(standings)
			return nil
		},
	}

	cmd.AddCommand(newStandingsResetCmd())

	return cmd
}

func newStandingsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete all standings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.Storage.ResetStandings(cmd.Context()); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.PrintMessage("Standings reset")
			return nil
		},
	}
}
