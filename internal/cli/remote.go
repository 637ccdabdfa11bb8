package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/connect4-arena/internal/model"
)

var client *Client

func newRemoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Talk to a running arena server",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client = NewClient(cfg.Server)
		},
	}

	cmd.PersistentFlags().StringVar(&cfg.Server, "server", cfg.Server, "Server URL")

	cmd.AddCommand(newRemoteHealthCmd())
	cmd.AddCommand(newRemoteStandingsCmd())
	cmd.AddCommand(newRemoteAnalyzeCmd())
	cmd.AddCommand(newRemoteMatchCmd())

	return cmd
}

func newRemoteHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult

			if err := client.Get(cmd.Context(), "/api/v1/health", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(result)
			return nil
		},
	}
}

func newRemoteStandingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standings [player]",
		Short: "Show the server's standings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())

			if len(args) == 1 {
				var standing model.Standing
				if err := client.Get(cmd.Context(), "/api/v1/standings/"+url.PathEscape(args[0]), &standing); err != nil {
					return err
				}
				out.Print(&standing)
				return nil
			}

			var result struct {
				Standings []model.Standing `json:"standings"`
			}
			if err := client.Get(cmd.Context(), "/api/v1/standings", &result); err != nil {
				return err
			}
			out.Print(result.Standings)
			return nil
		},
	}
}

func newRemoteAnalyzeCmd() *cobra.Command {
	var (
		sideName string
		depth    int
	)

	cmd := &cobra.Command{
		Use:   "analyze BOARD",
		Short: "Ask the server for the best move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"board": args[0],
			}
			if sideName != "" {
				body["side"] = sideName
			}
			if depth > 0 {
				body["depth"] = depth
			}

			var result AnalysisResult
			if err := client.Post(cmd.Context(), "/api/v1/analyze", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&sideName, "side", "s", "", "Side to move: red, blue")
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "Fixed search depth")

	return cmd
}

func newRemoteMatchCmd() *cobra.Command {
	var redKind, blueKind string

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Have the server play a match between two computer players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{
				"red":  redKind,
				"blue": blueKind,
			}

			var result model.MatchResult
			if err := client.Post(cmd.Context(), "/api/v1/matches", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(&result)
			return nil
		},
	}

	cmd.Flags().StringVar(&redKind, "red", string(model.PlayerKindSearch), "Red player kind")
	cmd.Flags().StringVar(&blueKind, "blue", string(model.PlayerKindGreedy), "Blue player kind")

	return cmd
}
