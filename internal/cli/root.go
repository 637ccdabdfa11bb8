package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/connect4-arena/internal/factory"
)

var cfg *Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "connect4",
		Short: "Connect-four arena on a 7x4 board",
		Long: `connect4 pits players against each other on a 7 wide, 4 high
connect-four board. Players are a time-bounded alpha-beta search, a greedy
left-column dropper, a random mover, or a human at the terminal.

Cells are numbered row by row from the bottom left (0) to the top right (27).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Standings storage: memory, redis (env: CONNECT4_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: REDIS_URL)")
	rootCmd.PersistentFlags().DurationVar(&cfg.Budget, "budget", cfg.Budget, "Search time budget per move (env: CONNECT4_TIME_BUDGET)")
	rootCmd.PersistentFlags().IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "Search depth cap, 0 for none (env: CONNECT4_MAX_DEPTH)")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for random players, 0 for entropy (env: CONNECT4_SEED)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: CONNECT4_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output (debug logging)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newTournamentCmd())
	rootCmd.AddCommand(newStandingsCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newRemoteCmd())

	return rootCmd
}

// newApp wires the application for a command
func newApp(cmd *cobra.Command) (*factory.App, error) {
	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	// Keep stdout clean for JSON; human prompts go to stderr instead
	prompts := cmd.OutOrStdout()
	if cfg.Output == "json" {
		prompts = cmd.ErrOrStderr()
	}
	fc, err := cfg.FactoryConfig(logger, cmd.InOrStdin(), prompts)
	if err != nil {
		return nil, err
	}
	return factory.New(fc)
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		NewOutput(cfg.Output, rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()).PrintError(err)
		os.Exit(1)
	}
}
