package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "guessparty",
		Short: "CLI tool for the guessparty game API",
		Long: `guessparty is a CLI tool for interacting with the guessparty JSON API.

It supports all API operations including player registration, session
lifecycle, guessing, and real-time SSE event streaming.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load player id from file if not provided via flag/env
			if err := cfg.LoadPlayerID(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL, cfg.PlayerID)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: GUESSPARTY_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.PlayerID, "player-id", cfg.PlayerID, "Player id (env: GUESSPARTY_PLAYER_ID)")
	rootCmd.PersistentFlags().StringVar(&cfg.PlayerIDFile, "player-id-file", cfg.PlayerIDFile, "Player id file path (env: GUESSPARTY_PLAYER_ID_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newEventsCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
