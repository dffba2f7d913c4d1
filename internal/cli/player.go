package cli

import (
	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player identity commands",
	}

	cmd.AddCommand(newPlayerRegisterCmd())
	cmd.AddCommand(newPlayerMeCmd())
	cmd.AddCommand(newPlayerForgetCmd())

	return cmd
}

func newPlayerRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <display-name>",
		Short: "Register a new player identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"display_name": args[0]}

			var result Identity
			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			// Persist the id so subsequent commands are identified
			if err := cfg.SavePlayerID(result.PlayerID); err != nil {
				return err
			}
			client.SetPlayerID(result.PlayerID)

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the current player identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Identity
			if err := client.Get("/api/v1/players/me", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerForgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forget",
		Short: "Forget the current player identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/players/me"); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Player identity forgotten")
			return nil
		},
	}
}
