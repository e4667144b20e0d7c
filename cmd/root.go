// Package cmd holds the rpglobby command line: the HTTP server and the
// maintenance commands around it.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "unknown"
)

// NewRootCmd creates the root command for the rpglobby CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rpglobby",
		Short: "RPG lobby backend",
		Long: `rpglobby serves the REST API where masters open lobbies and invite
players, and players keep their character sheets.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// NewVersionCmd creates the version subcommand.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Printf("rpglobby %s (commit: %s)\n", version, commit)
			return nil
		},
	}
}
