// Package cli provides the command-line interface for folio.
package cli

import (
	"context"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/studio-ormeau/folio/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Portfolio backend and admin console",
	Long: `Portfolio backend and admin console.

folio serves a personal portfolio REST API and ships a terminal admin
console for managing projects, skills, and contact messages.

Run without arguments to launch the admin console.`,
	SilenceUsage: true,
	RunE:         runConsole,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context) error {
	return fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)
}
