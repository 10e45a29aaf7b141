package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/studio-ormeau/folio/internal/config"
	"github.com/studio-ormeau/folio/internal/log"
	"github.com/studio-ormeau/folio/internal/session"
	"github.com/studio-ormeau/folio/internal/tui"
	"github.com/studio-ormeau/folio/pkg/api"
)

// runConsole launches the admin console when no subcommand is given.
func runConsole(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	paths := config.GetPaths(cfg)
	if err := log.Init(paths.Log); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = log.Close()
	}()

	sess, err := session.Load(paths.Token)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	client := api.New(cfg.API.BaseURL, sess)
	guard := session.NewGuard(sess, client)

	log.Printf("console starting, api=%s authenticated=%v\n", cfg.API.BaseURL, sess.Authenticated())

	program := tea.NewProgram(tui.NewModel(guard, client), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run console: %w", err)
	}
	return nil
}
