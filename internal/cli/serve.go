package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/studio-ormeau/folio/internal/config"
	"github.com/studio-ormeau/folio/internal/db"
	"github.com/studio-ormeau/folio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio REST backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		slog.SetDefault(logger)

		database, err := db.New(db.DefaultConfig(cfg.Server.DBPath))
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer func() {
			_ = database.Close()
		}()

		var mailer server.Mailer
		if m := server.NewResendMailer(cfg.Mail); m != nil {
			mailer = m
			logger.Info("contact notifications enabled", "to", cfg.Mail.AdminEmail)
		} else {
			logger.Info("contact notifications disabled")
		}

		if cfg.Server.JWTSecret == "dev-secret-key" {
			logger.Warn("using default JWT secret, set FOLIO_JWT_SECRET in production")
		}

		srv := server.New(database, cfg.Server, mailer, logger)
		return srv.Start(cmd.Context())
	},
}
