package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studio-ormeau/folio/internal/config"
	"github.com/studio-ormeau/folio/internal/db"
	"github.com/studio-ormeau/folio/internal/models"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset portfolio content to the sample dataset",
	Long: `Reset portfolio content to the sample dataset.

Replaces all projects, tags, and skills with sample entries. Users and
contact messages are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		database, err := db.New(db.DefaultConfig(cfg.Server.DBPath))
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer func() {
			_ = database.Close()
		}()

		if err := database.Seed(); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
		cmd.Println("Sample portfolio data loaded.")
		return nil
	},
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin user for the console",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if username == "" || email == "" || password == "" {
			return fmt.Errorf("username, email, and password are all required")
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		database, err := db.New(db.DefaultConfig(cfg.Server.DBPath))
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer func() {
			_ = database.Close()
		}()

		exists, err := database.UserExists(username, email)
		if err != nil {
			return fmt.Errorf("check existing users: %w", err)
		}
		if exists {
			return fmt.Errorf("a user with that username or email already exists")
		}

		user := &models.User{Username: username, Email: email, IsAdmin: true}
		if err := user.SetPassword(password); err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		if err := database.CreateUser(user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		cmd.Printf("Admin user %q created.\n", username)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringP("username", "u", "", "admin username")
	createAdminCmd.Flags().StringP("email", "e", "", "admin email")
	createAdminCmd.Flags().StringP("password", "p", "", "admin password")
}
