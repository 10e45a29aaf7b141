package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/studio-ormeau/folio/internal/config"
	"github.com/studio-ormeau/folio/internal/session"
	"github.com/studio-ormeau/folio/pkg/api"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store a session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		username, _ := cmd.Flags().GetString("username")
		if username == "" {
			cmd.Print("Username: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read username: %w", err)
			}
			username = strings.TrimSpace(line)
		}

		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			cmd.Print("Password: ")
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			cmd.Println()
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			password = string(raw)
		}

		sess, err := session.Load(config.GetPaths(cfg).Token)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		client := api.New(cfg.API.BaseURL, sess)
		guard := session.NewGuard(sess, client)

		if err := guard.Login(cmd.Context(), username, password); err != nil {
			return fmt.Errorf("%s", api.Message(err))
		}
		cmd.Println("Logged in.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		sess, err := session.Load(config.GetPaths(cfg).Token)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if !sess.Authenticated() {
			cmd.Println("Not logged in.")
			return nil
		}
		sess.Invalidate()
		cmd.Println("Logged out.")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringP("username", "u", "", "admin username")
	loginCmd.Flags().StringP("password", "p", "", "admin password (prompted if omitted)")
}
