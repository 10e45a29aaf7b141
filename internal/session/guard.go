package session

import (
	"context"
	"fmt"

	"github.com/studio-ormeau/folio/pkg/api"
)

// Guard decides authenticated vs. unauthenticated state for admin
// screens. Policy: any rejected probe logs the session out immediately.
type Guard struct {
	session *Session
	client  *api.Client
}

// NewGuard creates a guard over the given session and API client. The
// client must have been constructed with the same session as its
// TokenSource so auth failures clear the token.
func NewGuard(s *Session, c *api.Client) *Guard {
	return &Guard{session: s, client: c}
}

// Login exchanges credentials for a token and stores it. On failure the
// server's message is surfaced verbatim and nothing is stored.
func (g *Guard) Login(ctx context.Context, username, password string) error {
	token, err := g.client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if err := g.session.SetToken(token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

// Logout clears the token unconditionally.
func (g *Guard) Logout() {
	g.session.Invalidate()
}

// Validate probes a protected endpoint once. A nil return means the
// session is authenticated. Any HTTP rejection clears the token; a
// network failure leaves the token in place but still reports
// unauthenticated so the caller lands on the login screen.
func (g *Guard) Validate(ctx context.Context) error {
	if !g.session.Authenticated() {
		return &api.Error{Kind: api.KindAuth, Message: "not logged in"}
	}

	err := g.client.Check(ctx)
	if err == nil {
		return nil
	}
	if kind, ok := api.ErrorKind(err); ok && kind != api.KindNetwork {
		// Auth errors are already invalidated by the client; clear on
		// any other HTTP rejection too.
		g.session.Invalidate()
	}
	return err
}

// Authenticated reports whether a token is currently held.
func (g *Guard) Authenticated() bool {
	return g.session.Authenticated()
}
