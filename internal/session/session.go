// Package session owns the admin bearer token: the single fixed file it
// persists to, and the login/logout/invalidate transitions. Nothing else
// writes the token.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Session holds the bearer credential for the current process and
// mirrors it to a token file so shell commands and the TUI share it.
type Session struct {
	mu    sync.Mutex
	path  string
	token string
}

// Load creates a session backed by the token file at path, reading any
// previously persisted token. A missing file just means logged out.
func Load(path string) (*Session, error) {
	s := &Session{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}
	s.token = strings.TrimSpace(string(data))
	return s, nil
}

// Token returns the current bearer token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Authenticated reports whether a token is present. The token is assumed
// valid until a protected request proves otherwise.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// SetToken stores a freshly issued token in memory and on disk.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	s.token = token
	return nil
}

// Invalidate clears the token unconditionally; used on logout and
// whenever the server rejects the credential.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		// Memory copy is already cleared; a stale file will be rejected
		// by the server on next use anyway.
		return
	}
}
