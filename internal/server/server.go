// Package server implements the folio REST backend: public read API,
// public contact form, and the JWT-protected admin API consumed by the
// admin console.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/studio-ormeau/folio/internal/config"
	"github.com/studio-ormeau/folio/internal/db"
)

// Server owns the HTTP surface and its collaborators.
type Server struct {
	db      *db.DB
	cfg     config.ServerConfig
	mailer  Mailer
	logger  *slog.Logger
	limiter *rate.Limiter

	httpServer *http.Server
}

// New creates a server. mailer may be nil to disable contact
// notifications; logger defaults to slog.Default().
func New(database *db.DB, cfg config.ServerConfig, mailer Mailer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.LoginRate < 1 {
		cfg.LoginRate = 10
	}

	s := &Server{
		db:      database,
		cfg:     cfg,
		mailer:  mailer,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.LoginRate)), cfg.LoginRate),
	}
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.requestLogger(s.routes()),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// routes wires every endpoint. Mutating and admin-read endpoints go
// through requireAdmin.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("GET /api/auth/check", s.requireAdmin(s.handleAuthCheck))

	mux.HandleFunc("GET /api/projects", s.handleListProjects)
	mux.HandleFunc("GET /api/projects/{id}", s.handleGetProject)
	mux.HandleFunc("POST /api/projects", s.requireAdmin(s.handleCreateProject))
	mux.HandleFunc("PUT /api/projects/{id}", s.requireAdmin(s.handleUpdateProject))
	mux.HandleFunc("DELETE /api/projects/{id}", s.requireAdmin(s.handleDeleteProject))

	mux.HandleFunc("GET /api/tags", s.handleListTags)

	mux.HandleFunc("GET /api/skills", s.handleListSkills)
	mux.HandleFunc("POST /api/skills", s.requireAdmin(s.handleCreateSkill))
	mux.HandleFunc("PUT /api/skills/{id}", s.requireAdmin(s.handleUpdateSkill))
	mux.HandleFunc("DELETE /api/skills/{id}", s.requireAdmin(s.handleDeleteSkill))

	mux.HandleFunc("POST /api/contact", s.handleSubmitContact)
	mux.HandleFunc("GET /api/contacts", s.requireAdmin(s.handleListContacts))
	mux.HandleFunc("PUT /api/contacts/{id}", s.requireAdmin(s.handleMarkContactRead))
	mux.HandleFunc("DELETE /api/contacts/{id}", s.requireAdmin(s.handleDeleteContact))

	return mux
}

// Handler returns the full middleware-wrapped handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.cfg.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
