package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-ormeau/folio/internal/config"
	"github.com/studio-ormeau/folio/internal/db"
	"github.com/studio-ormeau/folio/internal/models"
	"github.com/studio-ormeau/folio/pkg/api"
)

type captureMailer struct {
	sent chan *models.Contact
}

func (m *captureMailer) Notify(_ context.Context, contact *models.Contact) error {
	m.sent <- contact
	return nil
}

func newTestServer(t *testing.T) (*Server, *db.DB, *captureMailer) {
	t.Helper()

	database, err := db.New(db.DefaultConfig(filepath.Join(t.TempDir(), "folio.db")))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	mailer := &captureMailer{sent: make(chan *models.Contact, 1)}
	cfg := config.ServerConfig{
		Addr:      ":0",
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		LoginRate: 100,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(database, cfg, mailer, logger), database, mailer
}

func createUser(t *testing.T, database *db.DB, username string, admin bool) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", IsAdmin: admin}
	require.NoError(t, user.SetPassword("hunter2!"))
	require.NoError(t, database.CreateUser(user))
	return user
}

func adminToken(t *testing.T, s *Server, database *db.DB) string {
	t.Helper()
	user := createUser(t, database, "admin", true)
	token, err := s.issueToken(user.ID)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestLogin(t *testing.T) {
	s, database, _ := newTestServer(t)
	createUser(t, database, "admin", true)

	t.Run("success returns token", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/login", "",
			map[string]string{"username": "admin", "password": "hunter2!"})
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			AccessToken string `json:"access_token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.AccessToken)

		userID, err := s.parseToken(body.AccessToken)
		require.NoError(t, err)
		assert.NotZero(t, userID)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/login", "",
			map[string]string{"username": "admin", "password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", messageOf(t, rec))
	})

	t.Run("unknown user", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/login", "",
			map[string]string{"username": "ghost", "password": "hunter2!"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/login", "",
			map[string]string{"username": "admin"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing username or password", messageOf(t, rec))
	})

	t.Run("non-admin rejected", func(t *testing.T) {
		createUser(t, database, "visitor", false)
		rec := doJSON(t, s, http.MethodPost, "/api/login", "",
			map[string]string{"username": "visitor", "password": "hunter2!"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Unauthorized access", messageOf(t, rec))
	})
}

func TestLogin_RateLimited(t *testing.T) {
	s, database, _ := newTestServer(t)
	s.cfg.LoginRate = 2
	s = New(database, s.cfg, nil, s.logger)
	createUser(t, database, "admin", true)

	creds := map[string]string{"username": "admin", "password": "wrong"}
	for range 2 {
		rec := doJSON(t, s, http.MethodPost, "/api/login", "", creds)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := doJSON(t, s, http.MethodPost, "/api/login", "", creds)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestAuthCheck(t *testing.T) {
	s, database, _ := newTestServer(t)

	t.Run("missing header", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/auth/check", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Missing Authorization Header", messageOf(t, rec))
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/auth/check", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		user := createUser(t, database, "admin", true)
		s.cfg.TokenTTL = -time.Hour
		token, err := s.issueToken(user.ID)
		require.NoError(t, err)
		s.cfg.TokenTTL = time.Hour

		rec := doJSON(t, s, http.MethodGet, "/api/auth/check", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		user, err := database.GetUserByUsername("admin")
		require.NoError(t, err)
		token, err := s.issueToken(user.ID)
		require.NoError(t, err)

		rec := doJSON(t, s, http.MethodGet, "/api/auth/check", token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-admin token", func(t *testing.T) {
		user := createUser(t, database, "visitor", false)
		token, err := s.issueToken(user.ID)
		require.NoError(t, err)

		rec := doJSON(t, s, http.MethodGet, "/api/auth/check", token, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestProjectCRUD(t *testing.T) {
	s, database, _ := newTestServer(t)
	token := adminToken(t, s, database)

	demo := "https://demo.example.com"
	payload := api.ProjectPayload{
		Title:       "Weather Station",
		Description: "Self-hosted weather dashboard",
		DemoURL:     &demo,
		Featured:    true,
		Tags:        []string{"Go", "SQLite"},
	}

	rec := doJSON(t, s, http.MethodPost, "/api/projects", token, payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created api.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, []string{"Go", "SQLite"}, created.Tags)
	require.NotNil(t, created.DemoURL)
	assert.Equal(t, demo, *created.DemoURL)
	assert.Nil(t, created.RepoURL)

	t.Run("list is public", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/projects", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var projects []api.Project
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
		require.Len(t, projects, 1)
		assert.Equal(t, "Weather Station", projects[0].Title)
	})

	t.Run("featured filter", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/projects?featured=true", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var projects []api.Project
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
		assert.Len(t, projects, 1)

		rec = doJSON(t, s, http.MethodGet, "/api/projects?tag=Rust", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
		assert.Empty(t, projects)
	})

	t.Run("update replaces tags", func(t *testing.T) {
		payload.Tags = []string{"Go", "Grafana"}
		payload.Featured = false
		rec := doJSON(t, s, http.MethodPut, "/api/projects/1", token, payload)
		require.Equal(t, http.StatusOK, rec.Code)

		var updated api.Project
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.ElementsMatch(t, []string{"Go", "Grafana"}, updated.Tags)
		assert.False(t, updated.Featured)
	})

	t.Run("mutations require auth", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/projects", "", payload)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = doJSON(t, s, http.MethodDelete, "/api/projects/1", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing title rejected", func(t *testing.T) {
		bad := payload
		bad.Title = "   "
		rec := doJSON(t, s, http.MethodPost, "/api/projects", token, bad)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing or empty required field: title", messageOf(t, rec))
	})

	t.Run("delete", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodDelete, "/api/projects/1", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, s, http.MethodGet, "/api/projects/1", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Project not found", messageOf(t, rec))
	})
}

func TestSkillValidation(t *testing.T) {
	s, database, _ := newTestServer(t)
	token := adminToken(t, s, database)

	t.Run("invalid category", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/skills", token,
			api.SkillPayload{Name: "Go", Level: 90, Category: "sorcery"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid category: sorcery", messageOf(t, rec))
	})

	t.Run("level out of range", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/skills", token,
			api.SkillPayload{Name: "Go", Level: 0, Category: "backend"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Level must be between 1 and 100", messageOf(t, rec))
	})

	t.Run("crud roundtrip", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/skills", token,
			api.SkillPayload{Name: "Go", Level: 90, Category: "backend"})
		require.Equal(t, http.StatusCreated, rec.Code)

		var skill api.Skill
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &skill))

		rec = doJSON(t, s, http.MethodPut, "/api/skills/1", token,
			api.SkillPayload{Name: "Go", Level: 95, Category: "backend"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, s, http.MethodGet, "/api/skills?category=backend", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var skills []api.Skill
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &skills))
		require.Len(t, skills, 1)
		assert.Equal(t, 95, skills[0].Level)

		rec = doJSON(t, s, http.MethodDelete, "/api/skills/1", token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestContactFlow(t *testing.T) {
	s, database, mailer := newTestServer(t)
	token := adminToken(t, s, database)

	t.Run("invalid email rejected", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/contact", "",
			api.ContactPayload{Name: "A", Email: "not-an-email", Subject: "Hi", Message: "Hello"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid email format", messageOf(t, rec))
	})

	t.Run("missing message rejected", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/contact", "",
			api.ContactPayload{Name: "A", Email: "a@example.com", Subject: "Hi"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing required field: message", messageOf(t, rec))
	})

	t.Run("submit notifies admin", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/contact", "",
			api.ContactPayload{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"})
		require.Equal(t, http.StatusCreated, rec.Code)

		select {
		case contact := <-mailer.sent:
			assert.Equal(t, "ada@example.com", contact.Email)
		case <-time.After(2 * time.Second):
			t.Fatal("notification never sent")
		}
	})

	t.Run("list requires auth and orders newest first", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/contacts", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		second := &models.Contact{Name: "Brin", Email: "b@example.com", Subject: "Later", Message: "Second"}
		require.NoError(t, database.CreateContact(second))

		rec = doJSON(t, s, http.MethodGet, "/api/contacts", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var contacts []api.Contact
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contacts))
		require.Len(t, contacts, 2)
		assert.Equal(t, "Later", contacts[0].Subject)
	})

	t.Run("mark read is idempotent", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPut, "/api/contacts/1", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var contact api.Contact
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contact))
		assert.True(t, contact.Read)

		rec = doJSON(t, s, http.MethodPut, "/api/contacts/1", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contact))
		assert.True(t, contact.Read)
	})

	t.Run("delete", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodDelete, "/api/contacts/1", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, s, http.MethodDelete, "/api/contacts/1", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRequestIDHeader(t *testing.T) {
	s, _, _ := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/projects", "", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
