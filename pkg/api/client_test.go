package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCreds implements TokenSource for tests.
type fakeCreds struct {
	token       string
	invalidated bool
}

func (f *fakeCreds) Token() string { return f.token }
func (f *fakeCreds) Invalidate()  { f.invalidated = true; f.token = "" }

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin", body["username"])

		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-123"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	token, err := c.Login(context.Background(), "admin", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Login(context.Background(), "admin", "nope")
	require.Error(t, err)
	assert.True(t, IsAuth(err))
	assert.Equal(t, "Invalid credentials", Message(err))
}

func TestListProjects_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "true", r.URL.Query().Get("featured"))
		json.NewEncoder(w).Encode([]Project{{ID: 1, Title: "Shop"}}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeCreds{token: "tok"})
	projects, err := c.ListProjects(context.Background(), ProjectListOptions{Featured: true})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Shop", projects[0].Title)
}

func TestAuthFailure_InvalidatesCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Token has expired"}) //nolint:errcheck
	}))
	defer srv.Close()

	creds := &fakeCreds{token: "stale"}
	c := New(srv.URL, creds)
	_, err := c.ListContacts(context.Background())

	require.Error(t, err)
	assert.True(t, IsAuth(err))
	assert.True(t, creds.invalidated)
	assert.Empty(t, creds.token)
}

func TestForbidden_IsAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized access"}) //nolint:errcheck
	}))
	defer srv.Close()

	creds := &fakeCreds{token: "user-not-admin"}
	c := New(srv.URL, creds)
	err := c.DeleteProject(context.Background(), 7)

	require.Error(t, err)
	assert.True(t, IsAuth(err))
	assert.True(t, creds.invalidated)
}

func TestValidationError_CarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Missing or empty required field: title"}) //nolint:errcheck
	}))
	defer srv.Close()

	creds := &fakeCreds{token: "tok"}
	c := New(srv.URL, creds)
	_, err := c.CreateProject(context.Background(), ProjectPayload{})

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.False(t, creds.invalidated)
	assert.Equal(t, "Missing or empty required field: title", Message(err))
}

func TestServerError_GenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeCreds{token: "tok"})
	err := c.DeleteSkill(context.Background(), 1)

	require.Error(t, err)
	kind, ok := ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, KindServer, kind)
	assert.NotContains(t, Message(err), "500")
}

func TestNetworkError(t *testing.T) {
	// Point at a server that is already closed
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := New(srv.URL, nil)
	_, err := c.ListTags(context.Background())

	require.Error(t, err)
	kind, ok := ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, KindNetwork, kind)
}

func TestMarkContactRead_UsesPut(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]string{"message": "Contact marked as read"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeCreds{token: "tok"})
	require.NoError(t, c.MarkContactRead(context.Background(), 42))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/contacts/42", gotPath)
}
