package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-ormeau/folio/internal/session"
	"github.com/studio-ormeau/folio/internal/tui/views"
	"github.com/studio-ormeau/folio/pkg/api"
)

func testModel(t *testing.T, token string) *Model {
	t.Helper()

	sess, err := session.Load(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)
	if token != "" {
		require.NoError(t, sess.SetToken(token))
	}

	client := api.New("http://localhost:0", sess)
	m := NewModel(session.NewGuard(sess, client), client)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestStartsOnLoginWithoutToken(t *testing.T) {
	m := testModel(t, "")
	assert.Equal(t, ViewLogin, m.currentView)
	assert.Contains(t, m.View(), "folio admin")
}

func TestStartsOnProjectsWithToken(t *testing.T) {
	m := testModel(t, "some-token")
	assert.Equal(t, ViewProjects, m.currentView)
}

func TestAuthFailureRedirectsToLogin(t *testing.T) {
	m := testModel(t, "stale-token")
	m.genProjects = 1

	m.Update(views.ProjectsLoadedMsg{
		Gen: 1,
		Err: &api.Error{Kind: api.KindAuth, Message: "Token is invalid or has expired"},
	})

	assert.Equal(t, ViewLogin, m.currentView)
	assert.Contains(t, m.View(), "Session expired")
}

func TestStaleCollectionReplyDropped(t *testing.T) {
	m := testModel(t, "token")
	m.genProjects = 2

	m.Update(views.ProjectsLoadedMsg{
		Gen:      1,
		Projects: []api.Project{{ID: 1, Title: "Old"}},
	})
	assert.Equal(t, 0, m.projectsView.List().Store().Len())

	m.Update(views.ProjectsLoadedMsg{
		Gen:      2,
		Projects: []api.Project{{ID: 2, Title: "Fresh"}},
	})
	assert.Equal(t, 1, m.projectsView.List().Store().Len())
}

func TestSavedProjectReturnsToList(t *testing.T) {
	m := testModel(t, "token")
	m.genProjects = 1
	m.Update(views.ProjectsLoadedMsg{Gen: 1, Projects: []api.Project{}})

	m.updateKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.Equal(t, ViewProjectForm, m.currentView)

	m.Update(views.ProjectSavedMsg{
		Project: api.Project{ID: 5, Title: "Fresh", Description: "x"},
		Created: true,
	})
	assert.Equal(t, ViewProjects, m.currentView)
	assert.Equal(t, 1, m.projectsView.List().Store().Len())
	assert.Contains(t, m.View(), "Project saved")
}

func TestContactReadConfirmationUpdatesBadge(t *testing.T) {
	m := testModel(t, "token")
	m.currentView = ViewContacts
	m.genContacts = 1
	m.Update(views.ContactsLoadedMsg{Gen: 1, Contacts: []api.Contact{
		{ID: 1, Name: "Ada", Subject: "Hi", Message: "x"},
	}})
	assert.Contains(t, m.View(), "contacts (1)")

	m.contactsView.Inbox().Select(1)
	m.Update(views.ContactReadMsg{ID: 1})
	assert.NotContains(t, m.View(), "contacts (1)")
}
