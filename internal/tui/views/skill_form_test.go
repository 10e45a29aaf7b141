package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-ormeau/folio/pkg/api"
)

func TestSkillFormValidation(t *testing.T) {
	form := NewSkillFormView()
	form.StartCreate()

	typeText(t, form.Update, "Go")
	form.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(t, form.Update, "250")

	action, _ := form.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, FormActionNone, action)
	assert.Contains(t, form.View(), "must be 1-100")
}

func TestSkillFormSubmit(t *testing.T) {
	form := NewSkillFormView()
	form.StartCreate()

	typeText(t, form.Update, "PostgreSQL")
	form.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(t, form.Update, "85")

	// Move to category and pick the third entry
	form.Update(tea.KeyMsg{Type: tea.KeyTab})
	form.Update(tea.KeyMsg{Type: tea.KeyRight})
	form.Update(tea.KeyMsg{Type: tea.KeyRight})

	action, _ := form.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Equal(t, FormActionSubmit, action)
	assert.Equal(t, FormSubmitting, form.State())

	payload := form.Payload()
	assert.Equal(t, "PostgreSQL", payload.Name)
	assert.Equal(t, 85, payload.Level)
	assert.Equal(t, "database", payload.Category)
}

func TestSkillFormEditPrefills(t *testing.T) {
	form := NewSkillFormView()
	form.StartEdit(api.Skill{ID: 3, Name: "Docker", Level: 70, Category: "devops"})

	assert.Equal(t, FormEditing, form.State())
	assert.Equal(t, 3, form.EditingID())

	payload := form.Payload()
	assert.Equal(t, "Docker", payload.Name)
	assert.Equal(t, 70, payload.Level)
	assert.Equal(t, "devops", payload.Category)
}
