package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestLoginSubmitRequiresBothFields(t *testing.T) {
	v := NewLoginView()

	for _, r := range "admin" {
		v.Update(keyRunes(string(r)))
	}
	// Enter on the username field moves focus to password
	submit, _ := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, submit)

	// Empty password blocks submission
	submit, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, submit)
	assert.Contains(t, v.View(), "Enter both username and password")

	for _, r := range "hunter2!" {
		v.Update(keyRunes(string(r)))
	}
	submit, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, submit)

	username, password := v.Credentials()
	assert.Equal(t, "admin", username)
	assert.Equal(t, "hunter2!", password)
}

func TestLoginBusyLocksInput(t *testing.T) {
	v := NewLoginView()
	v.SetBusy(true)

	submit, _ := v.Update(keyRunes("x"))
	assert.False(t, submit)

	username, _ := v.Credentials()
	assert.Empty(t, username)
	assert.Contains(t, v.View(), "Logging in")

	v.SetError("Invalid credentials")
	assert.False(t, v.Busy())
	assert.Contains(t, v.View(), "Invalid credentials")
}
