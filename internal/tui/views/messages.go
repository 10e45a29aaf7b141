// Package views contains the screens of the admin console.
package views

import "github.com/studio-ormeau/folio/pkg/api"

// Messages produced by background REST commands. Gen carries the
// app's request generation so replies from superseded requests can be
// dropped.

// LoginResultMsg is sent when a login attempt finishes.
type LoginResultMsg struct {
	Err error
}

// SessionCheckedMsg is sent when the startup token probe finishes.
type SessionCheckedMsg struct {
	Err error
}

// ProjectsLoadedMsg carries a fresh project collection.
type ProjectsLoadedMsg struct {
	Gen      int
	Projects []api.Project
	Err      error
}

// TagsLoadedMsg carries the tag reference list for suggestions and
// filters.
type TagsLoadedMsg struct {
	Gen  int
	Tags []api.Tag
	Err  error
}

// ProjectLoadedMsg carries a single project fetched for editing.
type ProjectLoadedMsg struct {
	Gen     int
	Project api.Project
	Err     error
}

// ProjectSavedMsg is sent when a create or update completes.
type ProjectSavedMsg struct {
	Gen     int
	Project api.Project
	Created bool
	Err     error
}

// ProjectDeletedMsg is sent when a project delete completes.
type ProjectDeletedMsg struct {
	Gen int
	ID  int
	Err error
}

// SkillsLoadedMsg carries a fresh skill collection.
type SkillsLoadedMsg struct {
	Gen    int
	Skills []api.Skill
	Err    error
}

// SkillSavedMsg is sent when a skill create or update completes.
type SkillSavedMsg struct {
	Gen     int
	Skill   api.Skill
	Created bool
	Err     error
}

// SkillDeletedMsg is sent when a skill delete completes.
type SkillDeletedMsg struct {
	Gen int
	ID  int
	Err error
}

// ContactsLoadedMsg carries a fresh contact collection.
type ContactsLoadedMsg struct {
	Gen      int
	Contacts []api.Contact
	Err      error
}

// ContactReadMsg is sent when a mark-read call completes.
type ContactReadMsg struct {
	Gen int
	ID  int
	Err error
}

// ContactDeletedMsg is sent when a contact delete completes.
type ContactDeletedMsg struct {
	Gen int
	ID  int
	Err error
}

// EmailCopiedMsg is sent after copying a sender address to the
// clipboard.
type EmailCopiedMsg struct {
	Email string
	Err   error
}
