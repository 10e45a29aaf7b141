// Package tui implements the folio admin console.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studio-ormeau/folio/internal/session"
	"github.com/studio-ormeau/folio/internal/tui/components"
	"github.com/studio-ormeau/folio/internal/tui/views"
	"github.com/studio-ormeau/folio/pkg/api"
	"github.com/studio-ormeau/folio/pkg/version"
)

// ViewType identifies the current view.
type ViewType int

const (
	ViewLogin ViewType = iota
	ViewProjects
	ViewProjectForm
	ViewSkills
	ViewSkillForm
	ViewContacts
)

const requestTimeout = 30 * time.Second

// Model is the main Bubble Tea model for the admin console.
type Model struct {
	guard  *session.Guard
	client *api.Client
	styles Styles

	currentView ViewType

	loginView       *views.LoginView
	projectsView    *views.ProjectsView
	projectFormView *views.ProjectFormView
	skillsView      *views.SkillsView
	skillFormView   *views.SkillFormView
	contactsView    *views.ContactsView

	// Per-collection request generations. Replies stamped with an older
	// generation are dropped.
	genProjects    int
	genSkills      int
	genContacts    int
	genTags        int
	genProjectLoad int

	// Pending delete confirmation
	confirmDialog  *components.ConfirmDialog
	showingConfirm bool
	pendingDelete  func() tea.Cmd

	// Quit confirmation
	quitConfirm  *components.ConfirmDialog
	showingQuit  bool
	statusText   string
	statusIsErr  bool
	width        int
	height       int
	ready        bool
	quitting     bool
}

// NewModel creates the console model. The starting view depends on
// whether a stored session token exists.
func NewModel(guard *session.Guard, client *api.Client) *Model {
	startView := ViewLogin
	if guard.Authenticated() {
		startView = ViewProjects
	}

	return &Model{
		guard:           guard,
		client:          client,
		styles:          DefaultStyles(),
		currentView:     startView,
		loginView:       views.NewLoginView(),
		projectsView:    views.NewProjectsView(),
		projectFormView: views.NewProjectFormView(),
		skillsView:      views.NewSkillsView(),
		skillFormView:   views.NewSkillFormView(),
		contactsView:    views.NewContactsView(),
		confirmDialog:   components.NewConfirmDialog("", ""),
		quitConfirm:     components.NewConfirmDialog("Quit folio?", "Are you sure you want to exit?"),
	}
}

// Init validates any stored token and kicks off the first loads.
func (m *Model) Init() tea.Cmd {
	if m.currentView == ViewLogin {
		return nil
	}
	return tea.Batch(m.checkSessionCmd(), m.loadAllCmd())
}

// loadAllCmd refreshes every collection the console shows.
func (m *Model) loadAllCmd() tea.Cmd {
	return tea.Batch(
		m.loadProjectsCmd(),
		m.loadTagsCmd(),
		m.loadSkillsCmd(),
		m.loadContactsCmd(),
	)
}

// handleAuthFailure redirects to login the moment any call reports an
// authentication error. The guard has already dropped the token.
func (m *Model) handleAuthFailure(err error) bool {
	if !api.IsAuth(err) {
		return false
	}
	m.loginView.Reset()
	m.loginView.SetError("Session expired, log in again")
	m.currentView = ViewLogin
	return true
}

// setStatus shows a transient line in the footer.
func (m *Model) setStatus(text string, isErr bool) {
	m.statusText = text
	m.statusIsErr = isErr
}

// Update handles all messages and user input.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := m.height - 4
		if contentHeight < 5 {
			contentHeight = 5
		}
		m.loginView.SetSize(m.width, m.height)
		m.projectsView.SetSize(m.width, contentHeight)
		m.projectFormView.SetSize(m.width, contentHeight)
		m.skillsView.SetSize(m.width, contentHeight)
		m.skillFormView.SetSize(m.width, contentHeight)
		m.contactsView.SetSize(m.width, contentHeight)

	case views.LoginResultMsg:
		if msg.Err != nil {
			m.loginView.SetError(api.Message(msg.Err))
			return m, nil
		}
		m.loginView.Reset()
		m.currentView = ViewProjects
		return m, m.loadAllCmd()

	case views.SessionCheckedMsg:
		if msg.Err != nil {
			if m.handleAuthFailure(msg.Err) {
				return m, nil
			}
			m.setStatus(api.Message(msg.Err), true)
		}

	case views.ProjectsLoadedMsg:
		if msg.Gen != m.genProjects {
			return m, nil
		}
		if msg.Err != nil {
			if m.handleAuthFailure(msg.Err) {
				return m, nil
			}
			m.projectsView.SetError(api.Message(msg.Err))
			return m, nil
		}
		m.projectsView.SetProjects(msg.Projects)

	case views.TagsLoadedMsg:
		if msg.Gen != m.genTags || msg.Err != nil {
			return m, nil
		}
		m.projectsView.SetTags(msg.Tags)
		m.projectFormView.SetTags(msg.Tags)

	case views.ProjectLoadedMsg:
		if msg.Gen != m.genProjectLoad {
			return m, nil
		}
		if msg.Err != nil && m.handleAuthFailure(msg.Err) {
			return m, nil
		}
		m.projectFormView.HandleLoaded(msg.Project, msg.Err)

	case views.ProjectSavedMsg:
		if msg.Err != nil {
			if m.handleAuthFailure(msg.Err) {
				return m, nil
			}
			m.projectFormView.HandleSaveResult(msg.Err)
			return m, nil
		}
		m.projectFormView.HandleSaveResult(nil)
		m.projectsView.ApplySaved(msg.Project, msg.Created)
		m.currentView = ViewProjects
		m.setStatus("Project saved", false)
		return m, m.loadTagsCmd()

	case views.ProjectDeletedMsg:
		if msg.Err != nil {
			if m.handleAuthFailure(msg.Err) {
				return m, nil
			}
			m.setStatus(api.Message(msg.Err), true)
			return m, nil
		}
		m.projectsView.ApplyDeleted(msg.ID)
		m.setStatus("Project deleted", false)

	case views.SkillsLoadedMsg:
		if msg.Gen != m.genSkills {
			return m, nil
		}
		if msg.Err != nil {
			if m.handleAuthFailure(msg.Err) {
				return m, nil
			}
			m.skillsView.SetError(api.Message(msg.Err))
			return m, nil
		}
		m.skillsView.SetSkills(msg.Skills)

	case views.SkillSavedMsg:
		if msg.Err != nil {
			if m.handleAuthFailure(msg.Err) {
				return m, nil
			}
			m.skillFormView.HandleSaveResult(msg.Err)
			return m, nil
		}
		m.skillFormView.HandleSaveResult(nil)
		m.skillsView.ApplySaved(msg.Skill, msg.Created)
		m.currentView = ViewSkills
		m.setStatus("Skill saved", false)

	case views.SkillDeletedMsg:
		if msg.Err != nil {
			if m.handleAuthFailure(msg.Err) {
				return m, nil
			}
			m.setStatus(api.Message(msg.Err), true)
			return m, nil
		}
		m.skillsView.ApplyDeleted(msg.ID)
		m.setStatus("Skill deleted", false)

	case views.ContactsLoadedMsg:
		if msg.Gen != m.genContacts {
			return m, nil
		}
		if msg.Err != nil {
			if m.handleAuthFailure(msg.Err) {
				return m, nil
			}
			m.contactsView.SetError(api.Message(msg.Err))
			return m, nil
		}
		m.contactsView.SetContacts(msg.Contacts)

	case views.ContactReadMsg:
		if msg.Err != nil {
			m.contactsView.Inbox().AbortRead(msg.ID)
			if m.handleAuthFailure(msg.Err) {
				return m, nil
			}
			// Leave the local flag untouched; the badge stays accurate.
			m.setStatus(api.Message(msg.Err), true)
			return m, nil
		}
		m.contactsView.Inbox().ConfirmRead(msg.ID)

	case views.ContactDeletedMsg:
		if msg.Err != nil {
			if m.handleAuthFailure(msg.Err) {
				return m, nil
			}
			m.setStatus(api.Message(msg.Err), true)
			return m, nil
		}
		m.contactsView.Inbox().Delete(msg.ID)
		m.setStatus("Message deleted", false)

	case views.EmailCopiedMsg:
		if msg.Err != nil {
			m.setStatus("Copy failed: "+msg.Err.Error(), true)
		} else {
			m.setStatus("Copied "+msg.Email, false)
		}
	}

	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.showingQuit {
		switch key {
		case "left", "right", "h", "l", "tab":
			m.quitConfirm.Toggle()
		case "enter":
			if m.quitConfirm.IsYesSelected() {
				m.quitting = true
				return m, tea.Quit
			}
			m.showingQuit = false
			m.quitConfirm.SelectNo()
		case "esc", "n":
			m.showingQuit = false
			m.quitConfirm.SelectNo()
		case "y":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.showingConfirm {
		switch key {
		case "left", "right", "h", "l", "tab":
			m.confirmDialog.Toggle()
		case "enter", "y":
			confirmed := key == "y" || m.confirmDialog.IsYesSelected()
			m.showingConfirm = false
			m.confirmDialog.SelectNo()
			if confirmed && m.pendingDelete != nil {
				cmd := m.pendingDelete()
				m.pendingDelete = nil
				return m, cmd
			}
			m.pendingDelete = nil
		case "esc", "n":
			m.showingConfirm = false
			m.confirmDialog.SelectNo()
			m.pendingDelete = nil
		}
		return m, nil
	}

	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.currentView == ViewLogin {
		submit, cmd := m.loginView.Update(msg)
		if submit {
			m.loginView.SetBusy(true)
			username, password := m.loginView.Credentials()
			return m, m.loginCmd(username, password)
		}
		return m, cmd
	}

	// Typing goes to whatever input is focused before global keys apply.
	typing := m.currentView == ViewProjectForm || m.currentView == ViewSkillForm ||
		(m.currentView == ViewProjects && m.projectsView.SearchFocused()) ||
		(m.currentView == ViewSkills && m.skillsView.SearchFocused()) ||
		(m.currentView == ViewContacts && m.contactsView.SearchFocused())

	if !typing {
		switch key {
		case "q":
			m.showingQuit = true
			return m, nil
		case "ctrl+l":
			m.guard.Logout()
			m.loginView.Reset()
			m.currentView = ViewLogin
			return m, nil
		case "1":
			m.currentView = ViewProjects
			return m, nil
		case "2":
			m.currentView = ViewSkills
			return m, nil
		case "3":
			m.currentView = ViewContacts
			return m, nil
		}
	}

	switch m.currentView {
	case ViewProjects:
		action, cmd := m.projectsView.Update(msg)
		switch action {
		case views.ProjectsActionNew:
			m.projectFormView.StartCreate()
			m.currentView = ViewProjectForm
		case views.ProjectsActionEdit:
			if p, ok := m.projectsView.Selected(); ok {
				m.projectFormView.StartEdit(p.ID)
				m.currentView = ViewProjectForm
				m.genProjectLoad++
				return m, m.loadProjectCmd(p.ID, m.genProjectLoad)
			}
		case views.ProjectsActionDelete:
			if p, ok := m.projectsView.Selected(); ok {
				m.confirmDialog.SetMessage("Delete project?",
					fmt.Sprintf("%q will be permanently removed.", p.Title))
				m.showingConfirm = true
				id := p.ID
				m.pendingDelete = func() tea.Cmd { return m.deleteProjectCmd(id) }
			}
		case views.ProjectsActionRefresh:
			m.projectsView.SetLoading()
			return m, tea.Batch(m.loadProjectsCmd(), m.loadTagsCmd())
		}
		return m, cmd

	case ViewProjectForm:
		action, cmd := m.projectFormView.Update(msg)
		switch action {
		case views.FormActionCancel:
			m.currentView = ViewProjects
		case views.FormActionSubmit:
			return m, m.saveProjectCmd(m.projectFormView.EditingID(), m.projectFormView.Payload())
		}
		return m, cmd

	case ViewSkills:
		action, cmd := m.skillsView.Update(msg)
		switch action {
		case views.SkillsActionNew:
			m.skillFormView.StartCreate()
			m.currentView = ViewSkillForm
		case views.SkillsActionEdit:
			if sk, ok := m.skillsView.Selected(); ok {
				m.skillFormView.StartEdit(sk)
				m.currentView = ViewSkillForm
			}
		case views.SkillsActionDelete:
			if sk, ok := m.skillsView.Selected(); ok {
				m.confirmDialog.SetMessage("Delete skill?",
					fmt.Sprintf("%q will be permanently removed.", sk.Name))
				m.showingConfirm = true
				id := sk.ID
				m.pendingDelete = func() tea.Cmd { return m.deleteSkillCmd(id) }
			}
		case views.SkillsActionRefresh:
			m.skillsView.SetLoading()
			return m, m.loadSkillsCmd()
		}
		return m, cmd

	case ViewSkillForm:
		action, cmd := m.skillFormView.Update(msg)
		switch action {
		case views.FormActionCancel:
			m.currentView = ViewSkills
		case views.FormActionSubmit:
			return m, m.saveSkillCmd(m.skillFormView.EditingID(), m.skillFormView.Payload())
		}
		return m, cmd

	case ViewContacts:
		action, cmd := m.contactsView.Update(msg)
		switch action {
		case views.ContactsActionMarkRead:
			if c, ok := m.contactsView.Inbox().Selected(); ok {
				return m, m.markContactReadCmd(c.ID)
			}
		case views.ContactsActionCopyEmail:
			if c, ok := m.contactsView.Inbox().Selected(); ok {
				return m, copyEmailCmd(c.Email)
			}
		case views.ContactsActionDelete:
			if c, ok := m.contactsView.Inbox().Selected(); ok {
				m.confirmDialog.SetMessage("Delete message?",
					fmt.Sprintf("Message from %s will be permanently removed.", c.Name))
				m.showingConfirm = true
				id := c.ID
				m.pendingDelete = func() tea.Cmd { return m.deleteContactCmd(id) }
			}
		case views.ContactsActionRefresh:
			m.contactsView.SetLoading()
			return m, m.loadContactsCmd()
		}
		return m, cmd
	}

	return m, nil
}

// View renders the console.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.quitting {
		return ""
	}

	if m.currentView == ViewLogin {
		return m.loginView.View()
	}

	var content string
	switch m.currentView {
	case ViewProjects:
		content = m.projectsView.View()
	case ViewProjectForm:
		content = m.projectFormView.View()
	case ViewSkills:
		content = m.skillsView.View()
	case ViewSkillForm:
		content = m.skillFormView.View()
	case ViewContacts:
		content = m.contactsView.View()
	}

	page := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.styles.Container.Render(content),
		m.renderFooter(),
	)

	if m.showingQuit {
		return m.quitConfirm.CenteredView(m.width, m.height)
	}
	if m.showingConfirm {
		return m.confirmDialog.CenteredView(m.width, m.height)
	}
	return page
}

func (m *Model) renderHeader() string {
	title := m.styles.HeaderTitle.Render("folio " + version.Version)

	tab := func(label string, view ViewType) string {
		if m.currentView == view ||
			(view == ViewProjects && m.currentView == ViewProjectForm) ||
			(view == ViewSkills && m.currentView == ViewSkillForm) {
			return m.styles.ActiveTab.Render(label)
		}
		return m.styles.HeaderTab.Render(label)
	}

	contacts := "3 contacts"
	if unread := m.contactsView.UnreadCount(); unread > 0 {
		contacts = fmt.Sprintf("3 contacts (%d)", unread)
	}

	tabs := lipgloss.JoinHorizontal(lipgloss.Left,
		tab("1 projects", ViewProjects),
		tab("2 skills", ViewSkills),
		tab(contacts, ViewContacts),
	)
	return m.styles.Header.Render(lipgloss.JoinHorizontal(lipgloss.Left, title, "  ", tabs))
}

func (m *Model) renderFooter() string {
	if m.statusText != "" {
		if m.statusIsErr {
			return m.styles.ErrorBanner.Render(m.statusText)
		}
		return m.styles.Footer.Render(m.styles.StatusOK.Render(m.statusText))
	}
	return m.styles.Footer.Render("1/2/3 switch · / search · f filter · n new · d delete · ctrl+l logout · q quit")
}

// Background REST commands. Each stamps the generation it was issued
// under so stale replies can be dropped.

func (m *Model) checkSessionCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return views.SessionCheckedMsg{Err: m.guard.Validate(ctx)}
	}
}

func (m *Model) loginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return views.LoginResultMsg{Err: m.guard.Login(ctx, username, password)}
	}
}

func (m *Model) loadProjectsCmd() tea.Cmd {
	m.genProjects++
	gen := m.genProjects
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		projects, err := m.client.ListProjects(ctx, api.ProjectListOptions{})
		return views.ProjectsLoadedMsg{Gen: gen, Projects: projects, Err: err}
	}
}

func (m *Model) loadTagsCmd() tea.Cmd {
	m.genTags++
	gen := m.genTags
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		tags, err := m.client.ListTags(ctx)
		return views.TagsLoadedMsg{Gen: gen, Tags: tags, Err: err}
	}
}

func (m *Model) loadProjectCmd(id, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		project, err := m.client.GetProject(ctx, id)
		msg := views.ProjectLoadedMsg{Gen: gen, Err: err}
		if project != nil {
			msg.Project = *project
		}
		return msg
	}
}

func (m *Model) saveProjectCmd(id int, payload api.ProjectPayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var project *api.Project
		var err error
		if id == 0 {
			project, err = m.client.CreateProject(ctx, payload)
		} else {
			project, err = m.client.UpdateProject(ctx, id, payload)
		}
		msg := views.ProjectSavedMsg{Created: id == 0, Err: err}
		if project != nil {
			msg.Project = *project
		}
		return msg
	}
}

func (m *Model) deleteProjectCmd(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return views.ProjectDeletedMsg{ID: id, Err: m.client.DeleteProject(ctx, id)}
	}
}

func (m *Model) loadSkillsCmd() tea.Cmd {
	m.genSkills++
	gen := m.genSkills
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		skills, err := m.client.ListSkills(ctx, "")
		return views.SkillsLoadedMsg{Gen: gen, Skills: skills, Err: err}
	}
}

func (m *Model) saveSkillCmd(id int, payload api.SkillPayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var skill *api.Skill
		var err error
		if id == 0 {
			skill, err = m.client.CreateSkill(ctx, payload)
		} else {
			skill, err = m.client.UpdateSkill(ctx, id, payload)
		}
		msg := views.SkillSavedMsg{Created: id == 0, Err: err}
		if skill != nil {
			msg.Skill = *skill
		}
		return msg
	}
}

func (m *Model) deleteSkillCmd(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return views.SkillDeletedMsg{ID: id, Err: m.client.DeleteSkill(ctx, id)}
	}
}

func (m *Model) loadContactsCmd() tea.Cmd {
	m.genContacts++
	gen := m.genContacts
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		contacts, err := m.client.ListContacts(ctx)
		return views.ContactsLoadedMsg{Gen: gen, Contacts: contacts, Err: err}
	}
}

func (m *Model) markContactReadCmd(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return views.ContactReadMsg{ID: id, Err: m.client.MarkContactRead(ctx, id)}
	}
}

func (m *Model) deleteContactCmd(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return views.ContactDeletedMsg{ID: id, Err: m.client.DeleteContact(ctx, id)}
	}
}

func copyEmailCmd(email string) tea.Cmd {
	return func() tea.Msg {
		return views.EmailCopiedMsg{Email: email, Err: clipboard.WriteAll(email)}
	}
}
