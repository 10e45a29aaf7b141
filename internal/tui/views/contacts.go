package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studio-ormeau/folio/internal/store"
	"github.com/studio-ormeau/folio/internal/tui/components"
	"github.com/studio-ormeau/folio/internal/tui/theme"
	"github.com/studio-ormeau/folio/pkg/api"
)

// ContactsAction tells the app what to do after a key press.
type ContactsAction int

const (
	ContactsActionNone ContactsAction = iota
	// ContactsActionMarkRead asks the app to fire the mark-read call for
	// the newly selected contact.
	ContactsActionMarkRead
	ContactsActionDelete
	ContactsActionCopyEmail
	ContactsActionRefresh
)

const contactsPageSize = 10

// inboxFilters is the read-state filter cycle.
var inboxFilters = []string{store.FilterAll, store.FilterUnread, store.FilterRead}

// ContactsView is the message inbox: a paged list beside a detail pane.
type ContactsView struct {
	inbox     *store.Inbox
	searchBar *components.SearchBar

	filterIndex int
	cursor      int
	loading     bool
	errText     string

	width  int
	height int
}

// NewContactsView creates the inbox screen.
func NewContactsView() *ContactsView {
	return &ContactsView{
		inbox:     store.NewInbox(contactsPageSize),
		searchBar: components.NewSearchBar("Search name, email, subject..."),
		loading:   true,
	}
}

// Inbox exposes the read-state tracker, used by the app to apply
// confirmed mutations.
func (v *ContactsView) Inbox() *store.Inbox {
	return v.inbox
}

// SetContacts replaces the cached collection.
func (v *ContactsView) SetContacts(contacts []api.Contact) {
	v.inbox.Refresh(contacts)
	v.loading = false
	v.errText = ""
	v.clampCursor()
}

// SetLoading marks a refresh in flight.
func (v *ContactsView) SetLoading() {
	v.loading = true
	v.errText = ""
}

// SetError shows a load failure in place of the list.
func (v *ContactsView) SetError(text string) {
	v.loading = false
	v.errText = text
}

// UnreadCount is the unread badge for the header.
func (v *ContactsView) UnreadCount() int {
	return v.inbox.UnreadCount()
}

// Hovered returns the contact under the cursor, which may differ from
// the selected detail.
func (v *ContactsView) Hovered() (api.Contact, bool) {
	page := v.inbox.Page()
	if v.cursor >= len(page.Items) {
		return api.Contact{}, false
	}
	return page.Items[v.cursor], true
}

// SearchFocused reports whether keys are going to the search bar.
func (v *ContactsView) SearchFocused() bool {
	return v.searchBar.Focused()
}

// SetSize updates the rendering area.
func (v *ContactsView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.searchBar.SetWidth(width / 2)
}

func (v *ContactsView) clampCursor() {
	page := v.inbox.Page()
	if v.cursor >= len(page.Items) {
		v.cursor = len(page.Items) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// CycleFilter advances the read-state filter: all → unread → read.
func (v *ContactsView) CycleFilter() {
	v.filterIndex = (v.filterIndex + 1) % len(inboxFilters)
	v.inbox.SetFilter(inboxFilters[v.filterIndex])
	v.cursor = 0
}

// Update handles a key press and returns the resulting action.
func (v *ContactsView) Update(msg tea.KeyMsg) (ContactsAction, tea.Cmd) {
	key := msg.String()

	if v.searchBar.Focused() {
		switch key {
		case "esc", "enter":
			v.searchBar.Blur()
			return ContactsActionNone, nil
		default:
			cmd := v.searchBar.HandleKey(msg)
			v.inbox.SetSearch(v.searchBar.Value())
			v.cursor = 0
			return ContactsActionNone, cmd
		}
	}

	switch key {
	case "/":
		v.searchBar.Focus()
	case "esc":
		if v.searchBar.Value() != "" {
			v.searchBar.Clear()
			v.inbox.SetSearch("")
			v.cursor = 0
		}
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if page := v.inbox.Page(); v.cursor < len(page.Items)-1 {
			v.cursor++
		}
	case "left", "h":
		v.inbox.PrevPage()
		v.cursor = 0
	case "right", "l":
		v.inbox.NextPage()
		v.cursor = 0
	case "f":
		v.CycleFilter()
	case "enter":
		if contact, ok := v.Hovered(); ok {
			if v.inbox.Select(contact.ID) {
				return ContactsActionMarkRead, nil
			}
		}
	case "c":
		if _, ok := v.inbox.Selected(); ok {
			return ContactsActionCopyEmail, nil
		}
	case "d":
		if _, ok := v.inbox.Selected(); ok {
			return ContactsActionDelete, nil
		}
	case "r":
		return ContactsActionRefresh, nil
	}
	return ContactsActionNone, nil
}

// View renders the inbox with the detail pane on the right.
func (v *ContactsView) View() string {
	t := theme.Current
	var left strings.Builder

	left.WriteString(v.searchBar.View())
	left.WriteString("\n")
	left.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).
		Render(fmt.Sprintf("filter: %s  (f to cycle)", inboxFilters[v.filterIndex])))
	left.WriteString("\n\n")

	switch {
	case v.loading:
		left.WriteString(lipgloss.NewStyle().Foreground(t.Info).Render("Loading messages..."))
	case v.errText != "":
		left.WriteString(lipgloss.NewStyle().Foreground(t.Error).Render(v.errText))
	default:
		page := v.inbox.Page()
		if len(page.Items) == 0 {
			left.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render("No messages match."))
		}
		for i, c := range page.Items {
			left.WriteString(v.renderRow(c, i == v.cursor))
			left.WriteString("\n")
		}
		left.WriteString("\n")
		left.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).
			Render(fmt.Sprintf("page %d/%d", page.Number, page.TotalPages)))
	}

	listPane := lipgloss.NewStyle().Width(v.width / 2).Render(left.String())
	detailPane := v.renderDetail()
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

func (v *ContactsView) renderRow(c api.Contact, hovered bool) string {
	t := theme.Current
	subject := lipgloss.NewStyle().Foreground(t.Text)
	marker := "  "
	if hovered {
		subject = subject.Foreground(t.TextHighlight).Bold(true)
		marker = lipgloss.NewStyle().Foreground(t.Accent).Render("> ")
	}

	dot := "  "
	if !c.Read {
		dot = lipgloss.NewStyle().Foreground(t.Unread).Render("● ")
		subject = subject.Bold(true)
	}

	from := lipgloss.NewStyle().Foreground(t.TextMuted).Render(" · " + c.Name)
	return marker + dot + subject.Render(c.Subject) + from
}

func (v *ContactsView) renderDetail() string {
	t := theme.Current
	contact, ok := v.inbox.Selected()
	if !ok {
		return lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Padding(1, 2).
			Render("Select a message with enter.")
	}

	header := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(contact.Subject)
	meta := lipgloss.NewStyle().Foreground(t.TextMuted).Render(fmt.Sprintf(
		"%s <%s>\n%s",
		contact.Name, contact.Email, contact.CreatedAt.Format("2006-01-02 15:04"),
	))
	body := renderMarkdown(contact.Message, v.width/2-6)
	help := lipgloss.NewStyle().Foreground(t.TextMuted).Render("c copy email · d delete")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Overlay).
		Padding(1, 2).
		Width(v.width/2 - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, "", meta, "", body, "", help))
}
