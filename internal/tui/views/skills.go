package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studio-ormeau/folio/internal/models"
	"github.com/studio-ormeau/folio/internal/store"
	"github.com/studio-ormeau/folio/internal/tui/components"
	"github.com/studio-ormeau/folio/internal/tui/theme"
	"github.com/studio-ormeau/folio/pkg/api"
)

// SkillsAction tells the app what to do after a key press.
type SkillsAction int

const (
	SkillsActionNone SkillsAction = iota
	SkillsActionNew
	SkillsActionEdit
	SkillsActionDelete
	SkillsActionRefresh
)

const skillsPageSize = 12

// SkillsView is the skill management screen.
type SkillsView struct {
	list      *store.List[api.Skill]
	searchBar *components.SearchBar

	// Category filter cycle: all → each fixed category
	categories  []string
	filterIndex int

	cursor  int
	loading bool
	errText string

	width  int
	height int
}

// NewSkillsView creates the skills screen.
func NewSkillsView() *SkillsView {
	s := store.New(func(sk api.Skill) int { return sk.ID })
	return &SkillsView{
		list:       store.NewList(s, skillsPageSize, store.SkillMatches, store.SkillFilter),
		searchBar:  components.NewSearchBar("Search skill names..."),
		categories: models.ValidCategories(),
		loading:    true,
	}
}

// List exposes the pipeline, used by the app to apply mutations.
func (v *SkillsView) List() *store.List[api.Skill] {
	return v.list
}

// SetSkills replaces the cached collection.
func (v *SkillsView) SetSkills(skills []api.Skill) {
	v.list.Store().Replace(skills)
	v.loading = false
	v.errText = ""
	v.clampCursor()
}

// SetLoading marks a refresh in flight.
func (v *SkillsView) SetLoading() {
	v.loading = true
	v.errText = ""
}

// SetError shows a load failure in place of the list.
func (v *SkillsView) SetError(text string) {
	v.loading = false
	v.errText = text
}

// Selected returns the skill under the cursor.
func (v *SkillsView) Selected() (api.Skill, bool) {
	page := v.list.Page()
	if v.cursor >= len(page.Items) {
		return api.Skill{}, false
	}
	return page.Items[v.cursor], true
}

// ApplySaved folds a confirmed create or update into the cache.
func (v *SkillsView) ApplySaved(skill api.Skill, created bool) {
	if created {
		v.list.Store().ApplyCreate(skill)
	} else {
		v.list.Store().ApplyUpdate(skill)
	}
	v.clampCursor()
}

// ApplyDeleted folds a confirmed delete into the cache.
func (v *SkillsView) ApplyDeleted(id int) {
	v.list.Store().ApplyRemove(id)
	v.clampCursor()
}

// SearchFocused reports whether keys are going to the search bar.
func (v *SkillsView) SearchFocused() bool {
	return v.searchBar.Focused()
}

// SetSize updates the rendering area.
func (v *SkillsView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.searchBar.SetWidth(width)
}

func (v *SkillsView) clampCursor() {
	page := v.list.Page()
	if v.cursor >= len(page.Items) {
		v.cursor = len(page.Items) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *SkillsView) currentFilter() string {
	if v.filterIndex == 0 {
		return store.FilterAll
	}
	return v.categories[v.filterIndex-1]
}

// CycleFilter advances to the next category filter.
func (v *SkillsView) CycleFilter() {
	v.filterIndex = (v.filterIndex + 1) % (1 + len(v.categories))
	v.list.SetFilter(v.currentFilter())
	v.cursor = 0
}

// Update handles a key press and returns the resulting action.
func (v *SkillsView) Update(msg tea.KeyMsg) (SkillsAction, tea.Cmd) {
	key := msg.String()

	if v.searchBar.Focused() {
		switch key {
		case "esc", "enter":
			v.searchBar.Blur()
			return SkillsActionNone, nil
		default:
			cmd := v.searchBar.HandleKey(msg)
			v.list.SetSearch(v.searchBar.Value())
			v.cursor = 0
			return SkillsActionNone, cmd
		}
	}

	switch key {
	case "/":
		v.searchBar.Focus()
	case "esc":
		if v.searchBar.Value() != "" {
			v.searchBar.Clear()
			v.list.SetSearch("")
			v.cursor = 0
		}
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if page := v.list.Page(); v.cursor < len(page.Items)-1 {
			v.cursor++
		}
	case "left", "h":
		v.list.PrevPage()
		v.cursor = 0
	case "right", "l":
		v.list.NextPage()
		v.cursor = 0
	case "f":
		v.CycleFilter()
	case "n":
		return SkillsActionNew, nil
	case "enter":
		if _, ok := v.Selected(); ok {
			return SkillsActionEdit, nil
		}
	case "d":
		if _, ok := v.Selected(); ok {
			return SkillsActionDelete, nil
		}
	case "r":
		return SkillsActionRefresh, nil
	}
	return SkillsActionNone, nil
}

// View renders the skills screen.
func (v *SkillsView) View() string {
	t := theme.Current
	var b strings.Builder

	b.WriteString(v.searchBar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).
		Render(fmt.Sprintf("category: %s  (f to cycle)", v.currentFilter())))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(lipgloss.NewStyle().Foreground(t.Info).Render("Loading skills..."))
	case v.errText != "":
		b.WriteString(lipgloss.NewStyle().Foreground(t.Error).Render(v.errText))
	default:
		page := v.list.Page()
		if len(page.Items) == 0 {
			b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render("No skills match."))
		}
		for i, sk := range page.Items {
			b.WriteString(v.renderRow(sk, i == v.cursor))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).
			Render(fmt.Sprintf("page %d/%d  ·  %d shown", page.Number, page.TotalPages, len(v.list.View()))))
	}

	return b.String()
}

func (v *SkillsView) renderRow(sk api.Skill, selected bool) string {
	t := theme.Current
	name := lipgloss.NewStyle().Foreground(t.Text)
	marker := "  "
	if selected {
		name = name.Foreground(t.TextHighlight).Bold(true)
		marker = lipgloss.NewStyle().Foreground(t.Accent).Render("> ")
	}

	bar := levelBar(sk.Level)
	return fmt.Sprintf("%s%-24s %s %3d%%  %s",
		marker,
		name.Render(sk.Name),
		lipgloss.NewStyle().Foreground(t.Primary).Render(bar),
		sk.Level,
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(sk.Category),
	)
}

// levelBar renders a 10-cell proficiency bar.
func levelBar(level int) string {
	filled := level / 10
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}
