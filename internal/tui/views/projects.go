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

// ProjectsAction tells the app what to do after a key press.
type ProjectsAction int

const (
	ProjectsActionNone ProjectsAction = iota
	ProjectsActionNew
	ProjectsActionEdit
	ProjectsActionDelete
	ProjectsActionRefresh
)

const projectsPageSize = 10

// ProjectsView is the project management screen: searchable, filterable,
// paged list over the cached collection.
type ProjectsView struct {
	list      *store.List[api.Project]
	searchBar *components.SearchBar

	// Tag names drive the filter cycle: all → featured → tag:<name>...
	tagNames    []string
	filterIndex int

	cursor  int
	loading bool
	errText string

	width  int
	height int
}

// NewProjectsView creates the projects screen.
func NewProjectsView() *ProjectsView {
	s := store.New(func(p api.Project) int { return p.ID })
	return &ProjectsView{
		list:      store.NewList(s, projectsPageSize, store.ProjectMatches, store.ProjectFilter),
		searchBar: components.NewSearchBar("Search title, description, tags..."),
		loading:   true,
	}
}

// List exposes the pipeline, used by the app to apply mutations.
func (v *ProjectsView) List() *store.List[api.Project] {
	return v.list
}

// SetProjects replaces the cached collection.
func (v *ProjectsView) SetProjects(projects []api.Project) {
	v.list.Store().Replace(projects)
	v.loading = false
	v.errText = ""
	v.clampCursor()
}

// SetTags updates the tag names used for filter cycling.
func (v *ProjectsView) SetTags(tags []api.Tag) {
	v.tagNames = v.tagNames[:0]
	for _, t := range tags {
		v.tagNames = append(v.tagNames, t.Name)
	}
	if v.filterIndex > len(v.tagNames)+1 {
		v.filterIndex = 0
		v.list.SetFilter(store.FilterAll)
	}
}

// SetLoading marks a refresh in flight.
func (v *ProjectsView) SetLoading() {
	v.loading = true
	v.errText = ""
}

// SetError shows a load failure in place of the list.
func (v *ProjectsView) SetError(text string) {
	v.loading = false
	v.errText = text
}

// Selected returns the project under the cursor.
func (v *ProjectsView) Selected() (api.Project, bool) {
	page := v.list.Page()
	if v.cursor >= len(page.Items) {
		return api.Project{}, false
	}
	return page.Items[v.cursor], true
}

// ApplySaved folds a confirmed create or update into the cache.
func (v *ProjectsView) ApplySaved(project api.Project, created bool) {
	if created {
		v.list.Store().ApplyCreate(project)
	} else {
		v.list.Store().ApplyUpdate(project)
	}
	v.clampCursor()
}

// ApplyDeleted folds a confirmed delete into the cache.
func (v *ProjectsView) ApplyDeleted(id int) {
	v.list.Store().ApplyRemove(id)
	v.clampCursor()
}

// SearchFocused reports whether keys are going to the search bar.
func (v *ProjectsView) SearchFocused() bool {
	return v.searchBar.Focused()
}

// SetSize updates the rendering area.
func (v *ProjectsView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.searchBar.SetWidth(width)
}

func (v *ProjectsView) clampCursor() {
	page := v.list.Page()
	if v.cursor >= len(page.Items) {
		v.cursor = len(page.Items) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// currentFilter maps the cycle index to a filter value.
func (v *ProjectsView) currentFilter() string {
	switch {
	case v.filterIndex == 0:
		return store.FilterAll
	case v.filterIndex == 1:
		return store.FilterFeatured
	default:
		return "tag:" + v.tagNames[v.filterIndex-2]
	}
}

// CycleFilter advances to the next filter: all → featured → each tag.
func (v *ProjectsView) CycleFilter() {
	v.filterIndex = (v.filterIndex + 1) % (2 + len(v.tagNames))
	v.list.SetFilter(v.currentFilter())
	v.cursor = 0
}

// Update handles a key press and returns the resulting action.
func (v *ProjectsView) Update(msg tea.KeyMsg) (ProjectsAction, tea.Cmd) {
	key := msg.String()

	if v.searchBar.Focused() {
		switch key {
		case "esc":
			v.searchBar.Blur()
			return ProjectsActionNone, nil
		case "enter":
			v.searchBar.Blur()
			return ProjectsActionNone, nil
		default:
			cmd := v.searchBar.HandleKey(msg)
			v.list.SetSearch(v.searchBar.Value())
			v.cursor = 0
			return ProjectsActionNone, cmd
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
		return ProjectsActionNew, nil
	case "enter":
		if _, ok := v.Selected(); ok {
			return ProjectsActionEdit, nil
		}
	case "d":
		if _, ok := v.Selected(); ok {
			return ProjectsActionDelete, nil
		}
	case "r":
		return ProjectsActionRefresh, nil
	}
	return ProjectsActionNone, nil
}

// View renders the projects screen.
func (v *ProjectsView) View() string {
	t := theme.Current
	var b strings.Builder

	b.WriteString(v.searchBar.View())
	b.WriteString("\n")

	filterLabel := v.currentFilter()
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).
		Render(fmt.Sprintf("filter: %s  (f to cycle)", filterLabel)))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(lipgloss.NewStyle().Foreground(t.Info).Render("Loading projects..."))
	case v.errText != "":
		b.WriteString(lipgloss.NewStyle().Foreground(t.Error).Render(v.errText))
	default:
		page := v.list.Page()
		if len(page.Items) == 0 {
			b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render("No projects match."))
		}
		for i, p := range page.Items {
			b.WriteString(v.renderRow(p, i == v.cursor))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).
			Render(fmt.Sprintf("page %d/%d  ·  %d shown", page.Number, page.TotalPages, len(v.list.View()))))
	}

	return b.String()
}

func (v *ProjectsView) renderRow(p api.Project, selected bool) string {
	t := theme.Current
	title := lipgloss.NewStyle().Foreground(t.Text)
	marker := "  "
	if selected {
		title = title.Foreground(t.TextHighlight).Bold(true)
		marker = lipgloss.NewStyle().Foreground(t.Accent).Render("> ")
	}

	line := marker + title.Render(p.Title)
	if p.Featured {
		line += " " + lipgloss.NewStyle().Foreground(t.Warning).Render("★")
	}
	if len(p.Tags) > 0 {
		line += "  " + lipgloss.NewStyle().Foreground(t.Tag).
			Render("["+strings.Join(p.Tags, ", ")+"]")
	}
	return line
}
