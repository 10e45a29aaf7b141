package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-ormeau/folio/pkg/api"
)

func projectFixture() []api.Project {
	return []api.Project{
		{ID: 1, Title: "Portfolio", Description: "This site", Featured: true, Tags: []string{"Go", "React"}},
		{ID: 2, Title: "Weather Station", Description: "Sensors", Tags: []string{"Go"}},
		{ID: 3, Title: "Chess Engine", Description: "Minimax", Tags: []string{"Rust"}},
	}
}

func TestProjectsFilterCycle(t *testing.T) {
	v := NewProjectsView()
	v.SetProjects(projectFixture())
	v.SetTags([]api.Tag{{ID: 1, Name: "Go"}, {ID: 2, Name: "React"}, {ID: 3, Name: "Rust"}})

	assert.Len(t, v.List().View(), 3)

	v.Update(keyRunes("f")) // featured
	assert.Len(t, v.List().View(), 1)

	v.Update(keyRunes("f")) // tag:Go
	assert.Len(t, v.List().View(), 2)

	v.Update(keyRunes("f")) // tag:React
	assert.Len(t, v.List().View(), 1)

	v.Update(keyRunes("f")) // tag:Rust
	v.Update(keyRunes("f")) // back to all
	assert.Len(t, v.List().View(), 3)
}

func TestProjectsSearchNarrowsAndSelects(t *testing.T) {
	v := NewProjectsView()
	v.SetProjects(projectFixture())

	v.Update(keyRunes("/"))
	require.True(t, v.SearchFocused())
	for _, r := range "chess" {
		v.Update(keyRunes(string(r)))
	}
	v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, v.SearchFocused())

	selected, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "Chess Engine", selected.Title)

	action, _ := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ProjectsActionEdit, action)
}

func TestProjectsActions(t *testing.T) {
	v := NewProjectsView()
	v.SetProjects(projectFixture())

	action, _ := v.Update(keyRunes("n"))
	assert.Equal(t, ProjectsActionNew, action)

	action, _ = v.Update(keyRunes("d"))
	assert.Equal(t, ProjectsActionDelete, action)

	action, _ = v.Update(keyRunes("r"))
	assert.Equal(t, ProjectsActionRefresh, action)
}

func TestProjectsApplyMutations(t *testing.T) {
	v := NewProjectsView()
	v.SetProjects(projectFixture())

	v.ApplySaved(api.Project{ID: 4, Title: "New Thing", Description: "x"}, true)
	assert.Len(t, v.List().View(), 4)

	v.ApplySaved(api.Project{ID: 1, Title: "Renamed", Description: "y"}, false)
	items := v.List().Store().Items()
	assert.Equal(t, "Renamed", items[0].Title)

	v.ApplyDeleted(2)
	assert.Len(t, v.List().View(), 3)
}

func TestProjectsRendersRows(t *testing.T) {
	v := NewProjectsView()
	v.SetSize(100, 30)
	v.SetProjects(projectFixture())

	view := v.View()
	assert.Contains(t, view, "Portfolio")
	assert.Contains(t, view, "page 1/1")
	assert.Contains(t, view, "Go, React")
}
