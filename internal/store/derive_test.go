package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studio-ormeau/folio/pkg/api"
)

func sampleProjects() []api.Project {
	return []api.Project{
		{ID: 1, Title: "E-Commerce Platform", Description: "Online shop with payments", Tags: []string{"React", "Stripe"}, Featured: true},
		{ID: 2, Title: "Weather Dashboard", Description: "Forecast data and charts", Tags: []string{"JavaScript", "API"}},
		{ID: 3, Title: "Portfolio Website", Description: "Personal site built with React", Tags: []string{"React", "Tailwind CSS"}},
	}
}

func TestDerive_EmptyTermAllFilter_ReturnsServerOrder(t *testing.T) {
	projects := sampleProjects()
	view := Derive(projects, "", ProjectMatches, ProjectFilter(FilterAll))
	assert.Equal(t, projects, view)
}

func TestDerive_SearchMatchesSomeField(t *testing.T) {
	view := Derive(sampleProjects(), "ReAcT", ProjectMatches, ProjectFilter(FilterAll))
	assert.Len(t, view, 2)

	for _, p := range view {
		hit := strings.Contains(strings.ToLower(p.Title), "react") ||
			strings.Contains(strings.ToLower(p.Description), "react") ||
			strings.Contains(strings.ToLower(strings.Join(p.Tags, " ")), "react")
		assert.True(t, hit, "project %d matched without containing the term", p.ID)
	}
}

func TestDerive_SearchAndFilterCombineWithAnd(t *testing.T) {
	// "react" matches projects 1 and 3, featured keeps only 1
	view := Derive(sampleProjects(), "react", ProjectMatches, ProjectFilter(FilterFeatured))
	assert.Len(t, view, 1)
	assert.Equal(t, 1, view[0].ID)
}

func TestDerive_TagFilter(t *testing.T) {
	view := Derive(sampleProjects(), "", ProjectMatches, ProjectFilter("tag:react"))
	assert.Len(t, view, 2)

	view = Derive(sampleProjects(), "", ProjectMatches, ProjectFilter("tag:stripe"))
	assert.Len(t, view, 1)
	assert.Equal(t, 1, view[0].ID)
}

func TestDerive_FeaturedFilterWithNoFeatured_IsEmpty(t *testing.T) {
	projects := []api.Project{
		{ID: 1, Title: "A", Description: "x"},
		{ID: 2, Title: "B", Description: "y"},
		{ID: 3, Title: "C", Description: "z"},
	}
	view := Derive(projects, "", ProjectMatches, ProjectFilter(FilterFeatured))
	assert.Empty(t, view)
}

func TestSkillFilter_Category(t *testing.T) {
	skills := []api.Skill{
		{ID: 1, Name: "React", Category: "frontend"},
		{ID: 2, Name: "Flask", Category: "backend"},
	}

	view := Derive(skills, "", SkillMatches, SkillFilter("backend"))
	assert.Len(t, view, 1)
	assert.Equal(t, "Flask", view[0].Name)

	view = Derive(skills, "", SkillMatches, SkillFilter(FilterAll))
	assert.Len(t, view, 2)
}

func TestContactFilter_ReadState(t *testing.T) {
	contacts := []api.Contact{
		{ID: 1, Name: "Ada", Subject: "Hi", Read: true},
		{ID: 2, Name: "Grace", Subject: "Question"},
	}

	read := Derive(contacts, "", ContactMatches, ContactFilter(FilterRead))
	assert.Len(t, read, 1)
	assert.Equal(t, 1, read[0].ID)

	unread := Derive(contacts, "", ContactMatches, ContactFilter(FilterUnread))
	assert.Len(t, unread, 1)
	assert.Equal(t, 2, unread[0].ID)
}

func TestContactMatches_SearchesNameEmailSubject(t *testing.T) {
	c := api.Contact{Name: "Ada Lovelace", Email: "ada@example.com", Subject: "Analytical engines"}

	assert.True(t, ContactMatches(c, "lovelace"))
	assert.True(t, ContactMatches(c, "example.com"))
	assert.True(t, ContactMatches(c, "engines"))
	assert.False(t, ContactMatches(c, "babbage"))
}

func TestDerive_IsPure(t *testing.T) {
	projects := sampleProjects()
	first := Derive(projects, "react", ProjectMatches, ProjectFilter(FilterAll))
	second := Derive(projects, "react", ProjectMatches, ProjectFilter(FilterAll))

	assert.Equal(t, first, second)
	assert.Len(t, projects, 3, "input must not be mutated")
}
