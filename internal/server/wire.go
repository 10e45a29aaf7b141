package server

import (
	"github.com/studio-ormeau/folio/internal/models"
	"github.com/studio-ormeau/folio/pkg/api"
)

// The handlers serialize storage models through the pkg/api wire types
// so the server and client agree on one JSON shape.

func projectJSON(p *models.Project) api.Project {
	return api.Project{
		ID:          int(p.ID),
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		DemoURL:     p.DemoURL,
		RepoURL:     p.RepoURL,
		Featured:    p.Featured,
		Tags:        p.TagNames(),
	}
}

func projectListJSON(projects []models.Project) []api.Project {
	out := make([]api.Project, 0, len(projects))
	for i := range projects {
		out = append(out, projectJSON(&projects[i]))
	}
	return out
}

func skillJSON(s *models.Skill) api.Skill {
	return api.Skill{
		ID:       int(s.ID),
		Name:     s.Name,
		Level:    s.Level,
		Category: s.Category,
	}
}

func tagJSON(t *models.Tag) api.Tag {
	return api.Tag{ID: int(t.ID), Name: t.Name}
}

func contactJSON(c *models.Contact) api.Contact {
	return api.Contact{
		ID:        int(c.ID),
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		Read:      c.Read,
		CreatedAt: c.CreatedAt,
	}
}
