package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/studio-ormeau/folio/internal/db"
	"github.com/studio-ormeau/folio/internal/models"
	"github.com/studio-ormeau/folio/pkg/api"
)

// Embedded base64 images are capped at 10MB.
const maxImageSize = 10 * 1024 * 1024

// idParam parses the {id} path segment. A second return of false means
// a 404 was already written.
func (s *Server) idParam(w http.ResponseWriter, r *http.Request, resource string) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil || id == 0 {
		s.writeMessage(w, http.StatusNotFound, resource+" not found")
		return 0, false
	}
	return uint(id), true
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	filter := db.ProjectFilter{
		Featured: r.URL.Query().Get("featured") == "true",
		Tag:      r.URL.Query().Get("tag"),
	}
	projects, err := s.db.ListProjects(filter)
	if err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	s.writeJSON(w, http.StatusOK, projectListJSON(projects))
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := s.idParam(w, r, "Project")
	if !ok {
		return
	}
	project, err := s.db.GetProject(id)
	if err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if project == nil {
		s.writeMessage(w, http.StatusNotFound, "Project not found")
		return
	}
	s.writeJSON(w, http.StatusOK, projectJSON(project))
}

// validateProjectPayload returns an error message, or "" when valid.
func validateProjectPayload(payload *api.ProjectPayload) string {
	if strings.TrimSpace(payload.Title) == "" {
		return "Missing or empty required field: title"
	}
	if strings.TrimSpace(payload.Description) == "" {
		return "Missing or empty required field: description"
	}
	if len(payload.Image) > maxImageSize {
		return "Image too large. Maximum size is 10MB"
	}
	return ""
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var payload api.ProjectPayload
	if !s.decodeJSON(w, r, &payload) {
		return
	}
	if msg := validateProjectPayload(&payload); msg != "" {
		s.writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	project := models.Project{
		Title:       payload.Title,
		Description: payload.Description,
		Image:       payload.Image,
		DemoURL:     payload.DemoURL,
		RepoURL:     payload.RepoURL,
		Featured:    payload.Featured,
	}
	if err := s.db.CreateProject(&project, payload.Tags); err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	created, err := s.db.GetProject(project.ID)
	if err != nil || created == nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	s.writeJSON(w, http.StatusCreated, projectJSON(created))
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := s.idParam(w, r, "Project")
	if !ok {
		return
	}
	existing, err := s.db.GetProject(id)
	if err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing == nil {
		s.writeMessage(w, http.StatusNotFound, "Project not found")
		return
	}

	var payload api.ProjectPayload
	if !s.decodeJSON(w, r, &payload) {
		return
	}
	if msg := validateProjectPayload(&payload); msg != "" {
		s.writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	existing.Title = payload.Title
	existing.Description = payload.Description
	existing.Image = payload.Image
	existing.DemoURL = payload.DemoURL
	existing.RepoURL = payload.RepoURL
	existing.Featured = payload.Featured
	if err := s.db.UpdateProject(existing, payload.Tags); err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	updated, err := s.db.GetProject(id)
	if err != nil || updated == nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	s.writeJSON(w, http.StatusOK, projectJSON(updated))
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := s.idParam(w, r, "Project")
	if !ok {
		return
	}
	existing, err := s.db.GetProject(id)
	if err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing == nil {
		s.writeMessage(w, http.StatusNotFound, "Project not found")
		return
	}
	if err := s.db.DeleteProject(id); err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted"})
}

func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.db.ListTags()
	if err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	out := make([]api.Tag, 0, len(tags))
	for i := range tags {
		out = append(out, tagJSON(&tags[i]))
	}
	s.writeJSON(w, http.StatusOK, out)
}
