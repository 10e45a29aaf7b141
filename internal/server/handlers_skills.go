package server

import (
	"net/http"
	"strings"

	"github.com/studio-ormeau/folio/internal/models"
	"github.com/studio-ormeau/folio/pkg/api"
)

func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := s.db.ListSkills(r.URL.Query().Get("category"))
	if err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	out := make([]api.Skill, 0, len(skills))
	for i := range skills {
		out = append(out, skillJSON(&skills[i]))
	}
	s.writeJSON(w, http.StatusOK, out)
}

// validateSkillPayload returns an error message, or "" when valid.
func validateSkillPayload(payload *api.SkillPayload) string {
	if strings.TrimSpace(payload.Name) == "" {
		return "Missing required field: name"
	}
	if payload.Level < 1 || payload.Level > 100 {
		return "Level must be between 1 and 100"
	}
	if !models.IsValidCategory(payload.Category) {
		return "Invalid category: " + payload.Category
	}
	return ""
}

func (s *Server) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	var payload api.SkillPayload
	if !s.decodeJSON(w, r, &payload) {
		return
	}
	if msg := validateSkillPayload(&payload); msg != "" {
		s.writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	skill := models.Skill{
		Name:     payload.Name,
		Level:    payload.Level,
		Category: payload.Category,
	}
	if err := s.db.CreateSkill(&skill); err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	s.writeJSON(w, http.StatusCreated, skillJSON(&skill))
}

func (s *Server) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := s.idParam(w, r, "Skill")
	if !ok {
		return
	}
	existing, err := s.db.GetSkill(id)
	if err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing == nil {
		s.writeMessage(w, http.StatusNotFound, "Skill not found")
		return
	}

	var payload api.SkillPayload
	if !s.decodeJSON(w, r, &payload) {
		return
	}
	if msg := validateSkillPayload(&payload); msg != "" {
		s.writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	existing.Name = payload.Name
	existing.Level = payload.Level
	existing.Category = payload.Category
	if err := s.db.UpdateSkill(existing); err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	s.writeJSON(w, http.StatusOK, skillJSON(existing))
}

func (s *Server) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := s.idParam(w, r, "Skill")
	if !ok {
		return
	}
	existing, err := s.db.GetSkill(id)
	if err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing == nil {
		s.writeMessage(w, http.StatusNotFound, "Skill not found")
		return
	}
	if err := s.db.DeleteSkill(id); err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Skill deleted"})
}
