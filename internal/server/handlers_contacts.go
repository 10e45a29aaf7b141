package server

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/studio-ormeau/folio/internal/models"
	"github.com/studio-ormeau/folio/pkg/api"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// handleSubmitContact accepts the public contact form. Notification
// email is best effort and never fails the submission.
func (s *Server) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var payload api.ContactPayload
	if !s.decodeJSON(w, r, &payload) {
		return
	}

	for field, value := range map[string]string{
		"name":    payload.Name,
		"email":   payload.Email,
		"subject": payload.Subject,
		"message": payload.Message,
	} {
		if strings.TrimSpace(value) == "" {
			s.writeMessage(w, http.StatusBadRequest, "Missing required field: "+field)
			return
		}
	}
	if !emailPattern.MatchString(payload.Email) {
		s.writeMessage(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	contact := models.Contact{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
	}
	if err := s.db.CreateContact(&contact); err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if s.mailer != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := s.mailer.Notify(ctx, &contact); err != nil {
				s.logger.Error("contact notification", "error", err, "contact_id", contact.ID)
			}
		}()
	}

	s.writeJSON(w, http.StatusCreated, map[string]string{"message": "Message sent successfully"})
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.db.ListContacts()
	if err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	out := make([]api.Contact, 0, len(contacts))
	for i := range contacts {
		out = append(out, contactJSON(&contacts[i]))
	}
	s.writeJSON(w, http.StatusOK, out)
}

// handleMarkContactRead flips the read flag to true. Marking an
// already-read message is a no-op.
func (s *Server) handleMarkContactRead(w http.ResponseWriter, r *http.Request) {
	id, ok := s.idParam(w, r, "Contact")
	if !ok {
		return
	}
	existing, err := s.db.GetContact(id)
	if err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing == nil {
		s.writeMessage(w, http.StatusNotFound, "Contact not found")
		return
	}
	if !existing.Read {
		if err := s.db.MarkContactRead(id); err != nil {
			s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		existing.Read = true
	}
	s.writeJSON(w, http.StatusOK, contactJSON(existing))
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := s.idParam(w, r, "Contact")
	if !ok {
		return
	}
	existing, err := s.db.GetContact(id)
	if err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing == nil {
		s.writeMessage(w, http.StatusNotFound, "Contact not found")
		return
	}
	if err := s.db.DeleteContact(id); err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Contact deleted"})
}
