package server

import "net/http"

// handleLogin exchanges admin credentials for a JWT. Attempts are rate
// limited to slow down brute forcing.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow() {
		s.writeMessage(w, http.StatusTooManyRequests, "Too many login attempts, try again later")
		return
	}

	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !s.decodeJSON(w, r, &body) {
		return
	}
	if body.Username == "" || body.Password == "" {
		s.writeMessage(w, http.StatusBadRequest, "Missing username or password")
		return
	}

	user, err := s.db.GetUserByUsername(body.Username)
	if err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil || !user.CheckPassword(body.Password) {
		s.writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if !user.IsAdmin {
		s.writeMessage(w, http.StatusForbidden, "Unauthorized access")
		return
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		s.logger.Error("sign token", "error", err)
		s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"access_token": token})
}

// handleAuthCheck is the probe endpoint behind requireAdmin. Reaching
// it at all means the token is valid.
func (s *Server) handleAuthCheck(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
}
