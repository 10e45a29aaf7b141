package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// issueToken signs a JWT for the given user ID, expiring after the
// configured TTL.
func (s *Server) issueToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// parseToken validates a JWT and returns the user ID it was issued to.
func (s *Server) parseToken(raw string) (uint, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// requireAdmin guards a handler: the request must carry a valid Bearer
// token for an existing admin user. 401 covers missing or invalid
// tokens, 403 covers authenticated non-admins.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			s.writeMessage(w, http.StatusUnauthorized, "Missing Authorization Header")
			return
		}
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			s.writeMessage(w, http.StatusUnauthorized, "Invalid Authorization Header")
			return
		}

		userID, err := s.parseToken(raw)
		if err != nil {
			s.writeMessage(w, http.StatusUnauthorized, "Token is invalid or has expired")
			return
		}

		user, err := s.db.GetUser(userID)
		if err != nil {
			s.writeMessage(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if user == nil {
			s.writeMessage(w, http.StatusUnauthorized, "Token is invalid or has expired")
			return
		}
		if !user.IsAdmin {
			s.writeMessage(w, http.StatusForbidden, "Unauthorized access")
			return
		}

		next(w, r)
	}
}
