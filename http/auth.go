package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fwojciec/trendwatch"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if s.sessionUser(r) != "" {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	s.renderPage(w, "login.html", nil)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	username := strings.TrimSpace(req.Username)

	if err := s.UserService.Authenticate(r.Context(), username, req.Password); err != nil {
		// The message is the same for unknown users and wrong passwords.
		s.Logger.Warn("failed login", "username", username)
		s.jsonError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	session, err := s.SessionService.CreateSession(r.Context(), username, trendwatch.DefaultSessionTTL)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.setSessionCookie(w, session)

	s.Logger.Info("login", "username", username)
	s.respond(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  "Login successful",
		"redirect": "/dashboard",
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		if err := s.SessionService.DeleteSession(r.Context(), cookie.Value); err != nil {
			s.Logger.Warn("delete session", "err", err)
		}
	}
	s.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}
