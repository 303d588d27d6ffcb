package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/trendwatch"
)

type chatRequest struct {
	Message string                   `json:"message"`
	History []trendwatch.ChatMessage `json:"history"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request, username string) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		s.jsonError(w, http.StatusBadRequest, "Message is required")
		return
	}

	profile, err := s.UserService.Profile(r.Context(), username)
	if err != nil {
		s.Logger.Error("chat profile", "username", username, "err", err)
		s.jsonError(w, http.StatusInternalServerError, "Failed to generate response. Please try again.")
		return
	}

	response, err := s.Assistant.Chat(r.Context(), message, profile, req.History)
	if err != nil {
		s.Logger.Error("chat", "username", username, "err", err)
		s.jsonError(w, http.StatusInternalServerError, "Failed to generate response. Please try again.")
		return
	}

	s.respond(w, http.StatusOK, map[string]any{
		"success":   true,
		"response":  response,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
