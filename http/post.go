package http

import (
	"encoding/json"
	"net/http"
	"strings"
)

type linkedInPostRequest struct {
	Option string `json:"option"`
	Topic  string `json:"topic"`
}

func (s *Server) handleLinkedInPost(w http.ResponseWriter, r *http.Request, username string) {
	var req linkedInPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := s.UserService.Profile(r.Context(), username)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	var post string
	switch req.Option {
	case "from_report":
		reports, err := s.ReportStore.Reports(r.Context(), username, 1)
		if err != nil {
			s.serviceError(w, err)
			return
		}
		if len(reports) == 0 {
			s.jsonError(w, http.StatusBadRequest, "No reports found. Please generate a report first.")
			return
		}
		content := reports[0].Report.Markdown
		if content == "" {
			s.jsonError(w, http.StatusBadRequest, "Report content not found.")
			return
		}
		post, err = s.Assistant.PostFromReport(r.Context(), content, profile)
		if err != nil {
			s.serviceError(w, err)
			return
		}
	case "custom_topic":
		topic := strings.TrimSpace(req.Topic)
		if topic == "" {
			s.jsonError(w, http.StatusBadRequest, "Please provide a topic.")
			return
		}
		post, err = s.Assistant.PostFromTopic(r.Context(), topic, profile)
		if err != nil {
			s.serviceError(w, err)
			return
		}
	default:
		s.jsonError(w, http.StatusBadRequest, `Invalid option. Choose "from_report" or "custom_topic".`)
		return
	}

	s.respond(w, http.StatusOK, map[string]any{
		"success": true,
		"post":    post,
	})
}
