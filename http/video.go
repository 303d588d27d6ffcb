package http

import (
	"net/http"
	"strings"

	"github.com/fwojciec/trendwatch"
)

// maxVideoResults is how many recommendations one request returns.
const maxVideoResults = 8

func (s *Server) handleVideos(w http.ResponseWriter, r *http.Request, username string) {
	profile, err := s.UserService.Profile(r.Context(), username)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	keywords, err := s.Assistant.VideoKeywords(r.Context(), profile)
	if err != nil {
		// Keyword generation failing doesn't block the search. Fall back
		// to the profile's tags.
		s.Logger.Warn("video keywords", "username", username, "err", err)
		keywords = strings.Join(profile.Tags, ", ")
	}
	if strings.TrimSpace(keywords) == "" {
		keywords = "artificial intelligence trends"
	}

	videos, err := s.VideoFinder.Search(r.Context(), keywords, maxVideoResults)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if videos == nil {
		videos = []*trendwatch.Video{}
	}

	s.respond(w, http.StatusOK, map[string]any{
		"success":  true,
		"videos":   videos,
		"keywords": keywords,
	})
}
