package http

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/trendwatch"
)

// leaderboardTimeout bounds a background leaderboard generation run.
const leaderboardTimeout = 3 * time.Minute

// handleGenerateLeaderboard kicks off generation in the background and
// responds immediately. The frontend polls the returned filename, or waits
// and re-requests when generation was still in flight.
func (s *Server) handleGenerateLeaderboard(w http.ResponseWriter, r *http.Request, username string) {
	s.Logger.Info("leaderboard generation requested", "username", username)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), leaderboardTimeout)
		defer cancel()
		if _, err := s.LeaderboardService.GenerateLeaderboard(ctx); err != nil {
			s.Logger.Error("leaderboard generation", "err", err)
		}
	}()

	// Point the client at the most recent finished page, if any.
	filename, err := s.LeaderboardService.LatestLeaderboard(r.Context())
	if err != nil && trendwatch.ErrorCode(err) != trendwatch.ENOTFOUND {
		s.serviceError(w, err)
		return
	}

	body := map[string]any{
		"success":    true,
		"message":    "Leaderboard generation started",
		"filename":   nil,
		"generating": filename == "",
	}
	if filename != "" {
		body["filename"] = filename
	}
	s.respond(w, http.StatusOK, body)
}

// handleLeaderboardIndex sends the browser to the newest generated page.
func (s *Server) handleLeaderboardIndex(w http.ResponseWriter, r *http.Request) {
	filename, err := s.LeaderboardService.LatestLeaderboard(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<!DOCTYPE html><html><body><p>No leaderboard has been generated yet. Start one from the dashboard.</p></body></html>"))
		return
	}
	http.Redirect(w, r, "/leaderboard/"+filename, http.StatusFound)
}

// handleServeLeaderboard serves a generated page by filename. The pages
// contain no user data, so no session is required, but the filename is
// validated to keep path traversal out.
func (s *Server) handleServeLeaderboard(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")
	if !trendwatch.ValidLeaderboardFilename(filename) {
		http.Error(w, "Invalid file", http.StatusForbidden)
		return
	}

	content, err := os.ReadFile(filepath.Join(s.LeaderboardDir, filename))
	if os.IsNotExist(err) {
		http.Error(w, "Leaderboard file not found. Please try generating again.", http.StatusNotFound)
		return
	} else if err != nil {
		s.Logger.Error("read leaderboard page", "filename", filename, "err", err)
		http.Error(w, "Error loading leaderboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(content)
}
