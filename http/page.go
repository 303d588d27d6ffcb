package http

import (
	"encoding/json"
	"net/http"

	"github.com/fwojciec/trendwatch"
)

// dashboardData feeds the dashboard and profile templates.
type dashboardData struct {
	Username string
	Profile  *trendwatch.Profile
	Stats    *trendwatch.Stats
	Reports  []*trendwatch.ReportFile
	Error    string
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request, username string) {
	data := dashboardData{Username: username}

	profile, err := s.UserService.Profile(r.Context(), username)
	if err != nil {
		s.Logger.Error("load profile", "username", username, "err", err)
		data.Error = "Error loading dashboard data"
		data.Profile = trendwatch.DefaultProfile(username)
		data.Stats = &trendwatch.Stats{}
		s.renderPage(w, "dashboard.html", data)
		return
	}
	data.Profile = profile

	// Stats and recent reports are nice to have. The page still renders
	// without them.
	data.Stats = &trendwatch.Stats{}
	if stats, err := s.ReportStore.Stats(r.Context(), username); err == nil {
		data.Stats = stats
	} else {
		s.Logger.Warn("load stats", "username", username, "err", err)
	}
	if reports, err := s.ReportStore.Reports(r.Context(), username, 5); err == nil {
		data.Reports = reports
	} else {
		s.Logger.Warn("list reports", "username", username, "err", err)
	}

	s.renderPage(w, "dashboard.html", data)
}

func (s *Server) handleProfilePage(w http.ResponseWriter, r *http.Request, username string) {
	profile, err := s.UserService.Profile(r.Context(), username)
	if err != nil {
		s.Logger.Error("load profile", "username", username, "err", err)
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	s.renderPage(w, "profile.html", dashboardData{Username: username, Profile: profile})
}

func (s *Server) handleProfileUpdate(w http.ResponseWriter, r *http.Request, username string) {
	var profile trendwatch.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.UserService.UpdateProfile(r.Context(), username, &profile); err != nil {
		s.serviceError(w, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Profile updated",
	})
}
