package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/fwojciec/trendwatch"
)

// allowReport enforces the per-user hourly cap on report generation. Each
// user gets a token bucket that refills one generation at a time.
func (s *Server) allowReport(username string) bool {
	limit := s.ReportLimit
	if limit <= 0 {
		limit = DefaultReportLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	lim, ok := s.limiters[username]
	if !ok {
		lim = rate.NewLimiter(rate.Every(time.Hour/time.Duration(limit)), limit)
		s.limiters[username] = lim
	}
	return lim.Allow()
}

func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request, username string) {
	if !s.allowReport(username) {
		s.jsonError(w, http.StatusTooManyRequests, "Report limit reached. Please try again later.")
		return
	}

	profile, err := s.UserService.Profile(r.Context(), username)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	report, err := s.ReportGenerator.GenerateReport(r.Context(), username, profile)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	filename, err := s.ReportStore.SaveReport(r.Context(), report)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]any{
		"success":  true,
		"report":   report.Markdown,
		"filename": filename,
	})
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request, username string) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.jsonError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	reports, err := s.ReportStore.Reports(r.Context(), username, limit)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if reports == nil {
		reports = []*trendwatch.ReportFile{}
	}

	s.respond(w, http.StatusOK, map[string]any{
		"success": true,
		"reports": reports,
	})
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request, username string) {
	filename := r.PathValue("filename")
	if !ownsReport(username, filename) {
		s.jsonError(w, http.StatusForbidden, "Unauthorized")
		return
	}

	report, err := s.ReportStore.Report(r.Context(), username, filename)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]any{
		"success": true,
		"report":  report,
	})
}

func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request, username string) {
	filename := r.PathValue("filename")
	if !ownsReport(username, filename) {
		s.jsonError(w, http.StatusForbidden, "Unauthorized")
		return
	}

	if err := s.ReportStore.DeleteReport(r.Context(), username, filename); err != nil {
		s.serviceError(w, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Report deleted",
	})
}

// ownsReport reports whether filename belongs to the user. Report files are
// named <username>_report_<timestamp>.json.
func ownsReport(username, filename string) bool {
	return strings.HasPrefix(filename, username+"_report_")
}
