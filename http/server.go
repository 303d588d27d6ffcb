package http

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/fwojciec/trendwatch"
)

const (
	// DefaultAddr is the address the server binds to when none is set.
	DefaultAddr = ":5000"

	// SessionCookie is the name of the browser cookie holding the session
	// token.
	SessionCookie = "trendwatch_session"

	// DefaultReportLimit caps report generations per user per hour.
	DefaultReportLimit = 10

	// ShutdownTimeout bounds how long Close waits for in-flight requests.
	ShutdownTimeout = 5 * time.Second
)

//go:embed html/*.html
var pagesFS embed.FS

// pages holds the parsed dashboard page templates.
var pages = template.Must(template.ParseFS(pagesFS, "html/*.html"))

// Server is the web server behind the dashboard UI. It exposes HTML pages
// for login, dashboard, and profile, plus the JSON endpoints the pages call.
//
// Construct it with NewServer, assign the service fields, then call Open.
// The zero values of the service fields are nil, so every field used by a
// registered route must be set before the server receives traffic.
type Server struct {
	ln     net.Listener
	server *http.Server
	mux    *http.ServeMux

	// Addr is the bind address, e.g. ":5000".
	Addr string

	Logger *slog.Logger

	// Services used by the handlers.
	SessionService     trendwatch.SessionService
	UserService        trendwatch.UserService
	ReportStore        trendwatch.ReportStore
	ReportGenerator    trendwatch.ReportGenerator
	Assistant          trendwatch.Assistant
	VideoFinder        trendwatch.VideoFinder
	LeaderboardService trendwatch.LeaderboardService

	// LeaderboardDir is the directory generated leaderboard pages are
	// served from.
	LeaderboardDir string

	// ReportLimit is the number of report generations allowed per user per
	// hour. Zero means DefaultReportLimit.
	ReportLimit int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewServer returns a server with all routes registered. Service fields
// must be assigned before serving traffic.
func NewServer() *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		Logger:   slog.New(slog.DiscardHandler),
		limiters: make(map[string]*rate.Limiter),
	}

	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /login", s.handleLoginPage)
	s.mux.HandleFunc("POST /login", s.handleLogin)
	s.mux.HandleFunc("GET /logout", s.handleLogout)
	s.mux.HandleFunc("POST /logout", s.handleLogout)

	s.mux.HandleFunc("GET /dashboard", s.requireLogin(s.handleDashboard))
	s.mux.HandleFunc("GET /profile", s.requireLogin(s.handleProfilePage))
	s.mux.HandleFunc("POST /profile", s.requireAuth(s.handleProfileUpdate))

	s.mux.HandleFunc("POST /generate-report", s.requireAuth(s.handleGenerateReport))
	s.mux.HandleFunc("GET /reports", s.requireAuth(s.handleListReports))
	s.mux.HandleFunc("GET /reports/{filename}", s.requireAuth(s.handleGetReport))
	s.mux.HandleFunc("DELETE /reports/{filename}", s.requireAuth(s.handleDeleteReport))

	s.mux.HandleFunc("POST /chat", s.requireAuth(s.handleChat))
	s.mux.HandleFunc("POST /generate-linkedin-post", s.requireAuth(s.handleLinkedInPost))
	s.mux.HandleFunc("POST /get-youtube-videos", s.requireAuth(s.handleVideos))

	s.mux.HandleFunc("POST /generate-leaderboard", s.requireAuth(s.handleGenerateLeaderboard))
	s.mux.HandleFunc("GET /leaderboard", s.handleLeaderboardIndex)
	s.mux.HandleFunc("GET /leaderboard/{filename}", s.handleServeLeaderboard)

	s.mux.HandleFunc("GET /api/check-session", s.handleCheckSession)
	s.mux.HandleFunc("GET /health", s.handleHealth)

	// Catch-all for anything the mux doesn't know about.
	s.mux.HandleFunc("/", s.handleNotFound)

	return s
}

// Open starts listening on Addr. It returns once the listener is bound;
// requests are served on a background goroutine.
func (s *Server) Open() error {
	if s.Addr == "" {
		s.Addr = DefaultAddr
	}
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln
	s.server = &http.Server{Handler: s}
	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("http server", "err", err)
		}
	}()
	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL the server is reachable at. Only valid after
// Open.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// ServeHTTP dispatches to the mux and logs every request. Implementing
// http.Handler directly keeps the server usable with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	begin := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.Logger.Info("http request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"duration", time.Since(begin),
	)
}

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// sessionUser resolves the session cookie to a username. Returns "" when
// the request carries no valid session.
func (s *Server) sessionUser(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}
	session, err := s.SessionService.FindSession(r.Context(), cookie.Value)
	if err != nil {
		return ""
	}
	return session.Username
}

func (s *Server) setSessionCookie(w http.ResponseWriter, session *trendwatch.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// handlerFunc is a handler that runs on behalf of an authenticated user.
type handlerFunc func(w http.ResponseWriter, r *http.Request, username string)

// requireAuth guards JSON endpoints. Requests without a valid session get
// a 401 JSON error.
func (s *Server) requireAuth(next handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := s.sessionUser(r)
		if username == "" {
			s.jsonError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		next(w, r, username)
	}
}

// requireLogin guards HTML pages. Requests without a valid session are
// redirected to the login page.
func (s *Server) requireLogin(next handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := s.sessionUser(r)
		if username == "" {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next(w, r, username)
	}
}

// respond writes body as JSON with the given status.
func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.Logger.Error("encode response", "err", err)
	}
}

// jsonError writes the {"success": false, "error": ...} shape the frontend
// expects.
func (s *Server) jsonError(w http.ResponseWriter, status int, message string) {
	s.respond(w, status, map[string]any{"success": false, "error": message})
}

// serviceError translates a domain error into an HTTP response. Internal
// errors are logged; their details never reach the client.
func (s *Server) serviceError(w http.ResponseWriter, err error) {
	code := trendwatch.ErrorCode(err)
	if code == trendwatch.EINTERNAL {
		s.Logger.Error("internal error", "err", err)
	}
	s.jsonError(w, errorStatus(code), trendwatch.ErrorMessage(err))
}

// errorStatus maps application error codes to HTTP status codes.
func errorStatus(code string) int {
	switch code {
	case trendwatch.EINVALID:
		return http.StatusBadRequest
	case trendwatch.ENOTFOUND:
		return http.StatusNotFound
	case trendwatch.ECONFLICT:
		return http.StatusConflict
	case trendwatch.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case trendwatch.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// renderPage executes one of the embedded page templates.
func (s *Server) renderPage(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		s.Logger.Error("render page", "page", name, "err", err)
	}
}

// wantsJSON reports whether the client is speaking JSON rather than
// browsing HTML pages.
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.Contains(r.Header.Get("Content-Type"), "application/json")
}

// handleIndex routes the bare domain to the dashboard or the login page
// depending on session state.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.sessionUser(r) != "" {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		s.respond(w, http.StatusNotFound, map[string]any{"error": "Not found"})
		return
	}
	http.Error(w, "Page not found", http.StatusNotFound)
}

func (s *Server) handleCheckSession(w http.ResponseWriter, r *http.Request) {
	username := s.sessionUser(r)
	if username == "" {
		s.respond(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	s.respond(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"username":      username,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   trendwatch.Version,
	})
}
