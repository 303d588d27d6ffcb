package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration, read from the environment after
// an optional .env load.
type Config struct {
	// Addr is the web server bind address.
	Addr string

	// DataDir is the root directory for all file-backed storage: articles,
	// profiles, reports, and leaderboard pages.
	DataDir string

	// DBPath is the SQLite database holding sessions.
	DBPath string

	// ScrapeURL is the newsletter homepage. Empty disables scraping.
	ScrapeURL string

	// LogLevel is one of debug, info, warn, error. Unrecognized values
	// fall back to info.
	LogLevel string

	GeminiKey  string
	TavilyKey  string
	YouTubeKey string
}

// LoadConfig reads .env from the working directory (if present) and then
// the environment. Unset variables fall back to defaults.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:       envOr("TRENDWATCH_ADDR", ":5000"),
		DataDir:    envOr("TRENDWATCH_DATA_DIR", "data"),
		DBPath:     os.Getenv("TRENDWATCH_DB"),
		ScrapeURL:  os.Getenv("SCRAPER_BASE_URL"),
		LogLevel:   envOr("TRENDWATCH_LOG", "info"),
		GeminiKey:  os.Getenv("GEMINI_API_KEY"),
		TavilyKey:  os.Getenv("TAVILY_API_KEY"),
		YouTubeKey: os.Getenv("YOUTUBE_API_KEY"),
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "trendwatch.db")
	}
	return cfg
}

// SlogLevel parses LogLevel into a slog level.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Warnings lists configuration gaps. Each one disables a feature; none of
// them stops the program.
func (c *Config) Warnings() []string {
	var warnings []string
	if c.ScrapeURL == "" {
		warnings = append(warnings, "SCRAPER_BASE_URL not set: newsletter scraping disabled, reports use saved articles")
	}
	if c.GeminiKey == "" {
		warnings = append(warnings, "GEMINI_API_KEY not set: reports, chat, and post writing unavailable")
	}
	if c.TavilyKey == "" {
		warnings = append(warnings, "TAVILY_API_KEY not set: web trends section skipped")
	}
	if c.YouTubeKey == "" {
		warnings = append(warnings, "YOUTUBE_API_KEY not set: video recommendations unavailable")
	}
	return warnings
}

// UsersFile is the YAML file mapping usernames to accounts.
func (c *Config) UsersFile() string {
	return filepath.Join(c.DataDir, "users.yaml")
}

// ProfilesDir holds one YAML profile file per user.
func (c *Config) ProfilesDir() string {
	return filepath.Join(c.DataDir, "users")
}

// ReportsDir holds the generated report JSON files.
func (c *Config) ReportsDir() string {
	return filepath.Join(c.DataDir, "reports")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
