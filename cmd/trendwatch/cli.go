package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/trendwatch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Config *Config
	Logger *slog.Logger

	Users       trendwatch.UserService
	Sessions    trendwatch.SessionService
	Articles    trendwatch.ArticleStore
	Reports     trendwatch.ReportStore
	Scraper     trendwatch.Scraper
	Generator   trendwatch.ReportGenerator
	Assistant   trendwatch.Assistant
	Videos      trendwatch.VideoFinder
	Leaderboard trendwatch.LeaderboardService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve       ServeCmd       `cmd:"" help:"Run the dashboard web server"`
	Scrape      ScrapeCmd      `cmd:"" help:"Scrape the newsletter homepage once"`
	Report      ReportCmd      `cmd:"" help:"Generate a trends report from the terminal"`
	Leaderboard LeaderboardCmd `cmd:"" help:"Generate the LiveBench leaderboard page"`
	Hashpw      HashpwCmd      `cmd:"" help:"Hash a password for the users file"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Bind address (defaults to TRENDWATCH_ADDR or :5000)"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL string `help:"Homepage URL (defaults to SCRAPER_BASE_URL)"`
}

// ReportCmd is the "report" subcommand.
type ReportCmd struct {
	User string `required:"" help:"Username to generate the report for"`
}

// LeaderboardCmd is the "leaderboard" subcommand.
type LeaderboardCmd struct{}

// HashpwCmd is the "hashpw" subcommand.
type HashpwCmd struct {
	Password string `arg:"" help:"Password to hash"`
}
