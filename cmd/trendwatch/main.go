package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/fwojciec/trendwatch"
	"github.com/fwojciec/trendwatch/fs"
	"github.com/fwojciec/trendwatch/gemini"
	"github.com/fwojciec/trendwatch/goquery"
	trendhttp "github.com/fwojciec/trendwatch/http"
	"github.com/fwojciec/trendwatch/livebench"
	"github.com/fwojciec/trendwatch/report"
	"github.com/fwojciec/trendwatch/scrape"
	twslog "github.com/fwojciec/trendwatch/slog"
	"github.com/fwojciec/trendwatch/sqlite"
	"github.com/fwojciec/trendwatch/tavily"
	"github.com/fwojciec/trendwatch/youtube"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config is resolved from .env and the environment. Tests override
	// fields directly before calling Run().
	Config *Config

	// SQLite database holding sessions. Open only while serving.
	DB *sqlite.DB

	// Logger for the services. Writes to stderr so stdout stays pipeable.
	Logger *slog.Logger
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	config := LoadConfig()
	return &Main{
		Config: config,
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: config.SlogLevel(),
		})),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: m.Config,
		Logger: m.Logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("trendwatch"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'trendwatch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// hashpw works without any services or data directory.
	if cmd == "hashpw" {
		return kongCtx.Run(deps)
	}

	for _, warning := range m.Config.Warnings() {
		fmt.Fprintf(stderr, "warning: %s\n", warning)
	}

	if err := os.MkdirAll(m.Config.DataDir, 0755); err != nil {
		return fmt.Errorf("create data directory %q: %w", m.Config.DataDir, err)
	}

	// File-backed stores share the data directory.
	deps.Articles = fs.NewArticleStore(m.Config.DataDir)
	deps.Reports = fs.NewReportStore(m.Config.ReportsDir())

	users, err := fs.NewUserService(m.Config.UsersFile(), m.Config.ProfilesDir())
	if err != nil {
		return fmt.Errorf("load users from %q: %w", m.Config.UsersFile(), err)
	}
	deps.Users = users

	// The scraper needs a homepage URL; without one the report generator
	// falls back to previously saved articles.
	scrapeURL := m.Config.ScrapeURL
	if cmd == "scrape" && cli.Scrape.URL != "" {
		scrapeURL = cli.Scrape.URL
	}
	if scrapeURL != "" {
		fetcher := trendhttp.NewFetcher()
		defer fetcher.Close()

		deps.Scraper = twslog.NewLoggingScraper(&scrape.Scraper{
			URL:       scrapeURL,
			Fetcher:   twslog.NewLoggingFetcher(fetcher, m.Logger),
			Extractor: goquery.NewArticleExtractor(),
			Articles:  deps.Articles,
		}, m.Logger)
	}

	if cmd == "serve" || cmd == "report" {
		if m.Config.GeminiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  m.Config.GeminiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		var searcher trendwatch.WebSearcher
		if m.Config.TavilyKey != "" {
			searcher = tavily.NewClient(m.Config.TavilyKey)
		}

		deps.Assistant = twslog.NewLoggingAssistant(gemini.NewAssistant(client, searcher), m.Logger)
		deps.Generator = twslog.NewLoggingReportGenerator(&report.Generator{
			Scraper:   deps.Scraper,
			Articles:  deps.Articles,
			Assistant: deps.Assistant,
			Searcher:  searcher,
			Logger:    m.Logger,
		}, m.Logger)
	}

	if cmd == "serve" || cmd == "leaderboard" {
		deps.Leaderboard = twslog.NewLoggingLeaderboardService(&livebench.Service{
			Source:  livebench.NewClient(),
			DataDir: m.Config.DataDir,
		}, m.Logger)
	}

	if cmd == "serve" {
		m.DB = sqlite.NewDB(m.Config.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set TRENDWATCH_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.Config.DBPath, err)
		}
		defer m.Close()

		deps.Sessions = sqlite.NewSessionService(m.DB)
		deps.Videos = youtube.NewClient(m.Config.YouTubeKey)
	}

	return kongCtx.Run(deps)
}
