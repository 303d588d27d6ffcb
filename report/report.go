// Package report assembles personalized AI-trends reports.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/trendwatch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ trendwatch.ReportGenerator = (*Generator)(nil)

// NewsletterSource is the display name for the scraped newsletter feed.
const NewsletterSource = "AI Newsletter"

// Generator implements trendwatch.ReportGenerator. It scrapes the
// newsletter for fresh articles, has the assistant curate them, folds in
// live web search results, and assembles the final Markdown report.
type Generator struct {
	// Scraper is optional; without it the generator relies on previously
	// saved articles.
	Scraper trendwatch.Scraper

	Articles  trendwatch.ArticleStore
	Assistant trendwatch.Assistant

	// Searcher is optional; without it the web trends section is skipped.
	Searcher trendwatch.WebSearcher

	// Logger records degradations, such as a failed scrape covered by
	// previously saved articles. Defaults to a discard logger.
	Logger *slog.Logger

	// Now returns the current time. Overridable for tests.
	Now func() time.Time
}

// GenerateReport builds a complete personalized report for the user.
// A failed scrape or web search degrades the report rather than failing
// it; only the curation step is load-bearing.
func (g *Generator) GenerateReport(ctx context.Context, username string, profile *trendwatch.Profile) (*trendwatch.Report, error) {
	if profile == nil {
		return nil, trendwatch.Errorf(trendwatch.EINVALID, "profile required")
	}

	now := g.now()
	articles := g.freshArticles(ctx)

	var sections []string
	sections = append(sections,
		fmt.Sprintf("# AI Trends Report for %s", profile.Name),
		fmt.Sprintf("**Generated:** %s", now.Format("January 02, 2006 at 15:04:05")),
		fmt.Sprintf("**Profile:** %s", profile.JobTitle),
		"\n---\n",
	)

	var references []string

	if len(articles) > 0 {
		curated, err := g.Assistant.CurateArticles(ctx, articles, NewsletterSource, profile)
		if err != nil {
			return nil, fmt.Errorf("curate articles: %w", err)
		}
		if curated != "" {
			sections = append(sections, "## 📰 Latest AI Newsletter Highlights\n", curated, "\n---\n")
		}
		for _, article := range articles[:min(len(articles), trendwatch.MaxPromptArticles)] {
			references = append(references, article.URL)
		}
	} else {
		sections = append(sections,
			"## ⚠️ No Newsletter Data Available\n",
			"*Please ensure the web scraper has run successfully and SCRAPER_BASE_URL is configured in .env*\n",
			"\n---\n",
		)
	}

	if g.Searcher != nil {
		results := g.webTrends(ctx, profile)
		if len(results) > 0 {
			sections = append(sections, "## 🔍 Latest AI Trends from Web\n")
			for _, result := range results {
				sections = append(sections,
					fmt.Sprintf("### %s\n", result.Title),
					fmt.Sprintf("%s\n", result.Content),
					fmt.Sprintf("[Read more](%s)\n\n", result.URL),
				)
				references = append(references, result.URL)
			}
			sections = append(sections, "\n---\n")
		}
	}

	sections = append(sections,
		"\n---",
		"\n*Report generated by AI Agent Pipeline*",
		fmt.Sprintf("\n*Personalized for %s based on your interests in: %s*",
			profile.Name, strings.Join(profile.Tags[:min(len(profile.Tags), 5)], ", ")),
	)

	return &trendwatch.Report{
		ID:          uuid.New().String(),
		Username:    username,
		Profile:     profile,
		Markdown:    strings.Join(sections, "\n"),
		References:  references,
		GeneratedAt: now,
	}, nil
}

// freshArticles scrapes the newsletter, falling back to the last saved
// articles when the scrape fails or comes back empty.
func (g *Generator) freshArticles(ctx context.Context) []*trendwatch.Article {
	if g.Scraper != nil {
		articles, err := g.Scraper.Scrape(ctx)
		if err != nil {
			g.logger().Warn("scrape failed, falling back to saved articles", "error", err)
		}
		if len(articles) > 0 {
			return articles
		}
	}

	articles, err := g.Articles.LoadArticles(ctx)
	if err != nil {
		if trendwatch.ErrorCode(err) != trendwatch.ENOTFOUND {
			g.logger().Warn("loading saved articles failed", "error", err)
		}
		return nil
	}
	return articles
}

// webTrends searches the web for trends matching the user's interests.
// Search is best-effort; a failure only costs the section.
func (g *Generator) webTrends(ctx context.Context, profile *trendwatch.Profile) []*trendwatch.SearchResult {
	tags := profile.Tags[:min(len(profile.Tags), 3)]
	query := "latest AI artificial intelligence trends " + strings.Join(tags, " ")

	results, err := g.Searcher.Search(ctx, query, 5)
	if err != nil {
		g.logger().Warn("web search failed", "query", query, "error", err)
		return nil
	}
	return results
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}
