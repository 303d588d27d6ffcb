package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/trendwatch"
	"github.com/fwojciec/trendwatch/fs"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if deps.Scraper == nil {
		fmt.Fprintln(deps.Stderr, "error: no homepage URL configured. Set SCRAPER_BASE_URL or pass --url.")
		return trendwatch.Errorf(trendwatch.EINVALID, "scrape URL required")
	}

	articles, err := deps.Scraper.Scrape(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", trendwatch.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found on the page.")
		return nil
	}

	path := filepath.Join(deps.Config.DataDir, "scraped", fs.ArticlesFilename)
	fmt.Fprintf(deps.Stdout, "Scraped %d articles to %s\n", len(articles), path)
	for _, article := range articles {
		fmt.Fprintf(deps.Stdout, "  %s\n", article.Title)
	}

	return nil
}
