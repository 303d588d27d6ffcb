package trendwatch

import (
	"context"
	"strings"
	"unicode"
)

// Article represents one article listing scraped from a newsletter homepage.
// Optional fields are pointers so that absent values serialize as JSON null,
// matching the on-disk format consumed by the report pipeline.
type Article struct {
	// Title is the human-readable headline. Never empty: derived from the
	// anchor text or, failing that, synthesized from the URL slug.
	Title string `json:"title"`

	// Subheading is the teaser/description found near the link, if any.
	Subheading *string `json:"subheading"`

	// URL is the absolute link target. Unique within one extraction run.
	URL string `json:"article_url"`

	// Date is the raw matched date or relative-time string, unnormalized.
	Date *string `json:"date"`

	// Author is the raw matched "by X" string, unnormalized.
	Author *string `json:"author"`
}

// Validate returns an error if the article is missing required fields.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	return nil
}

// ArticleExtractor extracts article listings from a newsletter homepage.
type ArticleExtractor interface {
	// Extract parses the HTML document and returns articles in document
	// order of first appearance, deduplicated by absolute URL. Errors while
	// processing a single anchor drop only that record; Extract fails only
	// when the inputs themselves are unusable.
	Extract(html string, baseURL string) ([]*Article, error)
}

// ArticleStore persists scraped articles as JSON on disk.
type ArticleStore interface {
	// SaveArticles overwrites the canonical articles file and writes a
	// timestamped backup copy alongside it. Returns the canonical path.
	SaveArticles(ctx context.Context, articles []*Article) (string, error)

	// LoadArticles reads the canonical articles file. Returns ENOTFOUND if
	// no scrape has run yet.
	LoadArticles(ctx context.Context) ([]*Article, error)
}

// Scraper fetches the configured newsletter homepage and extracts articles.
type Scraper interface {
	Scrape(ctx context.Context) ([]*Article, error)
}

// CleanText collapses runs of whitespace to single spaces and trims the
// result. All article text fields are normalized with this before storage.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TitleFromSlug converts a URL slug to a readable title: a leading "p/"
// segment is stripped, hyphens become spaces, and each word is title-cased.
// Example: "the-future-of-robots" → "The Future Of Robots".
func TitleFromSlug(slug string) string {
	slug = strings.TrimPrefix(slug, "p/")
	return TitleCase(strings.ReplaceAll(slug, "-", " "))
}

// TitleCase uppercases the first letter of every word and lowercases the
// rest, treating any non-letter as a word boundary ("ai models" → "Ai
// Models", "gpt-4o" → "Gpt-4O"). Slugs and usernames are plain ASCII
// words, so no locale-aware casing is involved.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
