package trendwatch

import "strings"

// MaxPromptArticles caps how many scraped articles are included in a
// curation prompt.
const MaxPromptArticles = 20

// FormatArticles formats articles as a text block for LLM prompts.
// Each article contributes a Title/URL pair, entries are separated by
// blank lines, and at most MaxPromptArticles entries are included.
func FormatArticles(articles []*Article) string {
	if len(articles) == 0 {
		return ""
	}
	if len(articles) > MaxPromptArticles {
		articles = articles[:MaxPromptArticles]
	}

	parts := make([]string, 0, len(articles))
	for _, a := range articles {
		title := a.Title
		if title == "" {
			title = "No title"
		}
		url := a.URL
		if url == "" {
			url = "No URL"
		}
		parts = append(parts, "Title: "+title+"\nURL: "+url)
	}

	return strings.Join(parts, "\n\n")
}

// Truncate returns at most n runes of s. Truncation counts runes rather
// than bytes so multi-byte text is never split mid-character.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
