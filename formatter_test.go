package trendwatch_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/trendwatch"
	"github.com/stretchr/testify/assert"
)

func TestFormatArticles(t *testing.T) {
	t.Parallel()

	t.Run("formats single article", func(t *testing.T) {
		t.Parallel()

		articles := []*trendwatch.Article{
			{Title: "New Model Released", URL: "https://example.com/p/new-model"},
		}

		result := trendwatch.FormatArticles(articles)

		expected := "Title: New Model Released\nURL: https://example.com/p/new-model"
		assert.Equal(t, expected, result)
	})

	t.Run("separates articles with blank lines", func(t *testing.T) {
		t.Parallel()

		articles := []*trendwatch.Article{
			{Title: "First", URL: "https://example.com/p/first"},
			{Title: "Second", URL: "https://example.com/p/second"},
		}

		result := trendwatch.FormatArticles(articles)

		expected := "Title: First\nURL: https://example.com/p/first\n\n" +
			"Title: Second\nURL: https://example.com/p/second"
		assert.Equal(t, expected, result)
	})

	t.Run("substitutes placeholders for missing fields", func(t *testing.T) {
		t.Parallel()

		articles := []*trendwatch.Article{{}}

		result := trendwatch.FormatArticles(articles)

		assert.Equal(t, "Title: No title\nURL: No URL", result)
	})

	t.Run("limits output to twenty articles", func(t *testing.T) {
		t.Parallel()

		articles := make([]*trendwatch.Article, 25)
		for i := range articles {
			articles[i] = &trendwatch.Article{
				Title: fmt.Sprintf("Article %d", i),
				URL:   fmt.Sprintf("https://example.com/p/a%d", i),
			}
		}

		result := trendwatch.FormatArticles(articles)

		assert.Equal(t, 20, strings.Count(result, "Title: "))
		assert.Contains(t, result, "Article 19")
		assert.NotContains(t, result, "Article 20")
	})

	t.Run("returns empty string for nil slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, trendwatch.FormatArticles(nil))
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter than limit", "short", 10, "short"},
		{"exactly at limit", "exact", 5, "exact"},
		{"longer than limit", "truncated here", 9, "truncated"},
		{"multi-byte runes", "héllo wörld", 7, "héllo w"},
		{"zero limit", "anything", 0, ""},
		{"empty string", "", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, trendwatch.Truncate(tt.in, tt.n))
		})
	}
}
