// Package fs provides file-based storage for scraped articles, configured
// users with their profiles, and generated reports.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/trendwatch"
)

// ArticlesFilename is the canonical articles file, overwritten on each
// scrape. Downstream consumers find it by this name.
const ArticlesFilename = "beehiiv_articles.json"

// Ensure ArticleStore implements trendwatch.ArticleStore at compile time.
var _ trendwatch.ArticleStore = (*ArticleStore)(nil)

// ArticleStore persists scraped articles as indented UTF-8 JSON under the
// data directory: the canonical file in scraped/ plus a timestamped backup
// in backups/.
type ArticleStore struct {
	dataDir string
}

// NewArticleStore creates an ArticleStore rooted at dataDir.
func NewArticleStore(dataDir string) *ArticleStore {
	return &ArticleStore{dataDir: dataDir}
}

func (s *ArticleStore) articlesPath() string {
	return filepath.Join(s.dataDir, "scraped", ArticlesFilename)
}

func (s *ArticleStore) backupPath(now time.Time) string {
	name := fmt.Sprintf("beehiiv_articles_backup_%s.json", now.Format("20060102_150405"))
	return filepath.Join(s.dataDir, "backups", name)
}

// SaveArticles overwrites the canonical articles file and writes a
// timestamped backup copy alongside it. Returns the canonical path.
func (s *ArticleStore) SaveArticles(ctx context.Context, articles []*trendwatch.Article) (string, error) {
	if articles == nil {
		articles = []*trendwatch.Article{}
	}

	data, err := marshalIndented(articles)
	if err != nil {
		return "", err
	}

	path := s.articlesPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	backup := s.backupPath(time.Now())
	if err := os.MkdirAll(filepath.Dir(backup), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(backup, data, 0644); err != nil {
		return "", err
	}

	return path, nil
}

// LoadArticles reads the canonical articles file. Returns ENOTFOUND if no
// scrape has run yet.
func (s *ArticleStore) LoadArticles(ctx context.Context) ([]*trendwatch.Article, error) {
	data, err := os.ReadFile(s.articlesPath())
	if os.IsNotExist(err) {
		return nil, trendwatch.Errorf(trendwatch.ENOTFOUND, "no scraped articles found")
	} else if err != nil {
		return nil, err
	}

	var articles []*trendwatch.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// marshalIndented renders v as 2-space-indented JSON with non-ASCII text
// and HTML-significant characters preserved rather than escaped.
func marshalIndented(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
