// Package goquery implements article extraction from newsletter homepage
// HTML using the goquery DOM library.
package goquery

import (
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/trendwatch"
	"golang.org/x/net/html"
)

// Ensure type implements interface.
var _ trendwatch.ArticleExtractor = (*ArticleExtractor)(nil)

var (
	// postLinkRE matches hrefs of post pages: a /p/<slug> path with no
	// trailing segments. Query strings and fragments are part of the slug
	// match since they contain no slashes.
	postLinkRE = regexp.MustCompile(`/p/[^/]+$`)

	// teaserRE matches teaser/subheading text: either a ".." ellipsis or a
	// "PLUS:" marker, the two shapes newsletter teasers take on the pages
	// this extractor targets.
	teaserRE = regexp.MustCompile(`(?i)\.\.|PLUS:`)

	// dateRE matches relative times ("4 hours ago") and short absolute
	// dates ("Sep 29, 2025").
	dateRE = regexp.MustCompile(`(?i)\d+\s+(hour|day|week|month)s?\s+ago|[A-Z][a-z]{2}\s+\d+,\s+\d{4}`)

	// authorRE matches byline text.
	authorRE = regexp.MustCompile(`(?i)by\s+\w+`)
)

// ArticleExtractor extracts article listings from a newsletter homepage.
// It assumes the platform's fixed URL structure where posts live under
// /p/<slug>; the surrounding teaser, date, and author are located with
// best-effort DOM heuristics.
type ArticleExtractor struct {
	logger *slog.Logger
}

// Option configures an ArticleExtractor.
type Option func(*ArticleExtractor)

// WithLogger sets the logger used to report anchors that were skipped
// during extraction.
func WithLogger(logger *slog.Logger) Option {
	return func(e *ArticleExtractor) {
		e.logger = logger
	}
}

// NewArticleExtractor creates an ArticleExtractor with the given options.
func NewArticleExtractor(opts ...Option) *ArticleExtractor {
	e := &ArticleExtractor{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the articles listed in the HTML document, in document
// order of each post URL's first appearance. Later anchors resolving to an
// already-seen URL are dropped. A failure to process one anchor is logged
// and skips only that anchor.
func (e *ArticleExtractor) Extract(htmlSrc string, baseURL string) ([]*trendwatch.Article, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, trendwatch.Errorf(trendwatch.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlSrc))
	if err != nil {
		return nil, trendwatch.Errorf(trendwatch.EINVALID, "failed to parse HTML: %v", err)
	}

	// One pass over the whole document up front: teaser text nodes mapped
	// to the href of the nearest post link. This table is the primary
	// source of subheadings; the tiered search below is the fallback.
	subheadings := collectSubheadings(doc)

	seen := make(map[string]bool)
	var articles []*trendwatch.Article

	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if !postLinkRE.MatchString(href) {
			return
		}

		resolved, err := resolveURL(base, href)
		if err != nil {
			e.logger.Warn("skipping post link with malformed href", "href", href, "err", err)
			return
		}

		// First occurrence wins.
		if seen[resolved] {
			return
		}
		seen[resolved] = true

		article := &trendwatch.Article{
			Title: articleTitle(link, href),
			URL:   resolved,
		}

		if teaser, ok := subheadings[href]; ok {
			article.Subheading = &teaser
		} else if teaser, ok := findSubheadingNearLink(link); ok {
			article.Subheading = &teaser
		}

		// Date and author live somewhere inside the article's card
		// container. Without a container there is nothing to scan.
		if container := link.Closest("article, div, section"); container.Length() > 0 {
			container.Find("span, div, p, time").EachWithBreak(func(_ int, el *goquery.Selection) bool {
				text := trendwatch.CleanText(el.Text())
				if dateRE.MatchString(text) {
					article.Date = &text
					return false
				}
				return true
			})

			if node := firstTextNode(container.Get(0), authorRE); node != nil {
				author := trendwatch.CleanText(node.Data)
				article.Author = &author
			}
		}

		articles = append(articles, article)
	})

	return articles, nil
}

// articleTitle returns the anchor's own text when it is long enough to be
// a headline, and otherwise synthesizes a title from the URL slug.
func articleTitle(link *goquery.Selection, href string) string {
	text := trendwatch.CleanText(link.Text())
	if utf8.RuneCountInString(text) > 5 {
		return text
	}
	return trendwatch.TitleFromSlug(slugFromHref(href))
}

// slugFromHref returns the slug portion of a post href: everything after
// the last "/p/" marker, with trailing slashes removed.
func slugFromHref(href string) string {
	parts := strings.Split(href, "/p/")
	return strings.TrimRight(parts[len(parts)-1], "/")
}

// collectSubheadings builds the href→teaser lookup table. Every teaser-like
// text node of plausible length (more than 15 and fewer than 200 runes once
// normalized) is attributed to the nearest post link found by walking up
// through at most 5 ancestor levels and scanning each ancestor's subtree.
// When several teasers map to the same href the last one wins.
func collectSubheadings(doc *goquery.Document) map[string]string {
	subheadings := make(map[string]string)

	for _, textNode := range textNodes(doc.Get(0), teaserRE) {
		text := trendwatch.CleanText(textNode.Data)
		if n := utf8.RuneCountInString(text); n <= 15 || n >= 200 {
			continue
		}

		parent := textNode.Parent
		var link *html.Node
		for i := 0; i < 5 && parent != nil; i++ {
			if link = firstPostLink(parent); link != nil {
				break
			}
			parent = parent.Parent
		}
		if link != nil {
			subheadings[attrVal(link, "href")] = text
		}
	}

	return subheadings
}

// findSubheadingNearLink looks for teaser text near the anchor through an
// ordered sequence of widening searches: the anchor's parent's following
// siblings, then the grandparent's descendants, then the whole enclosing
// container. The first qualifying match at any tier wins.
func findSubheadingNearLink(link *goquery.Selection) (string, bool) {
	// Tier 1: the parent's following element siblings. Stop early at a
	// div/article sibling when the parent has more than 3 following
	// siblings in total; teasers that far out belong to other cards.
	parent := link.Parent()
	siblings := parent.NextAll()
	total := siblings.Length()

	var teaser string
	var found bool
	siblings.EachWithBreak(func(_ int, sib *goquery.Selection) bool {
		text := trendwatch.CleanText(sib.Text())
		if isTeaser(text) && utf8.RuneCountInString(text) > 15 {
			teaser, found = text, true
			return false
		}
		if total > 3 && sib.Is("div, article") {
			return false
		}
		return true
	})
	if found {
		return teaser, true
	}

	// Tier 2: descendant p/div/span elements of the grandparent, skipping
	// text identical to the anchor's own title text.
	linkText := trendwatch.CleanText(link.Text())
	parent.Parent().Find("p, div, span").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		text := trendwatch.CleanText(el.Text())
		if isTeaser(text) && utf8.RuneCountInString(text) > 15 && text != linkText {
			teaser, found = text, true
			return false
		}
		return true
	})
	if found {
		return teaser, true
	}

	// Tier 3: all text nodes of the nearest article/section ancestor or,
	// absent one, of the ancestor up to 3 levels above the parent.
	containerNode := containerFor(link)
	if containerNode != nil {
		for _, textNode := range textNodes(containerNode, teaserRE) {
			text := trendwatch.CleanText(textNode.Data)
			if utf8.RuneCountInString(text) > 15 {
				return text, true
			}
		}
	}

	return "", false
}

// containerFor returns the node whose subtree the tier-3 search scans: the
// nearest article/section ancestor when one exists, otherwise the anchor's
// parent raised by up to 3 further levels.
func containerFor(link *goquery.Selection) *html.Node {
	if container := link.Closest("article, section"); container.Length() > 0 {
		return container.Get(0)
	}

	node := link.Get(0).Parent
	for i := 0; i < 3; i++ {
		if node == nil || node.Parent == nil {
			break
		}
		node = node.Parent
	}
	return node
}

// isTeaser reports whether normalized text looks like a teaser line.
func isTeaser(text string) bool {
	return strings.Contains(text, "..") || strings.Contains(strings.ToUpper(text), "PLUS:")
}

// resolveURL resolves href against the base URL, preserving query strings
// and fragments as they appear in the document.
func resolveURL(base *url.URL, href string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}

// firstPostLink returns the first descendant anchor of n, in document
// order, whose href contains the "/p/" post marker. n itself is not
// considered.
func firstPostLink(n *html.Node) *html.Node {
	var found *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "a" && strings.Contains(attrVal(n, "href"), "/p/") {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return found
}

// textNodes returns all descendant text nodes of root, in document order,
// whose raw content matches re.
func textNodes(root *html.Node, re *regexp.Regexp) []*html.Node {
	var nodes []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode && re.MatchString(n.Data) {
			nodes = append(nodes, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return nodes
}

// firstTextNode returns the first descendant text node of root, in
// document order, whose raw content matches re.
func firstTextNode(root *html.Node, re *regexp.Regexp) *html.Node {
	var found *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.TextNode && re.MatchString(n.Data) {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return found
}

// attrVal returns the value of the named attribute, or "" when absent.
func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
