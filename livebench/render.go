package livebench

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/trendwatch"
)

//go:embed leaderboard.html.tmpl
var pageTemplate string

var page = template.Must(template.New("leaderboard").Parse(pageTemplate))

type pageData struct {
	TopN         int
	Generated    string
	HasFreshness bool
	Freshness    string
	ModelCount   int
	TopScore     string
	TotalEvals   string
	Rows         []tableRow
	Labels       template.JS
	Scores       template.JS
	Counts       template.JS
	Colors       template.JS
	BorderColors template.JS
}

type tableRow struct {
	Rank      int
	Model     string
	Score     string
	Class     string
	Questions int
}

// RenderPage builds the leaderboard HTML for the given models, best score
// first. The raw lastModified timestamp is shown as a freshness notice when
// it parses, and a warning box replaces it when it does not.
func RenderPage(models []trendwatch.ModelScore, lastModified string, generatedAt time.Time) (string, error) {
	if len(models) == 0 {
		return "", trendwatch.Errorf(trendwatch.EINVALID, "leaderboard requires at least one model")
	}

	labels := make([]string, len(models))
	scores := make([]float64, len(models))
	counts := make([]int, len(models))
	colors := make([]string, len(models))
	borderColors := make([]string, len(models))
	rows := make([]tableRow, len(models))
	totalEvals := 0
	for i, m := range models {
		labels[i] = m.Model
		scores[i] = m.AvgScore
		counts[i] = m.Questions
		colors[i] = ScoreColor(m.AvgScore)
		borderColors[i] = strings.Replace(colors[i], "0.8", "1", 1)
		rows[i] = tableRow{
			Rank:      i + 1,
			Model:     m.Model,
			Score:     formatScore(m.AvgScore),
			Class:     scoreClass(m.AvgScore),
			Questions: m.Questions,
		}
		totalEvals += m.Questions
	}

	data := pageData{
		TopN:       len(models),
		Generated:  generatedAt.Format("January 02, 2006 at 15:04:05"),
		ModelCount: len(models),
		TopScore:   formatScore(models[0].AvgScore),
		TotalEvals: thousands(totalEvals),
		Rows:       rows,
	}
	if modified, err := time.Parse(time.RFC3339, lastModified); err == nil {
		data.HasFreshness = true
		data.Freshness = modified.UTC().Format("January 02, 2006 at 15:04") + " UTC"
	}

	var err error
	if data.Labels, err = jsArray(labels); err != nil {
		return "", err
	}
	if data.Scores, err = jsArray(scores); err != nil {
		return "", err
	}
	if data.Counts, err = jsArray(counts); err != nil {
		return "", err
	}
	if data.Colors, err = jsArray(colors); err != nil {
		return "", err
	}
	if data.BorderColors, err = jsArray(borderColors); err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := page.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render leaderboard page: %w", err)
	}
	return sb.String(), nil
}

// ScoreColor maps an average score to the bar color used on the page.
func ScoreColor(score float64) string {
	switch {
	case score >= 0.8:
		return "rgba(16, 185, 129, 0.8)"
	case score >= 0.6:
		return "rgba(20, 184, 166, 0.8)"
	case score >= 0.4:
		return "rgba(245, 158, 11, 0.8)"
	default:
		return "rgba(239, 68, 68, 0.8)"
	}
}

func scoreClass(score float64) string {
	switch {
	case score >= 0.8:
		return "high"
	case score >= 0.6:
		return "medium"
	default:
		return "low"
	}
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.1f%%", score*100)
}

func jsArray(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode chart data: %w", err)
	}
	return template.JS(b), nil
}

// thousands formats n with comma separators, so 1234567 reads 1,234,567.
func thousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + thousands(-n)
	}
	if len(s) <= 3 {
		return s
	}

	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
