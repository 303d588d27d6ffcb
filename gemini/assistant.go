// Package gemini implements the AI assistant using Google Gemini.
package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/trendwatch"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// maxReportPromptChars caps how much of a report body goes into the
// LinkedIn post prompt.
const maxReportPromptChars = 3000

// searchTriggers are the phrases that make chat reach for a live web
// search before answering.
var searchTriggers = []string{
	"latest", "recent", "newest", "current", "today",
	"this week", "breaking", "news", "what's new",
	"updates", "happening", "announcement", "released",
}

// Ensure Assistant implements trendwatch.Assistant at compile time.
var _ trendwatch.Assistant = (*Assistant)(nil)

// Assistant implements trendwatch.Assistant using Google Gemini. The
// optional searcher supplies live web results for chat and topic posts.
type Assistant struct {
	client   *genai.Client
	searcher trendwatch.WebSearcher

	// RetryDelays controls retries for conversational calls. Defaults to
	// trendwatch.DefaultRetryDelays.
	RetryDelays []time.Duration
}

// NewAssistant creates a new Assistant. Pass a nil searcher to disable
// live web search.
func NewAssistant(client *genai.Client, searcher trendwatch.WebSearcher) *Assistant {
	return &Assistant{client: client, searcher: searcher}
}

// CurateArticles reviews scraped article listings and returns a Markdown
// section of the ones relevant to the profile.
func (a *Assistant) CurateArticles(ctx context.Context, articles []*trendwatch.Article, source string, profile *trendwatch.Profile) (string, error) {
	if profile == nil {
		return "", trendwatch.Errorf(trendwatch.EINVALID, "profile required")
	}
	if len(articles) == 0 {
		return "", nil
	}

	return a.generateWithRetry(ctx, newConfig(CurateSystemPrompt(source)), userContent(CuratePrompt(articles, profile)))
}

// Chat answers one user message, searching the web first when the message
// asks about current events.
func (a *Assistant) Chat(ctx context.Context, message string, profile *trendwatch.Profile, history []trendwatch.ChatMessage) (string, error) {
	if message == "" {
		return "", trendwatch.Errorf(trendwatch.EINVALID, "message required")
	}
	if profile == nil {
		return "", trendwatch.Errorf(trendwatch.EINVALID, "profile required")
	}

	var webContext string
	if WantsWebSearch(message) && a.searcher != nil {
		// Best-effort: a failed search just means answering without it.
		results, err := a.searcher.Search(ctx, "AI artificial intelligence "+message, 5)
		if err == nil {
			webContext = ChatSearchContext(results)
		}
	}

	// Only the most recent turns carry context; older ones just inflate
	// the prompt.
	if len(history) > 6 {
		history = history[len(history)-6:]
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		role := "model"
		if msg.Role == "user" {
			role = "user"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: message}},
	})

	return a.generateWithRetry(ctx, newConfig(ChatSystemPrompt(profile, webContext)), contents)
}

// PostFromReport turns an existing report into a LinkedIn post.
func (a *Assistant) PostFromReport(ctx context.Context, report string, profile *trendwatch.Profile) (string, error) {
	if report == "" {
		return "", trendwatch.Errorf(trendwatch.EINVALID, "report content required")
	}
	if profile == nil {
		return "", trendwatch.Errorf(trendwatch.EINVALID, "profile required")
	}

	return a.generateWithRetry(ctx, newConfig(postSystemPrompt), userContent(ReportPostPrompt(report, profile)))
}

// PostFromTopic writes a LinkedIn post about a custom topic, searching the
// web first for fresh material.
func (a *Assistant) PostFromTopic(ctx context.Context, topic string, profile *trendwatch.Profile) (string, error) {
	if topic == "" {
		return "", trendwatch.Errorf(trendwatch.EINVALID, "topic required")
	}
	if profile == nil {
		return "", trendwatch.Errorf(trendwatch.EINVALID, "profile required")
	}

	var webContext string
	if a.searcher != nil {
		results, err := a.searcher.Search(ctx, "AI artificial intelligence "+topic+" latest news trends", 5)
		if err == nil {
			webContext = TopicSearchContext(results)
		}
	}

	return a.generateWithRetry(ctx, newConfig(topicPostSystemPrompt), userContent(TopicPostPrompt(topic, webContext, profile)))
}

// VideoKeywords suggests video search keywords for the profile as a
// comma-separated list.
func (a *Assistant) VideoKeywords(ctx context.Context, profile *trendwatch.Profile) (string, error) {
	if profile == nil {
		return "", trendwatch.Errorf(trendwatch.EINVALID, "profile required")
	}

	keywords, err := a.generateWithRetry(ctx, newConfig(""), userContent(KeywordsPrompt(profile)))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(keywords), nil
}

// generate makes a single Gemini call.
func (a *Assistant) generate(ctx context.Context, config *genai.GenerateContentConfig, contents []*genai.Content) (string, error) {
	result, err := a.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", trendwatch.Errorf(trendwatch.EINTERNAL, "gemini returned nil result")
	}
	return result.Text(), nil
}

// generateWithRetry retries transient Gemini failures before giving up.
func (a *Assistant) generateWithRetry(ctx context.Context, config *genai.GenerateContentConfig, contents []*genai.Content) (string, error) {
	if a.client == nil {
		return "", trendwatch.Errorf(trendwatch.EUNAVAILABLE, "gemini client not configured")
	}

	delays := a.RetryDelays
	if delays == nil {
		delays = trendwatch.DefaultRetryDelays()
	}

	var text string
	err := trendwatch.Retry(ctx, delays, func(ctx context.Context) error {
		var err error
		text, err = a.generate(ctx, config, contents)
		return err
	})
	return text, err
}

// newConfig returns the GenerateContentConfig for Gemini API calls. An
// empty system prompt leaves the model's default behavior in place.
func newConfig(system string) *genai.GenerateContentConfig {
	temp := float32(0.7)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	return config
}

// userContent wraps a single user prompt for the API.
func userContent(prompt string) []*genai.Content {
	return []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}
}

// WantsWebSearch reports whether the message asks for current information
// and should trigger a live web search.
func WantsWebSearch(message string) bool {
	lower := strings.ToLower(message)
	for _, trigger := range searchTriggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}
