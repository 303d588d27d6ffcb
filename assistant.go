package trendwatch

import "context"

// ChatMessage is one turn of a chatbot conversation. Role is "user" or
// "assistant"; the history travels with each request rather than being
// stored server-side.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Assistant is the LLM behind report curation, chat, and post writing.
type Assistant interface {
	// CurateArticles reviews scraped article listings and returns a
	// Markdown section of the ones relevant to the profile, with short
	// commentary per pick.
	CurateArticles(ctx context.Context, articles []*Article, source string, profile *Profile) (string, error)

	// Chat answers one user message in the context of the profile and the
	// recent conversation history. Messages asking for current events
	// trigger a live web search whose results are folded into the answer.
	Chat(ctx context.Context, message string, profile *Profile, history []ChatMessage) (string, error)

	// PostFromReport turns an existing report into a LinkedIn post written
	// in the user's voice.
	PostFromReport(ctx context.Context, report string, profile *Profile) (string, error)

	// PostFromTopic writes a LinkedIn post about a custom topic, searching
	// the web first for fresh material.
	PostFromTopic(ctx context.Context, topic string, profile *Profile) (string, error)

	// VideoKeywords suggests search keywords for video recommendations
	// based on the profile.
	VideoKeywords(ctx context.Context, profile *Profile) (string, error)
}
