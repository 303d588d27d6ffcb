package gemini

import (
	"fmt"
	"strings"

	"github.com/fwojciec/trendwatch"
)

// postSystemPrompt instructs the model when writing a LinkedIn post from an
// existing report.
const postSystemPrompt = `You are a professional LinkedIn content creator specializing in AI and technology.
Your job is to create engaging, informative LinkedIn posts that drive engagement.

**Post Requirements:**
- Length: Approximately 300 words (2-3 short paragraphs)
- Style: Semi-casual, professional yet approachable
- Use emojis strategically (🤖 💡 🚀 ✨ 📊 🎯) - 3-5 total
- Include 5-8 relevant hashtags at the end
- Start with a hook that grabs attention
- End with a call-to-action or engaging question
- Use line breaks for readability
- Write in first person when appropriate

**Content Strategy:**
- Highlight 2-3 key insights from the report
- Make it relatable and actionable
- Show thought leadership
- Encourage discussion and engagement`

// topicPostSystemPrompt is the variant for topic posts, where web search
// results are the primary source.
const topicPostSystemPrompt = `You are a professional LinkedIn content creator specializing in AI and technology.
Your job is to create engaging, informative LinkedIn posts that drive engagement.

**Post Requirements:**
- Length: Approximately 300 words (2-3 short paragraphs)
- Style: Semi-casual, professional yet approachable
- Use emojis strategically (🤖 💡 🚀 ✨ 📊 🎯) - 3-5 total
- Include 5-8 relevant hashtags at the end
- Start with a hook that grabs attention
- End with a call-to-action or engaging question
- Use line breaks for readability
- Write in first person when appropriate

**Content Strategy:**
- Use the web search results as your primary information source
- Highlight key insights and trends
- Make it relatable and actionable
- Show thought leadership
- Encourage discussion and engagement
- Cite sources naturally (mention article titles or sources without URLs)`

// CurateSystemPrompt instructs the model to filter article listings from
// the named source for relevance to the user.
func CurateSystemPrompt(source string) string {
	return fmt.Sprintf(`You are an AI content curator. Your job is to review article titles and URLs from %s
and identify which ones would be most relevant and interesting to the user based on their profile.

For each relevant article:
1. Include the title and URL
2. Add a brief 1-2 sentence commentary explaining why it's relevant
3. Be enthusiastic but professional

Only include articles that match the user's interests. If an article isn't relevant, skip it.

Format your response in markdown with clear sections.`, source)
}

// CuratePrompt builds the user prompt carrying the profile and the article
// listings to review.
func CuratePrompt(articles []*trendwatch.Article, profile *trendwatch.Profile) string {
	return fmt.Sprintf(`User Profile:
Name: %s
Job Title: %s
Interests: %s
Tags: %s

Articles to review:
%s

Please analyze these articles and return only the ones relevant to this user.
For each relevant article, provide the title, URL, and a brief comment on why it's interesting.`,
		profile.Name, profile.JobTitle, profile.Interests, strings.Join(profile.Tags, ", "),
		trendwatch.FormatArticles(articles))
}

// ChatSystemPrompt builds the chat persona prompt: tone matched to the
// user's job title, with optional live web search results folded in.
func ChatSystemPrompt(profile *trendwatch.Profile, webContext string) string {
	return fmt.Sprintf(`You are an AI assistant specialized in artificial intelligence trends, news, and technology.
You're chatting with %s, who works as a %s.

**User Profile:**
- Name: %s
- Job Title: %s
- Interests: %s
- Focus Areas: %s

**Your Personality and Communication Style:**
- Use a %s tone
- Be enthusiastic about AI developments 🤖
- Personalize responses based on their role and interests
- Be conversational but informative
- Use emojis sparingly and appropriately (🤖 🚀 💡 ✨ 📊)
- Keep responses concise (under 250 words) unless asked for more detail

**Your Capabilities:**
- Answer questions about AI, machine learning, and technology trends
- Search the web in real-time when asked about latest/recent news
- Provide insights tailored to the user's professional background
- Explain complex AI concepts in accessible ways
- Recommend resources and articles when relevant

%s

**Important Instructions:**
- If web search results are provided above, use them as your primary source
- Always cite sources by mentioning article titles and providing URLs
- If asked about something you don't have current information on, offer to search for it
- Be honest about the limits of your knowledge
- For latest news queries, prioritize the web search results above
- Format URLs as clickable links in your response`,
		profile.Name, profile.JobTitle,
		profile.Name, profile.JobTitle, profile.Interests, strings.Join(profile.Tags, ", "),
		toneFor(profile.JobTitle), webContext)
}

// ReportPostPrompt builds the user prompt for turning a report into a
// LinkedIn post. The report body is capped to keep the prompt small.
func ReportPostPrompt(reportContent string, profile *trendwatch.Profile) string {
	return fmt.Sprintf(`User Profile:
Name: %s
Job Title: %s
Interests: %s

Report Content to Summarize:
%s

Create an engaging LinkedIn post that summarizes the key insights from this AI trends report.
Write as if %s, a %s, is sharing their perspective.
Make it personal, insightful, and engaging for a professional audience.`,
		profile.Name, profile.JobTitle, profile.Interests,
		trendwatch.Truncate(reportContent, maxReportPromptChars),
		profile.Name, profile.JobTitle)
}

// TopicPostPrompt builds the user prompt for a LinkedIn post about a custom
// topic, with optional web search findings.
func TopicPostPrompt(topic, webContext string, profile *trendwatch.Profile) string {
	return fmt.Sprintf(`User Profile:
Name: %s
Job Title: %s
Interests: %s

Topic: %s

%s

Create an engaging LinkedIn post about "%s" based on the latest information above.
Write as if %s, a %s, is sharing their insights.
Make it personal, insightful, and engaging for a professional audience.`,
		profile.Name, profile.JobTitle, profile.Interests,
		topic, webContext,
		topic, profile.Name, profile.JobTitle)
}

// KeywordsPrompt asks the model for video search keywords matching the
// profile. The response is expected as a bare comma-separated list.
func KeywordsPrompt(profile *trendwatch.Profile) string {
	return fmt.Sprintf(`Based on this user profile, generate 3-5 specific search keywords for finding relevant AI/tech YouTube videos.

User Profile:
- Name: %s
- Job Title: %s
- Interests: %s
- Tags: %s

Return ONLY the search keywords as a comma-separated list, nothing else.
Example: "machine learning tutorials, AI news 2024, deep learning applications"`,
		profile.Name, profile.JobTitle, profile.Interests, strings.Join(profile.Tags, ", "))
}

// ChatSearchContext formats live search results for the chat system prompt.
func ChatSearchContext(results []*trendwatch.SearchResult) string {
	if len(results) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\n**Live Web Search Results:**\n\n")
	for i, result := range results {
		fmt.Fprintf(&sb, "%d. **%s**\n", i+1, result.Title)
		fmt.Fprintf(&sb, "   %s...\n", trendwatch.Truncate(result.Content, 250))
		fmt.Fprintf(&sb, "   Source: %s\n\n", result.URL)
	}
	return sb.String()
}

// TopicSearchContext formats search results for the topic post prompt.
func TopicSearchContext(results []*trendwatch.SearchResult) string {
	if len(results) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Recent Information Found:\n\n")
	for i, result := range results {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, result.Title)
		fmt.Fprintf(&sb, "   %s...\n", trendwatch.Truncate(result.Content, 200))
		fmt.Fprintf(&sb, "   Source: %s\n\n", result.URL)
	}
	return sb.String()
}

// toneFor picks the chat tone matching the user's job title.
func toneFor(jobTitle string) string {
	title := strings.ToLower(jobTitle)
	switch {
	case strings.Contains(title, "engineer") || strings.Contains(title, "developer"):
		return "technical and precise, with detailed explanations and code examples when relevant"
	case strings.Contains(title, "manager") || strings.Contains(title, "executive") || strings.Contains(title, "ceo"):
		return "strategic and business-focused, emphasizing impact and opportunities"
	case strings.Contains(title, "researcher") || strings.Contains(title, "scientist"):
		return "academic and thorough, with focus on methodologies and findings"
	case strings.Contains(title, "designer") || strings.Contains(title, "product"):
		return "user-focused and practical, emphasizing applications and experiences"
	default:
		return "friendly and conversational, balancing accessibility with depth"
	}
}
