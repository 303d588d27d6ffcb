// Package trendwatch implements a personal AI-trends dashboard. It scrapes
// a newsletter homepage for article listings, curates the results with an
// LLM into personalized Markdown reports, chats with the user, and renders
// a static leaderboard of model-evaluation scores.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package trendwatch

// Version is the application version reported by the health endpoint and
// the CLI. Overridden at release time via -ldflags.
var Version = "dev"
