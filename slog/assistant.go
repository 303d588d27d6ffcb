package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/trendwatch"
)

// Ensure LoggingAssistant implements trendwatch.Assistant.
var _ trendwatch.Assistant = (*LoggingAssistant)(nil)

// LoggingAssistant wraps an Assistant with operation logging. Prompt and
// response bodies are never logged, only sizes.
type LoggingAssistant struct {
	next   trendwatch.Assistant
	logger *slog.Logger
}

// NewLoggingAssistant creates a new LoggingAssistant.
func NewLoggingAssistant(next trendwatch.Assistant, logger *slog.Logger) *LoggingAssistant {
	return &LoggingAssistant{next: next, logger: logger}
}

// CurateArticles delegates to the wrapped assistant and logs the operation.
func (a *LoggingAssistant) CurateArticles(ctx context.Context, articles []*trendwatch.Article, source string, profile *trendwatch.Profile) (section string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("article curation",
			"articles", len(articles),
			"source", source,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.CurateArticles(ctx, articles, source, profile)
}

// Chat delegates to the wrapped assistant and logs the operation.
func (a *LoggingAssistant) Chat(ctx context.Context, message string, profile *trendwatch.Profile, history []trendwatch.ChatMessage) (response string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("chat",
			"message_len", len(message),
			"history", len(history),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Chat(ctx, message, profile, history)
}

// PostFromReport delegates to the wrapped assistant and logs the operation.
func (a *LoggingAssistant) PostFromReport(ctx context.Context, report string, profile *trendwatch.Profile) (post string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("linkedin post from report",
			"report_len", len(report),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.PostFromReport(ctx, report, profile)
}

// PostFromTopic delegates to the wrapped assistant and logs the operation.
func (a *LoggingAssistant) PostFromTopic(ctx context.Context, topic string, profile *trendwatch.Profile) (post string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("linkedin post from topic",
			"topic", topic,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.PostFromTopic(ctx, topic, profile)
}

// VideoKeywords delegates to the wrapped assistant and logs the operation.
func (a *LoggingAssistant) VideoKeywords(ctx context.Context, profile *trendwatch.Profile) (keywords string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("video keywords",
			"keywords", keywords,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.VideoKeywords(ctx, profile)
}
