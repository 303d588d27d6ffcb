package mock

import (
	"context"

	"github.com/fwojciec/trendwatch"
)

var _ trendwatch.Assistant = (*Assistant)(nil)

// Assistant is a mock implementation of trendwatch.Assistant.
type Assistant struct {
	CurateArticlesFn func(ctx context.Context, articles []*trendwatch.Article, source string, profile *trendwatch.Profile) (string, error)
	ChatFn           func(ctx context.Context, message string, profile *trendwatch.Profile, history []trendwatch.ChatMessage) (string, error)
	PostFromReportFn func(ctx context.Context, report string, profile *trendwatch.Profile) (string, error)
	PostFromTopicFn  func(ctx context.Context, topic string, profile *trendwatch.Profile) (string, error)
	VideoKeywordsFn  func(ctx context.Context, profile *trendwatch.Profile) (string, error)
}

func (a *Assistant) CurateArticles(ctx context.Context, articles []*trendwatch.Article, source string, profile *trendwatch.Profile) (string, error) {
	return a.CurateArticlesFn(ctx, articles, source, profile)
}

func (a *Assistant) Chat(ctx context.Context, message string, profile *trendwatch.Profile, history []trendwatch.ChatMessage) (string, error) {
	return a.ChatFn(ctx, message, profile, history)
}

func (a *Assistant) PostFromReport(ctx context.Context, report string, profile *trendwatch.Profile) (string, error) {
	return a.PostFromReportFn(ctx, report, profile)
}

func (a *Assistant) PostFromTopic(ctx context.Context, topic string, profile *trendwatch.Profile) (string, error) {
	return a.PostFromTopicFn(ctx, topic, profile)
}

func (a *Assistant) VideoKeywords(ctx context.Context, profile *trendwatch.Profile) (string, error) {
	return a.VideoKeywordsFn(ctx, profile)
}
