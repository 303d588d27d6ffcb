package mock

import (
	"context"

	"github.com/fwojciec/trendwatch"
)

var _ trendwatch.UserService = (*UserService)(nil)

// UserService is a mock implementation of trendwatch.UserService.
type UserService struct {
	AuthenticateFn  func(ctx context.Context, username, password string) error
	ProfileFn       func(ctx context.Context, username string) (*trendwatch.Profile, error)
	UpdateProfileFn func(ctx context.Context, username string, profile *trendwatch.Profile) error
	ExistsFn        func(ctx context.Context, username string) bool
}

func (s *UserService) Authenticate(ctx context.Context, username, password string) error {
	return s.AuthenticateFn(ctx, username, password)
}

func (s *UserService) Profile(ctx context.Context, username string) (*trendwatch.Profile, error) {
	return s.ProfileFn(ctx, username)
}

func (s *UserService) UpdateProfile(ctx context.Context, username string, profile *trendwatch.Profile) error {
	return s.UpdateProfileFn(ctx, username, profile)
}

func (s *UserService) Exists(ctx context.Context, username string) bool {
	return s.ExistsFn(ctx, username)
}
