package trendwatch

import (
	"context"
	"strings"
)

// Profile holds the personalization data for one user. It steers report
// curation, chat tone, and video recommendations.
type Profile struct {
	Name     string `yaml:"name" json:"name"`
	Email    string `yaml:"email" json:"email"`
	JobTitle string `yaml:"job_title" json:"job_title"`

	// Interests is free-form prose describing what the user wants to read
	// about. Fed verbatim into prompts.
	Interests string `yaml:"interests" json:"interests"`

	// Tags are short focus-area labels used in search queries and prompts.
	Tags []string `yaml:"tags" json:"tags"`
}

// Validate returns an error if the profile is missing required fields.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "profile name required")
	}
	if p.Email == "" || !strings.Contains(p.Email, "@") {
		return Errorf(EINVALID, "valid profile email required")
	}
	return nil
}

// DefaultProfile returns the fallback profile used when a user's profile
// file is missing or unreadable.
func DefaultProfile(username string) *Profile {
	return &Profile{
		Name:      TitleCase(strings.ReplaceAll(username, "_", " ")),
		Email:     username + "@example.com",
		JobTitle:  "AI Enthusiast",
		Interests: "General interest in artificial intelligence and technology trends.",
		Tags:      []string{"artificial_intelligence", "technology", "innovation"},
	}
}

// User is one configured account: a bcrypt password hash plus the name of
// the YAML file holding the user's profile.
type User struct {
	Username     string `yaml:"-"`
	PasswordHash string `yaml:"password_hash"`
	ProfileFile  string `yaml:"profile"`
}

// UserService manages the configured users and their profiles.
type UserService interface {
	// Authenticate verifies a username/password pair. Returns EUNAUTHORIZED
	// with an identical message for unknown users and wrong passwords.
	Authenticate(ctx context.Context, username, password string) error

	// Profile loads the user's profile, falling back to DefaultProfile when
	// the profile file is missing or malformed. Returns ENOTFOUND for
	// unknown users.
	Profile(ctx context.Context, username string) (*Profile, error)

	// UpdateProfile validates and writes the user's profile file.
	UpdateProfile(ctx context.Context, username string, profile *Profile) error

	// Exists reports whether the username is configured.
	Exists(ctx context.Context, username string) bool
}
