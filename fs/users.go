package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/trendwatch"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// demoPasswordHash is the bcrypt hash of "demo123", the password of the
// seeded demo account.
const demoPasswordHash = "$2b$12$FwcV.QNAog0DCq8zOQz6C.IJYxliA/Idj64/9QzBPoTGZ.CMgQUCC"

// Ensure UserService implements trendwatch.UserService at compile time.
var _ trendwatch.UserService = (*UserService)(nil)

// UserService manages the configured user accounts and their YAML profile
// files. Accounts live in a single users file loaded once at startup; each
// account names the profile file that holds its personalization data.
type UserService struct {
	profilesDir string
	users       map[string]*trendwatch.User
}

// NewUserService loads the users file and prepares the profiles directory.
// A missing users file is seeded with the demo account, and a missing demo
// profile is written out, so a fresh checkout can log in immediately.
func NewUserService(usersFile, profilesDir string) (*UserService, error) {
	if err := os.MkdirAll(profilesDir, 0755); err != nil {
		return nil, err
	}

	users, err := loadUsers(usersFile)
	if os.IsNotExist(err) {
		users = defaultUsers()
		if err := writeUsers(usersFile, users); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	s := &UserService{
		profilesDir: profilesDir,
		users:       users,
	}

	if demo, ok := s.users["demo"]; ok {
		if err := s.ensureProfileFile(demo.ProfileFile, demoProfile()); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Authenticate verifies a username/password pair. Unknown users and wrong
// passwords produce the same error so responses don't reveal which
// usernames exist.
func (s *UserService) Authenticate(ctx context.Context, username, password string) error {
	if user, ok := s.users[username]; ok {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil {
			return nil
		}
	}
	return trendwatch.Errorf(trendwatch.EUNAUTHORIZED, "Invalid username or password")
}

// Profile loads the user's profile from its YAML file. A missing or
// unparseable file falls back to the default profile so one damaged file
// never locks a user out of the dashboard.
func (s *UserService) Profile(ctx context.Context, username string) (*trendwatch.Profile, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, trendwatch.Errorf(trendwatch.ENOTFOUND, "user %q not found", username)
	}

	data, err := os.ReadFile(filepath.Join(s.profilesDir, user.ProfileFile))
	if err != nil {
		return trendwatch.DefaultProfile(username), nil
	}

	var profile trendwatch.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return trendwatch.DefaultProfile(username), nil
	}
	return &profile, nil
}

// UpdateProfile validates and writes the user's profile file.
func (s *UserService) UpdateProfile(ctx context.Context, username string, profile *trendwatch.Profile) error {
	user, ok := s.users[username]
	if !ok {
		return trendwatch.Errorf(trendwatch.ENOTFOUND, "user %q not found", username)
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(profile)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.profilesDir, user.ProfileFile), data, 0644)
}

// Exists reports whether the username is configured.
func (s *UserService) Exists(ctx context.Context, username string) bool {
	_, ok := s.users[username]
	return ok
}

// ensureProfileFile writes the profile only when the file doesn't exist
// yet, so user edits survive restarts.
func (s *UserService) ensureProfileFile(filename string, profile *trendwatch.Profile) error {
	path := filepath.Join(s.profilesDir, filename)
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	data, err := yaml.Marshal(profile)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func loadUsers(usersFile string) (map[string]*trendwatch.User, error) {
	data, err := os.ReadFile(usersFile)
	if err != nil {
		return nil, err
	}

	var users map[string]*trendwatch.User
	if err := yaml.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	for username, user := range users {
		user.Username = username
	}
	return users, nil
}

func writeUsers(usersFile string, users map[string]*trendwatch.User) error {
	if err := os.MkdirAll(filepath.Dir(usersFile), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(users)
	if err != nil {
		return err
	}
	return os.WriteFile(usersFile, data, 0644)
}

func defaultUsers() map[string]*trendwatch.User {
	return map[string]*trendwatch.User{
		"demo": {
			Username:     "demo",
			PasswordHash: demoPasswordHash,
			ProfileFile:  "demo.yaml",
		},
	}
}

func demoProfile() *trendwatch.Profile {
	return &trendwatch.Profile{
		Name:     "Demo User",
		Email:    "demo@example.com",
		JobTitle: "AI Enthusiast",
		Interests: "I'm interested in staying up-to-date with the latest developments in artificial intelligence,\n" +
			"machine learning, and emerging technologies. I want to understand how AI is transforming various industries\n" +
			"and learn about practical applications, best practices, and future trends. I'm particularly focused on\n" +
			"understanding AI tools, automation, and innovation in my field.",
		Tags: []string{
			"artificial_intelligence",
			"machine_learning",
			"ai_trends",
			"technology",
			"innovation",
			"automation",
		},
	}
}
