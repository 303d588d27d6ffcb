package trendwatch_test

import (
	"testing"

	"github.com/fwojciec/trendwatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile trendwatch.Profile
		wantErr string
	}{
		{"valid", trendwatch.Profile{Name: "Demo User", Email: "demo@example.com"}, ""},
		{"missing name", trendwatch.Profile{Email: "demo@example.com"}, "profile name required"},
		{"missing email", trendwatch.Profile{Name: "Demo User"}, "valid profile email required"},
		{"email without at sign", trendwatch.Profile{Name: "Demo User", Email: "demo.example.com"}, "valid profile email required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.profile.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, trendwatch.EINVALID, trendwatch.ErrorCode(err))
			assert.Equal(t, tt.wantErr, trendwatch.ErrorMessage(err))
		})
	}
}

func TestDefaultProfile(t *testing.T) {
	t.Parallel()

	profile := trendwatch.DefaultProfile("jane_doe")

	require.NoError(t, profile.Validate())
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "jane_doe@example.com", profile.Email)
	assert.Equal(t, "AI Enthusiast", profile.JobTitle)
	assert.NotEmpty(t, profile.Interests)
	assert.NotEmpty(t, profile.Tags)
}
