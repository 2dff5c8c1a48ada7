package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/student-roster/internal/domain/student"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ROSTER_FILE", "")
	t.Setenv("ROSTER_SELECT_THRESHOLD", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "", cfg.Roster.File)
	assert.Equal(t, student.DefaultThreshold, cfg.Roster.SelectThreshold)
	assert.Equal(t, "warn", cfg.Observability.LogLevel)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("ROSTER_FILE", "students.xml")
	t.Setenv("ROSTER_SELECT_THRESHOLD", " 3.5 ")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "students.xml", cfg.Roster.File)
	assert.Equal(t, 3.5, cfg.Roster.SelectThreshold)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
}

func TestLoad_UnparsableThresholdIsRejected(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ROSTER_SELECT_THRESHOLD", "four")

	cfg, err := Load()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `ROSTER_SELECT_THRESHOLD must be a number, got "four"`)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "unknown environment",
			env:  map[string]string{"APP_ENV": "staging"},
			want: "APP_ENV",
		},
		{
			name: "malformed threshold",
			env:  map[string]string{"ROSTER_SELECT_THRESHOLD": "abc"},
			want: "ROSTER_SELECT_THRESHOLD",
		},
		{
			name: "NaN threshold",
			env:  map[string]string{"ROSTER_SELECT_THRESHOLD": "NaN"},
			want: "ROSTER_SELECT_THRESHOLD",
		},
		{
			name: "infinite threshold",
			env:  map[string]string{"ROSTER_SELECT_THRESHOLD": "+Inf"},
			want: "ROSTER_SELECT_THRESHOLD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", "")
			t.Setenv("ROSTER_SELECT_THRESHOLD", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
