package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_FlagsOnlyDefaults(t *testing.T) {
	cfg, err := Load("", Flags{Owner: "octo", Repo: "hello", Token: "tok"})
	require.NoError(t, err)

	assert.Equal(t, "octo", cfg.Owner)
	assert.Equal(t, "hello", cfg.Repo)
	assert.Equal(t, "tok", cfg.Token)
	assert.Equal(t, 60*24*time.Hour, cfg.MaxAge)
	assert.Equal(t, "updated", cfg.AgeBasis)
	assert.False(t, cfg.CheckSuites)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Zero(t, cfg.PR)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
owner: tari-project
repo: tari-dan
max_age: 336h
age_basis: created
check_suites: true
format: pretty
api_url: https://ghe.example.com/api/v3
log:
  level: debug
  file: /tmp/pr-summary.log
`)

	cfg, err := Load(path, Flags{})
	require.NoError(t, err)

	assert.Equal(t, "tari-project", cfg.Owner)
	assert.Equal(t, "tari-dan", cfg.Repo)
	assert.Equal(t, 14*24*time.Hour, cfg.MaxAge)
	assert.Equal(t, "created", cfg.AgeBasis)
	assert.True(t, cfg.CheckSuites)
	assert.Equal(t, "pretty", cfg.Format)
	assert.Equal(t, "https://ghe.example.com/api/v3", cfg.APIURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/pr-summary.log", cfg.Log.File)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
owner: from-file
repo: repo-file
max_age: 24h
format: pretty
`)

	cfg, err := Load(path, Flags{Owner: "from-flag", MaxAge: "48h", Format: "markdown", PR: 12})
	require.NoError(t, err)

	assert.Equal(t, "from-flag", cfg.Owner)
	assert.Equal(t, "repo-file", cfg.Repo)
	assert.Equal(t, 48*time.Hour, cfg.MaxAge)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, 12, cfg.PR)
}

func TestLoad_CheckSuitesFlag(t *testing.T) {
	on, off := true, false
	enabled := writeConfig(t, "owner: o\nrepo: r\ncheck_suites: true\n")
	disabled := writeConfig(t, "owner: o\nrepo: r\n")

	tests := []struct {
		name string
		path string
		flag *bool
		want bool
	}{
		{"file on, flag unset", enabled, nil, true},
		{"file on, flag off", enabled, &off, false},
		{"file off, flag on", disabled, &on, true},
		{"file off, flag unset", disabled, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.path, Flags{CheckSuites: tt.flag})
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.CheckSuites)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		flags   Flags
		wantErr string
	}{
		{"missing owner", Flags{Repo: "r"}, "owner required"},
		{"missing repo", Flags{Owner: "o"}, "repo required"},
		{"bad duration", Flags{Owner: "o", Repo: "r", MaxAge: "sixty days"}, "parse max_age"},
		{"negative age", Flags{Owner: "o", Repo: "r", MaxAge: "-1h"}, "max_age must be positive"},
		{"bad age basis", Flags{Owner: "o", Repo: "r", AgeBasis: "merged"}, "invalid age_basis"},
		{"bad format", Flags{Owner: "o", Repo: "r", Format: "html"}, "invalid format"},
		{"bad log level", Flags{Owner: "o", Repo: "r", LogLevel: "loud"}, "invalid log.level"},
		{"negative pr", Flags{Owner: "o", Repo: "r", PR: -3}, "invalid pr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load("", tt.flags)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_FileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Flags{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")

	path := writeConfig(t, "owner: [unterminated")
	_, err = Load(path, Flags{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
