package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, "https://itunes.apple.com/search", cfg.Search.BaseURL)
	assert.Equal(t, "en_us", cfg.Search.Lang)
	assert.Equal(t, "us", cfg.Search.Country)
	assert.Equal(t, 10, cfg.Search.Limit)
	assert.Equal(t, 30, cfg.HTTP.TimeoutSec)
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		Search: SearchConfig{BaseURL: "http://proxy.local/search", Lang: "ja_jp", Country: "jp", Limit: 50},
		HTTP:   HTTPConfig{TimeoutSec: 5},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, "http://proxy.local/search", cfg.Search.BaseURL)
	assert.Equal(t, "ja_jp", cfg.Search.Lang)
	assert.Equal(t, "jp", cfg.Search.Country)
	assert.Equal(t, 50, cfg.Search.Limit)
	assert.Equal(t, 5, cfg.HTTP.TimeoutSec)
}

func TestApplyDefaults_LanguageOnlyKeepsUSCountry(t *testing.T) {
	cfg := Config{Search: SearchConfig{Lang: "ja_jp"}}
	cfg.ApplyDefaults()

	assert.Equal(t, "us", cfg.Search.Country)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg:  Config{Search: SearchConfig{BaseURL: "https://itunes.apple.com/search"}},
		},
		{
			name:    "bad scheme",
			cfg:     Config{Search: SearchConfig{BaseURL: "ftp://itunes.apple.com/search"}},
			wantErr: "must be an http(s) URL",
		},
		{
			name:    "query in base url",
			cfg:     Config{Search: SearchConfig{BaseURL: "https://itunes.apple.com/search?x=1"}},
			wantErr: "must not contain a query",
		},
		{
			name: "bad log level",
			cfg: Config{
				Search:  SearchConfig{BaseURL: "https://itunes.apple.com/search"},
				Logging: LoggingConfig{Level: "verbose"},
			},
			wantErr: `logging.level must be one of debug, info, warn, error, got "verbose"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_File(t *testing.T) {
	t.Setenv("ITUNES_COUNTRY", "gb")
	path := writeConfig(t, `
search:
  lang: en_gb
  country: ${ITUNES_COUNTRY}
  limit: ${ITUNES_LIMIT:-25}
http:
  user_agent: test-agent
logging:
  level: debug
`)

	cfg, err := Load(path, "local")
	require.NoError(t, err)

	assert.Equal(t, "en_gb", cfg.Search.Lang)
	assert.Equal(t, "gb", cfg.Search.Country)
	assert.Equal(t, 25, cfg.Search.Limit)
	assert.Equal(t, "test-agent", cfg.HTTP.UserAgent)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "https://itunes.apple.com/search", cfg.Search.BaseURL)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "local")
	require.Error(t, err)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("", "local")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Search.Limit)
	assert.Equal(t, "us", cfg.Search.Country)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "search: [unclosed")
	_, err := Load(path, "local")
	require.Error(t, err)
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: loud\n")
	_, err := Load(path, "local")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	assert.Equal(t, "local", GetEnv())

	t.Setenv("ENV", "prod")
	assert.Equal(t, "prod", GetEnv())
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("EXPAND_SET", "value")

	got := string(expandEnvVars([]byte("a=${EXPAND_SET} b=${EXPAND_UNSET:-fallback} c=${EXPAND_UNSET}")))
	assert.Equal(t, "a=value b=fallback c=", got)
}
