package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	itunes "github.com/kailas-cloud/itunes-search"
)

// Config holds the itunes-search CLI configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	HTTP    HTTPConfig    `yaml:"http"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig holds the defaults passed to itunes.NewSearch.
type SearchConfig struct {
	BaseURL string `yaml:"base_url"`
	Lang    string `yaml:"lang"`
	Country string `yaml:"country"`
	Limit   int    `yaml:"limit"`
}

// HTTPConfig holds outgoing HTTP client settings.
type HTTPConfig struct {
	TimeoutSec int    `yaml:"timeout_sec"`
	UserAgent  string `yaml:"user_agent"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// Load reads configuration. An explicit path must exist; without one the
// file config/<env>.yaml is used when present, otherwise defaults apply.
func Load(path, env string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join("config", env+".yaml")
	}

	var cfg Config
	data, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		// Substitute env variables of the form ${VAR}
		data = expandEnvVars(data)
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// no file: defaults only
	default:
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Search.BaseURL == "" {
		c.Search.BaseURL = itunes.DefaultBaseURL
	}
	if c.Search.Lang == "" {
		c.Search.Lang = itunes.DefaultLanguage
	}
	if c.Search.Country == "" {
		c.Search.Country = itunes.DefaultCountry
	}
	if c.Search.Limit == 0 {
		c.Search.Limit = itunes.DefaultLimit
	}
	if c.HTTP.TimeoutSec <= 0 {
		c.HTTP.TimeoutSec = 30
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Search.BaseURL)
	if err != nil {
		return fmt.Errorf("search.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("search.base_url must be an http(s) URL, got %q", c.Search.BaseURL)
	}
	if u.RawQuery != "" {
		return fmt.Errorf("search.base_url must not contain a query, got %q", c.Search.BaseURL)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf(
			"logging.level must be one of debug, info, warn, error, got %q",
			c.Logging.Level,
		)
	}
	return nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
