package itunes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Defaults applied by NewSearch.
const (
	DefaultBaseURL  = "https://itunes.apple.com/search"
	DefaultLimit    = 10
	DefaultLanguage = "en_us"
	DefaultCountry  = "us"
)

// Option configures a Search.
type Option interface {
	apply(*searchConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*searchConfig)

func (f optionFunc) apply(c *searchConfig) { f(c) }

type searchConfig struct {
	limit   int
	lang    string
	country string

	baseURL    string
	httpClient *http.Client

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

func defaultSearchConfig() searchConfig {
	return searchConfig{
		limit:      DefaultLimit,
		lang:       DefaultLanguage,
		country:    DefaultCountry,
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
}

// WithLimit sets the maximum number of results. Zero means the default
// (10). Other values, negative ones included, are sent as is; use
// Request.Limit to send an explicit zero.
func WithLimit(n int) Option {
	return optionFunc(func(c *searchConfig) {
		c.limit = n
		if n == 0 {
			c.limit = DefaultLimit
		}
	})
}

// WithLanguage sets the locale tag (lang parameter). An empty tag means
// the default, en_us.
func WithLanguage(lang string) Option {
	return optionFunc(func(c *searchConfig) {
		c.lang = lang
		if lang == "" {
			c.lang = DefaultLanguage
		}
	})
}

// WithCountry sets the storefront country code. An empty code means the
// default, us.
func WithCountry(country string) Option {
	return optionFunc(func(c *searchConfig) {
		c.country = country
		if country == "" {
			c.country = DefaultCountry
		}
	})
}

// WithBaseURL overrides the search endpoint (proxies, tests).
func WithBaseURL(u string) Option {
	return optionFunc(func(c *searchConfig) {
		c.baseURL = u
	})
}

// WithHTTPClient sets the client used by Send. Timeouts and transport
// settings belong here. Default: http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *searchConfig) {
		if hc != nil {
			c.httpClient = hc
		}
	})
}

// WithLogger enables structured logging for Send.
// Without it the logger stored in the request context is used, if any.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *searchConfig) {
		c.logger = l
	})
}

// WithPrometheus registers request metrics (counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *searchConfig) {
		c.metricsReg = reg
	})
}
