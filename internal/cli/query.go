package cli

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	itunes "github.com/kailas-cloud/itunes-search"
	"github.com/kailas-cloud/itunes-search/internal/version"
)

// queryFlags are the request flags shared by url and send.
type queryFlags struct {
	media     string
	entity    string
	attribute string
	lang      string
	country   string
	limit     int
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.media, "media", "m", string(itunes.MediaAll), "media category, see the vocab command")
	cmd.Flags().StringVarP(&f.entity, "entity", "e", "", "result entity, must be legal for the media")
	cmd.Flags().StringVarP(&f.attribute, "attribute", "a", "", "attribute the term is matched against")
	cmd.Flags().StringVar(&f.lang, "lang", "", "locale tag (default from config, en_us)")
	cmd.Flags().StringVar(&f.country, "country", "", "country code (default from config, us)")
	cmd.Flags().IntVarP(&f.limit, "limit", "l", 0, "maximum number of results (default from config, 10)")
}

// buildRequest turns a term and flags into a validated request.
func (a *app) buildRequest(cmd *cobra.Command, term string, f *queryFlags) (*itunes.Request[string, string], error) {
	media, err := itunes.ParseMedia(f.media)
	if err != nil {
		return nil, err //nolint:wrapcheck // already prefixed
	}

	opts := []itunes.Option{
		itunes.WithBaseURL(a.cfg.Search.BaseURL),
		itunes.WithLimit(a.cfg.Search.Limit),
		itunes.WithLanguage(a.cfg.Search.Lang),
		itunes.WithCountry(a.cfg.Search.Country),
		itunes.WithLogger(a.logger),
		itunes.WithHTTPClient(&http.Client{
			Timeout: time.Duration(a.cfg.HTTP.TimeoutSec) * time.Second,
		}),
	}
	if f.lang != "" {
		opts = append(opts, itunes.WithLanguage(f.lang))
	}
	if f.country != "" {
		opts = append(opts, itunes.WithCountry(f.country))
	}

	req, err := itunes.NewSearch(term, opts...).Select(media)
	if err != nil {
		return nil, err //nolint:wrapcheck // already prefixed
	}
	if cmd.Flags().Changed("limit") {
		req = req.Limit(f.limit)
	}
	if f.entity != "" {
		req = req.Entity(f.entity)
	}
	if f.attribute != "" {
		req = req.Attribute(f.attribute)
	}
	if err := req.Validate(); err != nil {
		return nil, err //nolint:wrapcheck // already prefixed
	}
	return req, nil
}

func (a *app) userAgent() string {
	if a.cfg.HTTP.UserAgent != "" {
		return a.cfg.HTTP.UserAgent
	}
	return "itunes-search/" + version.Version
}

// parseHeader splits "Key: value" (or "Key=value").
func parseHeader(s string) (string, string, error) {
	k, v, ok := strings.Cut(s, ":")
	if !ok {
		k, v, ok = strings.Cut(s, "=")
	}
	k = strings.TrimSpace(k)
	if !ok || k == "" {
		return "", "", fmt.Errorf("invalid header %q, want \"Key: value\"", s)
	}
	return k, strings.TrimSpace(v), nil
}
