package itunes

import (
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
)

// paramOrder is the order keys are written to the query string.
// Absent keys are skipped.
var paramOrder = []string{"entity", "attribute", "media", "limit", "term", "lang", "country"}

// Parameters is the serializable state of a search request.
// Entity and Attribute are optional: the zero value means "not set".
type Parameters[E, A Tag] struct {
	Entity    E      `url:"entity,omitempty"`
	Attribute A      `url:"attribute,omitempty"`
	Media     Media  `url:"media"`
	Limit     int    `url:"limit"`
	Term      string `url:"term"`
	Lang      string `url:"lang"`
	Country   string `url:"country"`
}

// Values returns the parameters as url.Values. Note that url.Values.Encode
// sorts keys; use Encode for the wire order.
func (p Parameters[E, A]) Values() url.Values {
	// query.Values only fails for non-struct input.
	v, _ := query.Values(p)
	return v
}

// Encode renders the query string in wire order. Keys and values are
// escaped with url.QueryEscape, except that a space becomes %20.
func (p Parameters[E, A]) Encode() string {
	vals := p.Values()

	var sb strings.Builder
	for _, key := range paramOrder {
		vs, ok := vals[key]
		if !ok {
			continue
		}
		for _, v := range vs {
			if sb.Len() > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(escape(key))
			sb.WriteByte('=')
			sb.WriteString(escape(v))
		}
	}
	return sb.String()
}

// Validate checks Entity and Attribute against the vocabulary of Media.
func (p Parameters[E, A]) Validate() error {
	return checkVocabulary(p.Media, string(p.Entity), string(p.Attribute))
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
