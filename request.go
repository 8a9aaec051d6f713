package itunes

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Request is a search bound to one media category. E and A are the entity
// and attribute types legal for that category.
//
// A Request is immutable: Entity, Attribute and Limit return a new Request
// and leave the receiver untouched, so earlier steps of a chain stay usable.
// Requests come from a Search selector; a zero Request uses the default
// endpoint and http.DefaultClient.
type Request[E, A Tag] struct {
	params Parameters[E, A]
	tr     *transport
}

// RequestEditorFn modifies an outgoing HTTP request before Send performs it.
type RequestEditorFn func(ctx context.Context, req *http.Request) error

// WithHeader sets a header on the outgoing request.
func WithHeader(key, value string) RequestEditorFn {
	return func(_ context.Context, req *http.Request) error {
		req.Header.Set(key, value)
		return nil
	}
}

// Parameters returns a copy of the request parameters.
func (r *Request[E, A]) Parameters() Parameters[E, A] {
	return r.params
}

// Media returns the bound media category.
func (r *Request[E, A]) Media() Media {
	return r.params.Media
}

// Query returns the encoded query string.
func (r *Request[E, A]) Query() string {
	return r.params.Encode()
}

// URL returns the full search URL.
func (r *Request[E, A]) URL() string {
	return r.transport().baseURL + "?" + r.Query()
}

// Entity returns a new Request with the entity set.
func (r *Request[E, A]) Entity(v E) *Request[E, A] {
	p := r.params
	p.Entity = v
	return r.with(p)
}

// Attribute returns a new Request with the attribute set.
func (r *Request[E, A]) Attribute(v A) *Request[E, A] {
	p := r.params
	p.Attribute = v
	return r.with(p)
}

// Limit returns a new Request with the result limit set.
func (r *Request[E, A]) Limit(n int) *Request[E, A] {
	p := r.params
	p.Limit = n
	return r.with(p)
}

// Validate checks entity and attribute against the vocabulary table.
// Only needed for values that bypassed the type system (Select, conversions).
func (r *Request[E, A]) Validate() error {
	return r.params.Validate()
}

// Send performs a single GET to URL. Entity and attribute are checked
// against the vocabulary first; an illegal pair returns a *VocabularyError
// without any I/O. Editors run in order; the method is reset to GET
// afterwards. The response is returned as is: the caller owns the body and
// interprets the status. Transport errors are returned unchanged.
func (r *Request[E, A]) Send(ctx context.Context, editors ...RequestEditorFn) (resp *http.Response, err error) {
	if err := r.params.Validate(); err != nil {
		return nil, err
	}

	tr := r.transport()
	start := time.Now()
	defer func() { tr.obs.observe(ctx, "send", r.params.Media, start, resp, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("itunes: create request: %w", err)
	}
	for _, edit := range editors {
		if err = edit(ctx, req); err != nil {
			return nil, fmt.Errorf("itunes: edit request: %w", err)
		}
	}
	req.Method = http.MethodGet

	return tr.client.Do(req) //nolint:wrapcheck // transport errors are part of the contract
}

// transport returns the shared transport, or the defaults for a zero Request.
func (r *Request[E, A]) transport() *transport {
	if r.tr == nil {
		return defaultTransport
	}
	return r.tr
}

func (r *Request[E, A]) with(p Parameters[E, A]) *Request[E, A] {
	return &Request[E, A]{params: p, tr: r.tr}
}
