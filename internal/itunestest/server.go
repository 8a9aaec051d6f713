// Package itunestest provides an in-process stand-in for the iTunes Search
// endpoint, for tests that exercise Request.Send end to end.
package itunestest

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kailas-cloud/itunes-search/internal/metrics"
)

// SearchPath is the route served by Server.
const SearchPath = "/search"

// EmptyResult is the default response body.
const EmptyResult = `{"resultCount":0,"results":[]}`

// Recorded is one request received by the server.
type Recorded struct {
	Method   string
	RawQuery string
	Header   http.Header
}

// Server records every search request and answers with a canned response.
// Only GET is routed; other methods get 405 from chi.
type Server struct {
	srv     *httptest.Server
	metrics *metrics.HTTP

	mu       sync.Mutex
	requests []Recorded
	status   int
	body     string
}

// NewServer starts a server that is closed when the test ends.
func NewServer(tb testing.TB) *Server {
	tb.Helper()

	m, err := metrics.NewHTTP(prometheus.NewRegistry(), "itunes_fake")
	if err != nil {
		tb.Fatalf("itunestest: metrics: %v", err)
	}

	s := &Server{
		metrics: m,
		status:  http.StatusOK,
		body:    EmptyResult,
	}

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get(SearchPath, s.handleSearch)

	s.srv = httptest.NewServer(r)
	tb.Cleanup(s.srv.Close)
	return s
}

// SearchURL is the value to pass to itunes.WithBaseURL.
func (s *Server) SearchURL() string {
	return s.srv.URL + SearchPath
}

// Client returns an HTTP client wired to the server.
func (s *Server) Client() *http.Client {
	return s.srv.Client()
}

// Close shuts the server down early, e.g. to provoke transport errors.
func (s *Server) Close() {
	s.srv.Close()
}

// Respond sets the status and body returned for subsequent requests.
func (s *Server) Respond(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.body = body
}

// Requests returns a copy of the requests received so far.
func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Recorded, len(s.requests))
	copy(out, s.requests)
	return out
}

// Served returns how many requests the search route answered with status,
// as counted by the metrics middleware.
func (s *Server) Served(method string, status int) float64 {
	return testutil.ToFloat64(s.metrics.Requests(method, SearchPath, status))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, Recorded{
		Method:   r.Method,
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
	})
	status, body := s.status, s.body
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
