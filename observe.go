package itunes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	logpkg "github.com/kailas-cloud/itunes-search/internal/logger"
)

// searchMetrics holds prometheus metrics registered for outgoing searches.
type searchMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newSearchMetrics(reg prometheus.Registerer) (*searchMetrics, error) {
	m := &searchMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "itunes",
			Subsystem: "search",
			Name:      "requests_total",
			Help:      "Total search requests by media and HTTP status (\"error\" on transport failure).",
		}, []string{"media", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "itunes",
			Subsystem: "search",
			Name:      "request_duration_seconds",
			Help:      "Search request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"media"}),
	}
	if err := registerOrReuse(reg, &m.requests); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

// registerOrReuse registers a collector or reuses an existing one.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("itunes: metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("itunes: register metric: %w", err)
	}
	return nil
}

// observer provides logging and metrics for Send.
type observer struct {
	logger  *zap.Logger
	metrics *searchMetrics
}

// newObserver never fails: a registration error disables metrics and is
// logged, since building a search is not allowed to return an error.
func newObserver(logger *zap.Logger, reg prometheus.Registerer) *observer {
	o := &observer{logger: logger}
	if reg != nil {
		m, err := newSearchMetrics(reg)
		if err != nil {
			if logger != nil {
				logger.Warn("search metrics disabled", zap.Error(err))
			}
		} else {
			o.metrics = m
		}
	}
	return o
}

func (o *observer) loggerFor(ctx context.Context) *zap.Logger {
	if o.logger != nil {
		return o.logger
	}
	return logpkg.FromContext(ctx)
}

func (o *observer) observe(
	ctx context.Context, op string, media Media, start time.Time,
	resp *http.Response, err error,
) {
	if o == nil {
		return
	}
	dur := time.Since(start)

	status := "error"
	if err == nil && resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}

	if o.metrics != nil {
		o.metrics.requests.WithLabelValues(string(media), status).Inc()
		o.metrics.duration.WithLabelValues(string(media)).Observe(dur.Seconds())
	}

	l := o.loggerFor(ctx)
	if err != nil {
		l.Warn("search request failed",
			zap.String("op", op),
			zap.String("media", string(media)),
			zap.Duration("duration", dur),
			zap.Error(err),
		)
		return
	}
	l.Debug("search request completed",
		zap.String("op", op),
		zap.String("media", string(media)),
		zap.String("status", status),
		zap.Duration("duration", dur),
	)
}
