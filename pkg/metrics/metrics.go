package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Domain collectors. They are not registered on the default registry; the
// router registers them on its own registry next to the HTTP collectors.
var (
	SubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_submissions_total",
			Help: "Email submissions by source and outcome.",
		},
		[]string{"source", "outcome"},
	)

	GitHubRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "github_requests_total",
			Help: "GitHub API calls by resource and result.",
		},
		[]string{"resource", "result"},
	)

	GitHubRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "github_request_duration_seconds",
			Help:    "GitHub API call latency in seconds, retries included.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
		},
		[]string{"resource"},
	)

	GitHubCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "github_cache_total",
			Help: "GitHub response cache lookups by result (hit, miss, error).",
		},
		[]string{"result"},
	)

	CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 open, 2 half-open.",
		},
		[]string{"name"},
	)

	ActivityChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_checks_total",
			Help: "Repository activity checks by result (activity, idle, error).",
		},
		[]string{"result"},
	)

	NotificationsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_created_total",
			Help: "Repository notifications stored for subscribers.",
		},
	)

	EventsPublishedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Domain events handed to the message broker by routing key and result.",
		},
		[]string{"routing_key", "result"},
	)
)

func collectors() []prometheus.Collector {
	return []prometheus.Collector{
		SubmissionsTotal,
		GitHubRequestsTotal,
		GitHubRequestDuration,
		GitHubCacheTotal,
		CircuitBreakerState,
		ActivityChecksTotal,
		NotificationsCreatedTotal,
		EventsPublishedTotal,
	}
}

// Register adds the domain collectors to reg. Registering twice on the same
// registry is not an error.
func Register(reg prometheus.Registerer) error {
	for _, c := range collectors() {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}
