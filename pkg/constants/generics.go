package constants

import "time"

// RFC 3339 date-time format string.
// Use this format for all date-time serialization and communication with external systems.
const RFC3339DateTimeFormat = "2006-01-02T15:04:05Z07:00"

// Default rate limiting configuration
const (
	// DefaultRateLimitRequests is the default number of requests allowed per time window
	DefaultRateLimitRequests = 100
	// DefaultRateLimitWindow is the default time window for rate limiting
	DefaultRateLimitWindowMinutes = 1
	// SubmissionRequestsPerMinute bounds form and API email intake per client.
	SubmissionRequestsPerMinute = 20
	// MonitoringRequestsPerMinute is stricter than the default.
	MonitoringRequestsPerMinute = 10
	// GitHubRequestsPerMinute protects the upstream API quota.
	GitHubRequestsPerMinute = 60
)

// DefaultRateLimitWindow returns the default rate limit window duration
func DefaultRateLimitWindow() time.Duration {
	return time.Duration(DefaultRateLimitWindowMinutes) * time.Minute
}

const MaxEmailLength = 255

// GitHub listing bounds.
const (
	DefaultActivityLimit = 30
	MinActivityLimit     = 1
	MaxActivityLimit     = 100
	// CheckActivityLimit is how many recent events the scheduler inspects per repository.
	CheckActivityLimit = 10
)

// Notification paging bounds.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

const ServiceName = "email-collector"
