package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/pkg/circuitbreaker"
	apperrors "github.com/akeren/email-collector/pkg/errors"
	"github.com/akeren/email-collector/pkg/metrics"
	"github.com/akeren/email-collector/pkg/retry"
	gogithub "github.com/google/go-github/v66/github"
)

//go:generate mockgen -destination=mock_client.go -package=github . Client

const breakerName = "github"

// Client is the subset of the GitHub REST API the service relies on. Errors
// are AppErrors: NotFound for unknown repositories and ServiceUnavailable for
// everything GitHub could not answer.
type Client interface {
	ListCommits(ctx context.Context, owner, repo string, limit int) ([]Activity, error)
	ListPullRequests(ctx context.Context, owner, repo string, limit int) ([]Activity, error)
	ListIssues(ctx context.Context, owner, repo string, limit int) ([]Activity, error)
	ListReleases(ctx context.Context, owner, repo string, limit int) ([]Activity, error)
	// RepositoryExists reports false with a nil error when GitHub answers 404.
	RepositoryExists(ctx context.Context, owner, repo string) (bool, error)
	BreakerState() circuitbreaker.CircuitState
}

type ClientConfig struct {
	Token      string
	BaseURL    string
	HTTPClient *http.Client
	Breaker    *circuitbreaker.Config
	Retry      *retry.Config
	Logger     *log.Logger
}

type restClient struct {
	gh      *gogithub.Client
	breaker circuitbreaker.CircuitBreaker
	retry   retry.RetryPolicy
	logger  *log.Logger
}

func NewClient(cfg ClientConfig) (Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewLoggerWithJSONOutput()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	gh := gogithub.NewClient(httpClient)
	if cfg.Token != "" {
		gh = gh.WithAuthToken(cfg.Token)
	}

	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		u, err := url.Parse(strings.TrimRight(base, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", base, err)
		}
		gh.BaseURL = u
	}

	// Copied so the caller's config is left untouched.
	breakerCfg := &circuitbreaker.Config{
		FailureThreshold: 5,
		RecoveryTimeout:  30 * time.Second,
		SuccessThreshold: 2,
	}
	if cfg.Breaker != nil {
		*breakerCfg = *cfg.Breaker
	}
	breakerCfg.Name = breakerName
	breakerCfg.IsFailure = countsAgainstBreaker
	breakerCfg.OnStateChange = func(name string, from, to circuitbreaker.CircuitState) {
		metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		logger.Warn("Circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
	}
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(float64(circuitbreaker.Closed))

	return &restClient{
		gh:      gh,
		breaker: circuitbreaker.NewCircuitBreaker(breakerCfg),
		retry:   retry.NewExponentialBackoff(cfg.Retry),
		logger:  logger,
	}, nil
}

func (c *restClient) BreakerState() circuitbreaker.CircuitState {
	return c.breaker.State()
}

func (c *restClient) ListCommits(ctx context.Context, owner, repo string, limit int) ([]Activity, error) {
	var commits []*gogithub.RepositoryCommit

	err := c.do(ctx, "commits", owner, repo, func(ctx context.Context) error {
		var err error
		var resp *gogithub.Response
		commits, resp, err = c.gh.Repositories.ListCommits(ctx, owner, repo, &gogithub.CommitsListOptions{
			ListOptions: gogithub.ListOptions{PerPage: limit},
		})
		// An empty repository answers 409 Conflict.
		if err != nil && resp != nil && resp.StatusCode == http.StatusConflict {
			commits = nil
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	activities := make([]Activity, 0, len(commits))
	for _, commit := range commits {
		actor := commit.GetAuthor().GetLogin()
		if actor == "" {
			actor = commit.GetCommit().GetAuthor().GetName()
		}

		activities = append(activities, Activity{
			Type:           ActivityCommit,
			RepositoryName: fullName(owner, repo),
			Actor:          actor,
			Title:          firstLine(commit.GetCommit().GetMessage()),
			URL:            commit.GetHTMLURL(),
			CreatedAt:      commit.GetCommit().GetAuthor().GetDate().Time,
		})
	}

	return activities, nil
}

func (c *restClient) ListPullRequests(ctx context.Context, owner, repo string, limit int) ([]Activity, error) {
	var pulls []*gogithub.PullRequest

	err := c.do(ctx, "pull requests", owner, repo, func(ctx context.Context) error {
		var err error
		pulls, _, err = c.gh.PullRequests.List(ctx, owner, repo, &gogithub.PullRequestListOptions{
			State:       "all",
			ListOptions: gogithub.ListOptions{PerPage: limit},
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	activities := make([]Activity, 0, len(pulls))
	for _, pr := range pulls {
		activities = append(activities, Activity{
			Type:           ActivityPullRequest,
			RepositoryName: fullName(owner, repo),
			Actor:          pr.GetUser().GetLogin(),
			Title:          pr.GetTitle(),
			URL:            pr.GetHTMLURL(),
			CreatedAt:      pr.GetCreatedAt().Time,
		})
	}

	return activities, nil
}

// ListIssues skips pull requests, which the issues endpoint also returns.
func (c *restClient) ListIssues(ctx context.Context, owner, repo string, limit int) ([]Activity, error) {
	var issues []*gogithub.Issue

	err := c.do(ctx, "issues", owner, repo, func(ctx context.Context) error {
		var err error
		issues, _, err = c.gh.Issues.ListByRepo(ctx, owner, repo, &gogithub.IssueListByRepoOptions{
			State:       "all",
			ListOptions: gogithub.ListOptions{PerPage: limit},
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	activities := make([]Activity, 0, len(issues))
	for _, issue := range issues {
		if issue.IsPullRequest() {
			continue
		}

		activities = append(activities, Activity{
			Type:           ActivityIssue,
			RepositoryName: fullName(owner, repo),
			Actor:          issue.GetUser().GetLogin(),
			Title:          issue.GetTitle(),
			URL:            issue.GetHTMLURL(),
			CreatedAt:      issue.GetCreatedAt().Time,
		})
	}

	return activities, nil
}

func (c *restClient) ListReleases(ctx context.Context, owner, repo string, limit int) ([]Activity, error) {
	var releases []*gogithub.RepositoryRelease

	err := c.do(ctx, "releases", owner, repo, func(ctx context.Context) error {
		var err error
		releases, _, err = c.gh.Repositories.ListReleases(ctx, owner, repo, &gogithub.ListOptions{PerPage: limit})
		return err
	})
	if err != nil {
		return nil, err
	}

	activities := make([]Activity, 0, len(releases))
	for _, release := range releases {
		title := release.GetName()
		if title == "" {
			title = release.GetTagName()
		}

		created := release.GetPublishedAt().Time
		if created.IsZero() {
			created = release.GetCreatedAt().Time
		}

		activities = append(activities, Activity{
			Type:           ActivityRelease,
			RepositoryName: fullName(owner, repo),
			Actor:          release.GetAuthor().GetLogin(),
			Title:          title,
			URL:            release.GetHTMLURL(),
			CreatedAt:      created,
		})
	}

	return activities, nil
}

func (c *restClient) RepositoryExists(ctx context.Context, owner, repo string) (bool, error) {
	err := c.do(ctx, "repository", owner, repo, func(ctx context.Context) error {
		_, _, err := c.gh.Repositories.Get(ctx, owner, repo)
		return err
	})
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// do runs fn inside the circuit breaker with retries and translates the
// outcome into an AppError.
func (c *restClient) do(ctx context.Context, resource, owner, repo string, fn func(context.Context) error) error {
	start := time.Now()

	err := c.breaker.Do(ctx, func(ctx context.Context) error {
		return c.retry.Do(ctx, func(ctx context.Context) error {
			return wrapUpstream(fn(ctx))
		})
	})

	metrics.GitHubRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())

	if err != nil {
		appErr := translateError(err, resource, owner, repo)
		metrics.GitHubRequestsTotal.WithLabelValues(resource, resultLabel(appErr)).Inc()

		logger := log.GetLoggerInstanceFromContext(ctx, c.logger)
		logger.Warn("GitHub request failed", "resource", resource, "repository", fullName(owner, repo), "error", err)
		return appErr
	}

	metrics.GitHubRequestsTotal.WithLabelValues(resource, "ok").Inc()
	return nil
}

// upstreamError keeps the HTTP status of a failed GitHub call so retries and
// the breaker can tell client errors from outages. Status 0 means no response.
type upstreamError struct {
	status int
	err    error
}

func (e *upstreamError) Error() string {
	return e.err.Error()
}

func (e *upstreamError) Unwrap() error {
	return e.err
}

func (e *upstreamError) Retryable() bool {
	if errors.Is(e.err, context.Canceled) || errors.Is(e.err, context.DeadlineExceeded) {
		return false
	}
	return e.status == 0 || e.status >= http.StatusInternalServerError
}

func wrapUpstream(err error) error {
	if err == nil {
		return nil
	}

	var rateErr *gogithub.RateLimitError
	if errors.As(err, &rateErr) {
		return &upstreamError{status: statusOf(rateErr.Response, http.StatusForbidden), err: err}
	}

	var abuseErr *gogithub.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &upstreamError{status: statusOf(abuseErr.Response, http.StatusTooManyRequests), err: err}
	}

	var respErr *gogithub.ErrorResponse
	if errors.As(err, &respErr) {
		return &upstreamError{status: statusOf(respErr.Response, 0), err: err}
	}

	return &upstreamError{err: err}
}

func statusOf(resp *http.Response, fallback int) int {
	if resp == nil {
		return fallback
	}
	return resp.StatusCode
}

func countsAgainstBreaker(err error) bool {
	var upstream *upstreamError
	if errors.As(err, &upstream) {
		return upstream.Retryable()
	}
	return !errors.Is(err, context.Canceled)
}

func translateError(err error, resource, owner, repo string) error {
	var upstream *upstreamError
	if errors.As(err, &upstream) && upstream.status == http.StatusNotFound {
		return apperrors.NewNotFoundError(fmt.Sprintf("Repository %s not found", fullName(owner, repo)), err)
	}

	return apperrors.NewServiceUnavailableError("Failed to fetch GitHub "+resource, err)
}

func resultLabel(err error) string {
	switch apperrors.GetErrorType(err) {
	case apperrors.ErrorTypeNotFound:
		return "not_found"
	default:
		return "error"
	}
}

func fullName(owner, repo string) string {
	return owner + "/" + repo
}

func firstLine(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return strings.TrimSpace(line)
}
