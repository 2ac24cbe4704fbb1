package github

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/pkg/constants"
	apperrors "github.com/akeren/email-collector/pkg/errors"
	"github.com/akeren/email-collector/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -destination=mock_service.go -package=github . Service

type Service interface {
	GetCommits(ctx context.Context, owner, repo string, limit int) ([]Activity, error)
	GetPullRequests(ctx context.Context, owner, repo string, limit int) ([]Activity, error)
	// GetIssues excludes pull requests.
	GetIssues(ctx context.Context, owner, repo string, limit int) ([]Activity, error)
	GetReleases(ctx context.Context, owner, repo string, limit int) ([]Activity, error)
	// GetRepositoryActivities merges every kind of activity, newest first, capped at limit.
	GetRepositoryActivities(ctx context.Context, owner, repo string, limit int) ([]Activity, error)
	ValidateRepository(ctx context.Context, owner, repo string) (bool, error)
}

// Cache stores serialised responses. Get returns ("", nil) on a miss.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

type service struct {
	logger   *log.Logger
	client   Client
	cache    Cache
	cacheTTL time.Duration
}

// NewService caches responses for ttl when cache is non-nil.
func NewService(logger *log.Logger, client Client, cache Cache, ttl time.Duration) Service {
	return &service{
		logger:   logger,
		client:   client,
		cache:    cache,
		cacheTTL: ttl,
	}
}

func (s *service) GetCommits(ctx context.Context, owner, repo string, limit int) ([]Activity, error) {
	return s.list(ctx, "commits", owner, repo, limit, s.client.ListCommits)
}

func (s *service) GetPullRequests(ctx context.Context, owner, repo string, limit int) ([]Activity, error) {
	return s.list(ctx, "pull-requests", owner, repo, limit, s.client.ListPullRequests)
}

func (s *service) GetIssues(ctx context.Context, owner, repo string, limit int) ([]Activity, error) {
	return s.list(ctx, "issues", owner, repo, limit, s.client.ListIssues)
}

func (s *service) GetReleases(ctx context.Context, owner, repo string, limit int) ([]Activity, error) {
	return s.list(ctx, "releases", owner, repo, limit, s.client.ListReleases)
}

func (s *service) GetRepositoryActivities(ctx context.Context, owner, repo string, limit int) ([]Activity, error) {
	return s.list(ctx, "activities", owner, repo, limit, s.fetchAll)
}

type listFunc func(ctx context.Context, owner, repo string, limit int) ([]Activity, error)

func (s *service) fetchAll(ctx context.Context, owner, repo string, limit int) ([]Activity, error) {
	fetchers := []listFunc{
		s.client.ListCommits,
		s.client.ListPullRequests,
		s.client.ListIssues,
		s.client.ListReleases,
	}
	results := make([][]Activity, len(fetchers))

	g, gctx := errgroup.WithContext(ctx)
	for i, fetch := range fetchers {
		g.Go(func() error {
			activities, err := fetch(gctx, owner, repo, limit)
			if err != nil {
				return err
			}
			results[i] = activities
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []Activity
	for _, r := range results {
		merged = append(merged, r...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

func (s *service) list(ctx context.Context, resource, owner, repo string, limit int, fetch listFunc) ([]Activity, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	owner, repo, err := validateParams(owner, repo, limit)
	if err != nil {
		return nil, err
	}

	key := cacheKey(resource, owner, repo, limit)
	if cached, ok := s.fromCache(ctx, logger, key); ok {
		return cached, nil
	}

	activities, err := fetch(ctx, owner, repo, limit)
	if err != nil {
		logger.Error("Failed to fetch GitHub data", "resource", resource, "repository", fullName(owner, repo), "error", err)
		return nil, err
	}
	if activities == nil {
		activities = []Activity{}
	}

	s.toCache(ctx, logger, key, activities)
	return activities, nil
}

func (s *service) ValidateRepository(ctx context.Context, owner, repo string) (bool, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	owner, repo, err := validateParams(owner, repo, constants.MinActivityLimit)
	if err != nil {
		return false, err
	}

	exists, err := s.client.RepositoryExists(ctx, owner, repo)
	if err != nil {
		logger.Error("Failed to validate repository", "repository", fullName(owner, repo), "error", err)
		return false, err
	}

	return exists, nil
}

func (s *service) fromCache(ctx context.Context, logger *log.Logger, key string) ([]Activity, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		metrics.GitHubCacheTotal.WithLabelValues("error").Inc()
		logger.Warn("GitHub cache read failed", "key", key, "error", err)
		return nil, false
	}
	if raw == "" {
		metrics.GitHubCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var activities []Activity
	if err := json.Unmarshal([]byte(raw), &activities); err != nil {
		metrics.GitHubCacheTotal.WithLabelValues("error").Inc()
		logger.Warn("Discarding unreadable GitHub cache entry", "key", key, "error", err)
		return nil, false
	}

	metrics.GitHubCacheTotal.WithLabelValues("hit").Inc()
	return activities, true
}

func (s *service) toCache(ctx context.Context, logger *log.Logger, key string, activities []Activity) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}

	payload, err := json.Marshal(activities)
	if err != nil {
		logger.Warn("Failed to encode GitHub cache entry", "key", key, "error", err)
		return
	}

	if err := s.cache.Set(ctx, key, string(payload), s.cacheTTL); err != nil {
		logger.Warn("GitHub cache write failed", "key", key, "error", err)
	}
}

func validateParams(owner, repo string, limit int) (string, string, error) {
	owner = strings.TrimSpace(owner)
	repo = strings.TrimSpace(repo)

	if owner == "" {
		return "", "", apperrors.NewInvalidRequestError("Repository owner cannot be empty", nil)
	}
	if repo == "" {
		return "", "", apperrors.NewInvalidRequestError("Repository name cannot be empty", nil)
	}
	if limit < constants.MinActivityLimit || limit > constants.MaxActivityLimit {
		return "", "", apperrors.NewInvalidRequestError(
			fmt.Sprintf("Limit must be between %d and %d", constants.MinActivityLimit, constants.MaxActivityLimit), nil)
	}

	return owner, repo, nil
}

func cacheKey(resource, owner, repo string, limit int) string {
	return fmt.Sprintf("github:%s:%s/%s:%d", resource, strings.ToLower(owner), strings.ToLower(repo), limit)
}
