package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/internal/models"
	"github.com/akeren/email-collector/pkg/constants"
	"github.com/akeren/email-collector/pkg/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	resultActivity = "activity"
	resultIdle     = "idle"
	resultError    = "error"
)

type SubscriptionSource interface {
	NotificationEnabledSubscriptions(ctx context.Context) ([]*models.RepoSubscription, error)
}

type ActivityChecker interface {
	CheckForNewActivity(ctx context.Context, repository *models.TrackedRepository, limit int) (bool, error)
}

type Notifier interface {
	CreateNotification(ctx context.Context, sub *models.RepoSubscription, message string) (*models.RepoNotification, error)
}

type Config struct {
	Interval      time.Duration
	ActivityLimit int
}

// Report summarises one pass over the tracked repositories.
type Report struct {
	Repositories  int
	WithActivity  int
	Notifications int
	Errors        int
}

// Checker periodically looks for new activity on repositories that have at
// least one subscriber with notifications enabled.
type Checker struct {
	logger        *log.Logger
	subscriptions SubscriptionSource
	tracker       ActivityChecker
	notifier      Notifier
	interval      time.Duration
	limit         int
}

func NewChecker(logger *log.Logger, subscriptions SubscriptionSource, tracker ActivityChecker, notifier Notifier, cfg Config) *Checker {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Minute
	}
	if cfg.ActivityLimit <= 0 {
		cfg.ActivityLimit = constants.CheckActivityLimit
	}

	return &Checker{
		logger:        logger,
		subscriptions: subscriptions,
		tracker:       tracker,
		notifier:      notifier,
		interval:      cfg.Interval,
		limit:         cfg.ActivityLimit,
	}
}

// Run checks once immediately and then on every tick until ctx is cancelled.
func (c *Checker) Run(ctx context.Context) {
	c.logger.Info("Starting repository activity checker", "interval", c.interval.String(), "limit", c.limit)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.CheckOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Repository activity checker stopped")
			return
		case <-ticker.C:
			c.CheckOnce(ctx)
		}
	}
}

func (c *Checker) CheckOnce(ctx context.Context) Report {
	ctx, span := otel.Tracer("email-collector/scheduler").Start(ctx, "scheduler.check_repositories", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	logger := c.logger.WithCorrelationID(ctx)
	var report Report

	subs, err := c.subscriptions.NotificationEnabledSubscriptions(ctx)
	if err != nil {
		logger.Error("Failed to load subscriptions", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "load subscriptions")
		report.Errors++
		return report
	}
	if len(subs) == 0 {
		logger.Info("No active subscriptions, skipping repository check")
		return report
	}

	repositories, byRepository := groupByRepository(subs)
	report.Repositories = len(repositories)
	logger.Info("Checking repositories for new activity", "subscriptions", len(subs), "repositories", len(repositories))

	for _, repo := range repositories {
		if ctx.Err() != nil {
			break
		}

		found, err := c.tracker.CheckForNewActivity(ctx, repo, c.limit)
		if err != nil {
			metrics.ActivityChecksTotal.WithLabelValues(resultError).Inc()
			logger.Error("Failed to check repository", "repository", repo.FullName(), "error", err)
			report.Errors++
			continue
		}
		if !found {
			metrics.ActivityChecksTotal.WithLabelValues(resultIdle).Inc()
			logger.Debug("No new activity", "repository", repo.FullName())
			continue
		}

		metrics.ActivityChecksTotal.WithLabelValues(resultActivity).Inc()
		report.WithActivity++

		message := fmt.Sprintf("New activity detected in %s", repo.FullName())
		for _, sub := range byRepository[repo.ID] {
			sub.Repository = *repo
			if !sub.NeedsNotification() {
				continue
			}
			if _, err := c.notifier.CreateNotification(ctx, sub, message); err != nil {
				logger.Error("Failed to create notification", "subscription_id", sub.ID, "error", err)
				report.Errors++
				continue
			}
			report.Notifications++
		}
	}

	span.SetAttributes(
		attribute.Int("scheduler.repositories", report.Repositories),
		attribute.Int("scheduler.with_activity", report.WithActivity),
		attribute.Int("scheduler.notifications", report.Notifications),
		attribute.Int("scheduler.errors", report.Errors),
	)
	if report.Errors > 0 {
		span.SetStatus(codes.Error, "some repositories failed")
	}

	logger.Info("Completed repository activity check",
		"repositories", report.Repositories,
		"with_activity", report.WithActivity,
		"notifications", report.Notifications,
		"errors", report.Errors,
	)
	return report
}

// groupByRepository returns each distinct repository once, in first-seen
// order, along with the subscriptions that point at it.
func groupByRepository(subs []*models.RepoSubscription) ([]*models.TrackedRepository, map[uint][]*models.RepoSubscription) {
	var repositories []*models.TrackedRepository
	byRepository := make(map[uint][]*models.RepoSubscription)

	for _, sub := range subs {
		if _, seen := byRepository[sub.RepositoryID]; !seen {
			repo := sub.Repository
			repositories = append(repositories, &repo)
		}
		byRepository[sub.RepositoryID] = append(byRepository[sub.RepositoryID], sub)
	}

	return repositories, byRepository
}
