package domain

import (
	"fmt"

	"github.com/akeren/email-collector/config"
	"github.com/akeren/email-collector/domain/github"
	"github.com/akeren/email-collector/domain/landing"
	"github.com/akeren/email-collector/domain/monitoring"
	"github.com/akeren/email-collector/domain/notification"
	"github.com/akeren/email-collector/domain/scheduler"
	"github.com/akeren/email-collector/domain/submission"
	"github.com/akeren/email-collector/domain/subscription"
	"github.com/akeren/email-collector/domain/tracking"
	"github.com/akeren/email-collector/pkg/factory"
)

// CoreDomain holds the background workers that outlive a single request.
type CoreDomain struct {
	Checker *scheduler.Checker
}

func SetupCoreDomain(appConfig *config.ApplicationConfig) (*CoreDomain, error) {
	logger := appConfig.Logger
	settings := appConfig.Settings
	rs := appConfig.RouterService

	limiters := factory.NewRateLimiterFactory(appConfig.Cache, logger)

	client, err := github.NewClient(github.ClientConfig{
		Token:      settings.GitHub.Token,
		BaseURL:    settings.GitHub.APIURL,
		HTTPClient: config.NewHTTPClient(settings.GitHub.Timeout),
		Logger:     logger.WithComponent("github-client"),
	})
	if err != nil {
		return nil, fmt.Errorf("create GitHub client: %w", err)
	}

	var cache github.Cache
	if appConfig.Cache != nil {
		cache = appConfig.Cache
	}

	githubFactory := github.NewGitHubServiceFactory(logger, client, cache, settings.GitHub.CacheTTL, limiters)
	githubService := githubFactory.CreateService()

	submissionFactory := submission.NewSubmissionServiceFactory(appConfig.DB, logger, appConfig.Events, limiters, settings.Admin.TokenSecret)
	submissionService := submissionFactory.CreateService()

	tracker := tracking.NewTrackingServiceFactory(appConfig.DB, logger, githubService).CreateService()

	subscriptionFactory := subscription.NewSubscriptionServiceFactory(appConfig.DB, logger, tracker)
	subscriptions := subscriptionFactory.CreateService()

	notificationFactory := notification.NewNotificationServiceFactory(appConfig.DB, logger, subscriptions, appConfig.Events)
	notifications := notificationFactory.CreateService()

	if !settings.Admin.Enabled() {
		logger.Warn("ADMIN_TOKEN_SECRET is not set; email listing routes are unauthenticated")
	}

	rs.MountController(monitoring.NewMonitoringControllerFactory(logger, monitoring.Dependencies{
		DB:      appConfig.DB,
		Cache:   appConfig.Cache,
		Broker:  appConfig.Events,
		Breaker: client,
	}, limiters).CreateController())
	rs.MountController(landing.NewLandingController(submissionService, limiters, settings.Admin.TokenSecret))
	rs.MountController(submissionFactory.CreateController())
	rs.MountController(githubFactory.CreateController())
	rs.MountController(subscriptionFactory.CreateController())
	rs.MountController(notificationFactory.CreateController())

	checker := scheduler.NewChecker(logger.WithComponent("scheduler"), subscriptions, tracker, notifications, scheduler.Config{
		Interval:      settings.Scheduler.Interval(),
		ActivityLimit: settings.Scheduler.ActivityLimit,
	})

	return &CoreDomain{Checker: checker}, nil
}
