package github

import (
	"fmt"
	"strconv"
	"time"

	"github.com/akeren/email-collector/config/router"
	"github.com/akeren/email-collector/pkg/constants"
	apperrors "github.com/akeren/email-collector/pkg/errors"
	"github.com/akeren/email-collector/pkg/factory"
)

func NewGitHubController(service Service, limiters factory.RateLimiterFactory) *router.RESTController {
	return router.NewRESTController(
		"GitHubController",
		"/api/github",
		func(rs *router.RouterService, c *router.RESTController) {
			c.RateLimitWith(rs, limiters.CreateRateLimiter("github", constants.GitHubRequestsPerMinute, time.Minute))

			rs.AddGetHandler(c, nil, "activities/:owner/:repo", activityHandler(service.GetRepositoryActivities, "Repository activities"))
			rs.AddGetHandler(c, nil, "commits/:owner/:repo", activityHandler(service.GetCommits, "Commits"))
			rs.AddGetHandler(c, nil, "pull-requests/:owner/:repo", activityHandler(service.GetPullRequests, "Pull requests"))
			rs.AddGetHandler(c, nil, "issues/:owner/:repo", activityHandler(service.GetIssues, "Issues"))
			rs.AddGetHandler(c, nil, "releases/:owner/:repo", activityHandler(service.GetReleases, "Releases"))
		},
	)
}

func activityHandler(fetch listFunc, label string) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		limit, errResult := parseLimit(ctx)
		if errResult != nil {
			return errResult
		}

		activities, err := fetch(ctx.Request.Context(), ctx.Param("owner"), ctx.Param("repo"), limit)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(activities, label+" retrieved successfully")
	}
}

func parseLimit(ctx *router.RequestContext) (int, *router.ServiceResult) {
	raw := ctx.Query("limit")
	if raw == "" {
		return constants.DefaultActivityLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < constants.MinActivityLimit || limit > constants.MaxActivityLimit {
		router.GetLogger(ctx).Warn("Invalid limit parameter", "value", raw)
		return 0, router.BadRequestResult(
			fmt.Sprintf("Limit must be between %d and %d", constants.MinActivityLimit, constants.MaxActivityLimit), nil)
	}

	return limit, nil
}
