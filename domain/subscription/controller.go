package subscription

import (
	"strconv"

	"github.com/akeren/email-collector/config/router"
	apperrors "github.com/akeren/email-collector/pkg/errors"
)

func NewSubscriptionController(service Service) *router.RESTController {
	return router.NewRESTController(
		"SubscriptionController",
		"/api/subscription",
		func(rs *router.RouterService, c *router.RESTController) {
			rs.AddPostHandler(c, nil, "repository/:owner/:repo", subscribeHandler(service))
			rs.AddDeleteHandler(c, nil, "repository/:owner/:repo", unsubscribeHandler(service))
			rs.AddGetHandler(c, nil, "repository/:owner/:repo", repositorySubscriptionsHandler(service))
			rs.AddPatchHandler(c, nil, "repository/:owner/:repo/notifications", updateNotificationsHandler(service))
			rs.AddGetHandler(c, nil, "repository", userSubscriptionsHandler(service))
		},
	)
}

func errorResult(err error) *router.ServiceResult {
	return router.ErrorResult(
		apperrors.HTTPStatusCode(err),
		apperrors.GetHumanReadableMessage(err),
		nil,
	)
}

func subscribeHandler(service Service) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		sub, err := service.Subscribe(ctx.Request.Context(), ctx.Query("email"), ctx.Param("owner"), ctx.Param("repo"))
		if err != nil {
			return errorResult(err)
		}

		return &router.ServiceResult{
			StatusCode: apperrors.StatusCreated,
			Data:       ToSubscriptionResponse(sub),
			Message:    "Subscribed to " + sub.Repository.FullName(),
		}
	}
}

func unsubscribeHandler(service Service) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		owner, repo := ctx.Param("owner"), ctx.Param("repo")

		if err := service.Unsubscribe(ctx.Request.Context(), ctx.Query("email"), owner, repo); err != nil {
			return errorResult(err)
		}

		return router.OKResult(nil, "Unsubscribed from "+owner+"/"+repo)
	}
}

func repositorySubscriptionsHandler(service Service) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		subs, err := service.GetRepositorySubscriptions(ctx.Request.Context(), ctx.Param("owner"), ctx.Param("repo"))
		if err != nil {
			return errorResult(err)
		}

		return router.OKResult(ToSubscriptionResponses(subs), "Subscriptions retrieved successfully")
	}
}

func updateNotificationsHandler(service Service) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		enabled, err := strconv.ParseBool(ctx.DefaultQuery("enabled", "true"))
		if err != nil {
			router.GetLogger(ctx).Warn("Invalid enabled parameter", "value", ctx.Query("enabled"))
			return router.BadRequestResult("Parameter enabled must be true or false", nil)
		}

		sub, err := service.UpdateNotificationStatus(ctx.Request.Context(), ctx.Query("email"), ctx.Param("owner"), ctx.Param("repo"), enabled)
		if err != nil {
			return errorResult(err)
		}

		state := "disabled"
		if enabled {
			state = "enabled"
		}
		return router.OKResult(ToSubscriptionResponse(sub), "Notifications "+state+" for "+sub.Repository.FullName())
	}
}

func userSubscriptionsHandler(service Service) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		subs, err := service.GetUserSubscriptions(ctx.Request.Context(), ctx.Query("email"))
		if err != nil {
			return errorResult(err)
		}

		return router.OKResult(ToSubscriptionResponses(subs), "Subscriptions retrieved successfully")
	}
}
