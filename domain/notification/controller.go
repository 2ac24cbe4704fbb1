package notification

import (
	"strconv"

	"github.com/akeren/email-collector/config/router"
	"github.com/akeren/email-collector/pkg/constants"
	apperrors "github.com/akeren/email-collector/pkg/errors"
)

func NewNotificationController(service Service) *router.RESTController {
	return router.NewRESTController(
		"NotificationController",
		"/api/notifications",
		func(rs *router.RouterService, c *router.RESTController) {
			rs.AddGetHandler(c, nil, "", listHandler(service))
			rs.AddGetHandler(c, nil, "unread", unreadHandler(service))
			rs.AddGetHandler(c, nil, "unread/count", unreadCountHandler(service))
			rs.AddPatchHandler(c, nil, "read-all", markAllHandler(service))
			rs.AddPatchHandler(c, nil, ":id/read", markReadHandler(service))
			rs.AddDeleteHandler(c, nil, "clear", clearHandler(service))
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

func queryInt(ctx *router.RequestContext, name string, fallback int) (int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	return v, err == nil
}

func listHandler(service Service) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		page, ok := queryInt(ctx, "page", 0)
		if !ok {
			return router.BadRequestResult("Page must be a number", nil)
		}
		size, ok := queryInt(ctx, "size", constants.DefaultPageSize)
		if !ok {
			return router.BadRequestResult("Size must be a number", nil)
		}

		result, err := service.GetUserNotifications(ctx.Request.Context(), ctx.Query("email"), page, size)
		if err != nil {
			return errorResult(err)
		}

		return router.OKResult(result, "Notifications retrieved successfully")
	}
}

func unreadHandler(service Service) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		result, err := service.GetUnreadNotifications(ctx.Request.Context(), ctx.Query("email"))
		if err != nil {
			return errorResult(err)
		}

		return router.OKResult(result, "Unread notifications retrieved successfully")
	}
}

func unreadCountHandler(service Service) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		count, err := service.CountUnread(ctx.Request.Context(), ctx.Query("email"))
		if err != nil {
			return errorResult(err)
		}

		return router.OKResult(UnreadCountResponse{Unread: count}, "Unread count retrieved successfully")
	}
}

func markReadHandler(service Service) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		ok, err := service.MarkAsRead(ctx.Request.Context(), id, ctx.Query("email"))
		if err != nil {
			return errorResult(err)
		}
		if !ok {
			return router.NotFoundResult("Notification not found")
		}

		return router.OKResult(nil, "Notification marked as read")
	}
}

func markAllHandler(service Service) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		count, err := service.MarkAllAsRead(ctx.Request.Context(), ctx.Query("email"))
		if err != nil {
			return errorResult(err)
		}

		return router.OKResult(MarkAllResponse{MarkedAsRead: count}, "All notifications marked as read")
	}
}

func clearHandler(service Service) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		if err := service.ClearAllNotifications(ctx.Request.Context(), ctx.Query("email")); err != nil {
			return errorResult(err)
		}

		return router.OKResult(nil, "All notifications cleared")
	}
}
