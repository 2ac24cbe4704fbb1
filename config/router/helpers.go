package router

import (
	"net/http"
	"strconv"

	"github.com/akeren/email-collector/internal/log"
)

// GetLogger returns the request-scoped logger injected by the router, or a
// fresh correlated logger when the handler runs outside of it.
func GetLogger(ctx *RequestContext) *log.Logger {
	if l, ok := ctx.Request.Context().Value(log.LoggerKeyForContext).(*log.Logger); ok && l != nil {
		return l
	}
	return log.NewLoggerWithJSONOutput().WithCorrelationID(ctx.Request.Context())
}

func ErrorResult(statusCode int, message string, data any) *ServiceResult {
	return &ServiceResult{StatusCode: statusCode, Data: data, Message: message}
}

func OKResult(data any, message string) *ServiceResult {
	return ErrorResult(http.StatusOK, message, data)
}

func TooManyRequestsResult(data RateLimitResponse) *ServiceResult {
	return ErrorResult(http.StatusTooManyRequests, "Too Many Requests", data)
}

func BadRequestResult(message string, payload any) *ServiceResult {
	return ErrorResult(http.StatusBadRequest, message, payload)
}

func UnauthorizedResult(message string) *ServiceResult {
	return ErrorResult(http.StatusUnauthorized, message, nil)
}

func NotFoundResult(message string) *ServiceResult {
	return ErrorResult(http.StatusNotFound, message, nil)
}

func InternalServerErrorResult(message string) *ServiceResult {
	return ErrorResult(http.StatusInternalServerError, message, nil)
}

// ParseIDParam reads a positive numeric path parameter.
func ParseIDParam(ctx *RequestContext, paramName string) (uint, *ServiceResult) {
	raw := ctx.Param(paramName)

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		GetLogger(ctx).Warn("Invalid ID parameter", "param", paramName, "value", raw)
		return 0, BadRequestResult("Invalid ID parameter", nil)
	}

	return uint(id), nil
}
