package submission

import (
	"errors"
	"time"

	"github.com/akeren/email-collector/config/router"
	"github.com/akeren/email-collector/internal/models"
	"github.com/akeren/email-collector/pkg/constants"
	apperrors "github.com/akeren/email-collector/pkg/errors"
	"github.com/akeren/email-collector/pkg/factory"
	"github.com/go-playground/validator/v10"
)

// NewSubmissionController mounts the JSON intake API under /api. Listing
// routes require an admin token when adminSecret is set.
func NewSubmissionController(
	service SubmissionService,
	limiters factory.RateLimiterFactory,
	adminSecret string,
) *router.RESTController {

	return router.NewRESTController(
		"SubmissionController",
		"/api",
		func(rs *router.RouterService, c *router.RESTController) {
			requireAdmin := router.RequireAdminToken(adminSecret)
			intakeLimiter := limiters.CreateRateLimiter("api-email", constants.SubmissionRequestsPerMinute, time.Minute)

			rs.AddPostHandler(c, intakeLimiter, "email", createEmailHandler(service))
			rs.AddGetHandler(c, nil, "emails", getAllEmailsHandler(service), requireAdmin)
			rs.AddGetHandler(c, nil, "emails/count", getEmailCountHandler(service), requireAdmin)
		},
	)
}

func createEmailHandler(service SubmissionService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req CreateEmailRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid email format", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		response, err := service.ProcessSubmission(ctx.Request.Context(), &SubmissionRequest{
			Email:     req.Email,
			IPAddress: ctx.ClientIP(),
			Source:    models.SourceAPI,
		})
		if err != nil {
			if apperrors.IsType(err, apperrors.ErrorTypeInvalidRequest) {
				return router.BadRequestResult("Invalid email format", fieldErrors(err))
			}
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return &router.ServiceResult{
			StatusCode: apperrors.StatusCreated,
			Data:       response,
			Message:    "Email registered successfully",
		}
	}
}

func getAllEmailsHandler(service SubmissionService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		response, err := service.GetAllEmails(ctx.Request.Context())
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Emails retrieved successfully")
	}
}

func getEmailCountHandler(service SubmissionService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		count, err := service.GetSubmissionCount(ctx.Request.Context())
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(CountResponse{Total: count}, "Email count retrieved successfully")
	}
}

// fieldErrors reports the validator failures wrapped in a service error
// against the JSON field names of CreateEmailRequest.
func fieldErrors(err error) []apperrors.ValidationErrorResponse {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return apperrors.FormatValidationErrors(validationErrors, &emailInput{})
	}
	return []apperrors.ValidationErrorResponse{{Field: "email", Message: "Invalid email format"}}
}
