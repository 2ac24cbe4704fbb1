package landing

import (
	"fmt"
	"net/http"
	"time"

	"github.com/akeren/email-collector/config/router"
	"github.com/akeren/email-collector/domain/submission"
	"github.com/akeren/email-collector/internal/models"
	"github.com/akeren/email-collector/pkg/constants"
	apperrors "github.com/akeren/email-collector/pkg/errors"
	"github.com/akeren/email-collector/pkg/factory"
	"github.com/akeren/email-collector/web"
)

const (
	invalidEmailMessage   = "Please provide a valid email address"
	duplicateEmailMessage = "This email is already registered"
	failureMessage        = "Something went wrong, please try again later"
)

// NewLandingController serves the HTML pages and their static assets.
func NewLandingController(
	service submission.SubmissionService,
	limiters factory.RateLimiterFactory,
	adminSecret string,
) *router.RESTController {

	return router.NewRESTController(
		"LandingController",
		"/",
		func(rs *router.RouterService, c *router.RESTController) {
			templates, err := web.Templates()
			if err != nil {
				panic(fmt.Sprintf("landing templates failed to parse: %v", err))
			}
			rs.SetHTMLTemplate(templates)

			submitLimiter := limiters.CreateRateLimiter("landing-submit", constants.SubmissionRequestsPerMinute, time.Minute)

			rs.AddStaticFS(c, nil, "static", web.StaticFS())
			rs.AddPageGetHandler(c, nil, "", indexPageHandler())
			rs.AddPagePostHandler(c, submitLimiter, "submit", submitPageHandler(service))
			rs.AddPageGetHandler(c, nil, "emails", emailsPageHandler(service), router.RequireAdminToken(adminSecret))
		},
	)
}

func indexPageHandler() router.PageFunction {
	return func(ctx *router.RequestContext) *router.PageResult {
		return router.PageOK(web.IndexTemplate, web.IndexView{})
	}
}

func submitPageHandler(service submission.SubmissionService) router.PageFunction {
	return func(ctx *router.RequestContext) *router.PageResult {
		logger := router.GetLogger(ctx)

		decision := submission.GuardSubmission(ctx.GetPostForm("email"))
		if !decision.Allowed {
			return router.PageOK(web.IndexTemplate, web.IndexView{Error: decision.Notice})
		}

		response, err := service.ProcessSubmission(ctx.Request.Context(), &submission.SubmissionRequest{
			Email:     decision.Value,
			IPAddress: ctx.ClientIP(),
			Source:    models.SourceLandingPage,
		})
		if err != nil {
			view := web.IndexView{Email: decision.Value}

			switch apperrors.GetErrorType(err) {
			case apperrors.ErrorTypeInvalidRequest:
				view.Error = invalidEmailMessage
				return router.PageOK(web.IndexTemplate, view)
			case apperrors.ErrorTypeConflict:
				view.Error = duplicateEmailMessage
				return router.PageOK(web.IndexTemplate, view)
			default:
				logger.Error("Landing page submission failed", "error", err)
				view.Error = failureMessage
				return router.PageWithStatus(http.StatusInternalServerError, web.IndexTemplate, view)
			}
		}

		return router.PageOK(web.SuccessTemplate, web.SuccessView{Email: response.Email})
	}
}

func emailsPageHandler(service submission.SubmissionService) router.PageFunction {
	return func(ctx *router.RequestContext) *router.PageResult {
		logger := router.GetLogger(ctx)

		emails, err := service.GetAllEmails(ctx.Request.Context())
		if err != nil {
			logger.Error("Failed to load submissions for listing", "error", err)
			return router.PageWithStatus(http.StatusInternalServerError, web.IndexTemplate, web.IndexView{Error: failureMessage})
		}

		total, err := service.GetSubmissionCount(ctx.Request.Context())
		if err != nil {
			logger.Error("Failed to count submissions for listing", "error", err)
			return router.PageWithStatus(http.StatusInternalServerError, web.IndexTemplate, web.IndexView{Error: failureMessage})
		}

		rows := make([]web.EmailRow, 0, len(emails))
		for _, e := range emails {
			rows = append(rows, web.EmailRow{
				Email:        e.Email,
				Source:       e.Source,
				CreationDate: e.CreationDate,
				IPAddress:    e.IPAddress,
			})
		}

		return router.PageOK(web.EmailsTemplate, web.EmailsView{Emails: rows, TotalCount: total})
	}
}
