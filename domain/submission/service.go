package submission

import (
	"context"
	"strings"
	"time"

	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/internal/models"
	apperrors "github.com/akeren/email-collector/pkg/errors"
	"github.com/akeren/email-collector/pkg/events"
	"github.com/akeren/email-collector/pkg/metrics"
	"github.com/go-playground/validator/v10"
)

//go:generate mockgen -destination=mock_service.go -package=submission . SubmissionService

const (
	outcomeAccepted  = "accepted"
	outcomeDuplicate = "duplicate"
	outcomeInvalid   = "invalid"
	outcomeError     = "error"
)

type SubmissionService interface {
	// ProcessSubmission normalises, validates and stores an email address.
	ProcessSubmission(ctx context.Context, req *SubmissionRequest) (*SubmissionResponse, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*SubmissionResponse, error)
	// GetAllEmails returns every submission, newest first.
	GetAllEmails(ctx context.Context) ([]SubmissionResponse, error)
	GetSubmissionCount(ctx context.Context) (int64, error)
}

type submissionService struct {
	logger     *log.Logger
	repository SubmissionRepository
	publisher  events.Publisher
	validate   *validator.Validate
	now        func() time.Time
}

func NewSubmissionService(logger *log.Logger, repository SubmissionRepository, publisher events.Publisher) SubmissionService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}

	return &submissionService{
		logger:     logger,
		repository: repository,
		publisher:  publisher,
		validate:   validator.New(),
		now:        time.Now,
	}
}

// NormalizeEmail trims and lower-cases an address before it is validated or stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *submissionService) ProcessSubmission(ctx context.Context, req *SubmissionRequest) (*SubmissionResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("ProcessSubmission received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	source := req.Source
	if source == "" {
		source = models.SourceLandingPage
	}

	email := NormalizeEmail(req.Email)
	if err := s.validate.Struct(emailInput{Email: email}); err != nil {
		logger.Warn("Rejected email submission", "email", log.RedactEmail(email), "source", source)
		metrics.SubmissionsTotal.WithLabelValues(source, outcomeInvalid).Inc()
		return nil, apperrors.NewInvalidRequestError("Invalid email format", err)
	}

	exists, err := s.repository.ExistsByEmail(ctx, email)
	if err != nil {
		logger.Error("Failed to check for existing email", "error", err)
		metrics.SubmissionsTotal.WithLabelValues(source, outcomeError).Inc()
		return nil, err
	}
	if exists {
		logger.Info("Duplicate email submission", "email", log.RedactEmail(email), "source", source)
		metrics.SubmissionsTotal.WithLabelValues(source, outcomeDuplicate).Inc()
		return nil, apperrors.NewConflictError("Email already registered", nil)
	}

	submittedAt := s.now()
	submission, err := s.repository.Create(ctx, &models.EmailSubmission{
		Email:        email,
		CreationDate: submittedAt.UnixMilli(),
		IPAddress:    req.IPAddress,
		Source:       source,
	})
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeConflict) {
			// Lost a race with a concurrent submission of the same address.
			metrics.SubmissionsTotal.WithLabelValues(source, outcomeDuplicate).Inc()
			return nil, apperrors.NewConflictError("Email already registered", err)
		}
		logger.Error("Failed to store email submission", "error", err)
		metrics.SubmissionsTotal.WithLabelValues(source, outcomeError).Inc()
		return nil, err
	}

	metrics.SubmissionsTotal.WithLabelValues(source, outcomeAccepted).Inc()
	logger.Info("Email submission stored", "id", submission.ID, "email", log.RedactEmail(email), "source", source)

	s.publishSubmitted(ctx, logger, submission, submittedAt)

	response := ToSubmissionResponse(submission)
	return &response, nil
}

func (s *submissionService) publishSubmitted(ctx context.Context, logger *log.Logger, submission *models.EmailSubmission, at time.Time) {
	err := s.publisher.Publish(ctx, events.RoutingKeyEmailSubmitted, events.EmailSubmitted{
		Email:      submission.Email,
		Source:     submission.Source,
		OccurredAt: at.UTC(),
	})
	if err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(events.RoutingKeyEmailSubmitted, "error").Inc()
		logger.Warn("Failed to publish email submitted event", "error", err)
		return
	}
	metrics.EventsPublishedTotal.WithLabelValues(events.RoutingKeyEmailSubmitted, "ok").Inc()
}

func (s *submissionService) EmailExists(ctx context.Context, email string) (bool, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	exists, err := s.repository.ExistsByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		logger.Error("Failed to check for existing email", "error", err)
		return false, err
	}

	return exists, nil
}

func (s *submissionService) FindByEmail(ctx context.Context, email string) (*SubmissionResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	email = NormalizeEmail(email)
	if email == "" {
		return nil, apperrors.NewInvalidRequestError("Email is required", nil)
	}

	submission, err := s.repository.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("Failed to find email submission", "email", log.RedactEmail(email), "error", err)
		return nil, err
	}

	response := ToSubmissionResponse(submission)
	return &response, nil
}

func (s *submissionService) GetAllEmails(ctx context.Context) ([]SubmissionResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	submissions, err := s.repository.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to get email submissions", "error", err)
		return nil, err
	}

	responses := make([]SubmissionResponse, 0, len(submissions))
	for _, submission := range submissions {
		responses = append(responses, ToSubmissionResponse(submission))
	}

	return responses, nil
}

func (s *submissionService) GetSubmissionCount(ctx context.Context) (int64, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	count, err := s.repository.Count(ctx)
	if err != nil {
		logger.Error("Failed to count email submissions", "error", err)
		return 0, err
	}

	return count, nil
}
