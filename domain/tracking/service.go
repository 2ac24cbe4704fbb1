package tracking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akeren/email-collector/domain/github"
	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/internal/models"
	apperrors "github.com/akeren/email-collector/pkg/errors"
)

//go:generate mockgen -destination=mock_service.go -package=tracking . Service

// ActivityReader is the part of the GitHub service the tracker depends on.
type ActivityReader interface {
	ValidateRepository(ctx context.Context, owner, repo string) (bool, error)
	GetRepositoryActivities(ctx context.Context, owner, repo string, limit int) ([]github.Activity, error)
}

type Service interface {
	// GetOrCreateRepository returns the tracked row, creating it only after
	// GitHub confirms the repository exists.
	GetOrCreateRepository(ctx context.Context, owner, name string) (*models.TrackedRepository, error)
	FindRepository(ctx context.Context, owner, name string) (*models.TrackedRepository, error)
	// CheckForNewActivity reports whether GitHub shows activity newer than
	// anything previously observed for the repository.
	CheckForNewActivity(ctx context.Context, repository *models.TrackedRepository, limit int) (bool, error)
	GetRepositoriesToCheck(ctx context.Context, olderThan time.Duration) ([]*models.TrackedRepository, error)
}

type service struct {
	logger *log.Logger
	store  RepositoryStore
	github ActivityReader
	now    func() time.Time
}

func NewService(logger *log.Logger, store RepositoryStore, reader ActivityReader) Service {
	return &service{
		logger: logger,
		store:  store,
		github: reader,
		now:    time.Now,
	}
}

func (s *service) GetOrCreateRepository(ctx context.Context, owner, name string) (*models.TrackedRepository, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)
	owner, name = strings.TrimSpace(owner), strings.TrimSpace(name)

	existing, err := s.store.FindByOwnerAndName(ctx, owner, name)
	if err == nil {
		return existing, nil
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		logger.Error("Failed to look up repository", "repository", owner+"/"+name, "error", err)
		return nil, err
	}

	exists, err := s.github.ValidateRepository(ctx, owner, name)
	if err != nil {
		return nil, err
	}
	if !exists {
		logger.Info("Refusing to track unknown repository", "repository", owner+"/"+name)
		return nil, apperrors.NewInvalidRequestError(
			fmt.Sprintf("Repository %s/%s does not exist or is not accessible", owner, name), nil)
	}

	created, err := s.store.Create(ctx, &models.TrackedRepository{Owner: owner, Name: name})
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeConflict) {
			// Another request created it first.
			return s.store.FindByOwnerAndName(ctx, owner, name)
		}
		logger.Error("Failed to create repository", "repository", owner+"/"+name, "error", err)
		return nil, err
	}

	logger.Info("Tracking repository", "id", created.ID, "repository", created.FullName())
	return created, nil
}

func (s *service) FindRepository(ctx context.Context, owner, name string) (*models.TrackedRepository, error) {
	return s.store.FindByOwnerAndName(ctx, strings.TrimSpace(owner), strings.TrimSpace(name))
}

func (s *service) CheckForNewActivity(ctx context.Context, repository *models.TrackedRepository, limit int) (bool, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	now := s.now()
	repository.MarkChecked(now)

	activities, fetchErr := s.github.GetRepositoryActivities(ctx, repository.Owner, repository.Name, limit)

	found := false
	if fetchErr == nil && len(activities) > 0 {
		latest := activities[0].CreatedAt
		if repository.LastActivityAt == nil || latest.After(*repository.LastActivityAt) {
			repository.MarkActivity(latest, now)
			found = true
		}
	}

	if err := s.store.Save(ctx, repository); err != nil {
		logger.Error("Failed to save repository check", "repository", repository.FullName(), "error", err)
		return false, err
	}

	if fetchErr != nil {
		logger.Warn("Failed to fetch repository activity", "repository", repository.FullName(), "error", fetchErr)
		return false, fetchErr
	}

	if found {
		logger.Info("New activity found", "repository", repository.FullName(), "latest", repository.LastActivityAt)
	}
	return found, nil
}

func (s *service) GetRepositoriesToCheck(ctx context.Context, olderThan time.Duration) ([]*models.TrackedRepository, error) {
	return s.store.FindDueForCheck(ctx, s.now().Add(-olderThan))
}
