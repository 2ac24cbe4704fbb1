package tracking

import (
	"context"
	"errors"
	"time"

	"github.com/akeren/email-collector/internal/models"
	apperrors "github.com/akeren/email-collector/pkg/errors"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock_repository.go -package=tracking . RepositoryStore

type RepositoryStore interface {
	FindByOwnerAndName(ctx context.Context, owner, name string) (*models.TrackedRepository, error)
	// Create inserts a new row. A duplicate owner/name pair yields a Conflict error.
	Create(ctx context.Context, repository *models.TrackedRepository) (*models.TrackedRepository, error)
	Save(ctx context.Context, repository *models.TrackedRepository) error
	// FindDueForCheck returns repositories never checked or last checked before the cutoff.
	FindDueForCheck(ctx context.Context, before time.Time) ([]*models.TrackedRepository, error)
}

type repositoryStore struct {
	db *gorm.DB
}

func NewRepositoryStore(db *gorm.DB) RepositoryStore {
	return &repositoryStore{db: db}
}

func (rs *repositoryStore) FindByOwnerAndName(ctx context.Context, owner, name string) (*models.TrackedRepository, error) {
	var repository models.TrackedRepository

	err := rs.db.WithContext(ctx).Where("owner = ? AND name = ?", owner, name).First(&repository).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Repository "+owner+"/"+name+" is not tracked", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch repository", err)
	}

	return &repository, nil
}

func (rs *repositoryStore) Create(ctx context.Context, repository *models.TrackedRepository) (*models.TrackedRepository, error) {
	if err := rs.db.WithContext(ctx).Create(repository).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err) {
			return nil, apperrors.NewConflictError("Repository "+repository.FullName()+" is already tracked", err)
		}
		return nil, apperrors.NewDatabaseError("unable to store repository", err)
	}

	return repository, nil
}

func (rs *repositoryStore) Save(ctx context.Context, repository *models.TrackedRepository) error {
	if err := rs.db.WithContext(ctx).Save(repository).Error; err != nil {
		return apperrors.NewDatabaseError("unable to update repository", err)
	}
	return nil
}

func (rs *repositoryStore) FindDueForCheck(ctx context.Context, before time.Time) ([]*models.TrackedRepository, error) {
	var repositories []*models.TrackedRepository

	err := rs.db.WithContext(ctx).
		Where("last_checked_at IS NULL OR last_checked_at < ?", before).
		Order("id ASC").
		Find(&repositories).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch repositories to check", err)
	}

	return repositories, nil
}
