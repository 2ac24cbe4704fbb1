package submission

import (
	"context"
	"errors"

	"github.com/akeren/email-collector/internal/models"
	apperrors "github.com/akeren/email-collector/pkg/errors"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock_repository.go -package=submission . SubmissionRepository

type SubmissionRepository interface {
	// Create persists a new submission. A duplicate email yields a Conflict error.
	Create(ctx context.Context, submission *models.EmailSubmission) (*models.EmailSubmission, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*models.EmailSubmission, error)
	// FindAll returns every submission, newest first.
	FindAll(ctx context.Context) ([]*models.EmailSubmission, error)
	Count(ctx context.Context) (int64, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (sr *submissionRepository) Create(ctx context.Context, submission *models.EmailSubmission) (*models.EmailSubmission, error) {
	if err := sr.db.WithContext(ctx).Create(submission).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.NewConflictError("Email already registered", err)
		}
		return nil, apperrors.NewDatabaseError("unable to store email submission", err)
	}

	return submission, nil
}

func (sr *submissionRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	err := sr.db.WithContext(ctx).
		Model(&models.EmailSubmission{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, apperrors.NewDatabaseError("unable to look up email submission", err)
	}

	return count > 0, nil
}

func (sr *submissionRepository) FindByEmail(ctx context.Context, email string) (*models.EmailSubmission, error) {
	var submission models.EmailSubmission

	if err := sr.db.WithContext(ctx).Where("email = ?", email).First(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("email submission not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch email submission", err)
	}

	return &submission, nil
}

func (sr *submissionRepository) FindAll(ctx context.Context) ([]*models.EmailSubmission, error) {
	var submissions []*models.EmailSubmission

	if err := sr.db.WithContext(ctx).Order("creation_date DESC").Order("id DESC").Find(&submissions).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch email submissions", err)
	}

	return submissions, nil
}

func (sr *submissionRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := sr.db.WithContext(ctx).Model(&models.EmailSubmission{}).Count(&count).Error; err != nil {
		return 0, apperrors.NewDatabaseError("unable to count email submissions", err)
	}

	return count, nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err)
}
