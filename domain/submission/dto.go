package submission

import (
	"time"

	"github.com/akeren/email-collector/internal/models"
	"github.com/akeren/email-collector/pkg/constants"
)

// SubmissionRequest is the service input shared by the landing form and the REST API.
type SubmissionRequest struct {
	Email     string
	IPAddress string
	Source    string
}

type CreateEmailRequest struct {
	Email string `json:"email" binding:"required,max=255"`
}

// emailInput carries the format rules applied after normalisation.
type emailInput struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type SubmissionResponse struct {
	ID           uint   `json:"id" yaml:"id"`
	Email        string `json:"email" yaml:"email"`
	CreationDate int64  `json:"creation_date" yaml:"creation_date"`
	SubmittedAt  string `json:"submitted_at" yaml:"submitted_at"`
	IPAddress    string `json:"ip_address,omitempty" yaml:"ip_address,omitempty"`
	Source       string `json:"source" yaml:"source"`
}

type CountResponse struct {
	Total int64 `json:"total"`
}

func ToSubmissionResponse(submission *models.EmailSubmission) SubmissionResponse {
	if submission == nil {
		return SubmissionResponse{}
	}
	return SubmissionResponse{
		ID:           submission.ID,
		Email:        submission.Email,
		CreationDate: submission.CreationDate,
		SubmittedAt:  time.UnixMilli(submission.CreationDate).UTC().Format(constants.RFC3339DateTimeFormat),
		IPAddress:    submission.IPAddress,
		Source:       submission.Source,
	}
}
