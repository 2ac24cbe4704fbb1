package models

const (
	SourceLandingPage = "LANDING_PAGE"
	SourceAPI         = "API"
)

type EmailSubmission struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	CreationDate int64  `gorm:"not null;index"` // epoch milliseconds
	IPAddress    string `gorm:"column:ip_address;size:64"`
	Source       string `gorm:"size:32;not null;default:LANDING_PAGE"`
}

func (EmailSubmission) TableName() string {
	return "email_submissions"
}
