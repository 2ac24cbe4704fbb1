package models

// ModelRegistry lists every persisted model, in dependency order, for gorm AutoMigrate.
var ModelRegistry = []any{
	&EmailSubmission{},
	&TrackedRepository{},
	&RepoSubscription{},
	&RepoNotification{},
}
