package github

import "time"

const (
	ActivityCommit      = "commit"
	ActivityPullRequest = "pull_request"
	ActivityIssue       = "issue"
	ActivityRelease     = "release"
)

// Activity is one event on a repository, normalised across commits, pull
// requests, issues and releases.
type Activity struct {
	Type           string    `json:"type"`
	RepositoryName string    `json:"repository_name"`
	Actor          string    `json:"actor"`
	Title          string    `json:"title"`
	URL            string    `json:"url"`
	CreatedAt      time.Time `json:"created_at"`
}
