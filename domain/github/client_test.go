package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/akeren/email-collector/pkg/circuitbreaker"
	apperrors "github.com/akeren/email-collector/pkg/errors"
	"github.com/akeren/email-collector/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{
		Token:      "test-token",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
		Breaker: &circuitbreaker.Config{
			FailureThreshold: 2,
			RecoveryTimeout:  time.Minute,
			SuccessThreshold: 1,
		},
		Retry: &retry.Config{
			MaxAttempts: 2,
			BaseDelay:   time.Millisecond,
			MaxDelay:    time.Millisecond,
			Multiplier:  1,
		},
	})
	require.NoError(t, err)
	return client
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = fmt.Fprint(w, body)
}

func TestClient_ListCommits(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/hello/commits", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		writeJSON(w, http.StatusOK, `[
			{"sha":"abc","html_url":"https://github.com/octo/hello/commit/abc","author":{"login":"octocat"},
			 "commit":{"message":"Fix bug\n\nlong body","author":{"name":"Octo Cat","date":"2024-01-02T03:04:05Z"}}},
			{"sha":"def","html_url":"https://github.com/octo/hello/commit/def","author":null,
			 "commit":{"message":"Initial commit","author":{"name":"Someone","date":"2024-01-01T00:00:00Z"}}}
		]`)
	})

	client := newTestClient(t, mux)
	activities, err := client.ListCommits(context.Background(), "octo", "hello", 5)

	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, Activity{
		Type:           ActivityCommit,
		RepositoryName: "octo/hello",
		Actor:          "octocat",
		Title:          "Fix bug",
		URL:            "https://github.com/octo/hello/commit/abc",
		CreatedAt:      time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}, activities[0])
	assert.Equal(t, "Someone", activities[1].Actor)
}

func TestClient_ListCommits_EmptyRepository(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/empty/commits", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, `{"message":"Git Repository is empty."}`)
	})

	client := newTestClient(t, mux)
	activities, err := client.ListCommits(context.Background(), "octo", "empty", 5)

	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestClient_ListPullRequestsIssuesAndReleases(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/hello/pulls", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "all", r.URL.Query().Get("state"))
		writeJSON(w, http.StatusOK, `[{"title":"Add feature","html_url":"https://github.com/octo/hello/pull/2",
			"user":{"login":"alice"},"created_at":"2024-02-01T10:00:00Z"}]`)
	})
	mux.HandleFunc("/repos/octo/hello/issues", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "all", r.URL.Query().Get("state"))
		writeJSON(w, http.StatusOK, `[
			{"title":"Crash on start","html_url":"https://github.com/octo/hello/issues/3","user":{"login":"bob"},"created_at":"2024-02-02T10:00:00Z"},
			{"title":"Add feature","html_url":"https://github.com/octo/hello/pull/2","user":{"login":"alice"},"created_at":"2024-02-01T10:00:00Z",
			 "pull_request":{"url":"https://api.github.com/repos/octo/hello/pulls/2"}}
		]`)
	})
	mux.HandleFunc("/repos/octo/hello/releases", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[
			{"name":"","tag_name":"v1.0.0","html_url":"https://github.com/octo/hello/releases/v1.0.0","author":{"login":"carol"},
			 "created_at":"2024-02-03T09:00:00Z","published_at":"2024-02-03T10:00:00Z"}
		]`)
	})

	client := newTestClient(t, mux)
	ctx := context.Background()

	pulls, err := client.ListPullRequests(ctx, "octo", "hello", 10)
	require.NoError(t, err)
	require.Len(t, pulls, 1)
	assert.Equal(t, ActivityPullRequest, pulls[0].Type)
	assert.Equal(t, "alice", pulls[0].Actor)

	issues, err := client.ListIssues(ctx, "octo", "hello", 10)
	require.NoError(t, err)
	require.Len(t, issues, 1, "pull requests must be filtered out of issues")
	assert.Equal(t, "Crash on start", issues[0].Title)

	releases, err := client.ListReleases(ctx, "octo", "hello", 10)
	require.NoError(t, err)
	require.Len(t, releases, 1)
	assert.Equal(t, "v1.0.0", releases[0].Title)
	assert.Equal(t, time.Date(2024, 2, 3, 10, 0, 0, 0, time.UTC), releases[0].CreatedAt)
}

func TestClient_RepositoryExists(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/hello", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":1,"name":"hello","full_name":"octo/hello"}`)
	})
	mux.HandleFunc("/repos/octo/missing", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"message":"Not Found"}`)
	})

	client := newTestClient(t, mux)

	exists, err := client.RepositoryExists(context.Background(), "octo", "hello")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = client.RepositoryExists(context.Background(), "octo", "missing")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClient_NotFoundIsNotRetriedAndKeepsBreakerClosed(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/missing/pulls", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusNotFound, `{"message":"Not Found"}`)
	})

	client := newTestClient(t, mux)

	for i := 0; i < 3; i++ {
		_, err := client.ListPullRequests(context.Background(), "octo", "missing", 10)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
		assert.Equal(t, "Repository octo/missing not found", apperrors.GetHumanReadableMessage(err))
	}

	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, circuitbreaker.Closed, client.BreakerState())
}

func TestClient_ServerErrorsRetryThenOpenBreaker(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/hello/releases", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusBadGateway, `{"message":"upstream down"}`)
	})

	client := newTestClient(t, mux)

	_, err := client.ListReleases(context.Background(), "octo", "hello", 10)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeServiceUnavailable))
	assert.Equal(t, "Failed to fetch GitHub releases", apperrors.GetHumanReadableMessage(err))
	assert.Equal(t, int32(2), calls.Load(), "one retry after the first 502")

	_, err = client.ListReleases(context.Background(), "octo", "hello", 10)
	assert.Error(t, err)
	assert.Equal(t, circuitbreaker.Open, client.BreakerState())

	_, err = client.ListReleases(context.Background(), "octo", "hello", 10)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeServiceUnavailable))
	assert.Equal(t, int32(4), calls.Load(), "open breaker must short-circuit")
}

func TestNewClient_RejectsInvalidBaseURL(t *testing.T) {
	_, err := NewClient(ClientConfig{BaseURL: "://bad"})
	assert.Error(t, err)
}

func TestNewClient_LeavesBreakerConfigUntouched(t *testing.T) {
	breakerCfg := &circuitbreaker.Config{FailureThreshold: 3, RecoveryTimeout: time.Minute, SuccessThreshold: 1}
	want := *breakerCfg

	_, err := NewClient(ClientConfig{Breaker: breakerCfg})
	require.NoError(t, err)

	assert.Equal(t, want.Name, breakerCfg.Name)
	assert.Equal(t, want.FailureThreshold, breakerCfg.FailureThreshold)
	assert.Nil(t, breakerCfg.IsFailure)
	assert.Nil(t, breakerCfg.OnStateChange)
}
