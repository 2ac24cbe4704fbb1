package github

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akeren/email-collector/config/router"
	"github.com/akeren/email-collector/internal/log"
	apperrors "github.com/akeren/email-collector/pkg/errors"
	"github.com/akeren/email-collector/pkg/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Code    int        `json:"code"`
	Data    []Activity `json:"data"`
	Message string     `json:"message"`
}

func newTestRouter(t *testing.T, service Service) *router.RouterService {
	t.Helper()

	rs := router.CreateRouterService(log.NewLoggerWithJSONOutput(), nil, &router.RouterConfig{
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    5 * time.Second,
	})
	rs.MountController(NewGitHubController(service, factory.NewRateLimiterFactory(nil, nil)))
	return rs
}

func get(rs *router.RouterService, target string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestGitHubController_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)

	one := []Activity{{Type: ActivityCommit, Title: "x", CreatedAt: at(1)}}

	service.EXPECT().GetRepositoryActivities(gomock.Any(), "octo", "hello", 30).Return(one, nil)
	service.EXPECT().GetCommits(gomock.Any(), "octo", "hello", 5).Return(one, nil)
	service.EXPECT().GetPullRequests(gomock.Any(), "octo", "hello", 30).Return(one, nil)
	service.EXPECT().GetIssues(gomock.Any(), "octo", "hello", 30).Return(one, nil)
	service.EXPECT().GetReleases(gomock.Any(), "octo", "hello", 100).Return(one, nil)

	rs := newTestRouter(t, service)

	for _, target := range []string{
		"/api/github/activities/octo/hello",
		"/api/github/commits/octo/hello?limit=5",
		"/api/github/pull-requests/octo/hello",
		"/api/github/issues/octo/hello",
		"/api/github/releases/octo/hello?limit=100",
	} {
		w, env := get(rs, target)
		require.Equal(t, http.StatusOK, w.Code, target)
		assert.Len(t, env.Data, 1, target)
	}
}

func TestGitHubController_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	rs := newTestRouter(t, NewMockService(ctrl))

	for _, limit := range []string{"0", "101", "ten", "-1"} {
		w, env := get(rs, "/api/github/commits/octo/hello?limit="+limit)

		assert.Equal(t, http.StatusBadRequest, w.Code, limit)
		assert.Equal(t, "Limit must be between 1 and 100", env.Message)
	}
}

func TestGitHubController_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "unknown repository", err: apperrors.NewNotFoundError("Repository octo/nope not found", nil), status: http.StatusNotFound, message: "Repository octo/nope not found"},
		{name: "github outage", err: apperrors.NewServiceUnavailableError("Failed to fetch GitHub issues", nil), status: http.StatusServiceUnavailable, message: "Failed to fetch GitHub issues"},
		{name: "bad parameters", err: apperrors.NewInvalidRequestError("Repository owner cannot be empty", nil), status: http.StatusBadRequest, message: "Repository owner cannot be empty"},
		{name: "anything else", err: apperrors.NewInternalServerError("boom", nil), status: http.StatusInternalServerError, message: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := NewMockService(ctrl)
			service.EXPECT().GetIssues(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rs := newTestRouter(t, service)
			w, env := get(rs, "/api/github/issues/octo/nope")

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, env.Message)
		})
	}
}
