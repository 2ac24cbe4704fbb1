package subscription

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akeren/email-collector/config/router"
	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/internal/models"
	apperrors "github.com/akeren/email-collector/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func newTestRouter(service Service) *router.RouterService {
	rs := router.CreateRouterService(log.NewLoggerWithJSONOutput(), nil, &router.RouterConfig{
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    5 * time.Second,
	})
	rs.MountController(NewSubscriptionController(service))
	return rs
}

func serve(rs *router.RouterService, method, target string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, httptest.NewRequest(method, target, nil))

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func subscription(enabled bool) *models.RepoSubscription {
	return &models.RepoSubscription{
		ID:                   1,
		Email:                "a@b.com",
		RepositoryID:         7,
		Repository:           *hello(),
		SubscribedAt:         fixedNow,
		NotificationsEnabled: enabled,
	}
}

func TestSubscriptionController_Subscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	service.EXPECT().Subscribe(gomock.Any(), "a@b.com", "octo", "hello").Return(subscription(false), nil)

	w, env := serve(newTestRouter(service), http.MethodPost, "/api/subscription/repository/octo/hello?email=a@b.com")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Subscribed to octo/hello", env.Message)

	var body SubscriptionResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, "octo/hello", body.Repository)
	assert.False(t, body.NotificationsEnabled)
}

func TestSubscriptionController_Errors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		setup  func(*MockService)
		status int
		msg    string
	}{
		{
			name:   "blank email",
			method: http.MethodPost,
			target: "/api/subscription/repository/octo/hello",
			setup: func(m *MockService) {
				m.EXPECT().Subscribe(gomock.Any(), "", "octo", "hello").Return(nil, apperrors.NewInvalidRequestError("Email is required", nil))
			},
			status: http.StatusBadRequest,
			msg:    "Email is required",
		},
		{
			name:   "invalid repository",
			method: http.MethodPost,
			target: "/api/subscription/repository/octo/nope?email=a@b.com",
			setup: func(m *MockService) {
				m.EXPECT().Subscribe(gomock.Any(), "a@b.com", "octo", "nope").Return(nil, apperrors.NewConflictError("Invalid repository: octo/nope", nil))
			},
			status: http.StatusConflict,
			msg:    "Invalid repository: octo/nope",
		},
		{
			name:   "not subscribed",
			method: http.MethodDelete,
			target: "/api/subscription/repository/octo/hello?email=a@b.com",
			setup: func(m *MockService) {
				m.EXPECT().Unsubscribe(gomock.Any(), "a@b.com", "octo", "hello").Return(apperrors.NewNotFoundError("Not subscribed to octo/hello", nil))
			},
			status: http.StatusNotFound,
			msg:    "Not subscribed to octo/hello",
		},
		{
			name:   "bad enabled flag",
			method: http.MethodPatch,
			target: "/api/subscription/repository/octo/hello/notifications?email=a@b.com&enabled=maybe",
			setup:  func(*MockService) {},
			status: http.StatusBadRequest,
			msg:    "Parameter enabled must be true or false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := NewMockService(ctrl)
			tt.setup(service)

			w, env := serve(newTestRouter(service), tt.method, tt.target)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.msg, env.Message)
		})
	}
}

func TestSubscriptionController_ReadsAndUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)

	service.EXPECT().Unsubscribe(gomock.Any(), "a@b.com", "octo", "hello").Return(nil)
	service.EXPECT().GetRepositorySubscriptions(gomock.Any(), "octo", "hello").Return([]*models.RepoSubscription{subscription(false)}, nil)
	service.EXPECT().GetUserSubscriptions(gomock.Any(), "a@b.com").Return([]*models.RepoSubscription{subscription(false)}, nil)
	service.EXPECT().UpdateNotificationStatus(gomock.Any(), "a@b.com", "octo", "hello", true).Return(subscription(true), nil)

	rs := newTestRouter(service)

	w, env := serve(rs, http.MethodDelete, "/api/subscription/repository/octo/hello?email=a@b.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Unsubscribed from octo/hello", env.Message)

	for _, target := range []string{"/api/subscription/repository/octo/hello", "/api/subscription/repository?email=a@b.com"} {
		w, env = serve(rs, http.MethodGet, target)
		require.Equal(t, http.StatusOK, w.Code, target)

		var subs []SubscriptionResponse
		require.NoError(t, json.Unmarshal(env.Data, &subs))
		assert.Len(t, subs, 1)
	}

	w, env = serve(rs, http.MethodPatch, "/api/subscription/repository/octo/hello/notifications?email=a@b.com&enabled=true")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Notifications enabled for octo/hello", env.Message)
}
