package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/akeren/email-collector/domain/tracking"
	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/internal/models"
	apperrors "github.com/akeren/email-collector/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	repository *MockSubscriptionRepository
	tracker    *tracking.MockService
	service    Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		repository: NewMockSubscriptionRepository(ctrl),
		tracker:    tracking.NewMockService(ctrl),
	}
	s := NewService(log.NewLoggerWithJSONOutput(), f.repository, f.tracker).(*service)
	s.now = func() time.Time { return fixedNow }
	f.service = s
	return f
}

func hello() *models.TrackedRepository {
	return &models.TrackedRepository{ID: 7, Owner: "octo", Name: "hello"}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		message string
	}{
		{in: " User@Example.com ", want: "user@example.com"},
		{in: "", message: "Email is required"},
		{in: "   ", message: "Email is required"},
		{in: "not-an-email", message: "Invalid email format"},
	}

	for _, tt := range tests {
		got, err := ValidateEmail(tt.in)
		if tt.message == "" {
			require.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, got)
			continue
		}
		require.Error(t, err, tt.in)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInvalidRequest))
		assert.Equal(t, tt.message, apperrors.GetHumanReadableMessage(err))
	}
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("creates disabled subscription", func(t *testing.T) {
		f := newFixture(t)
		f.tracker.EXPECT().GetOrCreateRepository(ctx, "octo", "hello").Return(hello(), nil)
		f.repository.EXPECT().FindByEmailAndRepository(ctx, "a@b.com", uint(7)).
			Return(nil, apperrors.NewNotFoundError("subscription not found", nil))
		f.repository.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, sub *models.RepoSubscription) (*models.RepoSubscription, error) {
				sub.ID = 1
				return sub, nil
			})

		sub, err := f.service.Subscribe(ctx, "A@b.com", "octo", "hello")
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", sub.Email)
		assert.False(t, sub.NotificationsEnabled)
		assert.Equal(t, fixedNow, sub.SubscribedAt)
		assert.Equal(t, "octo/hello", sub.Repository.FullName())
	})

	t.Run("invalid email never touches GitHub", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Subscribe(ctx, "nope", "octo", "hello")
		assert.Equal(t, "Invalid email format", apperrors.GetHumanReadableMessage(err))
	})

	t.Run("unknown repository is a conflict", func(t *testing.T) {
		f := newFixture(t)
		f.tracker.EXPECT().GetOrCreateRepository(ctx, "octo", "nope").
			Return(nil, apperrors.NewInvalidRequestError("Repository octo/nope does not exist or is not accessible", nil))

		_, err := f.service.Subscribe(ctx, "a@b.com", "octo", "nope")
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
		assert.Equal(t, "Invalid repository: octo/nope", apperrors.GetHumanReadableMessage(err))
	})

	t.Run("github outage stays unavailable", func(t *testing.T) {
		f := newFixture(t)
		f.tracker.EXPECT().GetOrCreateRepository(ctx, "octo", "hello").
			Return(nil, apperrors.NewServiceUnavailableError("Failed to fetch GitHub repository", nil))

		_, err := f.service.Subscribe(ctx, "a@b.com", "octo", "hello")
		assert.Equal(t, 503, apperrors.HTTPStatusCode(err))
	})

	t.Run("already subscribed", func(t *testing.T) {
		f := newFixture(t)
		f.tracker.EXPECT().GetOrCreateRepository(ctx, "octo", "hello").Return(hello(), nil)
		f.repository.EXPECT().FindByEmailAndRepository(ctx, "a@b.com", uint(7)).Return(&models.RepoSubscription{ID: 1}, nil)

		_, err := f.service.Subscribe(ctx, "a@b.com", "octo", "hello")
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
		assert.Equal(t, "Already subscribed to octo/hello", apperrors.GetHumanReadableMessage(err))
	})

	t.Run("lost insert race", func(t *testing.T) {
		f := newFixture(t)
		f.tracker.EXPECT().GetOrCreateRepository(ctx, "octo", "hello").Return(hello(), nil)
		f.repository.EXPECT().FindByEmailAndRepository(ctx, "a@b.com", uint(7)).
			Return(nil, apperrors.NewNotFoundError("subscription not found", nil))
		f.repository.EXPECT().Create(ctx, gomock.Any()).Return(nil, apperrors.NewConflictError("dup", nil))

		_, err := f.service.Subscribe(ctx, "a@b.com", "octo", "hello")
		assert.Equal(t, "Already subscribed to octo/hello", apperrors.GetHumanReadableMessage(err))
	})
}

func TestUnsubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("removes subscription", func(t *testing.T) {
		f := newFixture(t)
		f.tracker.EXPECT().FindRepository(ctx, "octo", "hello").Return(hello(), nil)
		f.repository.EXPECT().DeleteByEmailAndRepository(ctx, "a@b.com", uint(7)).Return(true, nil)

		assert.NoError(t, f.service.Unsubscribe(ctx, "a@b.com", "octo", "hello"))
	})

	t.Run("untracked repository never creates one", func(t *testing.T) {
		f := newFixture(t)
		f.tracker.EXPECT().FindRepository(ctx, "octo", "ghost").
			Return(nil, apperrors.NewNotFoundError("Repository octo/ghost is not tracked", nil))

		err := f.service.Unsubscribe(ctx, "a@b.com", "octo", "ghost")
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
		assert.Equal(t, "Not subscribed to octo/ghost", apperrors.GetHumanReadableMessage(err))
	})

	t.Run("no row deleted", func(t *testing.T) {
		f := newFixture(t)
		f.tracker.EXPECT().FindRepository(ctx, "octo", "hello").Return(hello(), nil)
		f.repository.EXPECT().DeleteByEmailAndRepository(ctx, "a@b.com", uint(7)).Return(false, nil)

		err := f.service.Unsubscribe(ctx, "a@b.com", "octo", "hello")
		assert.Equal(t, "Not subscribed to octo/hello", apperrors.GetHumanReadableMessage(err))
	})
}

func TestGetRepositorySubscriptions_UntrackedIsEmpty(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.tracker.EXPECT().FindRepository(ctx, "octo", "ghost").
		Return(nil, apperrors.NewNotFoundError("not tracked", nil))

	subs, err := f.service.GetRepositorySubscriptions(ctx, "octo", "ghost")
	require.NoError(t, err)
	assert.NotNil(t, subs)
	assert.Empty(t, subs)
}

func TestUpdateNotificationStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("enabling resets last notification", func(t *testing.T) {
		f := newFixture(t)
		notified := fixedNow.Add(-time.Hour)
		sub := &models.RepoSubscription{ID: 1, Email: "a@b.com", RepositoryID: 7, LastNotificationAt: &notified}

		f.tracker.EXPECT().FindRepository(ctx, "octo", "hello").Return(hello(), nil)
		f.repository.EXPECT().FindByEmailAndRepository(ctx, "a@b.com", uint(7)).Return(sub, nil)
		f.repository.EXPECT().Save(ctx, sub).Return(nil)

		got, err := f.service.UpdateNotificationStatus(ctx, "a@b.com", "octo", "hello", true)
		require.NoError(t, err)
		assert.True(t, got.NotificationsEnabled)
		assert.Nil(t, got.LastNotificationAt)
	})

	t.Run("disabling keeps last notification", func(t *testing.T) {
		f := newFixture(t)
		notified := fixedNow.Add(-time.Hour)
		sub := &models.RepoSubscription{ID: 1, NotificationsEnabled: true, LastNotificationAt: &notified}

		f.tracker.EXPECT().FindRepository(ctx, "octo", "hello").Return(hello(), nil)
		f.repository.EXPECT().FindByEmailAndRepository(ctx, "a@b.com", uint(7)).Return(sub, nil)
		f.repository.EXPECT().Save(ctx, sub).Return(nil)

		got, err := f.service.UpdateNotificationStatus(ctx, "a@b.com", "octo", "hello", false)
		require.NoError(t, err)
		assert.False(t, got.NotificationsEnabled)
		assert.Equal(t, &notified, got.LastNotificationAt)
	})

	t.Run("missing subscription", func(t *testing.T) {
		f := newFixture(t)
		f.tracker.EXPECT().FindRepository(ctx, "octo", "hello").Return(hello(), nil)
		f.repository.EXPECT().FindByEmailAndRepository(ctx, "a@b.com", uint(7)).
			Return(nil, apperrors.NewNotFoundError("subscription not found", nil))

		_, err := f.service.UpdateNotificationStatus(ctx, "a@b.com", "octo", "hello", true)
		assert.Equal(t, 404, apperrors.HTTPStatusCode(err))
		assert.Equal(t, "No subscription found for octo/hello", apperrors.GetHumanReadableMessage(err))
	})
}

func TestGetSubscriptionsNeedingNotification(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	active := &models.RepoSubscription{ID: 1, NotificationsEnabled: true}
	active.Repository.MarkActivity(fixedNow.Add(-time.Hour), fixedNow)

	quiet := &models.RepoSubscription{ID: 2, NotificationsEnabled: true}

	f.repository.EXPECT().FindNotificationsEnabled(ctx).Return([]*models.RepoSubscription{active, quiet}, nil)

	got, err := f.service.GetSubscriptionsNeedingNotification(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)
}

func TestMarkNotified(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	sub := &models.RepoSubscription{ID: 1}
	f.repository.EXPECT().Save(ctx, sub).Return(nil)

	require.NoError(t, f.service.MarkNotified(ctx, sub))
	require.NotNil(t, sub.LastNotificationAt)
	assert.Equal(t, fixedNow, *sub.LastNotificationAt)
}
