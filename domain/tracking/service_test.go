package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akeren/email-collector/domain/github"
	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/internal/models"
	apperrors "github.com/akeren/email-collector/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeReader struct {
	exists     bool
	err        error
	activities []github.Activity
	validated  int
}

func (f *fakeReader) ValidateRepository(context.Context, string, string) (bool, error) {
	f.validated++
	return f.exists, f.err
}

func (f *fakeReader) GetRepositoryActivities(context.Context, string, string, int) ([]github.Activity, error) {
	return f.activities, f.err
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(store RepositoryStore, reader ActivityReader) *service {
	s := NewService(log.NewLoggerWithJSONOutput(), store, reader).(*service)
	s.now = func() time.Time { return fixedNow }
	return s
}

func notTracked() error {
	return apperrors.NewNotFoundError("Repository octo/hello is not tracked", nil)
}

func TestGetOrCreateRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("returns existing row without calling GitHub", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := NewMockRepositoryStore(ctrl)
		reader := &fakeReader{}

		existing := &models.TrackedRepository{ID: 3, Owner: "octo", Name: "hello"}
		store.EXPECT().FindByOwnerAndName(ctx, "octo", "hello").Return(existing, nil)

		got, err := newTestService(store, reader).GetOrCreateRepository(ctx, " octo ", "hello ")
		require.NoError(t, err)
		assert.Same(t, existing, got)
		assert.Zero(t, reader.validated)
	})

	t.Run("creates after GitHub confirms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := NewMockRepositoryStore(ctrl)

		store.EXPECT().FindByOwnerAndName(ctx, "octo", "hello").Return(nil, notTracked())
		store.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, r *models.TrackedRepository) (*models.TrackedRepository, error) {
				r.ID = 9
				return r, nil
			})

		got, err := newTestService(store, &fakeReader{exists: true}).GetOrCreateRepository(ctx, "octo", "hello")
		require.NoError(t, err)
		assert.Equal(t, uint(9), got.ID)
		assert.Equal(t, "octo/hello", got.FullName())
	})

	t.Run("unknown repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := NewMockRepositoryStore(ctrl)
		store.EXPECT().FindByOwnerAndName(ctx, "octo", "nope").Return(nil, notTracked())

		_, err := newTestService(store, &fakeReader{exists: false}).GetOrCreateRepository(ctx, "octo", "nope")
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInvalidRequest))
		assert.Equal(t, "Repository octo/nope does not exist or is not accessible", apperrors.GetHumanReadableMessage(err))
	})

	t.Run("github outage passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := NewMockRepositoryStore(ctrl)
		store.EXPECT().FindByOwnerAndName(ctx, "octo", "hello").Return(nil, notTracked())

		outage := apperrors.NewServiceUnavailableError("Failed to fetch GitHub repository", nil)
		_, err := newTestService(store, &fakeReader{err: outage}).GetOrCreateRepository(ctx, "octo", "hello")
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeServiceUnavailable))
	})

	t.Run("creation race re-reads the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := NewMockRepositoryStore(ctrl)

		winner := &models.TrackedRepository{ID: 4, Owner: "octo", Name: "hello"}
		gomock.InOrder(
			store.EXPECT().FindByOwnerAndName(ctx, "octo", "hello").Return(nil, notTracked()),
			store.EXPECT().Create(ctx, gomock.Any()).Return(nil, apperrors.NewConflictError("dup", nil)),
			store.EXPECT().FindByOwnerAndName(ctx, "octo", "hello").Return(winner, nil),
		)

		got, err := newTestService(store, &fakeReader{exists: true}).GetOrCreateRepository(ctx, "octo", "hello")
		require.NoError(t, err)
		assert.Same(t, winner, got)
	})

	t.Run("database failure on lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := NewMockRepositoryStore(ctrl)
		store.EXPECT().FindByOwnerAndName(ctx, "octo", "hello").Return(nil, apperrors.NewDatabaseError("down", nil))

		reader := &fakeReader{exists: true}
		_, err := newTestService(store, reader).GetOrCreateRepository(ctx, "octo", "hello")
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeDatabaseError))
		assert.Zero(t, reader.validated)
	})
}

func TestCheckForNewActivity(t *testing.T) {
	ctx := context.Background()
	older := fixedNow.Add(-2 * time.Hour)
	newer := fixedNow.Add(-time.Hour)

	tests := []struct {
		name       string
		lastSeen   *time.Time
		activities []github.Activity
		want       bool
	}{
		{name: "first activity ever", lastSeen: nil, activities: []github.Activity{{CreatedAt: older}}, want: true},
		{name: "newer activity", lastSeen: &older, activities: []github.Activity{{CreatedAt: newer}, {CreatedAt: older}}, want: true},
		{name: "nothing newer", lastSeen: &newer, activities: []github.Activity{{CreatedAt: newer}}, want: false},
		{name: "no activity at all", lastSeen: nil, activities: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := NewMockRepositoryStore(ctrl)

			repo := &models.TrackedRepository{ID: 1, Owner: "octo", Name: "hello", LastActivityAt: tt.lastSeen}
			store.EXPECT().Save(ctx, repo).Return(nil)

			found, err := newTestService(store, &fakeReader{activities: tt.activities}).CheckForNewActivity(ctx, repo, 10)
			require.NoError(t, err)
			assert.Equal(t, tt.want, found)

			require.NotNil(t, repo.LastCheckedAt)
			assert.Equal(t, fixedNow, *repo.LastCheckedAt)

			if tt.want {
				assert.Equal(t, tt.activities[0].CreatedAt, *repo.LastActivityAt)
				assert.Equal(t, fixedNow, *repo.LastDetectedAt)
				assert.Equal(t, 1, repo.ActivityCount)
			} else {
				assert.Nil(t, repo.LastDetectedAt)
				assert.Zero(t, repo.ActivityCount)
			}
		})
	}
}

func TestCheckForNewActivity_FetchFailureStillRecordsCheck(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := NewMockRepositoryStore(ctrl)

	repo := &models.TrackedRepository{ID: 1, Owner: "octo", Name: "hello"}
	store.EXPECT().Save(ctx, repo).Return(nil)

	fetchErr := errors.New("github down")
	found, err := newTestService(store, &fakeReader{err: fetchErr}).CheckForNewActivity(ctx, repo, 10)

	assert.ErrorIs(t, err, fetchErr)
	assert.False(t, found)
	assert.NotNil(t, repo.LastCheckedAt)
}

func TestGetRepositoriesToCheck_UsesCutoff(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := NewMockRepositoryStore(ctrl)

	due := []*models.TrackedRepository{{ID: 1}}
	store.EXPECT().FindDueForCheck(ctx, fixedNow.Add(-30*time.Minute)).Return(due, nil)

	got, err := newTestService(store, &fakeReader{}).GetRepositoriesToCheck(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, due, got)
}
