package subscription

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/subtrackhq/subtrack/internal/models"
	"github.com/subtrackhq/subtrack/internal/stats"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateSubscription(ctx context.Context, sub models.Subscription) (*models.Subscription, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}
func (m *RepoMock) ListSubscriptions(ctx context.Context, userID string) ([]models.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Subscription), args.Error(1)
}
func (m *RepoMock) UpdateSubscription(ctx context.Context, id, userID string, patch models.SubscriptionPatch) (*models.Subscription, error) {
	args := m.Called(ctx, id, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}
func (m *RepoMock) RemoveSubscription(ctx context.Context, id, userID string) (int64, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(int64), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}
func (m *CacheMock) Invalidate(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newService(repo *RepoMock, cache *CacheMock) *Service {
	return New(repo, cache, stats.DefaultRates(), newNoopLogger())
}

func TestService_List(t *testing.T) {
	subs := []models.Subscription{
		{ID: "sub-1", UserID: "user-1", Name: "Netflix", PriceMonthly: "15.99", Currency: "USD", Active: true},
	}

	t.Run("промах кеша читает базу и кеширует", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		cache.On("Get", mock.Anything, "subscriptions:user-1", mock.Anything).Return(false, nil).Once()
		repo.On("ListSubscriptions", mock.Anything, "user-1").Return(subs, nil).Once()
		cache.On("Set", mock.Anything, "subscriptions:user-1", subs, time.Hour).Return(nil).Once()

		got, err := newService(repo, cache).List(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, subs, got)

		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("попадание в кеш не ходит в базу", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		cache.On("Get", mock.Anything, "subscriptions:user-1", mock.Anything).Return(true, nil).Once()

		_, err := newService(repo, cache).List(context.Background(), "user-1")
		require.NoError(t, err)

		repo.AssertNotCalled(t, "ListSubscriptions")
		cache.AssertExpectations(t)
	})

	t.Run("ошибка базы возвращается наружу", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		cache.On("Get", mock.Anything, "subscriptions:user-1", mock.Anything).Return(false, nil).Once()
		repo.On("ListSubscriptions", mock.Anything, "user-1").Return(nil, errors.New("db error")).Once()

		_, err := newService(repo, cache).List(context.Background(), "user-1")
		assert.Error(t, err)
	})
}

func TestService_Create(t *testing.T) {
	t.Run("подставляет значения по умолчанию", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)

		empty := ""
		repo.On("CreateSubscription", mock.Anything, mock.MatchedBy(func(s models.Subscription) bool {
			return s.ID != "" &&
				s.UserID == "user-1" &&
				s.Currency == "USD" &&
				s.Active &&
				s.Category == nil
		})).Return(&models.Subscription{ID: "sub-1"}, nil).Once()
		cache.On("Invalidate", mock.Anything, "subscriptions:user-1").Return(nil).Once()

		created, err := newService(repo, cache).Create(context.Background(), "user-1", models.SubscriptionInput{
			Name:         "Netflix",
			PriceMonthly: "15.99",
			Category:     &empty,
		})
		require.NoError(t, err)
		assert.Equal(t, "sub-1", created.ID)

		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("сохраняет явные значения", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)

		inactive := false
		category := "media"
		repo.On("CreateSubscription", mock.Anything, mock.MatchedBy(func(s models.Subscription) bool {
			return s.Currency == "EUR" && !s.Active && s.Category != nil && *s.Category == "media"
		})).Return(&models.Subscription{ID: "sub-2"}, nil).Once()
		cache.On("Invalidate", mock.Anything, "subscriptions:user-1").Return(nil).Once()

		_, err := newService(repo, cache).Create(context.Background(), "user-1", models.SubscriptionInput{
			Name:         "Spotify",
			PriceMonthly: "9.99",
			Currency:     "EUR",
			Category:     &category,
			Active:       &inactive,
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("пустые обязательные поля дают ErrInvalidInput", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)

		_, err := newService(repo, cache).Create(context.Background(), "user-1", models.SubscriptionInput{})
		assert.ErrorIs(t, err, ErrInvalidInput)
		repo.AssertNotCalled(t, "CreateSubscription")
	})
}

func TestService_Update(t *testing.T) {
	t.Run("чужая подписка дает nil без ошибки", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		repo.On("UpdateSubscription", mock.Anything, "sub-1", "user-1",
			mock.AnythingOfType("models.SubscriptionPatch")).Return(nil, nil).Once()
		cache.On("Invalidate", mock.Anything, "subscriptions:user-1").Return(nil).Once()

		updated, err := newService(repo, cache).Update(context.Background(), "user-1", "sub-1", models.SubscriptionPatch{})
		require.NoError(t, err)
		assert.Nil(t, updated)

		cache.AssertExpectations(t)
	})

	t.Run("успешное обновление инвалидирует кеш", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		name := "Netflix Premium"
		repo.On("UpdateSubscription", mock.Anything, "sub-1", "user-1",
			mock.AnythingOfType("models.SubscriptionPatch")).
			Return(&models.Subscription{ID: "sub-1", Name: name}, nil).Once()
		cache.On("Invalidate", mock.Anything, "subscriptions:user-1").Return(nil).Once()

		updated, err := newService(repo, cache).Update(context.Background(), "user-1", "sub-1",
			models.SubscriptionPatch{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, updated.Name)

		cache.AssertExpectations(t)
	})
}

func TestService_Remove(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	repo.On("RemoveSubscription", mock.Anything, "sub-missing", "user-1").Return(int64(0), nil).Once()
	cache.On("Invalidate", mock.Anything, "subscriptions:user-1").Return(nil).Once()

	count, err := newService(repo, cache).Remove(context.Background(), "user-1", "sub-missing")
	require.NoError(t, err)
	assert.Zero(t, count)

	cache.AssertExpectations(t)
}

func TestService_Summary(t *testing.T) {
	subs := []models.Subscription{
		{ID: "sub-1", PriceMonthly: "10.00", Currency: "USD", Active: true},
		{ID: "sub-2", PriceMonthly: "10.00", Currency: "EUR", Active: true},
	}

	repo := new(RepoMock)
	cache := new(CacheMock)
	cache.On("Get", mock.Anything, "subscriptions:user-1", mock.Anything).Return(false, nil).Once()
	repo.On("ListSubscriptions", mock.Anything, "user-1").Return(subs, nil).Once()
	cache.On("Set", mock.Anything, "subscriptions:user-1", subs, time.Hour).Return(nil).Once()

	summary, err := newService(repo, cache).Summary(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "21.00", summary.MonthlyTotal)
	assert.Equal(t, 2, summary.ActiveCount)
}

func TestService_Import(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)

	repo.On("CreateSubscription", mock.Anything, mock.MatchedBy(func(s models.Subscription) bool {
		return s.Name == "Netflix"
	})).Return(&models.Subscription{ID: "sub-1"}, nil).Once()
	repo.On("CreateSubscription", mock.Anything, mock.MatchedBy(func(s models.Subscription) bool {
		return s.Name == "Broken"
	})).Return(nil, errors.New("db error")).Once()
	cache.On("Invalidate", mock.Anything, "subscriptions:user-1").Return(nil)

	records := []models.SubscriptionInput{
		{Name: "Netflix", PriceMonthly: "15.99"},
		{Name: "Broken", PriceMonthly: "9.99"},
		{Name: "", PriceMonthly: ""}, // не проходит валидацию
	}

	result, err := newService(repo, cache).Import(context.Background(), "user-1", records)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 2, result.Failed)

	repo.AssertExpectations(t)
}
