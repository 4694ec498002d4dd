// Package subscription содержит бизнес-логику управления подписками:
// CRUD с проверкой владельца, агрегированные срезы и экспорт/импорт.
// Список подписок пользователя кешируется и инвалидируется мутациями.
package subscription

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/subtrackhq/subtrack/internal/lib/sl"
	"github.com/subtrackhq/subtrack/internal/models"
	"github.com/subtrackhq/subtrack/internal/stats"
)

// listCacheTTL — время жизни закешированного списка подписок.
const listCacheTTL = time.Hour

// ErrInvalidInput — запись не проходит минимальные требования создания:
// непустое название и заданная цена. Отдельные записи импорта падают
// именно с этой ошибкой.
var ErrInvalidInput = errors.New("name and priceMonthly are required")

// Repository определяет методы для работы с подписками в хранилище.
// Все операции уже фильтруются по владельцу на уровне SQL.
type Repository interface {
	CreateSubscription(ctx context.Context, sub models.Subscription) (*models.Subscription, error)
	ListSubscriptions(ctx context.Context, userID string) ([]models.Subscription, error)
	UpdateSubscription(ctx context.Context, id, userID string, patch models.SubscriptionPatch) (*models.Subscription, error)
	RemoveSubscription(ctx context.Context, id, userID string) (int64, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Service реализует бизнес-логику работы с подписками, включая кеширование.
type Service struct {
	repo  Repository
	cache Cache
	rates stats.RateTable
	log   *slog.Logger
}

// New создает новый экземпляр Service с заданной таблицей курсов.
func New(repo Repository, cache Cache, rates stats.RateTable, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		rates: rates,
		log:   log,
	}
}

func listCacheKey(userID string) string {
	return "subscriptions:" + userID
}

// List возвращает подписки пользователя, новые первыми.
// Кеш-попадание экономит запрос к базе; ошибка кеша не фатальна.
func (s *Service) List(ctx context.Context, userID string) ([]models.Subscription, error) {
	cacheKey := listCacheKey(userID)
	var cached []models.Subscription
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read list cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return cached, nil
	}

	subs, err := s.repo.ListSubscriptions(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, cacheKey, subs, listCacheTTL); err != nil {
		s.log.Warn("failed to cache list", slog.String("key", cacheKey), sl.Err(err))
	}
	return subs, nil
}

// Create создает новую подписку пользователя. Пустая валюта заменяется
// на "USD", отсутствующий флаг Active — на true, пустая категория — на nil.
func (s *Service) Create(ctx context.Context, userID string, input models.SubscriptionInput) (*models.Subscription, error) {
	if input.Name == "" || input.PriceMonthly == "" {
		return nil, ErrInvalidInput
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}
	active := true
	if input.Active != nil {
		active = *input.Active
	}
	category := input.Category
	if category != nil && *category == "" {
		category = nil
	}

	sub := models.Subscription{
		ID:              uuid.NewString(),
		UserID:          userID,
		Name:            input.Name,
		PriceMonthly:    input.PriceMonthly,
		Currency:        currency,
		Category:        category,
		NextPaymentDate: input.NextPaymentDate,
		Active:          active,
	}

	created, err := s.repo.CreateSubscription(ctx, sub)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new subscription", slog.String("id", created.ID))

	s.invalidateList(ctx, userID)
	return created, nil
}

// Update применяет частичное обновление к подписке пользователя.
// Чужая или отсутствующая подписка даёт (nil, nil) — это не ошибка.
func (s *Service) Update(ctx context.Context, userID, id string, patch models.SubscriptionPatch) (*models.Subscription, error) {
	updated, err := s.repo.UpdateSubscription(ctx, id, userID, patch)
	if err != nil {
		return nil, err
	}
	if updated != nil {
		s.log.Info("updated subscription", slog.String("id", updated.ID))
	}

	s.invalidateList(ctx, userID)
	return updated, nil
}

// Remove удаляет подписку по id и владельцу. Идемпотентна:
// отсутствующий id — успех с нулём удалённых строк.
func (s *Service) Remove(ctx context.Context, userID, id string) (int64, error) {
	count, err := s.repo.RemoveSubscription(ctx, id, userID)
	if err != nil {
		return 0, err
	}

	s.invalidateList(ctx, userID)
	return count, nil
}

// Summary собирает агрегированный срез по текущему списку подписок.
func (s *Service) Summary(ctx context.Context, userID string) (*stats.Summary, error) {
	subs, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := stats.Build(subs, s.rates)
	return &summary, nil
}

// Export возвращает полный список подписок пользователя для выгрузки в файл.
func (s *Service) Export(ctx context.Context, userID string) ([]models.Subscription, error) {
	return s.List(ctx, userID)
}

// Import вставляет записи по одной через обычный путь создания.
// Идентификаторы и метки времени из файла игнорируются; неудачные записи
// подсчитываются, успешные не откатываются.
func (s *Service) Import(ctx context.Context, userID string, records []models.SubscriptionInput) (models.ImportResult, error) {
	var result models.ImportResult
	for _, record := range records {
		if _, err := s.Create(ctx, userID, record); err != nil {
			s.log.Warn("failed to import record", slog.String("name", record.Name), sl.Err(err))
			result.Failed++
			continue
		}
		result.Imported++
	}
	s.log.Info("import finished",
		slog.Int("imported", result.Imported), slog.Int("failed", result.Failed))
	return result, nil
}

func (s *Service) invalidateList(ctx context.Context, userID string) {
	cacheKey := listCacheKey(userID)
	if err := s.cache.Invalidate(ctx, cacheKey); err != nil {
		s.log.Warn("failed to invalidate list cache", slog.String("key", cacheKey), sl.Err(err))
	}
}
