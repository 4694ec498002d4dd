// Package auth содержит бизнес-логику регистрации, входа и серверных сессий.
//
// Сессия — непрозрачный токен, хранящийся в базе; выход из системы удаляет
// строку и тем самым мгновенно отзывает токен. Учётные данные (bcrypt-хэш)
// лежат в записи Account с provider_id "credential".
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/subtrackhq/subtrack/internal/lib/password"
	"github.com/subtrackhq/subtrack/internal/lib/sl"
	"github.com/subtrackhq/subtrack/internal/lib/token"
	"github.com/subtrackhq/subtrack/internal/models"
	"github.com/subtrackhq/subtrack/internal/storage/repository"
)

// Ошибки бизнес-уровня. HTTP-слой сопоставляет их со статусами и текстами:
// вход всегда отвечает обобщённым сообщением, регистрация — исходным.
var (
	// ErrEmailTaken — пользователь с такой почтой уже зарегистрирован.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials — неизвестная почта или неверный пароль.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrSessionNotFound — токен не соответствует живой сессии.
	ErrSessionNotFound = errors.New("session not found")
)

// sessionCacheTTL ограничивает время жизни сессии в кеше,
// чтобы удаление строки в базе быстро становилось наблюдаемым.
const sessionCacheTTL = time.Hour

// Repository определяет методы хранилища, нужные сервису аутентификации.
type Repository interface {
	CreateUser(ctx context.Context, user models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	CreateAccount(ctx context.Context, account models.Account) error
	GetCredentialAccount(ctx context.Context, userID string) (*models.Account, error)
	CreateSession(ctx context.Context, session models.Session) error
	GetSessionByToken(ctx context.Context, token string) (*models.Session, error)
	DeleteSessionByToken(ctx context.Context, token string) (int64, error)
}

// Cache описывает методы для кэширования сессий.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Service реализует регистрацию, вход, выход и проверку сессии.
type Service struct {
	repo       Repository
	cache      Cache
	log        *slog.Logger
	sessionTTL time.Duration
}

// New создает новый экземпляр Service.
func New(repo Repository, cache Cache, log *slog.Logger, sessionTTL time.Duration) *Service {
	return &Service{
		repo:       repo,
		cache:      cache,
		log:        log,
		sessionTTL: sessionTTL,
	}
}

func sessionCacheKey(token string) string {
	return "session:" + token
}

// Register создает пользователя с парольной учётной записью и открывает сессию.
// Повторная почта возвращает ErrEmailTaken.
func (s *Service) Register(ctx context.Context, name, email, rawPassword, ip, userAgent string) (*models.SessionPayload, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	account := models.Account{
		ID:         uuid.NewString(),
		AccountID:  user.ID,
		ProviderID: "credential",
		UserID:     user.ID,
		Password:   &hashed,
	}
	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	s.log.Info("registered new user", slog.String("user_id", user.ID))
	return s.openSession(ctx, user.ID, ip, userAgent)
}

// Login проверяет пароль пользователя и открывает новую сессию.
// Любая причина отказа сворачивается в ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, rawPassword, ip, userAgent string) (*models.SessionPayload, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	account, err := s.repo.GetCredentialAccount(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if account.Password == nil {
		return nil, ErrInvalidCredentials
	}
	if err := password.CompareHash(*account.Password, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.log.Info("user logged in", slog.String("user_id", user.ID))
	return s.openSession(ctx, user.ID, ip, userAgent)
}

// Logout уничтожает сессию по токену. Операция идемпотентна:
// отсутствующая сессия не считается ошибкой.
func (s *Service) Logout(ctx context.Context, tokenStr string) error {
	if err := s.cache.Invalidate(ctx, sessionCacheKey(tokenStr)); err != nil {
		s.log.Warn("failed to invalidate session cache", sl.Err(err))
	}
	if _, err := s.repo.DeleteSessionByToken(ctx, tokenStr); err != nil {
		return err
	}
	return nil
}

// GetSession возвращает сессию с пользователем по токену.
// Истёкшая сессия удаляется и считается отсутствующей.
func (s *Service) GetSession(ctx context.Context, tokenStr string) (*models.SessionPayload, error) {
	cacheKey := sessionCacheKey(tokenStr)
	var cached models.SessionPayload
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read session cache", sl.Err(err))
	}
	if found && !cached.Session.Expired(time.Now()) {
		return &cached, nil
	}

	session, err := s.repo.GetSessionByToken(ctx, tokenStr)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.Expired(time.Now()) {
		if _, err := s.repo.DeleteSessionByToken(ctx, tokenStr); err != nil {
			s.log.Warn("failed to delete expired session", sl.Err(err))
		}
		return nil, ErrSessionNotFound
	}

	user, err := s.repo.GetUser(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	payload := &models.SessionPayload{User: *user, Session: *session}
	s.cacheSession(ctx, payload)
	return payload, nil
}

// openSession создаёт строку сессии и собирает ответ аутентификации.
func (s *Service) openSession(ctx context.Context, userID, ip, userAgent string) (*models.SessionPayload, error) {
	const op = "auth.openSession"

	tokenStr, err := token.New(token.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	session := models.Session{
		ID:        uuid.NewString(),
		Token:     tokenStr,
		UserID:    userID,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if ip != "" {
		session.IPAddress = &ip
	}
	if userAgent != "" {
		session.UserAgent = &userAgent
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	payload := &models.SessionPayload{User: *user, Session: session}
	s.cacheSession(ctx, payload)
	return payload, nil
}

func (s *Service) cacheSession(ctx context.Context, payload *models.SessionPayload) {
	ttl := time.Until(payload.Session.ExpiresAt)
	if ttl > sessionCacheTTL {
		ttl = sessionCacheTTL
	}
	if ttl <= 0 {
		return
	}
	cacheKey := sessionCacheKey(payload.Session.Token)
	if err := s.cache.Set(ctx, cacheKey, payload, ttl); err != nil {
		s.log.Warn("failed to cache session", slog.String("key", cacheKey), sl.Err(err))
	}
}
