package repository

import (
	"context"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/subtrackhq/subtrack/internal/models"
)

// setupTestDatabase поднимает контейнер PostgreSQL, создает схему
// и возвращает подключенное хранилище. Без Docker тест пропускается.
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForAll(
				wait.ForListeningPort(nat.Port("5432/tcp")),
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2),
			).WithDeadline(3*time.Minute),
		),
	)
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Подключаемся с ретраями: контейнер может принять соединение не сразу
	var storage *Storage
	for range 10 {
		storage, err = New(dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err, "failed to create storage after retries")

	_, err = storage.DB.Exec(testSchema)
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.DB.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
	return storage, cleanup
}

const testSchema = `
CREATE TABLE users (
    id UUID PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    email_verified BOOLEAN NOT NULL DEFAULT FALSE,
    image TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX user_email_idx ON users (email);

CREATE TABLE accounts (
    id UUID PRIMARY KEY,
    account_id TEXT NOT NULL,
    provider_id TEXT NOT NULL,
    user_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    access_token TEXT,
    refresh_token TEXT,
    id_token TEXT,
    access_token_expires_at TIMESTAMPTZ,
    refresh_token_expires_at TIMESTAMPTZ,
    scope TEXT,
    password TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE sessions (
    id UUID PRIMARY KEY,
    token TEXT NOT NULL,
    user_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    expires_at TIMESTAMPTZ NOT NULL,
    ip_address TEXT,
    user_agent TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX session_token_idx ON sessions (token);

CREATE TABLE subscriptions (
    id UUID PRIMARY KEY,
    user_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    price_monthly NUMERIC(10, 2) NOT NULL,
    currency TEXT NOT NULL DEFAULT 'USD',
    category TEXT,
    next_payment_date TIMESTAMPTZ,
    active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя и возвращает его id.
func (f *TestDataFactory) CreateUser(t *testing.T, name, email string) string {
	id := uuid.NewString()
	_, err := f.storage.DB.Exec(`INSERT INTO users (id, name, email) VALUES ($1, $2, $3)`,
		id, name, email)
	require.NoError(t, err)
	return id
}

// CreateSubscription создает тестовую подписку и возвращает её id.
func (f *TestDataFactory) CreateSubscription(t *testing.T, userID, name, price, currency string, active bool) string {
	id := uuid.NewString()
	_, err := f.storage.DB.Exec(`INSERT INTO subscriptions
		(id, user_id, name, price_monthly, currency, active)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		id, userID, name, price, currency, active)
	require.NoError(t, err)
	return id
}

// CreateSession создает тестовую сессию и возвращает её токен.
func (f *TestDataFactory) CreateSession(t *testing.T, userID string, expiresAt time.Time) string {
	token := uuid.NewString()
	_, err := f.storage.DB.Exec(`INSERT INTO sessions (id, token, user_id, expires_at)
		VALUES ($1, $2, $3, $4)`,
		uuid.NewString(), token, userID, expiresAt)
	require.NoError(t, err)
	return token
}

// GetTestSubscription возвращает стандартную тестовую подписку.
func GetTestSubscription(userID string) models.Subscription {
	return models.Subscription{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         "Netflix",
		PriceMonthly: "15.99",
		Currency:     "USD",
		Active:       true,
	}
}
