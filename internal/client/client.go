// Package client реализует типизированный Go-клиент SubTrack API.
//
// Клиент ходит на единственный HTTP-эндпоинт сервиса, аутентифицируется
// токеном сессии через заголовок Authorization и держит список подписок
// в явно переданном ListCache: чтение обслуживается из кеша, любая
// мутация его сбрасывает, следующий Subscriptions перечитает с сервера.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/subtrackhq/subtrack/internal/lib/sl"
	"github.com/subtrackhq/subtrack/internal/models"
	"github.com/subtrackhq/subtrack/internal/stats"
)

// envelope — конверт ответа сервера. Data остаётся сырым JSON
// и декодируется в конкретный тип уже на месте вызова.
type envelope struct {
	Status string          `json:"status"`
	Error  string          `json:"error,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Client — типизированный клиент SubTrack API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *ListCache
	log        *slog.Logger

	mu    sync.Mutex
	token string
}

// New создает Client для API по адресу baseURL с явным кешем списка.
func New(baseURL string, cache *ListCache, log *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache,
		log:        log,
	}
}

// SetToken устанавливает токен сессии для последующих запросов.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token возвращает текущий токен сессии.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Register регистрирует пользователя и запоминает токен открытой сессии.
func (c *Client) Register(ctx context.Context, name, email, password string) (*models.SessionPayload, error) {
	const op = "client.Register"

	body := map[string]string{"name": name, "email": email, "password": password}
	var payload models.SessionPayload
	if err := c.call(ctx, http.MethodPost, "/api/v1/auth/register", body, &payload); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.SetToken(payload.Session.Token)
	c.cache.Invalidate()
	return &payload, nil
}

// Login выполняет вход и запоминает токен открытой сессии.
func (c *Client) Login(ctx context.Context, email, password string) (*models.SessionPayload, error) {
	const op = "client.Login"

	body := map[string]string{"email": email, "password": password}
	var payload models.SessionPayload
	if err := c.call(ctx, http.MethodPost, "/api/v1/auth/login", body, &payload); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.SetToken(payload.Session.Token)
	c.cache.Invalidate()
	return &payload, nil
}

// Logout уничтожает сессию на сервере и забывает токен.
func (c *Client) Logout(ctx context.Context) error {
	const op = "client.Logout"

	if err := c.call(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	c.SetToken("")
	c.cache.Invalidate()
	return nil
}

// Session возвращает текущую сессию. Любой сбой — транспортный или
// серверный — деградирует до nil: вызывающий видит «не вошёл»,
// подробности остаются в логе.
func (c *Client) Session(ctx context.Context) *models.SessionPayload {
	const op = "client.Session"

	var payload models.SessionPayload
	if err := c.call(ctx, http.MethodGet, "/api/v1/auth/session", nil, &payload); err != nil {
		c.log.Debug("session fetch failed, treating as signed out",
			sl.Op(op), sl.Err(err))
		return nil
	}
	if payload.Session.Token == "" {
		return nil
	}
	return &payload
}

// Subscriptions возвращает список подписок. Повторные вызовы
// обслуживаются из кеша до первой мутации.
func (c *Client) Subscriptions(ctx context.Context) ([]models.Subscription, error) {
	const op = "client.Subscriptions"

	if subs, ok := c.cache.Get(); ok {
		return subs, nil
	}

	var subs []models.Subscription
	if err := c.call(ctx, http.MethodGet, "/api/v1/subscriptions", nil, &subs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.cache.Set(subs)
	return subs, nil
}

// CreateSubscription создает подписку и сбрасывает кеш списка.
func (c *Client) CreateSubscription(ctx context.Context, input models.SubscriptionInput) (*models.Subscription, error) {
	const op = "client.CreateSubscription"

	var sub models.Subscription
	if err := c.call(ctx, http.MethodPost, "/api/v1/subscriptions", input, &sub); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.cache.Invalidate()
	return &sub, nil
}

// UpdateSubscription частично обновляет подписку и сбрасывает кеш списка.
// Отсутствующая или чужая подписка возвращает nil без ошибки.
func (c *Client) UpdateSubscription(ctx context.Context, id string, patch models.SubscriptionPatch) (*models.Subscription, error) {
	const op = "client.UpdateSubscription"

	var sub *models.Subscription
	if err := c.call(ctx, http.MethodPatch, "/api/v1/subscriptions/"+id, patch, &sub); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.cache.Invalidate()
	return sub, nil
}

// RemoveSubscription удаляет подписку и сбрасывает кеш списка.
func (c *Client) RemoveSubscription(ctx context.Context, id string) error {
	const op = "client.RemoveSubscription"

	if err := c.call(ctx, http.MethodDelete, "/api/v1/subscriptions/"+id, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	c.cache.Invalidate()
	return nil
}

// Summary возвращает сводку расходов пользователя.
func (c *Client) Summary(ctx context.Context) (*stats.Summary, error) {
	const op = "client.Summary"

	var result stats.Summary
	if err := c.call(ctx, http.MethodGet, "/api/v1/subscriptions/summary", nil, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// Export выгружает подписки. Ответ этого эндпоинта — голый массив
// без конверта, поэтому декодируется напрямую.
func (c *Client) Export(ctx context.Context) ([]models.Subscription, error) {
	const op = "client.Export"

	req, err := c.newRequest(ctx, http.MethodGet, "/api/v1/subscriptions/export", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}
	var subs []models.Subscription
	if err := json.NewDecoder(resp.Body).Decode(&subs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return subs, nil
}

// Import загружает массив подписок и сбрасывает кеш списка.
func (c *Client) Import(ctx context.Context, records []models.SubscriptionInput) (*models.ImportResult, error) {
	const op = "client.Import"

	var result models.ImportResult
	if err := c.call(ctx, http.MethodPost, "/api/v1/subscriptions/import", records, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.cache.Invalidate()
	return &result, nil
}

// call выполняет запрос к API, разбирает конверт и декодирует поле
// data в out. Ошибка сервера превращается в ошибку Go с его сообщением.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if env.Status != "OK" {
		if env.Error != "" {
			return fmt.Errorf("server: %s", env.Error)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

// newRequest собирает HTTP-запрос с JSON-телом и токеном сессии.
func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}
