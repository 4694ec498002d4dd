package client

import (
	"sync"

	"github.com/subtrackhq/subtrack/internal/models"
)

// ListCache хранит последний полученный список подписок клиента.
// Конструируется явно и передаётся в Client: общего пакетного
// экземпляра нет, каждый клиент владеет своим кешем.
type ListCache struct {
	mu    sync.Mutex
	subs  []models.Subscription
	valid bool
}

// NewListCache создает пустой кеш списка подписок.
func NewListCache() *ListCache {
	return &ListCache{}
}

// Get возвращает закешированный список и признак его валидности.
func (c *ListCache) Get() ([]models.Subscription, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		return nil, false
	}
	return c.subs, true
}

// Set сохраняет список в кеш и помечает его валидным.
func (c *ListCache) Set(subs []models.Subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = subs
	c.valid = true
}

// Invalidate сбрасывает кеш: следующий Get вернёт промах.
func (c *ListCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = nil
	c.valid = false
}
