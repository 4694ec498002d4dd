// Package models содержит доменные структуры приложения: подписки,
// пользователей и сессии, а также вспомогательные типы для приёма
// данных из JSON-запросов.
package models

import "time"

// Subscription представляет собой основную модель подписки,
// используемую в бизнес-логике, хранилище и на границе HTTP.
// Цена хранится строкой с двумя знаками после запятой (NUMERIC в базе),
// Category и NextPaymentDate могут быть nil — поле не задано.
type Subscription struct {
	ID              string     `json:"id"`              // Уникальный идентификатор подписки
	UserID          string     `json:"userId"`          // Идентификатор владельца
	Name            string     `json:"name"`            // Название сервиса
	PriceMonthly    string     `json:"priceMonthly"`    // Цена за месяц, десятичная строка
	Currency        string     `json:"currency"`        // Трёхбуквенный код валюты
	Category        *string    `json:"category"`        // Категория (опционально)
	NextPaymentDate *time.Time `json:"nextPaymentDate"` // Дата следующего платежа (опционально)
	Active          bool       `json:"active"`          // Активна ли подписка
	CreatedAt       time.Time  `json:"createdAt"`       // Дата создания записи
	UpdatedAt       time.Time  `json:"updatedAt"`       // Дата последнего изменения
}

// SubscriptionInput используется для приёма данных создания подписки
// из JSON-запроса. Отсутствующая валюта заменяется на "USD",
// отсутствующий флаг Active — на true.
type SubscriptionInput struct {
	Name            string     `json:"name" validate:"required"`         // Название сервиса
	PriceMonthly    string     `json:"priceMonthly" validate:"required"` // Цена за месяц
	Currency        string     `json:"currency"`                         // Валюта, по умолчанию USD
	Category        *string    `json:"category"`                         // Категория (опционально)
	NextPaymentDate *time.Time `json:"nextPaymentDate"`                  // Дата следующего платежа (опционально)
	Active          *bool      `json:"active"`                           // Флаг активности, по умолчанию true
}

// SubscriptionPatch описывает частичное обновление подписки.
// Поле со значением nil не изменяется; заданные поля перезаписываются.
type SubscriptionPatch struct {
	Name            *string    `json:"name"`
	PriceMonthly    *string    `json:"priceMonthly"`
	Currency        *string    `json:"currency"`
	Category        *string    `json:"category"`
	NextPaymentDate *time.Time `json:"nextPaymentDate"`
	Active          *bool      `json:"active"`
}

// IsEmpty сообщает, задано ли в патче хотя бы одно поле.
func (p SubscriptionPatch) IsEmpty() bool {
	return p.Name == nil && p.PriceMonthly == nil && p.Currency == nil &&
		p.Category == nil && p.NextPaymentDate == nil && p.Active == nil
}

// ImportResult содержит итог импорта: сколько записей вставлено
// и сколько завершилось ошибкой.
type ImportResult struct {
	Imported int `json:"imported"`
	Failed   int `json:"failed"`
}
