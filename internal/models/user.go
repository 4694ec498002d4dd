// Package models содержит доменную модель пользователя системы.
// Учётные данные (хэш пароля, OAuth-привязки) хранятся отдельно,
// в записях Account, принадлежащих сервису аутентификации.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID            string    `json:"id"`            // Уникальный идентификатор пользователя
	Name          string    `json:"name"`          // Отображаемое имя
	Email         string    `json:"email"`         // Электронная почта (уникальная)
	EmailVerified bool      `json:"emailVerified"` // Подтверждена ли почта
	Image         *string   `json:"image"`         // Ссылка на аватар (опционально)
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Account хранит учётные данные пользователя для одного провайдера.
// Для провайдера "credential" заполняется Password (bcrypt-хэш),
// для OAuth-провайдеров — токены. Записи принадлежат исключительно
// сервису аутентификации, остальное приложение их не читает.
type Account struct {
	ID         string  // Уникальный идентификатор записи
	AccountID  string  // Идентификатор аккаунта у провайдера
	ProviderID string  // Провайдер: "credential", "google" и т.п.
	UserID     string  // Владелец
	Password   *string // Bcrypt-хэш пароля (только для credential)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
