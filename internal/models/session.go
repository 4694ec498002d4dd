package models

import "time"

// Session представляет серверную сессию пользователя: непрозрачный токен,
// срок действия и метаданные клиента. Создаётся при входе, уничтожается
// при выходе или по истечении срока.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	IPAddress *string   `json:"ipAddress"`
	UserAgent *string   `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Expired сообщает, истёк ли срок действия сессии на момент now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// SessionPayload — ответ аутентификации: пользователь плюс его сессия.
// Возвращается при регистрации, входе и запросе текущей сессии.
type SessionPayload struct {
	User    User    `json:"user"`
	Session Session `json:"session"`
}
