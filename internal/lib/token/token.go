// Package token генерирует непрозрачные токены сессий.
//
// Токен — случайная байтовая последовательность из crypto/rand в кодировке
// base64url, без какой-либо внутренней структуры. Подлинность токена
// подтверждается только наличием строки сессии в базе данных, поэтому
// выход из системы мгновенно отзывает токен.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// DefaultLength — длина токена сессии в байтах до кодирования.
const DefaultLength = 32

// New возвращает случайный токен из length байт в кодировке base64url.
func New(length int) (string, error) {
	const op = "token.New"
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
