// Package middlewarectx содержит HTTP middleware аутентификации по сессии.
//
// SessionMiddleware извлекает токен сессии из cookie или заголовка
// Authorization, проверяет его через сервис аутентификации и кладёт
// в контекст запроса идентификатор и почту пользователя.
// Запрос без живой сессии получает HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/subtrackhq/subtrack/internal/http/response"
	"github.com/subtrackhq/subtrack/internal/lib/sl"
	"github.com/subtrackhq/subtrack/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserID — ключ идентификатора пользователя в контексте
	UserID Key = "user_id"
	// UserEmail — ключ почты пользователя в контексте
	UserEmail Key = "user_email"
	// SessionToken — ключ токена текущей сессии в контексте
	SessionToken Key = "session_token"
)

// Service описывает интерфейс сервиса для проверки токена сессии.
type Service interface {
	GetSession(ctx context.Context, token string) (*models.SessionPayload, error)
}

// ExtractToken достаёт токен сессии из cookie cookieName или из
// заголовка Authorization со схемой Bearer. Пустая строка — токена нет.
func ExtractToken(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// SessionMiddleware возвращает HTTP middleware, который требует живую сессию.
//
// При валидном токене добавляет идентификатор и почту пользователя
// в контекст запроса, иначе возвращает HTTP 401 Unauthorized.
func SessionMiddleware(authService Service, cookieName string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			log := log.With(
				sl.Op(op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tokenStr := ExtractToken(r, cookieName)
			if tokenStr == "" {
				log.Error("missing session token")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			payload, err := authService.GetSession(r.Context(), tokenStr)
			if err != nil {
				log.Error("invalid or expired session", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			ctx := context.WithValue(r.Context(), UserID, payload.User.ID)
			ctx = context.WithValue(ctx, UserEmail, payload.User.Email)
			ctx = context.WithValue(ctx, SessionToken, payload.Session.Token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
