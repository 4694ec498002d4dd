// Package logout реализует HTTP-обработчик выхода из системы.
//
// Сессия уничтожается по токену из cookie или заголовка Authorization,
// cookie гасится. Операция идемпотентна: запрос без сессии тоже успешен.
package logout

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/subtrackhq/subtrack/internal/http/middlewarectx"
	"github.com/subtrackhq/subtrack/internal/http/response"
	"github.com/subtrackhq/subtrack/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики выхода.
type Service interface {
	Logout(ctx context.Context, token string) error
}

// Handler обрабатывает HTTP-запросы на выход из системы.
type Handler struct {
	log        *slog.Logger
	service    Service
	cookieName string
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service, cookieName string) *Handler {
	return &Handler{
		log:        log,
		service:    service,
		cookieName: cookieName,
	}
}

// ServeHTTP godoc
// @Summary Выход из системы
// @Description Уничтожает текущую сессию и гасит cookie. Идемпотентен.
// @Tags Auth
// @Produce  json
// @Success 200 {object} map[string]any "Успешный выход"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	tokenStr := middlewarectx.ExtractToken(r, h.cookieName)
	if tokenStr != "" {
		if err := h.service.Logout(r.Context(), tokenStr); err != nil {
			log.Error("failed to destroy session", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not sign out"))
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	log.Info("session destroyed")
	render.JSON(w, r, response.OK())
}
