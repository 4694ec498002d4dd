// Package session реализует HTTP-обработчик получения текущей сессии.
//
// Эндпоинт никогда не возвращает ошибку клиенту: отсутствующая или
// просроченная сессия деградирует до data: null.
package session

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/subtrackhq/subtrack/internal/http/middlewarectx"
	"github.com/subtrackhq/subtrack/internal/http/response"
	"github.com/subtrackhq/subtrack/internal/lib/sl"
	"github.com/subtrackhq/subtrack/internal/models"
)

// Service описывает интерфейс бизнес-логики чтения сессии.
type Service interface {
	GetSession(ctx context.Context, token string) (*models.SessionPayload, error)
}

// Handler обрабатывает HTTP-запросы на чтение текущей сессии.
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
// @Summary Текущая сессия
// @Description Возвращает пользователя и сессию по токену. При отсутствии валидной сессии возвращает data: null.
// @Tags Auth
// @Produce  json
// @Success 200 {object} map[string]any "Сессия или null"
// @Router /auth/session [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.session"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	tokenStr := middlewarectx.ExtractToken(r, h.cookieName)
	if tokenStr == "" {
		render.JSON(w, r, response.OKWithData(nil))
		return
	}

	payload, err := h.service.GetSession(r.Context(), tokenStr)
	if err != nil {
		log.Debug("session lookup failed", sl.Err(err))
		render.JSON(w, r, response.OKWithData(nil))
		return
	}

	render.JSON(w, r, response.OKWithData(payload))
}
