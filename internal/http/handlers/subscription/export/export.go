// Package export реализует HTTP-обработчик выгрузки подписок в JSON-файл.
//
// В отличие от остальных эндпоинтов ответ не заворачивается в конверт:
// тело — голый JSON-массив подписок, пригодный для последующего импорта.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/subtrackhq/subtrack/internal/http/middlewarectx"
	"github.com/subtrackhq/subtrack/internal/http/response"
	"github.com/subtrackhq/subtrack/internal/lib/sl"
	"github.com/subtrackhq/subtrack/internal/models"
)

// Service описывает интерфейс бизнес-логики выгрузки подписок.
type Service interface {
	Export(ctx context.Context, userID string) ([]models.Subscription, error)
}

// Handler обрабатывает HTTP-запросы выгрузки подписок.
type Handler struct {
	log     *slog.Logger
	service Service
	now     func() time.Time // Часы, подменяются в тестах
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		now:     time.Now,
	}
}

// ServeHTTP godoc
// @Summary Выгрузить подписки
// @Description Возвращает все подписки пользователя голым JSON-массивом с заголовком attachment.
// @Security ApiKeyAuth
// @Tags Subscriptions
// @Produce  json
// @Success 200 {array} models.Subscription "Массив подписок"
// @Failure 401 {object} response.ErrorResponse "Нет живой сессии"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /subscriptions/export [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.export"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := r.Context().Value(middlewarectx.UserID).(string)
	if !ok || userID == "" {
		log.Error("missing user id in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	subs, err := h.service.Export(r.Context(), userID)
	if err != nil {
		log.Error("failed to export subscriptions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not export subscriptions"))
		return
	}

	filename := fmt.Sprintf("subtrack-export-%s.json", h.now().Format("2006-01-02"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	log.Info("subscriptions exported",
		slog.String("user_id", userID),
		slog.Int("count", len(subs)))
	render.JSON(w, r, subs)
}
