// Package importer реализует HTTP-обработчик импорта подписок из JSON.
//
// Тело запроса — массив подписок в формате выгрузки. Записи вставляются
// по одной: сбой отдельной записи увеличивает счётчик failed, остальные
// продолжают импортироваться.
package importer

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/subtrackhq/subtrack/internal/http/middlewarectx"
	"github.com/subtrackhq/subtrack/internal/http/response"
	"github.com/subtrackhq/subtrack/internal/lib/sl"
	"github.com/subtrackhq/subtrack/internal/models"
)

// Service описывает интерфейс бизнес-логики импорта подписок.
type Service interface {
	Import(ctx context.Context, userID string, records []models.SubscriptionInput) (models.ImportResult, error)
}

// Handler обрабатывает HTTP-запросы импорта подписок.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Импортировать подписки
// @Description Принимает JSON-массив подписок и вставляет записи по одной, подсчитывая успехи и сбои.
// @Security ApiKeyAuth
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Param request body []models.SubscriptionInput true "Массив подписок"
// @Success 200 {object} map[string]any "Итог импорта"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON-файл"
// @Failure 401 {object} response.ErrorResponse "Нет живой сессии"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /subscriptions/import [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.importer"

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

	var records []models.SubscriptionInput
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		log.Error("failed to decode import payload", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid JSON file"))
		return
	}

	result, err := h.service.Import(r.Context(), userID, records)
	if err != nil {
		log.Error("failed to import subscriptions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not import subscriptions"))
		return
	}

	log.Info("subscriptions imported",
		slog.String("user_id", userID),
		slog.Int("imported", result.Imported),
		slog.Int("failed", result.Failed))
	render.JSON(w, r, response.OKWithData(result))
}
