package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/subtrackhq/subtrack/internal/http/middlewarectx"
	"github.com/subtrackhq/subtrack/internal/models"
)

// MockService реализует интерфейс importer.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Import(ctx context.Context, userID string, records []models.SubscriptionInput) (models.ImportResult, error) {
	args := m.Called(ctx, userID, records)
	return args.Get(0).(models.ImportResult), args.Error(1)
}

func TestImporterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	records := []models.SubscriptionInput{
		{Name: "Netflix", PriceMonthly: "15.99"},
		{Name: "Spotify", PriceMonthly: "9.99"},
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		userID         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешный импорт",
			requestBody: records,
			userID:      "user-1",
			setupMock: func(m *MockService) {
				m.On("Import", mock.Anything, "user-1",
					mock.AnythingOfType("[]models.SubscriptionInput")).
					Return(models.ImportResult{Imported: 2, Failed: 0}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"imported":2`,
		},
		{
			name:        "частичный сбой отражается в счетчиках",
			requestBody: records,
			userID:      "user-1",
			setupMock: func(m *MockService) {
				m.On("Import", mock.Anything, "user-1",
					mock.AnythingOfType("[]models.SubscriptionInput")).
					Return(models.ImportResult{Imported: 1, Failed: 1}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"failed":1`,
		},
		{
			name:           "некорректный JSON-файл",
			requestBody:    "{broken",
			userID:         "user-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid JSON file"}`,
		},
		{
			name:           "отсутствует авторизация",
			requestBody:    records,
			userID:         "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:        "ошибка сервиса",
			requestBody: records,
			userID:      "user-1",
			setupMock: func(m *MockService) {
				m.On("Import", mock.Anything, "user-1",
					mock.AnythingOfType("[]models.SubscriptionInput")).
					Return(models.ImportResult{}, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not import subscriptions"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/subscriptions/import", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			ctx := req.Context()
			if tt.userID != "" {
				ctx = context.WithValue(ctx, middlewarectx.UserID, tt.userID)
			}
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
