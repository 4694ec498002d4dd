package create

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

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, userID string, input models.SubscriptionInput) (*models.Subscription, error) {
	args := m.Called(ctx, userID, input)
	if sub, ok := args.Get(0).(*models.Subscription); ok {
		return sub, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	created := &models.Subscription{
		ID:           "sub-1",
		UserID:       "user-1",
		Name:         "Netflix",
		PriceMonthly: "15.99",
		Currency:     "USD",
		Active:       true,
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
			name: "успешное создание подписки",
			requestBody: models.SubscriptionInput{
				Name:         "Netflix",
				PriceMonthly: "15.99",
			},
			userID: "user-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "user-1",
					mock.AnythingOfType("models.SubscriptionInput")).Return(created, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"priceMonthly":"15.99"`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			userID:         "user-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name: "ошибка валидации",
			requestBody: models.SubscriptionInput{
				Name:         "",
				PriceMonthly: "",
			},
			userID:         "user-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Name is a required field, field PriceMonthly is a required field`,
		},
		{
			name: "отсутствует авторизация",
			requestBody: models.SubscriptionInput{
				Name:         "Netflix",
				PriceMonthly: "15.99",
			},
			userID:         "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name: "ошибка сервиса",
			requestBody: models.SubscriptionInput{
				Name:         "Netflix",
				PriceMonthly: "15.99",
			},
			userID: "user-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "user-1",
					mock.AnythingOfType("models.SubscriptionInput")).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not create subscription"}`,
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

			req := httptest.NewRequest(http.MethodPost, "/subscriptions", bytes.NewReader(body))
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
