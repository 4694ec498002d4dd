package subtrack

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	_ "github.com/subtrackhq/subtrack/docs"
	"github.com/subtrackhq/subtrack/internal/http/handlers/auth/login"
	"github.com/subtrackhq/subtrack/internal/http/handlers/auth/logout"
	"github.com/subtrackhq/subtrack/internal/http/handlers/auth/register"
	"github.com/subtrackhq/subtrack/internal/http/handlers/auth/session"
	"github.com/subtrackhq/subtrack/internal/http/handlers/health"
	"github.com/subtrackhq/subtrack/internal/http/handlers/subscription/create"
	"github.com/subtrackhq/subtrack/internal/http/handlers/subscription/export"
	"github.com/subtrackhq/subtrack/internal/http/handlers/subscription/importer"
	"github.com/subtrackhq/subtrack/internal/http/handlers/subscription/list"
	"github.com/subtrackhq/subtrack/internal/http/handlers/subscription/remove"
	"github.com/subtrackhq/subtrack/internal/http/handlers/subscription/summary"
	"github.com/subtrackhq/subtrack/internal/http/handlers/subscription/update"
	"github.com/subtrackhq/subtrack/internal/http/middlewarectx"
	authservice "github.com/subtrackhq/subtrack/internal/services/auth"
	subservice "github.com/subtrackhq/subtrack/internal/services/subscription"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *authservice.Service,
	subscriptionService *subservice.Service,
	cookieName string,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	limiter := rate.NewLimiter(rate.Limit(50), 100)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, authService, cookieName).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService, cookieName).ServeHTTP)
		r.Post("/auth/logout", logout.New(logger, authService, cookieName).ServeHTTP)
		r.Get("/auth/session", session.New(logger, authService, cookieName).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с аутентификацией по сессии
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionMiddleware(authService, cookieName, logger))
			r.Use(middlewarectx.RateLimitMiddleware(limiter, logger))
			r.Get("/subscriptions", list.New(logger, subscriptionService).ServeHTTP)
			r.Post("/subscriptions", create.New(logger, subscriptionService).ServeHTTP)
			r.Patch("/subscriptions/{id}", update.New(logger, subscriptionService).ServeHTTP)
			r.Delete("/subscriptions/{id}", remove.New(logger, subscriptionService).ServeHTTP)
			r.Get("/subscriptions/summary", summary.New(logger, subscriptionService).ServeHTTP)
			r.Get("/subscriptions/export", export.New(logger, subscriptionService).ServeHTTP)
			r.Post("/subscriptions/import", importer.New(logger, subscriptionService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
