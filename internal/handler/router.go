package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/BlogApp/internal/auth"
	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

// RouterDeps содержит всё, что нужно для сборки HTTP-роутера
type RouterDeps struct {
	Articles       *ArticleHandler
	Users          *UserHandler
	Verifier       *auth.Verifier
	Health         ports.HealthChecker
	Metrics        *Metrics
	Logger         *slog.Logger
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter собирает chi-роутер со всеми маршрутами сервиса
func NewRouter(deps RouterDeps) http.Handler {
	logger := deps.Logger

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(logger))
	r.Use(Recoverer(logger))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	if deps.RequestTimeout > 0 {
		r.Use(Timeout(deps.RequestTimeout, logger))
	}
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// задаём до Route, чтобы chi передал их во вложенные роутеры
	r.NotFound(NotFound(logger))
	r.MethodNotAllowed(MethodNotAllowed(logger))

	if deps.Health != nil {
		r.Get("/healthz", Health(deps.Health, logger))
	}
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Route("/articles", func(r chi.Router) {
		r.Post("/", deps.Articles.Create)
		r.Get("/", deps.Articles.FindAll)
		r.Get("/drafts", deps.Articles.FindDrafts)

		r.Route("/{id}", func(r chi.Router) {
			r.Use(IDParam(logger))
			r.Get("/", deps.Articles.FindOne)
			r.Patch("/", deps.Articles.Update)
			r.Delete("/", deps.Articles.Remove)
		})
	})

	r.Route("/users", func(r chi.Router) {
		// регистрация открыта, остальное только с токеном
		r.Post("/", deps.Users.Create)

		r.Group(func(r chi.Router) {
			r.Use(JWTAuthGuard(deps.Verifier, logger))
			r.Get("/", deps.Users.FindAll)

			r.Route("/{id}", func(r chi.Router) {
				r.Use(IDParam(logger))
				r.Get("/", deps.Users.FindOne)
				r.Patch("/", deps.Users.Update)
				r.Delete("/", deps.Users.Remove)
			})
		})
	})

	return r
}
