package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/kndri/selah-journaling/internal/auth"
	"github.com/kndri/selah-journaling/internal/insight"
	"github.com/kndri/selah-journaling/internal/middlewares"
	"github.com/kndri/selah-journaling/internal/reflection"
	"github.com/kndri/selah-journaling/internal/reminder"
	"github.com/kndri/selah-journaling/internal/streak"
	"github.com/kndri/selah-journaling/internal/transcription"
	"github.com/kndri/selah-journaling/internal/user"
)

type RouterConfig struct {
	UserHandler          *user.Handler
	InsightHandler       *insight.Handler
	TranscriptionHandler *transcription.Handler
	ReflectionHandler    *reflection.Handler
	StreakHandler        *streak.Handler
	ReminderHandler      *reminder.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/insights", insight.Routes(cfg.InsightHandler))
		r.Mount("/transcriptions", transcription.Routes(cfg.TranscriptionHandler))
		r.Mount("/reflections", reflection.Routes(cfg.ReflectionHandler))
		r.Mount("/streaks", streak.Routes(cfg.StreakHandler))
		r.Mount("/settings", reminder.Routes(cfg.ReminderHandler))
	})
	return r
}
