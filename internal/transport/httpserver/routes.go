package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"grievance-portal-go/internal/config"
	"grievance-portal-go/internal/transport/httpserver/handler"
	"grievance-portal-go/internal/transport/httpserver/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, auth *middleware.Auth, metrics *middleware.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(metrics.Middleware)
	r.Use(middleware.NewCORS(cfg.CORSOrigins))
	r.Use(auth.Load)

	r.NotFound(handlers.Web.NotFound)
	r.Handle("/metrics", metrics.Handler())

	r.Get("/", handlers.Web.Home)
	r.Get("/login", handlers.Web.LoginForm)
	r.Post("/login", handlers.Web.Login)
	r.Post("/logout", handlers.Web.Logout)
	r.Get("/share/{slug}", handlers.Web.Share)
	r.With(auth.RequirePage).Get("/dashboard", handlers.Web.Dashboard)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Common.Health)

		r.Post("/auth/register", handlers.Common.Register)
		r.Post("/auth/login", handlers.Common.Login)
		r.Post("/auth/logout", handlers.Common.Logout)

		r.Post("/message", handlers.Messages.SubmitMessage)
		r.Patch("/message", handlers.Messages.ResolveMessage)
		r.Delete("/message", handlers.Messages.DeleteMessage)

		r.Group(func(r chi.Router) {
			r.Use(auth.Require)

			r.Get("/auth/me", handlers.Common.AuthMe)

			r.Get("/person", handlers.Persons.ListPersons)
			r.Post("/person", handlers.Persons.CreatePerson)
			r.Delete("/person", handlers.Persons.DeletePerson)
		})
	})

	return r
}
