package app

import (
	"net/http"

	"grievance-portal-go/internal/auth"
	"grievance-portal-go/internal/config"
	messagedomain "grievance-portal-go/internal/domain/message"
	persondomain "grievance-portal-go/internal/domain/person"
	userdomain "grievance-portal-go/internal/domain/user"
	"grievance-portal-go/internal/transport/httpserver"
	"grievance-portal-go/internal/transport/httpserver/handler"
	commonhandler "grievance-portal-go/internal/transport/httpserver/handler/common"
	messageshandler "grievance-portal-go/internal/transport/httpserver/handler/messages"
	personshandler "grievance-portal-go/internal/transport/httpserver/handler/persons"
	webhandler "grievance-portal-go/internal/transport/httpserver/handler/web"
	"grievance-portal-go/internal/transport/httpserver/middleware"
	"grievance-portal-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	storage    *Storage
}

func New(cfg config.Config, log logger.Logger) (*App, error) {
	log.Info("app: initializing storage", "storage", cfg.Storage)
	storage, err := OpenStorage(cfg, log)
	if err != nil {
		return nil, err
	}

	applied, err := storage.Migrate(log)
	if err != nil {
		_ = storage.Close()
		return nil, err
	}
	if applied > 0 {
		log.Info("app: migrations applied", "count", applied)
	}

	log.Info("app: initializing router")
	router, err := NewHandler(cfg, storage, log)
	if err != nil {
		_ = storage.Close()
		return nil, err
	}

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		storage:    storage,
	}, nil
}

// NewHandler builds the complete HTTP surface over storage.
func NewHandler(cfg config.Config, storage *Storage, log logger.Logger) (http.Handler, error) {
	users := userdomain.NewService(storage.Users)
	persons := persondomain.NewService(storage.Persons)
	messages := messagedomain.NewService(storage.Messages)

	authmw := middleware.NewAuth(cfg.Session, auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL), log)
	metrics := middleware.NewMetrics()

	web, err := webhandler.New(users, persons, authmw, cfg.BaseURL, log)
	if err != nil {
		return nil, err
	}

	handlers := handler.New(
		commonhandler.New(users, authmw, log),
		messageshandler.New(users, messages, metrics, log),
		personshandler.New(persons, log),
		web,
	)

	return httpserver.NewRouter(cfg, handlers, authmw, metrics), nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	return a.storage.Close()
}
