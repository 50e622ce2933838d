package common

import (
	userdomain "grievance-portal-go/internal/domain/user"
	"grievance-portal-go/internal/transport/httpserver/middleware"
	"grievance-portal-go/pkg/logger"
)

type Handlers struct {
	Users *userdomain.Service
	Auth  *middleware.Auth
	log   logger.Logger
}

func New(users *userdomain.Service, auth *middleware.Auth, log logger.Logger) *Handlers {
	return &Handlers{
		Users: users,
		Auth:  auth,
		log:   log,
	}
}
