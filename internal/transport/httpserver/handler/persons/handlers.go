package persons

import (
	persondomain "grievance-portal-go/internal/domain/person"
	"grievance-portal-go/pkg/logger"
)

type Handlers struct {
	Persons *persondomain.Service
	log     logger.Logger
}

func New(persons *persondomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Persons: persons,
		log:     log,
	}
}
