package messages

import (
	messagedomain "grievance-portal-go/internal/domain/message"
	userdomain "grievance-portal-go/internal/domain/user"
	"grievance-portal-go/pkg/logger"
)

// SubmissionCounter is notified once per accepted anonymous message.
type SubmissionCounter interface {
	MessageSubmitted()
}

type Handlers struct {
	Users    *userdomain.Service
	Messages *messagedomain.Service
	counter  SubmissionCounter
	log      logger.Logger
}

func New(users *userdomain.Service, messages *messagedomain.Service, counter SubmissionCounter, log logger.Logger) *Handlers {
	return &Handlers{
		Users:    users,
		Messages: messages,
		counter:  counter,
		log:      log,
	}
}
