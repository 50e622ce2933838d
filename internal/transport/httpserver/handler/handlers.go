package handler

import (
	commonhandler "grievance-portal-go/internal/transport/httpserver/handler/common"
	messageshandler "grievance-portal-go/internal/transport/httpserver/handler/messages"
	personshandler "grievance-portal-go/internal/transport/httpserver/handler/persons"
	webhandler "grievance-portal-go/internal/transport/httpserver/handler/web"
)

type Handlers struct {
	Common   *commonhandler.Handlers
	Messages *messageshandler.Handlers
	Persons  *personshandler.Handlers
	Web      *webhandler.Handlers
}

func New(common *commonhandler.Handlers, messages *messageshandler.Handlers, persons *personshandler.Handlers, web *webhandler.Handlers) *Handlers {
	return &Handlers{
		Common:   common,
		Messages: messages,
		Persons:  persons,
		Web:      web,
	}
}
