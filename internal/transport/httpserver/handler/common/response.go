package common

import (
	"encoding/json"
	"net/http"
	"time"

	messagedomain "grievance-portal-go/internal/domain/message"
	persondomain "grievance-portal-go/internal/domain/person"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type MessageResponse struct {
	ID               string    `json:"id"`
	Content          string    `json:"content"`
	Emoji            string    `json:"emoji"`
	ExpectedResponse *string   `json:"expectedResponse"`
	Done             bool      `json:"done"`
	CreatedAt        time.Time `json:"createdAt"`
	PersonID         string    `json:"personId"`
}

type PersonResponse struct {
	ID        string            `json:"id"`
	Slug      string            `json:"slug"`
	Name      string            `json:"name"`
	UserID    string            `json:"userId"`
	CreatedAt time.Time         `json:"createdAt"`
	Messages  []MessageResponse `json:"messages"`
}

type PersonListResponse struct {
	Persons []PersonResponse `json:"persons"`
}

func NewMessageResponse(msg messagedomain.Message) MessageResponse {
	return MessageResponse{
		ID:               msg.ID,
		Content:          msg.Content,
		Emoji:            msg.Emoji,
		ExpectedResponse: msg.ExpectedResponse,
		Done:             msg.Done,
		CreatedAt:        msg.CreatedAt,
		PersonID:         msg.PersonID,
	}
}

func NewPersonResponse(p persondomain.Person) PersonResponse {
	messages := make([]MessageResponse, 0, len(p.Messages))
	for _, msg := range p.Messages {
		messages = append(messages, NewMessageResponse(msg))
	}
	return PersonResponse{
		ID:        p.ID,
		Slug:      p.Slug,
		Name:      p.Name,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
		Messages:  messages,
	}
}

func NewPersonListResponse(persons []persondomain.Person) PersonListResponse {
	items := make([]PersonResponse, 0, len(persons))
	for _, p := range persons {
		items = append(items, NewPersonResponse(p))
	}
	return PersonListResponse{Persons: items}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	writeError(w, status, code, message)
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	writeJSON(w, status, payload)
}

func DecodeJSON(r *http.Request, dst interface{}) error {
	return decodeJSON(r, dst)
}

func WriteInternalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}
