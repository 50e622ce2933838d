package messages

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	messagedomain "grievance-portal-go/internal/domain/message"
	userdomain "grievance-portal-go/internal/domain/user"
	commonhandler "grievance-portal-go/internal/transport/httpserver/handler/common"
	"grievance-portal-go/internal/transport/httpserver/middleware"
)

type resolveResponse struct {
	Success bool                          `json:"success"`
	Message commonhandler.MessageResponse `json:"message"`
}

// SubmitMessage accepts the public share form and redirects back to it.
func (h *Handlers) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid form body")
		return
	}

	slug := strings.TrimSpace(r.PostFormValue("slug"))
	input := messagedomain.SubmitInput{
		Content: r.PostFormValue("content"),
		Emoji:   r.PostFormValue("emoji"),
		Slug:    slug,
	}
	if values, ok := r.PostForm["expectedResponse"]; ok && len(values) > 0 {
		expected := values[0]
		input.ExpectedResponse = &expected
	}

	msg, err := h.Messages.Submit(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, messagedomain.ErrMissingFields):
			h.log.BusinessError("messages.submit: missing fields", err, "slug", slug)
			writeError(w, http.StatusBadRequest, "invalid_request", "missing required fields")
		case errors.Is(err, messagedomain.ErrInvalidLink):
			h.log.BusinessError("messages.submit: invalid link", err, "slug", slug)
			writeError(w, http.StatusBadRequest, "invalid_link", "invalid link")
		case errors.Is(err, messagedomain.ErrContentTooLong):
			h.log.BusinessError("messages.submit: content too long", err, "slug", slug)
			writeError(w, http.StatusBadRequest, "content_too_long", "content is too long")
		case errors.Is(err, messagedomain.ErrInvalidEmoji):
			h.log.BusinessError("messages.submit: invalid emoji", err, "slug", slug)
			writeError(w, http.StatusBadRequest, "invalid_emoji", "invalid emoji")
		default:
			h.log.InternalError("messages.submit: create message failed", err, "slug", slug)
			commonhandler.WriteInternalError(w)
		}
		return
	}

	if h.counter != nil {
		h.counter.MessageSubmitted()
	}
	h.log.Info("messages.submit: message created", "message_id", msg.ID, "person_id", msg.PersonID)

	http.Redirect(w, r, "/share/"+url.PathEscape(slug)+"?submitted=true", http.StatusSeeOther)
}

func (h *Handlers) ResolveMessage(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.authorize(w, r, "messages.resolve")
	if !ok {
		return
	}

	msg, err := h.Messages.Resolve(r.Context(), userID, id)
	if err != nil {
		h.writeMessageError(w, "messages.resolve", err, userID, id)
		return
	}

	writeJSON(w, http.StatusOK, resolveResponse{
		Success: true,
		Message: commonhandler.NewMessageResponse(*msg),
	})
}

func (h *Handlers) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.authorize(w, r, "messages.delete")
	if !ok {
		return
	}

	if err := h.Messages.Delete(r.Context(), userID, id); err != nil {
		h.writeMessageError(w, "messages.delete", err, userID, id)
		return
	}

	writeJSON(w, http.StatusOK, commonhandler.SuccessResponse{Success: true})
}

// authorize runs the session, id and user lookups shared by PATCH and DELETE.
// It writes the error response itself and reports whether to continue.
func (h *Handlers) authorize(w http.ResponseWriter, r *http.Request, op string) (string, string, bool) {
	session, ok := middleware.UserFromContext(r.Context())
	if !ok {
		middleware.Unauthorized(w)
		return "", "", false
	}

	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "message id is required")
		return "", "", false
	}

	user, err := h.Users.GetUserByUsername(r.Context(), session.Username)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			h.log.BusinessError(op+": user not found", err, "username", session.Username)
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
			return "", "", false
		}
		h.log.InternalError(op+": get user failed", err, "username", session.Username)
		commonhandler.WriteInternalError(w)
		return "", "", false
	}

	return user.ID, id, true
}

func (h *Handlers) writeMessageError(w http.ResponseWriter, op string, err error, userID, id string) {
	switch {
	case errors.Is(err, messagedomain.ErrMessageNotFound):
		h.log.BusinessError(op+": message not found", err, "user_id", userID, "message_id", id)
		writeError(w, http.StatusNotFound, "message_not_found", "message not found")
	case errors.Is(err, messagedomain.ErrForbidden):
		h.log.BusinessError(op+": forbidden", err, "user_id", userID, "message_id", id)
		writeError(w, http.StatusForbidden, "forbidden", "forbidden")
	default:
		h.log.InternalError(op+": failed", err, "user_id", userID, "message_id", id)
		commonhandler.WriteInternalError(w)
	}
}
