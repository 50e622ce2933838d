package persons

import (
	"errors"
	"net/http"
	"strings"

	persondomain "grievance-portal-go/internal/domain/person"
	commonhandler "grievance-portal-go/internal/transport/httpserver/handler/common"
	"grievance-portal-go/internal/transport/httpserver/middleware"
)

type createPersonRequest struct {
	Name string `json:"name"`
}

func (h *Handlers) ListPersons(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		middleware.Unauthorized(w)
		return
	}

	persons, err := h.Persons.ListPersons(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("persons.list: list persons failed", err, "user_id", user.ID)
		commonhandler.WriteInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, commonhandler.NewPersonListResponse(persons))
}

// CreatePerson answers with a one-element list so every person endpoint
// returns the same shape.
func (h *Handlers) CreatePerson(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		middleware.Unauthorized(w)
		return
	}

	var req createPersonRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	person, err := h.Persons.CreatePerson(r.Context(), user.ID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, persondomain.ErrNameRequired):
			h.log.BusinessError("persons.create: name required", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "name_required", "name is required")
		case errors.Is(err, persondomain.ErrNameTooLong):
			h.log.BusinessError("persons.create: name too long", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "name_too_long", err.Error())
		case errors.Is(err, persondomain.ErrSlugGenerationFailed):
			h.log.InternalError("persons.create: slug generation failed", err, "user_id", user.ID)
			writeError(w, http.StatusInternalServerError, "slug_generation_failed", "could not generate a unique link")
		default:
			h.log.InternalError("persons.create: create person failed", err, "user_id", user.ID)
			commonhandler.WriteInternalError(w)
		}
		return
	}

	h.log.Info("persons.create: person created", "user_id", user.ID, "slug", person.Slug)
	writeJSON(w, http.StatusOK, commonhandler.NewPersonListResponse([]persondomain.Person{*person}))
}

func (h *Handlers) DeletePerson(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		middleware.Unauthorized(w)
		return
	}

	slug := strings.TrimSpace(r.URL.Query().Get("slug"))
	if err := h.Persons.DeletePerson(r.Context(), user.ID, slug); err != nil {
		switch {
		case errors.Is(err, persondomain.ErrSlugRequired):
			writeError(w, http.StatusBadRequest, "invalid_request", "slug is required")
		case errors.Is(err, persondomain.ErrPersonNotFound):
			h.log.BusinessError("persons.delete: person not found", err, "user_id", user.ID, "slug", slug)
			writeError(w, http.StatusNotFound, "person_not_found", "person not found")
		case errors.Is(err, persondomain.ErrForbidden):
			h.log.BusinessError("persons.delete: forbidden", err, "user_id", user.ID, "slug", slug)
			writeError(w, http.StatusForbidden, "forbidden", "forbidden")
		default:
			h.log.InternalError("persons.delete: delete person failed", err, "user_id", user.ID, "slug", slug)
			commonhandler.WriteInternalError(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, commonhandler.SuccessResponse{Success: true})
}
