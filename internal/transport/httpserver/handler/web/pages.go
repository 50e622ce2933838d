package web

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"grievance-portal-go/internal/dashboard"
	persondomain "grievance-portal-go/internal/domain/person"
	userdomain "grievance-portal-go/internal/domain/user"
	"grievance-portal-go/internal/transport/httpserver/middleware"
)

type loginPage struct {
	Title    string
	Error    string
	Username string
}

type dashboardPage struct {
	Title         string
	User          middleware.User
	Persons       []dashboard.PersonView
	BaseURL       string
	MaxNameLength int
}

type sharePage struct {
	Title     string
	Name      string
	Slug      string
	Submitted bool
	Emojis    []dashboard.EmojiOption
}

type notFoundPage struct {
	Title string
}

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.render(w, http.StatusOK, "login", loginPage{Title: "Sign in"})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusBadRequest, "login", loginPage{Title: "Sign in", Error: "Invalid form."})
		return
	}
	username := r.PostFormValue("username")

	user, err := h.Users.Authenticate(r.Context(), username, r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, userdomain.ErrInvalidCredentials) {
			h.log.BusinessError("web.login: invalid credentials", err, "username", username)
			h.render(w, http.StatusUnauthorized, "login", loginPage{Title: "Sign in", Error: "Invalid username or password.", Username: username})
			return
		}
		h.log.InternalError("web.login: authenticate failed", err)
		h.render(w, http.StatusInternalServerError, "login", loginPage{Title: "Sign in", Error: "Something went wrong. Try again.", Username: username})
		return
	}

	session := middleware.User{ID: user.ID, Username: user.Username, Name: user.Name}
	if err := h.Auth.StartSession(w, r, session); err != nil {
		h.log.InternalError("web.login: save session failed", err, "user_id", user.ID)
		h.render(w, http.StatusInternalServerError, "login", loginPage{Title: "Sign in", Error: "Something went wrong. Try again.", Username: username})
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.EndSession(w, r); err != nil {
		h.log.InternalError("web.logout: clear session failed", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	persons, err := h.Persons.ListPersons(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("web.dashboard: list persons failed", err, "user_id", user.ID)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	state := dashboard.Reduce(dashboard.State{}, dashboard.Loaded{Persons: toDashboardPersons(persons)})
	h.render(w, http.StatusOK, "dashboard", dashboardPage{
		Title:         "Dashboard",
		User:          user,
		Persons:       dashboard.Views(state, h.baseURL),
		BaseURL:       h.baseURL,
		MaxNameLength: persondomain.MaxNameLength,
	})
}

func (h *Handlers) Share(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	person, err := h.Persons.GetPersonBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, persondomain.ErrPersonNotFound) || errors.Is(err, persondomain.ErrSlugRequired) {
			h.NotFound(w, r)
			return
		}
		h.log.InternalError("web.share: get person failed", err, "slug", slug)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, "share", sharePage{
		Title:     "Tell " + person.Name,
		Name:      person.Name,
		Slug:      person.Slug,
		Submitted: r.URL.Query().Get("submitted") == "true",
		Emojis:    dashboard.EmojiOptions,
	})
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, "not_found", notFoundPage{Title: "Not found"})
}

func (h *Handlers) render(w http.ResponseWriter, status int, page string, data interface{}) {
	var buf bytes.Buffer
	if err := h.pages[page].Execute(&buf, data); err != nil {
		h.log.InternalError("web.render: execute template failed", err, "page", page)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func toDashboardPersons(persons []persondomain.Person) []dashboard.Person {
	result := make([]dashboard.Person, 0, len(persons))
	for _, p := range persons {
		messages := make([]dashboard.Message, 0, len(p.Messages))
		for _, msg := range p.Messages {
			messages = append(messages, dashboard.Message{
				ID:               msg.ID,
				Content:          msg.Content,
				Emoji:            msg.Emoji,
				ExpectedResponse: msg.ExpectedResponse,
				Done:             msg.Done,
				CreatedAt:        msg.CreatedAt,
				PersonID:         msg.PersonID,
			})
		}
		result = append(result, dashboard.Person{
			ID:        p.ID,
			Slug:      p.Slug,
			Name:      p.Name,
			UserID:    p.UserID,
			CreatedAt: p.CreatedAt,
			Messages:  messages,
		})
	}
	return result
}

func emojiLabel(value string) string {
	return dashboard.EmojiLabel(value)
}
