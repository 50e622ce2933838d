package common

import (
	"errors"
	"net/http"

	"grievance-portal-go/internal/auth"
	userdomain "grievance-portal-go/internal/domain/user"
	"grievance-portal-go/internal/transport/httpserver/middleware"
)

type registerRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type registerResponse struct {
	User userResponse `json:"user"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	user, err := h.Users.Register(r.Context(), userdomain.RegisterInput{
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, userdomain.ErrUsernameRequired),
			errors.Is(err, userdomain.ErrInvalidUsername),
			errors.Is(err, auth.ErrWeakPassword):
			h.log.BusinessError("auth.register: validation failed", err)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, userdomain.ErrUsernameTaken):
			h.log.BusinessError("auth.register: username taken", err, "username", req.Username)
			writeError(w, http.StatusConflict, "username_taken", "username already taken")
		default:
			h.log.InternalError("auth.register: register failed", err)
			WriteInternalError(w)
		}
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{User: newUserResponse(user)})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	user, err := h.Users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, userdomain.ErrInvalidCredentials) {
			h.log.BusinessError("auth.login: invalid credentials", err, "username", req.Username)
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password")
			return
		}
		h.log.InternalError("auth.login: authenticate failed", err)
		WriteInternalError(w)
		return
	}

	session := middleware.User{ID: user.ID, Username: user.Username, Name: user.Name}
	if err := h.Auth.StartSession(w, r, session); err != nil {
		h.log.InternalError("auth.login: save session failed", err, "user_id", user.ID)
		WriteInternalError(w)
		return
	}
	token, err := h.Auth.IssueToken(session)
	if err != nil {
		h.log.InternalError("auth.login: issue token failed", err, "user_id", user.ID)
		WriteInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: newUserResponse(user)})
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.EndSession(w, r); err != nil {
		h.log.InternalError("auth.logout: clear session failed", err)
		WriteInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handlers) AuthMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		middleware.Unauthorized(w)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
	})
}

func newUserResponse(user *userdomain.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
	}
}
