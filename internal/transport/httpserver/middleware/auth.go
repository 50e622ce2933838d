package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"grievance-portal-go/internal/auth"
	"grievance-portal-go/internal/config"
	"grievance-portal-go/pkg/logger"
)

const (
	sessionUserIDKey   = "user_id"
	sessionUsernameKey = "username"
	sessionNameKey     = "name"
)

type contextKey int

const (
	userIDKey contextKey = iota
	userKey
)

// User is the session carried through the request context.
type User struct {
	ID       string
	Username string
	Name     string
}

// Auth resolves the current session from the cookie store or a bearer token.
type Auth struct {
	store       *sessions.CookieStore
	sessionName string
	tokens      *auth.TokenManager
	log         logger.Logger
}

func NewAuth(cfg config.SessionConfig, tokens *auth.TokenManager, log logger.Logger) *Auth {
	keys := [][]byte{[]byte(cfg.Key)}
	if cfg.EncryptionKey != "" {
		keys = append(keys, []byte(cfg.EncryptionKey))
	}
	if len(cfg.Key) < 32 {
		log.Warn("auth: session key is short; 32+ chars recommended", "length", len(cfg.Key))
	}

	store := sessions.NewCookieStore(keys...)
	store.Options = &sessions.Options{
		Domain:   cfg.Domain,
		Path:     "/",
		MaxAge:   int(cfg.MaxAge.Seconds()),
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(store.Options.MaxAge)

	name := cfg.Name
	if name == "" {
		name = "grievance-session"
	}

	return &Auth{
		store:       store,
		sessionName: name,
		tokens:      tokens,
		log:         log,
	}
}

// Load puts the session user into the context when one is present.
// Requests without a session pass through untouched.
func (a *Auth) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := a.sessionUser(r)
		if !ok {
			user, ok = a.tokenUser(r)
		}
		if ok {
			r = r.WithContext(WithUser(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	})
}

// Require answers 401 for API callers without a session.
func (a *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			Unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePage sends browsers without a session to the login page.
func (a *Auth) RequirePage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// StartSession writes the signed session cookie for user.
func (a *Auth) StartSession(w http.ResponseWriter, r *http.Request, user User) error {
	sess, err := a.store.Get(r, a.sessionName)
	if err != nil {
		a.logCookieError("auth.start_session", err)
	}
	sess.Values[sessionUserIDKey] = user.ID
	sess.Values[sessionUsernameKey] = user.Username
	sess.Values[sessionNameKey] = user.Name
	return sess.Save(r, w)
}

// EndSession expires the session cookie.
func (a *Auth) EndSession(w http.ResponseWriter, r *http.Request) error {
	sess, err := a.store.Get(r, a.sessionName)
	if err != nil {
		a.logCookieError("auth.end_session", err)
	}
	sess.Values = make(map[interface{}]interface{})
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// IssueToken signs a bearer token carrying the same fields as the cookie.
func (a *Auth) IssueToken(user User) (string, error) {
	return a.tokens.Generate(user.ID, user.Username)
}

func (a *Auth) sessionUser(r *http.Request) (User, bool) {
	if _, err := r.Cookie(a.sessionName); err != nil {
		return User{}, false
	}
	sess, err := a.store.Get(r, a.sessionName)
	if err != nil {
		a.logCookieError("auth.load", err)
		return User{}, false
	}
	user := User{
		ID:       sessionString(sess, sessionUserIDKey),
		Username: sessionString(sess, sessionUsernameKey),
		Name:     sessionString(sess, sessionNameKey),
	}
	if user.ID == "" || user.Username == "" {
		return User{}, false
	}
	return user, true
}

func (a *Auth) tokenUser(r *http.Request) (User, bool) {
	token, ok := bearerToken(r.Header.Get("Authorization"))
	if !ok {
		return User{}, false
	}
	claims, err := a.tokens.Validate(token)
	if err != nil {
		a.log.BusinessError("auth.load: bearer token rejected", err)
		return User{}, false
	}
	return User{ID: claims.UserID, Username: claims.Username}, true
}

func (a *Auth) logCookieError(op string, err error) {
	var scErr securecookie.Error
	if errors.As(err, &scErr) && scErr.IsDecode() {
		a.log.BusinessError(op+": session cookie invalid, using fresh session", err)
		return
	}
	a.log.InternalError(op+": session store error", err)
}

func sessionString(sess *sessions.Session, key string) string {
	if v, ok := sess.Values[key].(string); ok {
		return v
	}
	return ""
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func Unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
}

func WithUser(ctx context.Context, user User) context.Context {
	ctx = context.WithValue(ctx, userKey, user)
	return context.WithValue(ctx, userIDKey, user.ID)
}

func UserFromContext(ctx context.Context) (User, bool) {
	value := ctx.Value(userKey)
	user, ok := value.(User)
	if !ok || user.ID == "" {
		return User{}, false
	}
	return user, true
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	value := ctx.Value(userIDKey)
	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
