package handler

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/eventease/eventease/internal/auth"
	"github.com/eventease/eventease/internal/middleware"
)

// Session cookie lifetime when the auth service does not say otherwise.
const defaultSessionMaxAge = 7 * 24 * 60 * 60

type AuthHandler struct {
	authClient *auth.Client
	templates  *template.Template
	logger     *slog.Logger
}

func NewAuthHandler(ac *auth.Client, logger *slog.Logger) *AuthHandler {
	tmpl := template.Must(template.ParseGlob("web/templates/auth_*.html"))
	return &AuthHandler{
		authClient: ac,
		templates:  tmpl,
		logger:     logger,
	}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	render(h.logger, h.templates, w, "auth_login.html", map[string]any{})
}

// Login validates credentials locally, exchanges them with the hosted auth
// service, and stores the returned access token in the session cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		h.loginError(w, email, "Email and password are required")
		return
	}
	if !validEmail(email) {
		h.loginError(w, email, "Please enter a valid email address")
		return
	}

	token, err := h.authClient.SignIn(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.loginError(w, email, "Invalid email or password")
			return
		}
		h.logger.Error("sign in", "error", err)
		h.loginError(w, email, "Unable to sign in right now. Please try again.")
		return
	}

	maxAge := token.ExpiresIn
	if maxAge <= 0 {
		maxAge = defaultSessionMaxAge
	}
	http.SetCookie(w, middleware.SessionCookie(token.AccessToken, maxAge, r.TLS != nil))

	http.Redirect(w, r, "/events", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, middleware.SessionCookie("", -1, r.TLS != nil))
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) loginError(w http.ResponseWriter, email, msg string) {
	render(h.logger, h.templates, w, "auth_login.html", map[string]any{
		"Email": email,
		"Error": msg,
	})
}
