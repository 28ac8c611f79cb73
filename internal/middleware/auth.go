package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/eventease/eventease/internal/auth"
)

const sessionCookieName = "eventease_session"

// RequireAuth validates the access-token cookie issued at sign-in and
// populates the request's auth session. The token is a JWT from the hosted
// auth service, verified locally with the project secret.
// HTMX-aware: returns HX-Redirect header instead of 303 redirect for HTMX
// requests.
func RequireAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil || cookie.Value == "" {
				redirectToLogin(w, r)
				return
			}

			sess, ok := verifyToken(cookie.Value, secret)
			if !ok {
				redirectToLogin(w, r)
				return
			}

			ctx := auth.WithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// verifyToken checks signature and expiry and extracts the session identity.
func verifyToken(raw string, secret []byte) (auth.Session, bool) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return auth.Session{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return auth.Session{}, false
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return auth.Session{}, false
	}
	email, _ := claims["email"].(string)

	return auth.Session{UserID: sub, Email: email, Token: raw}, true
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/login")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// SessionCookie builds the cookie that carries the access token.
func SessionCookie(token string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
}
