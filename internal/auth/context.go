package auth

import "context"

type contextKey struct{}

// Session identifies the signed-in organizer for the duration of one request.
type Session struct {
	UserID string
	Email  string
	Token  string // access token issued by the hosted auth service
}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKey{}).(Session)
	return s, ok
}

func UserID(ctx context.Context) string {
	s, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return s.UserID
}

// AccessToken returns the session's raw access token, or "" when no session
// is present.
func AccessToken(ctx context.Context) string {
	s, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return s.Token
}
