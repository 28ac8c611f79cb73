package auth

import (
	"context"
	"testing"
)

func TestSessionRoundTrip(t *testing.T) {
	s := Session{UserID: "user-7", Email: "alice@example.com", Token: "tok-1"}
	ctx := WithSession(context.Background(), s)

	got, ok := FromContext(ctx)
	if !ok {
		t.Fatal("expected session in context")
	}
	if got != s {
		t.Errorf("session = %+v, want %+v", got, s)
	}
	if UserID(ctx) != "user-7" {
		t.Errorf("UserID = %q", UserID(ctx))
	}
	if AccessToken(ctx) != "tok-1" {
		t.Errorf("AccessToken = %q", AccessToken(ctx))
	}
}

func TestEmptyContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := FromContext(ctx); ok {
		t.Error("expected no session in empty context")
	}
	if UserID(ctx) != "" {
		t.Errorf("UserID = %q, want empty", UserID(ctx))
	}
	if AccessToken(ctx) != "" {
		t.Errorf("AccessToken = %q, want empty", AccessToken(ctx))
	}
}
