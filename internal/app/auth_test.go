package app_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"staybook/internal/app"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := app.NewTokenIssuer("test-secret", time.Hour)
	now := date("2026-08-28")

	token, exp, err := issuer.Issue(42, now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if want := now.Add(time.Hour); !exp.Equal(want) {
		t.Fatalf("exp = %v, want %v", exp, want)
	}

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub != "42" {
		t.Fatalf("sub = %q (%v), want 42", sub, err)
	}
}

func TestTokenIssuer_WrongSecretRejected(t *testing.T) {
	issuer := app.NewTokenIssuer("test-secret", time.Hour)
	token, _, err := issuer.Issue(42, time.Now())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	_, err = jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		return []byte("other-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err == nil {
		t.Fatalf("token verified with the wrong secret")
	}
}
