package security

import (
	"errors"
	"testing"
	"time"

	"github.com/streamcast/user-service/internal/common"
)

var testSecret = []byte("test-secret")

func TestNewToken_ParseRoundTrip(t *testing.T) {
	token, err := NewToken(42, "a@x.com", TokenTypeAccess, time.Minute, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected subject 42, got %d", id)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("expected type access, got %q", claims.TokenType)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("expected email claim, got %q", claims.Email)
	}
}

func TestNewToken_RefreshOmitsEmail(t *testing.T) {
	token, err := NewToken(42, "a@x.com", TokenTypeRefresh, time.Minute, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.TokenType != TokenTypeRefresh {
		t.Fatalf("expected type refresh, got %q", claims.TokenType)
	}
	if claims.Email != "" {
		t.Fatalf("refresh tokens must not carry the email claim, got %q", claims.Email)
	}
}

func TestNewToken_UniquePerCall(t *testing.T) {
	first, err := NewToken(42, "", TokenTypeRefresh, time.Hour, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NewToken(42, "", TokenTypeRefresh, time.Hour, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Fatal("two tokens minted back-to-back must not be identical")
	}

	claims, err := ParseToken(first, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.ID == "" {
		t.Fatal("expected a jti claim")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := NewToken(42, "", TokenTypeAccess, -time.Minute, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ParseToken(token, testSecret); !errors.Is(err, common.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := NewToken(42, "", TokenTypeAccess, time.Minute, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ParseToken(token, []byte("other-secret")); !errors.Is(err, common.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("definitely.not.a.jwt", testSecret); !errors.Is(err, common.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestClaims_UserID_NonNumericSubject(t *testing.T) {
	claims := &Claims{}
	claims.Subject = "alice"
	if _, err := claims.UserID(); !errors.Is(err, common.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
