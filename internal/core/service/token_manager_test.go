package service

import (
	"errors"
	"testing"
	"time"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
)

func newTestTokenManager() *TokenManager {
	return NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestTokenManager_AccessRoundTrip(t *testing.T) {
	m := newTestTokenManager()

	token, err := m.IssueAccessToken(42, "alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := m.VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "alice@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenManager_RefreshRoundTrip(t *testing.T) {
	m := newTestTokenManager()

	token, err := m.IssueRefreshToken(7, "bob@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := m.VerifyRefreshToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 7 {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenManager_WrongKindIsInvalidNotExpired(t *testing.T) {
	m := newTestTokenManager()

	access, err := m.IssueAccessToken(1, "a@example.com")
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}
	refresh, err := m.IssueRefreshToken(1, "a@example.com")
	if err != nil {
		t.Fatalf("issue refresh: %v", err)
	}

	if _, err := m.VerifyRefreshToken(access); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("access token under refresh key: expected ErrTokenInvalid, got %v", err)
	}
	if _, err := m.VerifyAccessToken(refresh); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("refresh token under access key: expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenManager_ExpiredClassification(t *testing.T) {
	m := newTestTokenManager()

	token, err := m.IssueAccessToken(3, "c@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Jump past the access TTL without touching the signature.
	m.now = func() time.Time { return time.Now().Add(16 * time.Minute) }

	if _, err := m.VerifyAccessToken(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenManager_GarbageIsInvalid(t *testing.T) {
	m := newTestTokenManager()

	if _, err := m.VerifyAccessToken("not-a-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenManager_MissingSecret(t *testing.T) {
	m := NewTokenManager("", "", 0, 0)

	if _, err := m.IssueAccessToken(1, "a@example.com"); !errors.Is(err, domain.ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret on issue, got %v", err)
	}
	if _, err := m.VerifyAccessToken("whatever"); !errors.Is(err, domain.ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret on verify, got %v", err)
	}
}

func TestTokenManager_DecodeClaims(t *testing.T) {
	m := newTestTokenManager()

	token, err := m.IssueRefreshToken(9, "d@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Decoding ignores expiry entirely.
	m.now = func() time.Time { return time.Now().Add(30 * 24 * time.Hour) }

	claims := m.DecodeClaims(token)
	if claims == nil || claims.UserID != 9 || claims.Email != "d@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if m.DecodeClaims("garbage") != nil {
		t.Fatalf("expected nil claims for garbage token")
	}
}
