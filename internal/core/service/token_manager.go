package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// TokenManager signs and validates access and refresh tokens with HS256.
// The two kinds use distinct secrets so a refresh token can never be replayed
// as an access token or vice versa.
type TokenManager struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenManager{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

func (m *TokenManager) IssueAccessToken(userID int64, email string) (string, error) {
	return m.sign(userID, email, m.accessSecret, m.accessTTL)
}

func (m *TokenManager) IssueRefreshToken(userID int64, email string) (string, error) {
	return m.sign(userID, email, m.refreshSecret, m.refreshTTL)
}

func (m *TokenManager) VerifyAccessToken(token string) (*domain.TokenClaims, error) {
	return m.verify(token, m.accessSecret)
}

func (m *TokenManager) VerifyRefreshToken(token string) (*domain.TokenClaims, error) {
	return m.verify(token, m.refreshSecret)
}

// DecodeClaims parses a token without checking signature or expiry. It
// returns nil when the token cannot be parsed or carries no usable subject.
func (m *TokenManager) DecodeClaims(token string) *domain.TokenClaims {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claimsFrom(claims)
}

func (m *TokenManager) sign(userID int64, email, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", domain.ErrMissingSecret
	}
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     m.now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

func (m *TokenManager) verify(token, secret string) (*domain.TokenClaims, error) {
	if secret == "" {
		return nil, domain.ErrMissingSecret
	}
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(func() time.Time { return m.now() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	tc := claimsFrom(claims)
	if tc == nil {
		return nil, domain.ErrTokenInvalid
	}
	return tc, nil
}

func claimsFrom(claims jwt.MapClaims) *domain.TokenClaims {
	id, ok := claims["user_id"].(float64)
	if !ok || id <= 0 {
		return nil
	}
	email, _ := claims["email"].(string)
	return &domain.TokenClaims{UserID: int64(id), Email: email}
}
