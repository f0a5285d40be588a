package domain

import "errors"

var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("invalid token")
var ErrMissingSecret = errors.New("signing secret not configured")

// Refresh failures are deliberately split so the transport layer can report
// a superseded token, a token that never verified, and a failed expiry
// recovery as distinct outcomes.
var ErrInvalidRefreshToken = errors.New("invalid refresh token")
var ErrRefreshTokenInvalid = errors.New("refresh token invalid")
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// TokenClaims is the minimal identity embedded in both token kinds.
type TokenClaims struct {
	UserID int64
	Email  string
}

// TokenPair carries the credentials returned by register/login/refresh.
// RefreshToken is empty when only a new access token was issued: presenting
// a still-valid refresh token does not rotate it.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}
