package ports

import "github.com/quickbite/food-ordering-api/internal/core/domain"

// TokenVerifier is the narrow interface the auth middleware needs.
type TokenVerifier interface {
	// VerifyAccessToken checks signature and expiry under the access secret.
	// Returns domain.ErrTokenExpired or domain.ErrTokenInvalid on failure.
	VerifyAccessToken(token string) (*domain.TokenClaims, error)
}

// TokenManager issues and validates the two token kinds. Access and refresh
// tokens are signed with distinct secrets; a token signed for one purpose
// never validates under the other.
type TokenManager interface {
	TokenVerifier

	IssueAccessToken(userID int64, email string) (string, error)
	IssueRefreshToken(userID int64, email string) (string, error)
	VerifyRefreshToken(token string) (*domain.TokenClaims, error)
	// DecodeClaims parses a token without verifying signature or expiry.
	// Returns nil when the token cannot be parsed at all. Used only for
	// best-effort claim recovery on expired refresh tokens.
	DecodeClaims(token string) *domain.TokenClaims
}
