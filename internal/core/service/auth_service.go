package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
	"github.com/quickbite/food-ordering-api/internal/core/ports"
)

// AuthService implements registration, login and refresh-token rotation.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenManager
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (*domain.TokenPair, error) {
	if email == "" || password == "" || fullName == "" {
		return nil, domain.ErrInvalidCredentials
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrEmailExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		FullName:     fullName,
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	return s.issueAndStorePair(ctx, user.ID, user.Email)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password must be indistinguishable.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// Overwriting the fingerprint invalidates any earlier refresh token:
	// at most one is valid per account.
	return s.issueAndStorePair(ctx, user.ID, user.Email)
}

// Refresh exchanges a refresh token for new credentials. A still-valid token
// whose fingerprint matches yields a new access token only; an expired token
// enters the recovery path and yields a full new pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	switch {
	case err == nil:
		return s.refreshValid(ctx, claims, refreshToken)
	case errors.Is(err, domain.ErrTokenExpired):
		return s.recoverExpired(ctx, refreshToken)
	default:
		return nil, domain.ErrRefreshTokenInvalid
	}
}

func (s *AuthService) refreshValid(ctx context.Context, claims *domain.TokenClaims, presented string) (*domain.TokenPair, error) {
	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidRefreshToken
		}
		return nil, err
	}

	// A signature-valid token that is not the stored fingerprint has been
	// superseded by a newer login or refresh.
	if user.RefreshToken != presented {
		return nil, domain.ErrInvalidRefreshToken
	}

	access, err := s.tokens.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{AccessToken: access}, nil
}

func (s *AuthService) recoverExpired(ctx context.Context, presented string) (*domain.TokenPair, error) {
	claims := s.tokens.DecodeClaims(presented)
	if claims == nil || claims.UserID <= 0 {
		return nil, domain.ErrTokenInvalid
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.ErrRefreshTokenExpired
	}

	// The freshly issued refresh token becomes the fingerprint, so the pair
	// returned here is usable on its next presentation.
	pair, err := s.issueAndStorePair(ctx, user.ID, user.Email)
	if err != nil {
		return nil, domain.ErrRefreshTokenExpired
	}
	return pair, nil
}

func (s *AuthService) issueAndStorePair(ctx context.Context, userID int64, email string) (*domain.TokenPair, error) {
	access, err := s.tokens.IssueAccessToken(userID, email)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefreshToken(userID, email)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdateRefreshToken(ctx, userID, refresh); err != nil {
		return nil, err
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
