package auth

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/internal/auth"
	"github.com/taskdeck/backend/repository"
)

// UseCase handles registration, credential checks and token lifecycle.
type UseCase struct {
	users   repository.UserRepository
	revoked repository.RevocationRepository
	tokens  *auth.TokenManager
	logger  *zap.Logger
}

func New(users repository.UserRepository, revoked repository.RevocationRepository, tokens *auth.TokenManager, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:   users,
		revoked: revoked,
		tokens:  tokens,
		logger:  logger,
	}
}

// Register creates a user with a hashed password. The admin flag is always
// false here; promotion happens through the admin surface or the bootstrap
// command.
func (uc *UseCase) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidPayload
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "password hashing failed", err)
	}

	user := &domain.User{
		Username:       username,
		HashedPassword: digest,
	}
	return uc.users.Create(ctx, user)
}

// Login verifies credentials and issues a bearer token. Unknown usernames
// and wrong passwords produce the same error.
func (uc *UseCase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.VerifyPassword(password, user.HashedPassword) {
		uc.logger.Debug("password mismatch", zap.String("username", username))
		return "", domain.ErrInvalidCredentials
	}

	return uc.tokens.Issue(user.Username)
}

// Logout places the token on the revocation list until it would have
// expired on its own.
func (uc *UseCase) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ID == "" {
		return domain.ErrInvalidPayload
	}
	ttl := uc.tokens.TTL()
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	return uc.revoked.Revoke(ctx, claims.ID, ttl)
}

// Resolve validates a presented token and loads the user it identifies.
// Any failure collapses into an unauthorized error.
func (uc *UseCase) Resolve(ctx context.Context, tokenString string) (*domain.User, *auth.Claims, error) {
	claims, err := uc.tokens.Validate(tokenString)
	if err != nil {
		return nil, nil, err
	}

	if uc.revoked != nil {
		revoked, err := uc.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, nil, err
		}
		if revoked {
			return nil, nil, domain.ErrUnauthorized
		}
	}

	user, err := uc.users.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrUnauthorized
		}
		return nil, nil, err
	}

	return user, claims, nil
}
