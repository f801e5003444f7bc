package usecases

import (
	"context"

	"flowdesk/internal/shared/authorization"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenPair carries the signed access and refresh tokens.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenClaims is the verified identity extracted from a token.
type TokenClaims struct {
	UserID uint
	Role   authorization.UserRole
}

// TokenService issues and verifies JWT token pairs.
type TokenService interface {
	Generate(userID uint, role authorization.UserRole) (*TokenPair, error)
	Verify(tokenString string) (*TokenClaims, error)
	VerifyRefresh(tokenString string) (*TokenClaims, error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*AuthResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*AuthResult, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*AuthResult, error)
}
