package auth

import (
	authusecases "flowdesk/internal/application/auth/usecases"
	"flowdesk/internal/shared/authorization"
)

// TokenServiceAdapter exposes JWTService through the application-layer
// TokenService interface.
type TokenServiceAdapter struct {
	jwt *JWTService
}

func NewTokenServiceAdapter(jwt *JWTService) *TokenServiceAdapter {
	return &TokenServiceAdapter{jwt: jwt}
}

func (a *TokenServiceAdapter) Generate(userID uint, role authorization.UserRole) (*authusecases.TokenPair, error) {
	pair, err := a.jwt.Generate(userID, role)
	if err != nil {
		return nil, err
	}
	return &authusecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (a *TokenServiceAdapter) Verify(tokenString string) (*authusecases.TokenClaims, error) {
	claims, err := a.jwt.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	return &authusecases.TokenClaims{UserID: claims.UserID, Role: claims.Role}, nil
}

func (a *TokenServiceAdapter) VerifyRefresh(tokenString string) (*authusecases.TokenClaims, error) {
	claims, err := a.jwt.VerifyRefresh(tokenString)
	if err != nil {
		return nil, err
	}
	return &authusecases.TokenClaims{UserID: claims.UserID, Role: claims.Role}, nil
}
