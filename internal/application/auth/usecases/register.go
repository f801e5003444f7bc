package usecases

import (
	"context"
	"strings"

	"flowdesk/internal/domain/user"
	"flowdesk/internal/shared/authorization"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
}

type RegisterUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(cmd.Name, strings.ToLower(cmd.Email), hash, authorization.RoleUser)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// The email unique index turns a lost race into a conflict error.
	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to register user", "email", cmd.Email, "error", err)
		return nil, err
	}

	pair, err := uc.tokens.Generate(newUser.ID(), newUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", newUser.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", newUser.Email())
	return &AuthResult{
		User:         NewUserDTO(newUser),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (uc *RegisterUseCase) validateCommand(cmd RegisterCommand) error {
	if strings.TrimSpace(cmd.Name) == "" {
		return errors.NewValidationError("name is required")
	}
	if strings.TrimSpace(cmd.Email) == "" {
		return errors.NewValidationError("email is required")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	return nil
}
