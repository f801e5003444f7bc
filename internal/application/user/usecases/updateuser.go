package usecases

import (
	"context"

	"flowdesk/internal/domain/user"
	"flowdesk/internal/shared/authorization"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type UpdateUserCommand struct {
	UserID        uint
	RequesterID   uint
	RequesterRole authorization.UserRole
	Name          *string
	Role          *string
}

type UpdateUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.UserRepository, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*UserDTO, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if !authorization.CanAccessResourceByOwnerID(cmd.RequesterID, cmd.RequesterRole, cmd.UserID) {
		return nil, errors.NewForbiddenError("cannot modify another user")
	}
	// Role changes are an admin operation regardless of ownership.
	if cmd.Role != nil && !cmd.RequesterRole.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can change roles")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if err := u.UpdateProfile(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Role != nil {
		role := authorization.UserRole(*cmd.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError("invalid role")
		}
		if err := u.ChangeRole(role); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user updated", "user_id", cmd.UserID)
	return NewUserDTO(u), nil
}
