package usecases

import (
	"context"

	"flowdesk/internal/domain/user"
	"flowdesk/internal/shared/authorization"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID        uint
	RequesterID   uint
	RequesterRole authorization.UserRole
}

type DeleteUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.UserRepository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if !cmd.RequesterRole.IsAdmin() {
		return errors.NewForbiddenError("only admins can delete users")
	}
	if cmd.UserID == cmd.RequesterID {
		return errors.NewValidationError("cannot delete own account")
	}

	if _, err := uc.userRepo.GetByID(ctx, cmd.UserID); err != nil {
		return err
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID, "deleted_by", cmd.RequesterID)
	return nil
}
