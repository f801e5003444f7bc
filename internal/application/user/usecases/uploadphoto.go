package usecases

import (
	"context"
	"io"

	"flowdesk/internal/domain/user"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type UploadPhotoCommand struct {
	UserID   uint
	FileName string
	Reader   io.Reader
}

type UploadPhotoUseCase struct {
	userRepo user.UserRepository
	photos   PhotoStorage
	logger   logger.Interface
}

func NewUploadPhotoUseCase(
	userRepo user.UserRepository,
	photos PhotoStorage,
	logger logger.Interface,
) *UploadPhotoUseCase {
	return &UploadPhotoUseCase{
		userRepo: userRepo,
		photos:   photos,
		logger:   logger,
	}
}

func (uc *UploadPhotoUseCase) Execute(ctx context.Context, cmd UploadPhotoCommand) (*UserDTO, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.Reader == nil {
		return nil, errors.NewValidationError("photo file is required")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	stored, err := uc.photos.Save(cmd.FileName, cmd.Reader)
	if err != nil {
		uc.logger.Errorw("failed to store photo", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	previous := u.PhotoPath()
	u.SetPhotoPath(stored)

	if err := uc.userRepo.Update(ctx, u); err != nil {
		// The orphaned file is cleaned up so a failed update does not
		// leak storage.
		if rmErr := uc.photos.Remove(stored); rmErr != nil {
			uc.logger.Warnw("failed to remove orphaned photo", "file", stored, "error", rmErr)
		}
		return nil, err
	}

	if previous != "" && previous != stored {
		if err := uc.photos.Remove(previous); err != nil {
			uc.logger.Warnw("failed to remove previous photo", "file", previous, "error", err)
		}
	}

	uc.logger.Infow("profile photo updated", "user_id", cmd.UserID)
	return NewUserDTO(u), nil
}
