package usecases

import (
	"context"
	"io"
)

// PhotoStorage persists uploaded profile photos and returns the stored
// file name.
type PhotoStorage interface {
	Save(originalName string, r io.Reader) (string, error)
	Remove(name string) error
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*UserDTO, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) error
}

type UploadPhotoExecutor interface {
	Execute(ctx context.Context, cmd UploadPhotoCommand) (*UserDTO, error)
}
