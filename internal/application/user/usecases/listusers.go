package usecases

import (
	"context"

	"flowdesk/internal/domain/user"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/query"
)

type ListUsersQuery struct {
	query.BaseFilter
	Role   *string
	Search string
}

type ListUsersUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.UserRepository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, q ListUsersQuery) (*ListUsersResult, error) {
	filter := user.UserFilter{
		BaseFilter: q.BaseFilter,
		Role:       q.Role,
		Search:     q.Search,
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	dtos := make([]*UserDTO, len(users))
	for i, u := range users {
		dtos[i] = NewUserDTO(u)
	}
	return &ListUsersResult{Users: dtos, Total: total}, nil
}
