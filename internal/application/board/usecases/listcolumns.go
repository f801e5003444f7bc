package usecases

import (
	"context"

	"flowdesk/internal/domain/board"
	"flowdesk/internal/shared/logger"
)

type ListColumnsQuery struct{}

type ListColumnsUseCase struct {
	columnRepo board.ColumnRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewListColumnsUseCase(
	columnRepo board.ColumnRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *ListColumnsUseCase {
	return &ListColumnsUseCase{
		columnRepo: columnRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute returns the board columns ordered by sort order, seeding the
// default set when the board has none yet. Seeding happens at most
// once: the count check and the batch insert share a transaction.
func (uc *ListColumnsUseCase) Execute(ctx context.Context, _ ListColumnsQuery) ([]*ColumnDTO, error) {
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		count, err := uc.columnRepo.Count(txCtx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		uc.logger.Infow("seeding default board columns")
		return uc.columnRepo.SaveBatch(txCtx, board.DefaultColumns())
	})
	if err != nil {
		uc.logger.Errorw("failed to seed board columns", "error", err)
		return nil, err
	}

	columns, err := uc.columnRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list board columns", "error", err)
		return nil, err
	}

	dtos := make([]*ColumnDTO, len(columns))
	for i, c := range columns {
		dtos[i] = NewColumnDTO(c)
	}
	return dtos, nil
}
