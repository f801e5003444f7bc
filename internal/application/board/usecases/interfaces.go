package usecases

import "context"

// TransactionManager runs a function inside a database transaction. The
// context passed to fn carries the transaction handle.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ListColumnsExecutor interface {
	Execute(ctx context.Context, query ListColumnsQuery) ([]*ColumnDTO, error)
}

type CreateColumnExecutor interface {
	Execute(ctx context.Context, cmd CreateColumnCommand) (*ColumnDTO, error)
}

type UpdateColumnExecutor interface {
	Execute(ctx context.Context, cmd UpdateColumnCommand) (*ColumnDTO, error)
}

type DeleteColumnExecutor interface {
	Execute(ctx context.Context, cmd DeleteColumnCommand) error
}
