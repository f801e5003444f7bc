package usecases

import "context"

// TransactionManager runs a function inside a database transaction. The
// context passed to fn carries the transaction handle.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
