package board

import "context"

type ColumnRepository interface {
	Save(ctx context.Context, column *Column) error
	SaveBatch(ctx context.Context, columns []*Column) error
	Update(ctx context.Context, column *Column) error
	Delete(ctx context.Context, columnID uint) error
	GetByID(ctx context.Context, columnID uint) (*Column, error)
	List(ctx context.Context) ([]*Column, error)
	Count(ctx context.Context) (int64, error)
}
