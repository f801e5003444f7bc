package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowdesk/internal/domain/board"
	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type mockColumnRepository struct {
	SaveFunc      func(ctx context.Context, column *board.Column) error
	SaveBatchFunc func(ctx context.Context, columns []*board.Column) error
	UpdateFunc    func(ctx context.Context, column *board.Column) error
	DeleteFunc    func(ctx context.Context, columnID uint) error
	GetByIDFunc   func(ctx context.Context, columnID uint) (*board.Column, error)
	ListFunc      func(ctx context.Context) ([]*board.Column, error)
	CountFunc     func(ctx context.Context) (int64, error)
}

func (m *mockColumnRepository) Save(ctx context.Context, column *board.Column) error {
	return m.SaveFunc(ctx, column)
}

func (m *mockColumnRepository) SaveBatch(ctx context.Context, columns []*board.Column) error {
	return m.SaveBatchFunc(ctx, columns)
}

func (m *mockColumnRepository) Update(ctx context.Context, column *board.Column) error {
	return m.UpdateFunc(ctx, column)
}

func (m *mockColumnRepository) Delete(ctx context.Context, columnID uint) error {
	return m.DeleteFunc(ctx, columnID)
}

func (m *mockColumnRepository) GetByID(ctx context.Context, columnID uint) (*board.Column, error) {
	return m.GetByIDFunc(ctx, columnID)
}

func (m *mockColumnRepository) List(ctx context.Context) ([]*board.Column, error) {
	return m.ListFunc(ctx)
}

func (m *mockColumnRepository) Count(ctx context.Context) (int64, error) {
	return m.CountFunc(ctx)
}

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingTxManager struct {
	calls int
}

func (m *recordingTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func reconstructColumn(t *testing.T, id uint, title, status string, sortOrder int) *board.Column {
	t.Helper()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	col, err := board.ReconstructColumn(id, title, status, sortOrder, now, now)
	require.NoError(t, err)
	return col
}

func TestListColumnsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds defaults on an empty board", func(t *testing.T) {
		var seeded []*board.Column
		repo := &mockColumnRepository{
			CountFunc: func(_ context.Context) (int64, error) { return 0, nil },
			SaveBatchFunc: func(_ context.Context, columns []*board.Column) error {
				seeded = columns
				return nil
			},
			ListFunc: func(_ context.Context) ([]*board.Column, error) {
				return []*board.Column{
					reconstructColumn(t, 1, "To Do", "todo", 0),
					reconstructColumn(t, 2, "In Progress", "in_progress", 1),
					reconstructColumn(t, 3, "Review", "review", 2),
					reconstructColumn(t, 4, "Done", "done", 3),
				}, nil
			},
		}

		uc := NewListColumnsUseCase(repo, fakeTxManager{}, testLogger())
		dtos, err := uc.Execute(ctx, ListColumnsQuery{})
		require.NoError(t, err)

		require.Len(t, seeded, 4)
		require.Len(t, dtos, 4)
		assert.Equal(t, "todo", dtos[0].Status)
		assert.Equal(t, "done", dtos[3].Status)
	})

	t.Run("does not re-seed a populated board", func(t *testing.T) {
		repo := &mockColumnRepository{
			CountFunc: func(_ context.Context) (int64, error) { return 2, nil },
			SaveBatchFunc: func(_ context.Context, _ []*board.Column) error {
				t.Fatal("SaveBatch must not be called when columns exist")
				return nil
			},
			ListFunc: func(_ context.Context) ([]*board.Column, error) {
				return []*board.Column{
					reconstructColumn(t, 1, "To Do", "todo", 0),
					reconstructColumn(t, 2, "Done", "done", 1),
				}, nil
			},
		}

		uc := NewListColumnsUseCase(repo, fakeTxManager{}, testLogger())
		dtos, err := uc.Execute(ctx, ListColumnsQuery{})
		require.NoError(t, err)
		assert.Len(t, dtos, 2)
	})

	t.Run("seed failure aborts the listing", func(t *testing.T) {
		repo := &mockColumnRepository{
			CountFunc: func(_ context.Context) (int64, error) { return 0, nil },
			SaveBatchFunc: func(_ context.Context, _ []*board.Column) error {
				return errors.NewInternalError("insert failed")
			},
		}

		uc := NewListColumnsUseCase(repo, fakeTxManager{}, testLogger())
		_, err := uc.Execute(ctx, ListColumnsQuery{})
		assert.Error(t, err)
	})
}

type stubTicketCounter struct {
	ticket.TicketRepository
	count int64
}

func (s stubTicketCounter) CountByStatus(_ context.Context, _ ticket.Status) (int64, error) {
	return s.count, nil
}

func TestDeleteColumnUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an empty column", func(t *testing.T) {
		deleted := false
		repo := &mockColumnRepository{
			GetByIDFunc: func(_ context.Context, id uint) (*board.Column, error) {
				return reconstructColumn(t, id, "Review", "review", 2), nil
			},
			DeleteFunc: func(_ context.Context, _ uint) error {
				deleted = true
				return nil
			},
		}

		tx := &recordingTxManager{}
		uc := NewDeleteColumnUseCase(repo, stubTicketCounter{count: 0}, tx, testLogger())
		require.NoError(t, uc.Execute(ctx, DeleteColumnCommand{ColumnID: 3}))
		assert.True(t, deleted)
		assert.Equal(t, 1, tx.calls, "emptiness check and delete run in one transaction")
	})

	t.Run("refuses to delete a column with tickets", func(t *testing.T) {
		repo := &mockColumnRepository{
			GetByIDFunc: func(_ context.Context, id uint) (*board.Column, error) {
				return reconstructColumn(t, id, "To Do", "todo", 0), nil
			},
			DeleteFunc: func(_ context.Context, _ uint) error {
				t.Fatal("Delete must not be called for a non-empty column")
				return nil
			},
		}

		uc := NewDeleteColumnUseCase(repo, stubTicketCounter{count: 5}, fakeTxManager{}, testLogger())
		err := uc.Execute(ctx, DeleteColumnCommand{ColumnID: 1})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("rejects zero column ID", func(t *testing.T) {
		uc := NewDeleteColumnUseCase(&mockColumnRepository{}, stubTicketCounter{}, fakeTxManager{}, testLogger())
		err := uc.Execute(ctx, DeleteColumnCommand{})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
