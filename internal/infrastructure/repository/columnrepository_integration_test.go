package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowdesk/internal/domain/board"
	apperrors "flowdesk/internal/shared/errors"
)

func TestColumnRepository_SeedDefaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewColumnRepository(db)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.SaveBatch(ctx, board.DefaultColumns()))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	columns, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, columns, 4)
	assert.Equal(t, "todo", columns[0].Status())
	assert.Equal(t, "done", columns[3].Status())
	for _, c := range columns {
		assert.NotZero(t, c.ID())
	}
}

func TestColumnRepository_DuplicateStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewColumnRepository(db)
	ctx := context.Background()

	first, err := board.NewColumn("To Do", "todo", 0)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	second, err := board.NewColumn("Also To Do", "todo", 1)
	require.NoError(t, err)
	assert.Error(t, repo.Save(ctx, second), "status carries a unique index")
}

func TestColumnRepository_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewColumnRepository(db)
	ctx := context.Background()

	col, err := board.NewColumn("Review", "review", 2)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, col))

	require.NoError(t, col.Rename("Code Review"))
	require.NoError(t, col.SetSortOrder(0))
	require.NoError(t, repo.Update(ctx, col))

	found, err := repo.GetByID(ctx, col.ID())
	require.NoError(t, err)
	assert.Equal(t, "Code Review", found.Title())
	assert.Zero(t, found.SortOrder(), "moving a column to the front must persist")

	require.NoError(t, repo.Delete(ctx, col.ID()))

	_, err = repo.GetByID(ctx, col.ID())
	assert.True(t, apperrors.IsNotFoundError(err))

	err = repo.Delete(ctx, col.ID())
	assert.True(t, apperrors.IsNotFoundError(err))
}
