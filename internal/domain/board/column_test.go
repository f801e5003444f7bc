package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewColumn(t *testing.T) {
	t.Run("creates column", func(t *testing.T) {
		col, err := NewColumn("Blocked", "blocked", 4)
		require.NoError(t, err)
		assert.Equal(t, "Blocked", col.Title())
		assert.Equal(t, "blocked", col.Status())
		assert.Equal(t, 4, col.SortOrder())
		assert.Zero(t, col.ID())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := NewColumn("", "blocked", 0)
		assert.Error(t, err)
	})

	t.Run("rejects oversized title", func(t *testing.T) {
		_, err := NewColumn(strings.Repeat("x", 101), "blocked", 0)
		assert.Error(t, err)
	})

	t.Run("rejects empty status", func(t *testing.T) {
		_, err := NewColumn("Blocked", "", 0)
		assert.Error(t, err)
	})

	t.Run("rejects negative sort order", func(t *testing.T) {
		_, err := NewColumn("Blocked", "blocked", -1)
		assert.Error(t, err)
	})
}

func TestDefaultColumns(t *testing.T) {
	columns := DefaultColumns()
	require.Len(t, columns, 4)

	wantStatuses := []string{"todo", "in_progress", "review", "done"}
	for i, col := range columns {
		assert.Equal(t, wantStatuses[i], col.Status())
		assert.Equal(t, i, col.SortOrder())
		assert.Zero(t, col.ID())
	}
}

func TestColumn_SetID(t *testing.T) {
	col, err := NewColumn("Todo", "todo", 0)
	require.NoError(t, err)

	require.NoError(t, col.SetID(7))
	assert.Equal(t, uint(7), col.ID())

	assert.Error(t, col.SetID(8), "ID can only be assigned once")
}

func TestColumn_Rename(t *testing.T) {
	col, err := NewColumn("Todo", "todo", 0)
	require.NoError(t, err)

	require.NoError(t, col.Rename("Backlog"))
	assert.Equal(t, "Backlog", col.Title())

	assert.Error(t, col.Rename(""))
}
