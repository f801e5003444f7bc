package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicket(t *testing.T) {
	t.Run("creates ticket with defaults", func(t *testing.T) {
		tk, err := NewTicket("Broken login", "Cannot sign in", PriorityHigh, 1)
		require.NoError(t, err)
		assert.Equal(t, StatusTodo, tk.Status())
		assert.Equal(t, PriorityHigh, tk.Priority())
		assert.Zero(t, tk.Position(), "position is assigned by the repository")
		assert.Zero(t, tk.CommentCount())
		assert.Nil(t, tk.AssigneeID())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := NewTicket("", "desc", PriorityLow, 1)
		assert.Error(t, err)
	})

	t.Run("rejects oversized title", func(t *testing.T) {
		_, err := NewTicket(strings.Repeat("x", 201), "desc", PriorityLow, 1)
		assert.Error(t, err)
	})

	t.Run("rejects invalid priority", func(t *testing.T) {
		_, err := NewTicket("Title", "desc", Priority("critical"), 1)
		assert.Error(t, err)
	})

	t.Run("rejects missing creator", func(t *testing.T) {
		_, err := NewTicket("Title", "desc", PriorityLow, 0)
		assert.Error(t, err)
	})
}

func TestTicket_PlaceAt(t *testing.T) {
	tk, err := NewTicket("Title", "", PriorityMedium, 1)
	require.NoError(t, err)

	require.NoError(t, tk.PlaceAt(1000))
	assert.Equal(t, int64(1000), tk.Position())

	assert.Error(t, tk.PlaceAt(0))
	assert.Error(t, tk.PlaceAt(-500))
}

func TestTicket_ChangeStatus(t *testing.T) {
	tk, err := NewTicket("Title", "", PriorityMedium, 1)
	require.NoError(t, err)

	require.NoError(t, tk.ChangeStatus(StatusInProgress))
	assert.Equal(t, StatusInProgress, tk.Status())

	require.NoError(t, tk.ChangeStatus(StatusInProgress), "same status is a no-op")

	assert.Error(t, tk.ChangeStatus(Status("archived")))
}

func TestTicket_Assign(t *testing.T) {
	tk, err := NewTicket("Title", "", PriorityMedium, 1)
	require.NoError(t, err)

	require.NoError(t, tk.AssignTo(9))
	require.NotNil(t, tk.AssigneeID())
	assert.Equal(t, uint(9), *tk.AssigneeID())

	tk.Unassign()
	assert.Nil(t, tk.AssigneeID())

	assert.Error(t, tk.AssignTo(0))
}

func TestComment_Counted(t *testing.T) {
	text, err := NewComment(1, 2, "looks good", CommentTypeText)
	require.NoError(t, err)
	assert.True(t, text.Counted())

	system, err := NewComment(1, 2, "status changed to done", CommentTypeSystem)
	require.NoError(t, err)
	assert.False(t, system.Counted())
}

func TestNewComment_Validation(t *testing.T) {
	tests := []struct {
		name     string
		ticketID uint
		authorID uint
		content  string
		ctype    CommentType
	}{
		{"missing ticket", 0, 2, "hi", CommentTypeText},
		{"missing author", 1, 0, "hi", CommentTypeText},
		{"empty content", 1, 2, "", CommentTypeText},
		{"oversized content", 1, 2, strings.Repeat("x", 5001), CommentTypeText},
		{"invalid type", 1, 2, "hi", CommentType("note")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewComment(tt.ticketID, tt.authorID, tt.content, tt.ctype)
			assert.Error(t, err)
		})
	}
}
