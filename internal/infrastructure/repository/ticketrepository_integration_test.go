package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/infrastructure/persistence/models"
	apperrors "flowdesk/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.TicketModel{}, &models.CommentModel{}, &models.ColumnModel{})
	require.NoError(t, err)

	return db
}

func createTestTicket(t *testing.T, repo *TicketRepository, title string, position int64) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(title, "description", ticket.PriorityMedium, 1)
	require.NoError(t, err)
	require.NoError(t, tk.PlaceAt(position))
	require.NoError(t, repo.Save(context.Background(), tk))
	return tk
}

func TestTicketRepository_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, repo, "Broken login", 1000)
	assert.NotZero(t, tk.ID())

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, "Broken login", found.Title())
	assert.Equal(t, int64(1000), found.Position())
	assert.Equal(t, ticket.StatusTodo, found.Status())

	_, err = repo.GetByID(ctx, 9999)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestTicketRepository_Positions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("max position on empty board is zero", func(t *testing.T) {
		max, err := repo.MaxPosition(ctx)
		require.NoError(t, err)
		assert.Zero(t, max)
	})

	first := createTestTicket(t, repo, "First", 1000)
	second := createTestTicket(t, repo, "Second", 2000)
	third := createTestTicket(t, repo, "Third", 3000)

	t.Run("max position tracks the tail", func(t *testing.T) {
		max, err := repo.MaxPosition(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3000), max)
	})

	t.Run("next position after excludes the moving card", func(t *testing.T) {
		next, found, err := repo.NextPositionAfter(ctx, 1000, third.ID())
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, int64(2000), next)

		// Excluding the only successor means the slot is the tail.
		next, found, err = repo.NextPositionAfter(ctx, 2000, third.ID())
		require.NoError(t, err)
		assert.False(t, found)
		assert.Zero(t, next)
	})

	t.Run("ids come back in display order", func(t *testing.T) {
		ids, err := repo.IDsOrderedByPosition(ctx)
		require.NoError(t, err)
		assert.Equal(t, []uint{first.ID(), second.ID(), third.ID()}, ids)
	})

	t.Run("set positions renumbers the board", func(t *testing.T) {
		ids := []uint{third.ID(), first.ID(), second.ID()}
		require.NoError(t, repo.SetPositions(ctx, ids, []int64{1000, 2000, 3000}))

		ordered, err := repo.IDsOrderedByPosition(ctx)
		require.NoError(t, err)
		assert.Equal(t, ids, ordered)
	})

	t.Run("set positions rejects mismatched lengths", func(t *testing.T) {
		err := repo.SetPositions(ctx, []uint{1, 2}, []int64{1000})
		assert.Error(t, err)
	})
}

func TestTicketRepository_UpdateClearsFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, repo, "Assigned", 1000)
	require.NoError(t, tk.AssignTo(4))
	require.NoError(t, repo.Update(ctx, tk))

	t.Run("unassign persists a nil assignee", func(t *testing.T) {
		tk.Unassign()
		require.NoError(t, repo.Update(ctx, tk))

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Nil(t, found.AssigneeID())
	})

	t.Run("cleared description persists an empty string", func(t *testing.T) {
		require.NoError(t, tk.UpdateDetails(tk.Title(), ""))
		require.NoError(t, repo.Update(ctx, tk))

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Empty(t, found.Description())
	})
}

func TestTicketRepository_CommentCount(t *testing.T) {
	db := setupTestDB(t)
	ticketRepo := NewTicketRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, ticketRepo, "Counted", 1000)

	counted := func() int {
		found, err := ticketRepo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		return found.CommentCount()
	}

	t.Run("text comment increments", func(t *testing.T) {
		c, err := ticket.NewComment(tk.ID(), 2, "first", ticket.CommentTypeText)
		require.NoError(t, err)
		require.NoError(t, commentRepo.Save(ctx, c))
		require.NoError(t, ticketRepo.AdjustCommentCount(ctx, tk.ID(), 1))
		assert.Equal(t, 1, counted())
	})

	t.Run("system comment is stored but not counted", func(t *testing.T) {
		c, err := ticket.NewComment(tk.ID(), 2, "moved to done", ticket.CommentTypeSystem)
		require.NoError(t, err)
		require.NoError(t, commentRepo.Save(ctx, c))

		comments, err := commentRepo.GetByTicketID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Len(t, comments, 2)
		assert.Equal(t, 1, counted())
	})

	t.Run("deleting the text comment restores zero", func(t *testing.T) {
		comments, err := commentRepo.GetByTicketID(ctx, tk.ID())
		require.NoError(t, err)

		for _, c := range comments {
			if c.Counted() {
				require.NoError(t, commentRepo.Delete(ctx, c.ID()))
				require.NoError(t, ticketRepo.AdjustCommentCount(ctx, tk.ID(), -1))
			}
		}
		assert.Equal(t, 0, counted())
	})

	t.Run("adjusting a missing ticket is not found", func(t *testing.T) {
		err := ticketRepo.AdjustCommentCount(ctx, 9999, 1)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestTicketRepository_ListAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	createTestTicket(t, repo, "One", 1000)
	moved := createTestTicket(t, repo, "Two", 2000)
	createTestTicket(t, repo, "Three", 3000)

	require.NoError(t, moved.ChangeStatus(ticket.StatusDone))
	require.NoError(t, repo.Update(ctx, moved))

	t.Run("list defaults to position order", func(t *testing.T) {
		list, total, err := repo.List(ctx, ticket.TicketFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, list, 3)
		assert.Equal(t, "One", list[0].Title())
		assert.Equal(t, "Three", list[2].Title())
	})

	t.Run("status filter narrows the result", func(t *testing.T) {
		done := ticket.StatusDone
		list, total, err := repo.List(ctx, ticket.TicketFilter{Status: &done})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, list, 1)
		assert.Equal(t, "Two", list[0].Title())
	})

	t.Run("count by status", func(t *testing.T) {
		count, err := repo.CountByStatus(ctx, ticket.StatusTodo)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		count, err = repo.CountByStatus(ctx, ticket.StatusReview)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestTicketRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, repo, "Doomed", 1000)

	require.NoError(t, repo.Delete(ctx, tk.ID()))

	_, err := repo.GetByID(ctx, tk.ID())
	assert.True(t, apperrors.IsNotFoundError(err))

	err = repo.Delete(ctx, tk.ID())
	assert.True(t, apperrors.IsNotFoundError(err))
}
