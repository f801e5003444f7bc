package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowdesk/internal/application/ticket/usecases"
	"flowdesk/internal/interfaces/http/handlers/testutil"
	"flowdesk/internal/shared/errors"
)

type mockCreateTicketUC struct {
	result *usecases.CreateTicketResult
	err    error
	gotCmd usecases.CreateTicketCommand
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockMoveTicketUC struct {
	result *usecases.TicketDTO
	err    error
	gotCmd usecases.MoveTicketCommand
}

func (m *mockMoveTicketUC) Execute(_ context.Context, cmd usecases.MoveTicketCommand) (*usecases.TicketDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockAddCommentUC struct {
	result *usecases.CommentDTO
	err    error
	gotCmd usecases.AddCommentCommand
}

func (m *mockAddCommentUC) Execute(_ context.Context, cmd usecases.AddCommentCommand) (*usecases.CommentDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockDeleteCommentUC struct {
	err    error
	gotCmd usecases.DeleteCommentCommand
}

func (m *mockDeleteCommentUC) Execute(_ context.Context, cmd usecases.DeleteCommentCommand) error {
	m.gotCmd = cmd
	return m.err
}

type ticketTestDeps struct {
	createTicketUC  usecases.CreateTicketExecutor
	getTicketUC     usecases.GetTicketExecutor
	listTicketsUC   usecases.ListTicketsExecutor
	updateTicketUC  usecases.UpdateTicketExecutor
	deleteTicketUC  usecases.DeleteTicketExecutor
	moveTicketUC    usecases.MoveTicketExecutor
	addCommentUC    usecases.AddCommentExecutor
	listCommentsUC  usecases.ListCommentsExecutor
	deleteCommentUC usecases.DeleteCommentExecutor
}

func newTestTicketHandler(deps ticketTestDeps) *TicketHandler {
	return NewTicketHandler(
		deps.createTicketUC,
		deps.getTicketUC,
		deps.listTicketsUC,
		deps.updateTicketUC,
		deps.deleteTicketUC,
		deps.moveTicketUC,
		deps.addCommentUC,
		deps.listCommentsUC,
		deps.deleteCommentUC,
	)
}

func sampleTicketDTO() *usecases.TicketDTO {
	now := time.Now().UTC()
	return &usecases.TicketDTO{
		ID:        1,
		Title:     "Broken login",
		Status:    "todo",
		Priority:  "high",
		CreatorID: 7,
		Position:  1000,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTicketHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockUC := &mockCreateTicketUC{result: &usecases.CreateTicketResult{Ticket: sampleTicketDTO()}}
		handler := newTestTicketHandler(ticketTestDeps{createTicketUC: mockUC})

		c, w := testutil.NewTestContext(http.MethodPost, "/tickets", CreateTicketRequest{
			Title:    "Broken login",
			Priority: "high",
		})
		testutil.SetAuthContext(c, 7, "user")

		handler.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(7), mockUC.gotCmd.CreatorID, "creator comes from the auth context")

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)
	})

	t.Run("blank title fails binding", func(t *testing.T) {
		handler := newTestTicketHandler(ticketTestDeps{})

		c, w := testutil.NewTestContext(http.MethodPost, "/tickets", map[string]string{"title": "   "})
		testutil.SetAuthContext(c, 7, "user")

		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "validation_error", resp.Error.Type)
	})

	t.Run("usecase error propagates the envelope", func(t *testing.T) {
		mockUC := &mockCreateTicketUC{err: errors.NewValidationError("invalid priority")}
		handler := newTestTicketHandler(ticketTestDeps{createTicketUC: mockUC})

		c, w := testutil.NewTestContext(http.MethodPost, "/tickets", CreateTicketRequest{
			Title:    "Broken login",
			Priority: "high",
		})
		testutil.SetAuthContext(c, 7, "user")

		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "invalid priority", resp.Error.Message)
	})
}

func TestTicketHandler_Move(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockUC := &mockMoveTicketUC{result: sampleTicketDTO()}
		handler := newTestTicketHandler(ticketTestDeps{moveTicketUC: mockUC})

		after := uint(5)
		c, w := testutil.NewTestContext(http.MethodPatch, "/tickets/1/move", MoveTicketRequest{
			Status:  "done",
			AfterID: &after,
		})
		testutil.SetAuthContext(c, 7, "user")
		testutil.SetURLParam(c, "id", "1")

		handler.Move(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(1), mockUC.gotCmd.TicketID)
		assert.Equal(t, "done", mockUC.gotCmd.Status)
		require.NotNil(t, mockUC.gotCmd.AfterID)
		assert.Equal(t, uint(5), *mockUC.gotCmd.AfterID)
	})

	t.Run("invalid id param", func(t *testing.T) {
		handler := newTestTicketHandler(ticketTestDeps{})

		c, w := testutil.NewTestContext(http.MethodPatch, "/tickets/abc/move", MoveTicketRequest{})
		testutil.SetURLParam(c, "id", "abc")

		handler.Move(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing ticket", func(t *testing.T) {
		mockUC := &mockMoveTicketUC{err: errors.NewNotFoundError("ticket not found")}
		handler := newTestTicketHandler(ticketTestDeps{moveTicketUC: mockUC})

		c, w := testutil.NewTestContext(http.MethodPatch, "/tickets/99/move", MoveTicketRequest{})
		testutil.SetAuthContext(c, 7, "user")
		testutil.SetURLParam(c, "id", "99")

		handler.Move(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTicketHandler_AddComment(t *testing.T) {
	t.Run("author comes from the auth context", func(t *testing.T) {
		mockUC := &mockAddCommentUC{result: &usecases.CommentDTO{ID: 10, TicketID: 1, AuthorID: 7, Content: "hi", Type: "text"}}
		handler := newTestTicketHandler(ticketTestDeps{addCommentUC: mockUC})

		c, w := testutil.NewTestContext(http.MethodPost, "/tickets/1/comments", AddCommentRequest{Content: "hi"})
		testutil.SetAuthContext(c, 7, "user")
		testutil.SetURLParam(c, "id", "1")

		handler.AddComment(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(1), mockUC.gotCmd.TicketID)
		assert.Equal(t, uint(7), mockUC.gotCmd.AuthorID)
	})

	t.Run("empty content fails binding", func(t *testing.T) {
		handler := newTestTicketHandler(ticketTestDeps{})

		c, w := testutil.NewTestContext(http.MethodPost, "/tickets/1/comments", map[string]string{})
		testutil.SetAuthContext(c, 7, "user")
		testutil.SetURLParam(c, "id", "1")

		handler.AddComment(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTicketHandler_DeleteComment(t *testing.T) {
	t.Run("passes requester identity and role", func(t *testing.T) {
		mockUC := &mockDeleteCommentUC{}
		handler := newTestTicketHandler(ticketTestDeps{deleteCommentUC: mockUC})

		c, w := testutil.NewTestContext(http.MethodDelete, "/comments/10", nil)
		testutil.SetAuthContext(c, 7, "admin")
		testutil.SetURLParam(c, "id", "10")

		handler.DeleteComment(c)
		testutil.FlushResponse(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, uint(10), mockUC.gotCmd.CommentID)
		assert.Equal(t, uint(7), mockUC.gotCmd.RequesterID)
		assert.Equal(t, "admin", string(mockUC.gotCmd.RequesterRole))
	})

	t.Run("forbidden maps to 403", func(t *testing.T) {
		mockUC := &mockDeleteCommentUC{err: errors.NewForbiddenError("only the author or an admin can delete a comment")}
		handler := newTestTicketHandler(ticketTestDeps{deleteCommentUC: mockUC})

		c, w := testutil.NewTestContext(http.MethodDelete, "/comments/10", nil)
		testutil.SetAuthContext(c, 3, "user")
		testutil.SetURLParam(c, "id", "10")

		handler.DeleteComment(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
