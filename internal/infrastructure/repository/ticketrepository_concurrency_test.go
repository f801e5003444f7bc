package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowdesk/internal/application/ticket/usecases"
	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/shared/db"
	"flowdesk/internal/shared/logger"
)

// Concurrent creates share the max-read-then-insert transaction, so no
// two tickets may land on the same board position.
func TestCreateTicket_ConcurrentCreatesGetDistinctPositions(t *testing.T) {
	gormDB := setupTestDB(t)

	// SQLite in-memory databases are per-connection; a single connection
	// also serializes the writing transactions the way the locking read
	// does on MySQL.
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	repo := NewTicketRepository(gormDB)
	txManager := db.NewTransactionManager(gormDB)
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	uc := usecases.NewCreateTicketUseCase(repo, txManager, log)

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), usecases.CreateTicketCommand{
				Title:     fmt.Sprintf("Concurrent %d", i),
				Priority:  "medium",
				CreatorID: 1,
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	list, total, err := repo.List(context.Background(), ticket.TicketFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(writers), total)

	seen := make(map[int64]bool, writers)
	for _, tk := range list {
		assert.False(t, seen[tk.Position()], "position %d assigned twice", tk.Position())
		seen[tk.Position()] = true
	}
}
