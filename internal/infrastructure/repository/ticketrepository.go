package repository

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/infrastructure/persistence/mappers"
	"flowdesk/internal/infrastructure/persistence/models"
	"flowdesk/internal/shared/db"
	apperrors "flowdesk/internal/shared/errors"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":          true,
	"title":       true,
	"status":      true,
	"priority":    true,
	"creator_id":  true,
	"assignee_id": true,
	"position":    true,
	"created_at":  true,
	"updated_at":  true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Map-form update so zero values (cleared description, removed
	// assignee) are written. The comment counter is excluded: it is only
	// ever moved by AdjustCommentCount's atomic increment.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"status":      model.Status,
			"priority":    model.Priority,
			"assignee_id": model.AssigneeID,
			"position":    model.Position,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	if filter.SortBy != "" && allowedTicketOrderByFields[filter.SortBy] {
		query = query.Order(filter.OrderClause())
	} else {
		query = query.Order("position ASC")
	}

	var list []*models.TicketModel
	if err := query.
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.mapper.ToDomainList(list)
	if err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context, status ticket.Status) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.TicketModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets by status: %w", err)
	}
	return count, nil
}

// MaxPosition returns the highest board position, 0 when the board is
// empty. Under MySQL the read takes a row lock so that two concurrent
// creating transactions cannot observe the same maximum.
func (r *TicketRepository) MaxPosition(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.TicketModel{})
	if tx.Dialector.Name() == "mysql" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var max sql.NullInt64
	if err := query.Select("MAX(position)").Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("failed to read max position: %w", err)
	}
	if !max.Valid {
		return 0, nil
	}
	return max.Int64, nil
}

// NextPositionAfter returns the smallest position strictly greater
// than pos, excluding the given ticket. found is false when no such
// row exists, meaning pos is the tail of the board.
func (r *TicketRepository) NextPositionAfter(ctx context.Context, pos int64, excludeID uint) (int64, bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var next sql.NullInt64
	if err := tx.Model(&models.TicketModel{}).
		Select("MIN(position)").
		Where("position > ? AND id <> ?", pos, excludeID).
		Scan(&next).Error; err != nil {
		return 0, false, fmt.Errorf("failed to read next position: %w", err)
	}
	if !next.Valid {
		return 0, false, nil
	}
	return next.Int64, true, nil
}

func (r *TicketRepository) UpdatePosition(ctx context.Context, ticketID uint, position int64) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TicketModel{}).
		Where("id = ?", ticketID).
		UpdateColumn("position", position)
	if result.Error != nil {
		return fmt.Errorf("failed to update position: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) IDsOrderedByPosition(ctx context.Context) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []uint
	if err := tx.Model(&models.TicketModel{}).
		Order("position ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket ids: %w", err)
	}
	return ids, nil
}

// SetPositions rewrites positions row by row. Callers are expected to
// run it inside a transaction so the renumbering is atomic.
func (r *TicketRepository) SetPositions(ctx context.Context, ids []uint, positions []int64) error {
	if len(ids) != len(positions) {
		return fmt.Errorf("ids and positions length mismatch")
	}
	tx := db.GetTxFromContext(ctx, r.db)

	for i, id := range ids {
		if err := tx.Model(&models.TicketModel{}).
			Where("id = ?", id).
			UpdateColumn("position", positions[i]).Error; err != nil {
			return fmt.Errorf("failed to set position for ticket %d: %w", id, err)
		}
	}
	return nil
}

// AdjustCommentCount applies a relative delta to the denormalized
// comment counter with a single atomic UPDATE.
func (r *TicketRepository) AdjustCommentCount(ctx context.Context, ticketID uint, delta int) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TicketModel{}).
		Where("id = ?", ticketID).
		UpdateColumn("comment_count", gorm.Expr("comment_count + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("failed to adjust comment count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}
	return nil
}
