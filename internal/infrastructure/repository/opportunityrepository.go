package repository

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"flowdesk/internal/domain/crm"
	"flowdesk/internal/infrastructure/persistence/mappers"
	"flowdesk/internal/infrastructure/persistence/models"
	"flowdesk/internal/shared/db"
	apperrors "flowdesk/internal/shared/errors"
)

var allowedOpportunityOrderByFields = map[string]bool{
	"id":         true,
	"name":       true,
	"amount":     true,
	"stage":      true,
	"position":   true,
	"account_id": true,
	"close_date": true,
	"created_at": true,
	"updated_at": true,
}

type OpportunityRepository struct {
	db     *gorm.DB
	mapper mappers.CRMMapper
}

func NewOpportunityRepository(db *gorm.DB) *OpportunityRepository {
	return &OpportunityRepository{
		db:     db,
		mapper: mappers.NewCRMMapper(),
	}
}

func (r *OpportunityRepository) Save(ctx context.Context, o *crm.Opportunity) error {
	model := r.mapper.OpportunityToModel(o)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save opportunity: %w", err)
	}

	return o.SetID(model.ID)
}

func (r *OpportunityRepository) Update(ctx context.Context, o *crm.Opportunity) error {
	model := r.mapper.OpportunityToModel(o)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.OpportunityModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"amount":     model.Amount,
			"stage":      model.Stage,
			"position":   model.Position,
			"account_id": model.AccountID,
			"owner_id":   model.OwnerID,
			"close_date": model.CloseDate,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update opportunity: %w", result.Error)
	}
	return nil
}

func (r *OpportunityRepository) Delete(ctx context.Context, opportunityID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.OpportunityModel{}, opportunityID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete opportunity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("opportunity not found")
	}
	return nil
}

func (r *OpportunityRepository) GetByID(ctx context.Context, opportunityID uint) (*crm.Opportunity, error) {
	var model models.OpportunityModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, opportunityID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("opportunity not found")
		}
		return nil, fmt.Errorf("failed to find opportunity: %w", err)
	}

	return r.mapper.OpportunityToDomain(&model)
}

func (r *OpportunityRepository) List(ctx context.Context, filter crm.OpportunityFilter) ([]*crm.Opportunity, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.OpportunityModel{})

	if filter.Stage != nil {
		query = query.Where("stage = ?", filter.Stage.String())
	}
	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count opportunities: %w", err)
	}

	if filter.SortBy != "" && allowedOpportunityOrderByFields[filter.SortBy] {
		query = query.Order(filter.OrderClause())
	} else {
		query = query.Order("position ASC")
	}

	var list []*models.OpportunityModel
	if err := query.
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list opportunities: %w", err)
	}

	opportunities, err := r.mapper.OpportunitiesToDomain(list)
	if err != nil {
		return nil, 0, err
	}

	return opportunities, total, nil
}

// MaxPosition returns the highest pipeline position, 0 when empty.
// Under MySQL the read takes a row lock so concurrent creates cannot
// observe the same maximum.
func (r *OpportunityRepository) MaxPosition(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.OpportunityModel{})
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

func (r *OpportunityRepository) NextPositionAfter(ctx context.Context, pos int64, excludeID uint) (int64, bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var next sql.NullInt64
	if err := tx.Model(&models.OpportunityModel{}).
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

func (r *OpportunityRepository) UpdatePosition(ctx context.Context, opportunityID uint, position int64) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.OpportunityModel{}).
		Where("id = ?", opportunityID).
		UpdateColumn("position", position)
	if result.Error != nil {
		return fmt.Errorf("failed to update position: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("opportunity not found")
	}
	return nil
}

func (r *OpportunityRepository) IDsOrderedByPosition(ctx context.Context) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []uint
	if err := tx.Model(&models.OpportunityModel{}).
		Order("position ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list opportunity ids: %w", err)
	}
	return ids, nil
}

func (r *OpportunityRepository) SetPositions(ctx context.Context, ids []uint, positions []int64) error {
	if len(ids) != len(positions) {
		return fmt.Errorf("ids and positions length mismatch")
	}
	tx := db.GetTxFromContext(ctx, r.db)

	for i, id := range ids {
		if err := tx.Model(&models.OpportunityModel{}).
			Where("id = ?", id).
			UpdateColumn("position", positions[i]).Error; err != nil {
			return fmt.Errorf("failed to set position for opportunity %d: %w", id, err)
		}
	}
	return nil
}
