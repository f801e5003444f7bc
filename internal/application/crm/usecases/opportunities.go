package usecases

import (
	"context"
	"time"

	"flowdesk/internal/domain/board"
	"flowdesk/internal/domain/crm"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/query"
)

type ListOpportunitiesQuery struct {
	query.BaseFilter
	Stage     *string
	AccountID *uint
	OwnerID   *uint
}

type ListOpportunitiesResult struct {
	Opportunities []*OpportunityDTO `json:"opportunities"`
	Total         int64             `json:"total"`
}

type CreateOpportunityCommand struct {
	Name      string
	AccountID *uint
	Amount    float64
	CloseDate *time.Time
	OwnerID   uint
}

type UpdateOpportunityCommand struct {
	OpportunityID uint
	Name          string
	AccountID     *uint
	Amount        float64
	CloseDate     *time.Time
	Stage         *string
}

type DeleteOpportunityCommand struct {
	OpportunityID uint
}

type MoveOpportunityCommand struct {
	OpportunityID uint
	// Stage is the target pipeline stage; empty keeps the current one.
	Stage string
	// AfterID names the card the opportunity should sit behind. Nil
	// moves it to the top of the board.
	AfterID *uint
}

type OpportunityUseCases struct {
	opportunityRepo crm.OpportunityRepository
	accountRepo     crm.AccountRepository
	txManager       TransactionManager
	logger          logger.Interface
}

func NewOpportunityUseCases(
	opportunityRepo crm.OpportunityRepository,
	accountRepo crm.AccountRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *OpportunityUseCases {
	return &OpportunityUseCases{
		opportunityRepo: opportunityRepo,
		accountRepo:     accountRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

func (uc *OpportunityUseCases) List(ctx context.Context, q ListOpportunitiesQuery) (*ListOpportunitiesResult, error) {
	filter := crm.OpportunityFilter{BaseFilter: q.BaseFilter, AccountID: q.AccountID, OwnerID: q.OwnerID}
	if q.Stage != nil {
		stage := crm.OpportunityStage(*q.Stage)
		if !stage.IsValid() {
			return nil, errors.NewValidationError("invalid stage")
		}
		filter.Stage = &stage
	}

	opportunities, total, err := uc.opportunityRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list opportunities", "error", err)
		return nil, err
	}

	dtos := make([]*OpportunityDTO, len(opportunities))
	for i, o := range opportunities {
		dtos[i] = NewOpportunityDTO(o)
	}
	return &ListOpportunitiesResult{Opportunities: dtos, Total: total}, nil
}

// Create assigns the board position inside the creating transaction so
// two concurrent creates cannot share a position.
func (uc *OpportunityUseCases) Create(ctx context.Context, cmd CreateOpportunityCommand) (*OpportunityDTO, error) {
	if cmd.AccountID != nil {
		if _, err := uc.accountRepo.GetByID(ctx, *cmd.AccountID); err != nil {
			return nil, err
		}
	}

	opportunity, err := crm.NewOpportunity(cmd.Name, cmd.AccountID, cmd.Amount, cmd.CloseDate, cmd.OwnerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		maxPos, err := uc.opportunityRepo.MaxPosition(txCtx)
		if err != nil {
			return err
		}
		if err := opportunity.PlaceAt(board.NextPosition(maxPos)); err != nil {
			return err
		}
		return uc.opportunityRepo.Save(txCtx, opportunity)
	})
	if err != nil {
		uc.logger.Errorw("failed to create opportunity", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("opportunity created", "opportunity_id", opportunity.ID(), "position", opportunity.Position())
	return NewOpportunityDTO(opportunity), nil
}

func (uc *OpportunityUseCases) Update(ctx context.Context, cmd UpdateOpportunityCommand) (*OpportunityDTO, error) {
	if cmd.OpportunityID == 0 {
		return nil, errors.NewValidationError("opportunity ID is required")
	}
	if cmd.AccountID != nil {
		if _, err := uc.accountRepo.GetByID(ctx, *cmd.AccountID); err != nil {
			return nil, err
		}
	}

	opportunity, err := uc.opportunityRepo.GetByID(ctx, cmd.OpportunityID)
	if err != nil {
		return nil, err
	}

	if err := opportunity.Update(cmd.Name, cmd.AccountID, cmd.Amount, cmd.CloseDate); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Stage != nil {
		if err := opportunity.ChangeStage(crm.OpportunityStage(*cmd.Stage)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.opportunityRepo.Update(ctx, opportunity); err != nil {
		uc.logger.Errorw("failed to update opportunity", "opportunity_id", cmd.OpportunityID, "error", err)
		return nil, err
	}

	return NewOpportunityDTO(opportunity), nil
}

func (uc *OpportunityUseCases) Delete(ctx context.Context, cmd DeleteOpportunityCommand) error {
	if cmd.OpportunityID == 0 {
		return errors.NewValidationError("opportunity ID is required")
	}

	if _, err := uc.opportunityRepo.GetByID(ctx, cmd.OpportunityID); err != nil {
		return err
	}

	if err := uc.opportunityRepo.Delete(ctx, cmd.OpportunityID); err != nil {
		uc.logger.Errorw("failed to delete opportunity", "opportunity_id", cmd.OpportunityID, "error", err)
		return err
	}

	uc.logger.Infow("opportunity deleted", "opportunity_id", cmd.OpportunityID)
	return nil
}

// Move places the opportunity between the after-card and its successor
// using the midpoint of their positions, renormalizing the board when
// the gap is exhausted.
func (uc *OpportunityUseCases) Move(ctx context.Context, cmd MoveOpportunityCommand) (*OpportunityDTO, error) {
	if cmd.OpportunityID == 0 {
		return nil, errors.NewValidationError("opportunity ID is required")
	}
	if cmd.AfterID != nil && *cmd.AfterID == cmd.OpportunityID {
		return nil, errors.NewValidationError("opportunity cannot be placed after itself")
	}
	if cmd.Stage != "" && !crm.OpportunityStage(cmd.Stage).IsValid() {
		return nil, errors.NewValidationError("invalid stage")
	}

	var moved *crm.Opportunity
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		opportunity, err := uc.opportunityRepo.GetByID(txCtx, cmd.OpportunityID)
		if err != nil {
			return err
		}

		if cmd.Stage != "" {
			if err := opportunity.ChangeStage(crm.OpportunityStage(cmd.Stage)); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		pos, err := uc.resolvePosition(txCtx, opportunity.ID(), cmd.AfterID)
		if err != nil {
			return err
		}

		if err := opportunity.PlaceAt(pos); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.opportunityRepo.Update(txCtx, opportunity); err != nil {
			return err
		}

		moved = opportunity
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to move opportunity", "opportunity_id", cmd.OpportunityID, "error", err)
		return nil, err
	}

	uc.logger.Infow("opportunity moved", "opportunity_id", cmd.OpportunityID, "position", moved.Position())
	return NewOpportunityDTO(moved), nil
}

func (uc *OpportunityUseCases) resolvePosition(ctx context.Context, opportunityID uint, afterID *uint) (int64, error) {
	pos, ok, err := uc.tryResolve(ctx, opportunityID, afterID)
	if err != nil {
		return 0, err
	}
	if ok {
		return pos, nil
	}

	ids, err := uc.opportunityRepo.IDsOrderedByPosition(ctx)
	if err != nil {
		return 0, err
	}
	if err := uc.opportunityRepo.SetPositions(ctx, ids, board.Renormalize(len(ids))); err != nil {
		return 0, err
	}

	pos, ok, err = uc.tryResolve(ctx, opportunityID, afterID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errors.NewInternalError("failed to resolve position after renormalization")
	}
	return pos, nil
}

func (uc *OpportunityUseCases) tryResolve(ctx context.Context, opportunityID uint, afterID *uint) (int64, bool, error) {
	var before int64
	if afterID != nil {
		after, err := uc.opportunityRepo.GetByID(ctx, *afterID)
		if err != nil {
			return 0, false, err
		}
		before = after.Position()
	}

	next, found, err := uc.opportunityRepo.NextPositionAfter(ctx, before, opportunityID)
	if err != nil {
		return 0, false, err
	}
	if !found {
		return board.NextPosition(before), true, nil
	}

	mid, ok := board.Midpoint(before, next)
	return mid, ok, nil
}
