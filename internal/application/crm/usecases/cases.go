package usecases

import (
	"context"

	"flowdesk/internal/domain/crm"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/query"
)

type ListCasesQuery struct {
	query.BaseFilter
	Status    *string
	AccountID *uint
	OwnerID   *uint
}

type ListCasesResult struct {
	Cases []*CaseDTO `json:"cases"`
	Total int64      `json:"total"`
}

type CreateCaseCommand struct {
	Subject     string
	Description string
	AccountID   *uint
	OwnerID     uint
}

type UpdateCaseCommand struct {
	CaseID      uint
	Subject     string
	Description string
	AccountID   *uint
	Status      *string
}

type DeleteCaseCommand struct {
	CaseID uint
}

type CaseUseCases struct {
	caseRepo    crm.CaseRepository
	accountRepo crm.AccountRepository
	logger      logger.Interface
}

func NewCaseUseCases(
	caseRepo crm.CaseRepository,
	accountRepo crm.AccountRepository,
	logger logger.Interface,
) *CaseUseCases {
	return &CaseUseCases{
		caseRepo:    caseRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *CaseUseCases) List(ctx context.Context, q ListCasesQuery) (*ListCasesResult, error) {
	filter := crm.CaseFilter{BaseFilter: q.BaseFilter, AccountID: q.AccountID, OwnerID: q.OwnerID}
	if q.Status != nil {
		status := crm.CaseStatus(*q.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status")
		}
		filter.Status = &status
	}

	cases, total, err := uc.caseRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list cases", "error", err)
		return nil, err
	}

	dtos := make([]*CaseDTO, len(cases))
	for i, c := range cases {
		dtos[i] = NewCaseDTO(c)
	}
	return &ListCasesResult{Cases: dtos, Total: total}, nil
}

func (uc *CaseUseCases) Create(ctx context.Context, cmd CreateCaseCommand) (*CaseDTO, error) {
	if cmd.AccountID != nil {
		if _, err := uc.accountRepo.GetByID(ctx, *cmd.AccountID); err != nil {
			return nil, err
		}
	}

	c, err := crm.NewCase(cmd.Subject, cmd.Description, cmd.AccountID, cmd.OwnerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.caseRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to create case", "error", err)
		return nil, err
	}

	uc.logger.Infow("case created", "case_id", c.ID())
	return NewCaseDTO(c), nil
}

func (uc *CaseUseCases) Update(ctx context.Context, cmd UpdateCaseCommand) (*CaseDTO, error) {
	if cmd.CaseID == 0 {
		return nil, errors.NewValidationError("case ID is required")
	}
	if cmd.AccountID != nil {
		if _, err := uc.accountRepo.GetByID(ctx, *cmd.AccountID); err != nil {
			return nil, err
		}
	}

	c, err := uc.caseRepo.GetByID(ctx, cmd.CaseID)
	if err != nil {
		return nil, err
	}

	if err := c.Update(cmd.Subject, cmd.Description, cmd.AccountID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Status != nil {
		if err := c.ChangeStatus(crm.CaseStatus(*cmd.Status)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.caseRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update case", "case_id", cmd.CaseID, "error", err)
		return nil, err
	}

	return NewCaseDTO(c), nil
}

func (uc *CaseUseCases) Delete(ctx context.Context, cmd DeleteCaseCommand) error {
	if cmd.CaseID == 0 {
		return errors.NewValidationError("case ID is required")
	}

	if _, err := uc.caseRepo.GetByID(ctx, cmd.CaseID); err != nil {
		return err
	}

	if err := uc.caseRepo.Delete(ctx, cmd.CaseID); err != nil {
		uc.logger.Errorw("failed to delete case", "case_id", cmd.CaseID, "error", err)
		return err
	}

	uc.logger.Infow("case deleted", "case_id", cmd.CaseID)
	return nil
}
