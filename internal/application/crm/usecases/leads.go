package usecases

import (
	"context"

	"flowdesk/internal/domain/crm"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/query"
)

type ListLeadsQuery struct {
	query.BaseFilter
	Status  *string
	OwnerID *uint
}

type ListLeadsResult struct {
	Leads []*LeadDTO `json:"leads"`
	Total int64      `json:"total"`
}

type CreateLeadCommand struct {
	Name    string
	Company string
	Email   string
	Phone   string
	Source  string
	OwnerID uint
}

type UpdateLeadCommand struct {
	LeadID  uint
	Name    string
	Company string
	Email   string
	Phone   string
	Source  string
	Status  *string
}

type DeleteLeadCommand struct {
	LeadID uint
}

type LeadUseCases struct {
	leadRepo crm.LeadRepository
	logger   logger.Interface
}

func NewLeadUseCases(leadRepo crm.LeadRepository, logger logger.Interface) *LeadUseCases {
	return &LeadUseCases{leadRepo: leadRepo, logger: logger}
}

func (uc *LeadUseCases) List(ctx context.Context, q ListLeadsQuery) (*ListLeadsResult, error) {
	filter := crm.LeadFilter{BaseFilter: q.BaseFilter, OwnerID: q.OwnerID}
	if q.Status != nil {
		status := crm.LeadStatus(*q.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status")
		}
		filter.Status = &status
	}

	leads, total, err := uc.leadRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list leads", "error", err)
		return nil, err
	}

	dtos := make([]*LeadDTO, len(leads))
	for i, l := range leads {
		dtos[i] = NewLeadDTO(l)
	}
	return &ListLeadsResult{Leads: dtos, Total: total}, nil
}

func (uc *LeadUseCases) Create(ctx context.Context, cmd CreateLeadCommand) (*LeadDTO, error) {
	lead, err := crm.NewLead(cmd.Name, cmd.Company, cmd.Email, cmd.Phone, cmd.Source, cmd.OwnerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.leadRepo.Save(ctx, lead); err != nil {
		uc.logger.Errorw("failed to create lead", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("lead created", "lead_id", lead.ID())
	return NewLeadDTO(lead), nil
}

func (uc *LeadUseCases) Update(ctx context.Context, cmd UpdateLeadCommand) (*LeadDTO, error) {
	if cmd.LeadID == 0 {
		return nil, errors.NewValidationError("lead ID is required")
	}

	lead, err := uc.leadRepo.GetByID(ctx, cmd.LeadID)
	if err != nil {
		return nil, err
	}

	if err := lead.Update(cmd.Name, cmd.Company, cmd.Email, cmd.Phone, cmd.Source); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Status != nil {
		if err := lead.ChangeStatus(crm.LeadStatus(*cmd.Status)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.leadRepo.Update(ctx, lead); err != nil {
		uc.logger.Errorw("failed to update lead", "lead_id", cmd.LeadID, "error", err)
		return nil, err
	}

	return NewLeadDTO(lead), nil
}

func (uc *LeadUseCases) Delete(ctx context.Context, cmd DeleteLeadCommand) error {
	if cmd.LeadID == 0 {
		return errors.NewValidationError("lead ID is required")
	}

	if _, err := uc.leadRepo.GetByID(ctx, cmd.LeadID); err != nil {
		return err
	}

	if err := uc.leadRepo.Delete(ctx, cmd.LeadID); err != nil {
		uc.logger.Errorw("failed to delete lead", "lead_id", cmd.LeadID, "error", err)
		return err
	}

	uc.logger.Infow("lead deleted", "lead_id", cmd.LeadID)
	return nil
}
