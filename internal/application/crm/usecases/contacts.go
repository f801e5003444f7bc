package usecases

import (
	"context"

	"flowdesk/internal/domain/crm"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/query"
)

type ListContactsQuery struct {
	query.BaseFilter
	AccountID *uint
	OwnerID   *uint
}

type ListContactsResult struct {
	Contacts []*ContactDTO `json:"contacts"`
	Total    int64         `json:"total"`
}

type CreateContactCommand struct {
	AccountID *uint
	FirstName string
	LastName  string
	Email     string
	Phone     string
	JobTitle  string
	OwnerID   uint
}

type UpdateContactCommand struct {
	ContactID uint
	AccountID *uint
	FirstName string
	LastName  string
	Email     string
	Phone     string
	JobTitle  string
}

type DeleteContactCommand struct {
	ContactID uint
}

type ContactUseCases struct {
	contactRepo crm.ContactRepository
	accountRepo crm.AccountRepository
	logger      logger.Interface
}

func NewContactUseCases(
	contactRepo crm.ContactRepository,
	accountRepo crm.AccountRepository,
	logger logger.Interface,
) *ContactUseCases {
	return &ContactUseCases{
		contactRepo: contactRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *ContactUseCases) List(ctx context.Context, q ListContactsQuery) (*ListContactsResult, error) {
	filter := crm.ContactFilter{BaseFilter: q.BaseFilter, AccountID: q.AccountID, OwnerID: q.OwnerID}

	contacts, total, err := uc.contactRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list contacts", "error", err)
		return nil, err
	}

	dtos := make([]*ContactDTO, len(contacts))
	for i, c := range contacts {
		dtos[i] = NewContactDTO(c)
	}
	return &ListContactsResult{Contacts: dtos, Total: total}, nil
}

func (uc *ContactUseCases) Create(ctx context.Context, cmd CreateContactCommand) (*ContactDTO, error) {
	if cmd.AccountID != nil {
		if _, err := uc.accountRepo.GetByID(ctx, *cmd.AccountID); err != nil {
			return nil, err
		}
	}

	contact, err := crm.NewContact(cmd.AccountID, cmd.FirstName, cmd.LastName, cmd.Email, cmd.Phone, cmd.JobTitle, cmd.OwnerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.contactRepo.Save(ctx, contact); err != nil {
		uc.logger.Errorw("failed to create contact", "error", err)
		return nil, err
	}

	uc.logger.Infow("contact created", "contact_id", contact.ID())
	return NewContactDTO(contact), nil
}

func (uc *ContactUseCases) Update(ctx context.Context, cmd UpdateContactCommand) (*ContactDTO, error) {
	if cmd.ContactID == 0 {
		return nil, errors.NewValidationError("contact ID is required")
	}
	if cmd.AccountID != nil {
		if _, err := uc.accountRepo.GetByID(ctx, *cmd.AccountID); err != nil {
			return nil, err
		}
	}

	contact, err := uc.contactRepo.GetByID(ctx, cmd.ContactID)
	if err != nil {
		return nil, err
	}

	if err := contact.Update(cmd.AccountID, cmd.FirstName, cmd.LastName, cmd.Email, cmd.Phone, cmd.JobTitle); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.contactRepo.Update(ctx, contact); err != nil {
		uc.logger.Errorw("failed to update contact", "contact_id", cmd.ContactID, "error", err)
		return nil, err
	}

	return NewContactDTO(contact), nil
}

func (uc *ContactUseCases) Delete(ctx context.Context, cmd DeleteContactCommand) error {
	if cmd.ContactID == 0 {
		return errors.NewValidationError("contact ID is required")
	}

	if _, err := uc.contactRepo.GetByID(ctx, cmd.ContactID); err != nil {
		return err
	}

	if err := uc.contactRepo.Delete(ctx, cmd.ContactID); err != nil {
		uc.logger.Errorw("failed to delete contact", "contact_id", cmd.ContactID, "error", err)
		return err
	}

	uc.logger.Infow("contact deleted", "contact_id", cmd.ContactID)
	return nil
}
