package usecases

import (
	"context"

	"flowdesk/internal/domain/crm"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/query"
)

type ListAccountsQuery struct {
	query.BaseFilter
	OwnerID *uint
}

type ListAccountsResult struct {
	Accounts []*AccountDTO `json:"accounts"`
	Total    int64         `json:"total"`
}

type CreateAccountCommand struct {
	Name     string
	Industry string
	Website  string
	Phone    string
	Email    string
	OwnerID  uint
}

type UpdateAccountCommand struct {
	AccountID uint
	Name      string
	Industry  string
	Website   string
	Phone     string
	Email     string
}

type DeleteAccountCommand struct {
	AccountID uint
}

type AccountUseCases struct {
	accountRepo crm.AccountRepository
	logger      logger.Interface
}

func NewAccountUseCases(accountRepo crm.AccountRepository, logger logger.Interface) *AccountUseCases {
	return &AccountUseCases{accountRepo: accountRepo, logger: logger}
}

func (uc *AccountUseCases) List(ctx context.Context, q ListAccountsQuery) (*ListAccountsResult, error) {
	filter := crm.AccountFilter{BaseFilter: q.BaseFilter, OwnerID: q.OwnerID}

	accounts, total, err := uc.accountRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list accounts", "error", err)
		return nil, err
	}

	dtos := make([]*AccountDTO, len(accounts))
	for i, a := range accounts {
		dtos[i] = NewAccountDTO(a)
	}
	return &ListAccountsResult{Accounts: dtos, Total: total}, nil
}

func (uc *AccountUseCases) Create(ctx context.Context, cmd CreateAccountCommand) (*AccountDTO, error) {
	account, err := crm.NewAccount(cmd.Name, cmd.Industry, cmd.Website, cmd.Phone, cmd.Email, cmd.OwnerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.accountRepo.Save(ctx, account); err != nil {
		uc.logger.Errorw("failed to create account", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("account created", "account_id", account.ID())
	return NewAccountDTO(account), nil
}

func (uc *AccountUseCases) Update(ctx context.Context, cmd UpdateAccountCommand) (*AccountDTO, error) {
	if cmd.AccountID == 0 {
		return nil, errors.NewValidationError("account ID is required")
	}

	account, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		return nil, err
	}

	if err := account.Update(cmd.Name, cmd.Industry, cmd.Website, cmd.Phone, cmd.Email); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to update account", "account_id", cmd.AccountID, "error", err)
		return nil, err
	}

	return NewAccountDTO(account), nil
}

func (uc *AccountUseCases) Delete(ctx context.Context, cmd DeleteAccountCommand) error {
	if cmd.AccountID == 0 {
		return errors.NewValidationError("account ID is required")
	}

	if _, err := uc.accountRepo.GetByID(ctx, cmd.AccountID); err != nil {
		return err
	}

	if err := uc.accountRepo.Delete(ctx, cmd.AccountID); err != nil {
		uc.logger.Errorw("failed to delete account", "account_id", cmd.AccountID, "error", err)
		return err
	}

	uc.logger.Infow("account deleted", "account_id", cmd.AccountID)
	return nil
}
