package crm

import (
	"context"

	"flowdesk/internal/shared/query"
)

type AccountFilter struct {
	query.BaseFilter
	OwnerID *uint
}

type AccountRepository interface {
	Save(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, accountID uint) error
	GetByID(ctx context.Context, accountID uint) (*Account, error)
	List(ctx context.Context, filter AccountFilter) ([]*Account, int64, error)
}

type ContactFilter struct {
	query.BaseFilter
	AccountID *uint
	OwnerID   *uint
}

type ContactRepository interface {
	Save(ctx context.Context, contact *Contact) error
	Update(ctx context.Context, contact *Contact) error
	Delete(ctx context.Context, contactID uint) error
	GetByID(ctx context.Context, contactID uint) (*Contact, error)
	List(ctx context.Context, filter ContactFilter) ([]*Contact, int64, error)
}

type LeadFilter struct {
	query.BaseFilter
	Status  *LeadStatus
	OwnerID *uint
}

type LeadRepository interface {
	Save(ctx context.Context, lead *Lead) error
	Update(ctx context.Context, lead *Lead) error
	Delete(ctx context.Context, leadID uint) error
	GetByID(ctx context.Context, leadID uint) (*Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]*Lead, int64, error)
}

type OpportunityFilter struct {
	query.BaseFilter
	Stage     *OpportunityStage
	AccountID *uint
	OwnerID   *uint
}

type OpportunityRepository interface {
	Save(ctx context.Context, opportunity *Opportunity) error
	Update(ctx context.Context, opportunity *Opportunity) error
	Delete(ctx context.Context, opportunityID uint) error
	GetByID(ctx context.Context, opportunityID uint) (*Opportunity, error)
	List(ctx context.Context, filter OpportunityFilter) ([]*Opportunity, int64, error)

	// Board position operations, same contract as the ticket repository.
	MaxPosition(ctx context.Context) (int64, error)
	NextPositionAfter(ctx context.Context, pos int64, excludeID uint) (next int64, found bool, err error)
	UpdatePosition(ctx context.Context, opportunityID uint, position int64) error
	IDsOrderedByPosition(ctx context.Context) ([]uint, error)
	SetPositions(ctx context.Context, ids []uint, positions []int64) error
}

type CaseFilter struct {
	query.BaseFilter
	Status    *CaseStatus
	AccountID *uint
	OwnerID   *uint
}

type CaseRepository interface {
	Save(ctx context.Context, c *Case) error
	Update(ctx context.Context, c *Case) error
	Delete(ctx context.Context, caseID uint) error
	GetByID(ctx context.Context, caseID uint) (*Case, error)
	List(ctx context.Context, filter CaseFilter) ([]*Case, int64, error)
}
