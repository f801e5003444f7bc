package crm

import (
	"fmt"
	"time"

	"flowdesk/internal/shared/biztime"
)

type OpportunityStage string

const (
	StageProspecting OpportunityStage = "prospecting"
	StageProposal    OpportunityStage = "proposal"
	StageNegotiation OpportunityStage = "negotiation"
	StageWon         OpportunityStage = "won"
	StageLost        OpportunityStage = "lost"
)

func (s OpportunityStage) String() string {
	return string(s)
}

func (s OpportunityStage) IsValid() bool {
	switch s {
	case StageProspecting, StageProposal, StageNegotiation, StageWon, StageLost:
		return true
	}
	return false
}

// Opportunity is a deal on the sales kanban board. Its position orders the
// card within the board; positions are assigned by the repository inside the
// creating transaction.
type Opportunity struct {
	id        uint
	name      string
	accountID *uint
	amount    float64
	stage     OpportunityStage
	closeDate *time.Time
	position  int64
	ownerID   uint
	createdAt time.Time
	updatedAt time.Time
}

func NewOpportunity(name string, accountID *uint, amount float64, closeDate *time.Time, ownerID uint) (*Opportunity, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	if amount < 0 {
		return nil, fmt.Errorf("amount cannot be negative")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := biztime.NowUTC()
	return &Opportunity{
		name:      name,
		accountID: accountID,
		amount:    amount,
		stage:     StageProspecting,
		closeDate: closeDate,
		ownerID:   ownerID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructOpportunity(
	id uint,
	name string,
	accountID *uint,
	amount float64,
	stage OpportunityStage,
	closeDate *time.Time,
	position int64,
	ownerID uint,
	createdAt, updatedAt time.Time,
) (*Opportunity, error) {
	if id == 0 {
		return nil, fmt.Errorf("opportunity ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !stage.IsValid() {
		return nil, fmt.Errorf("invalid stage")
	}

	return &Opportunity{
		id:        id,
		name:      name,
		accountID: accountID,
		amount:    amount,
		stage:     stage,
		closeDate: closeDate,
		position:  position,
		ownerID:   ownerID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (o *Opportunity) ID() uint { return o.id }

func (o *Opportunity) Name() string { return o.name }

func (o *Opportunity) AccountID() *uint { return o.accountID }

func (o *Opportunity) Amount() float64 { return o.amount }

func (o *Opportunity) Stage() OpportunityStage { return o.stage }

func (o *Opportunity) CloseDate() *time.Time { return o.closeDate }

func (o *Opportunity) Position() int64 { return o.position }

func (o *Opportunity) OwnerID() uint { return o.ownerID }

func (o *Opportunity) CreatedAt() time.Time { return o.createdAt }

func (o *Opportunity) UpdatedAt() time.Time { return o.updatedAt }

func (o *Opportunity) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("opportunity ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("opportunity ID cannot be zero")
	}
	o.id = id
	return nil
}

// PlaceAt sets the board position. 0 means not yet placed.
func (o *Opportunity) PlaceAt(position int64) error {
	if position <= 0 {
		return fmt.Errorf("position must be positive")
	}
	o.position = position
	return nil
}

func (o *Opportunity) Update(name string, accountID *uint, amount float64, closeDate *time.Time) error {
	if len(name) == 0 {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > 200 {
		return fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	if amount < 0 {
		return fmt.Errorf("amount cannot be negative")
	}

	o.name = name
	o.accountID = accountID
	o.amount = amount
	o.closeDate = closeDate
	o.updatedAt = biztime.NowUTC()
	return nil
}

func (o *Opportunity) ChangeStage(stage OpportunityStage) error {
	if !stage.IsValid() {
		return fmt.Errorf("invalid stage: %s", stage)
	}
	o.stage = stage
	o.updatedAt = biztime.NowUTC()
	return nil
}
