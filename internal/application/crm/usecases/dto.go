package usecases

import (
	"time"

	"flowdesk/internal/domain/crm"
)

type AccountDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry,omitempty"`
	Website   string    `json:"website,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	OwnerID   uint      `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAccountDTO(a *crm.Account) *AccountDTO {
	return &AccountDTO{
		ID:        a.ID(),
		Name:      a.Name(),
		Industry:  a.Industry(),
		Website:   a.Website(),
		Phone:     a.Phone(),
		Email:     a.Email(),
		OwnerID:   a.OwnerID(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

type ContactDTO struct {
	ID        uint      `json:"id"`
	AccountID *uint     `json:"account_id,omitempty"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	JobTitle  string    `json:"job_title,omitempty"`
	OwnerID   uint      `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewContactDTO(c *crm.Contact) *ContactDTO {
	return &ContactDTO{
		ID:        c.ID(),
		AccountID: c.AccountID(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		JobTitle:  c.JobTitle(),
		OwnerID:   c.OwnerID(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

type LeadDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Source    string    `json:"source,omitempty"`
	Status    string    `json:"status"`
	OwnerID   uint      `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewLeadDTO(l *crm.Lead) *LeadDTO {
	return &LeadDTO{
		ID:        l.ID(),
		Name:      l.Name(),
		Company:   l.Company(),
		Email:     l.Email(),
		Phone:     l.Phone(),
		Source:    l.Source(),
		Status:    l.Status().String(),
		OwnerID:   l.OwnerID(),
		CreatedAt: l.CreatedAt(),
		UpdatedAt: l.UpdatedAt(),
	}
}

type OpportunityDTO struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	AccountID *uint      `json:"account_id,omitempty"`
	Amount    float64    `json:"amount"`
	Stage     string     `json:"stage"`
	CloseDate *time.Time `json:"close_date,omitempty"`
	Position  int64      `json:"position"`
	OwnerID   uint       `json:"owner_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewOpportunityDTO(o *crm.Opportunity) *OpportunityDTO {
	return &OpportunityDTO{
		ID:        o.ID(),
		Name:      o.Name(),
		AccountID: o.AccountID(),
		Amount:    o.Amount(),
		Stage:     o.Stage().String(),
		CloseDate: o.CloseDate(),
		Position:  o.Position(),
		OwnerID:   o.OwnerID(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

type CaseDTO struct {
	ID          uint      `json:"id"`
	Subject     string    `json:"subject"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	AccountID   *uint     `json:"account_id,omitempty"`
	OwnerID     uint      `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewCaseDTO(c *crm.Case) *CaseDTO {
	return &CaseDTO{
		ID:          c.ID(),
		Subject:     c.Subject(),
		Description: c.Description(),
		Status:      c.Status().String(),
		AccountID:   c.AccountID(),
		OwnerID:     c.OwnerID(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}
