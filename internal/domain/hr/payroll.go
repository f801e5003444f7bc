package hr

import (
	"fmt"
	"time"

	"flowdesk/internal/shared/biztime"
)

type PayrollStatus string

const (
	PayrollStatusDraft PayrollStatus = "draft"
	PayrollStatusPaid  PayrollStatus = "paid"
)

func (s PayrollStatus) String() string {
	return string(s)
}

func (s PayrollStatus) IsValid() bool {
	switch s {
	case PayrollStatusDraft, PayrollStatusPaid:
		return true
	}
	return false
}

// Payroll is one employee's pay entry for one month. NetPay is derived,
// never stored independently of its inputs.
type Payroll struct {
	id         uint
	employeeID uint
	year       int
	month      time.Month
	baseSalary float64
	bonus      float64
	deductions float64
	status     PayrollStatus
	paidAt     *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewPayroll(employeeID uint, year int, month time.Month, baseSalary, bonus, deductions float64) (*Payroll, error) {
	if employeeID == 0 {
		return nil, fmt.Errorf("employee ID is required")
	}
	if year < 2000 || year > 2200 {
		return nil, fmt.Errorf("year out of range")
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("invalid month")
	}
	if baseSalary < 0 || bonus < 0 || deductions < 0 {
		return nil, fmt.Errorf("payroll amounts cannot be negative")
	}

	now := biztime.NowUTC()
	return &Payroll{
		employeeID: employeeID,
		year:       year,
		month:      month,
		baseSalary: baseSalary,
		bonus:      bonus,
		deductions: deductions,
		status:     PayrollStatusDraft,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructPayroll(
	id uint,
	employeeID uint,
	year int,
	month time.Month,
	baseSalary, bonus, deductions float64,
	status PayrollStatus,
	paidAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Payroll, error) {
	if id == 0 {
		return nil, fmt.Errorf("payroll ID cannot be zero")
	}
	if employeeID == 0 {
		return nil, fmt.Errorf("employee ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Payroll{
		id:         id,
		employeeID: employeeID,
		year:       year,
		month:      month,
		baseSalary: baseSalary,
		bonus:      bonus,
		deductions: deductions,
		status:     status,
		paidAt:     paidAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (p *Payroll) ID() uint { return p.id }

func (p *Payroll) EmployeeID() uint { return p.employeeID }

func (p *Payroll) Year() int { return p.year }

func (p *Payroll) Month() time.Month { return p.month }

func (p *Payroll) BaseSalary() float64 { return p.baseSalary }

func (p *Payroll) Bonus() float64 { return p.bonus }

func (p *Payroll) Deductions() float64 { return p.deductions }

func (p *Payroll) Status() PayrollStatus { return p.status }

func (p *Payroll) PaidAt() *time.Time { return p.paidAt }

func (p *Payroll) CreatedAt() time.Time { return p.createdAt }

func (p *Payroll) UpdatedAt() time.Time { return p.updatedAt }

func (p *Payroll) NetPay() float64 {
	return p.baseSalary + p.bonus - p.deductions
}

func (p *Payroll) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("payroll ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("payroll ID cannot be zero")
	}
	p.id = id
	return nil
}

// UpdateAmounts adjusts the pay components. Paid entries are immutable.
func (p *Payroll) UpdateAmounts(baseSalary, bonus, deductions float64) error {
	if p.status == PayrollStatusPaid {
		return fmt.Errorf("paid payroll entry cannot be modified")
	}
	if baseSalary < 0 || bonus < 0 || deductions < 0 {
		return fmt.Errorf("payroll amounts cannot be negative")
	}

	p.baseSalary = baseSalary
	p.bonus = bonus
	p.deductions = deductions
	p.updatedAt = biztime.NowUTC()
	return nil
}

func (p *Payroll) MarkPaid() error {
	if p.status == PayrollStatusPaid {
		return fmt.Errorf("payroll entry is already paid")
	}
	now := biztime.NowUTC()
	p.status = PayrollStatusPaid
	p.paidAt = &now
	p.updatedAt = now
	return nil
}
