package usecases

import (
	"time"

	"flowdesk/internal/domain/hr"
)

type EmployeeDTO struct {
	ID         uint       `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	FullName   string     `json:"full_name"`
	Email      string     `json:"email"`
	Position   string     `json:"position,omitempty"`
	Department string     `json:"department,omitempty"`
	Salary     float64    `json:"salary"`
	HiredAt    *time.Time `json:"hired_at,omitempty"`
	UserID     *uint      `json:"user_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func NewEmployeeDTO(e *hr.Employee) *EmployeeDTO {
	return &EmployeeDTO{
		ID:         e.ID(),
		FirstName:  e.FirstName(),
		LastName:   e.LastName(),
		FullName:   e.FullName(),
		Email:      e.Email(),
		Position:   e.Position(),
		Department: e.Department(),
		Salary:     e.Salary(),
		HiredAt:    e.HiredAt(),
		UserID:     e.UserID(),
		CreatedAt:  e.CreatedAt(),
		UpdatedAt:  e.UpdatedAt(),
	}
}

type AttendanceDTO struct {
	ID          uint       `json:"id"`
	EmployeeID  uint       `json:"employee_id"`
	Date        time.Time  `json:"date"`
	CheckIn     time.Time  `json:"check_in"`
	CheckOut    *time.Time `json:"check_out,omitempty"`
	WorkedHours float64    `json:"worked_hours"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewAttendanceDTO(a *hr.Attendance) *AttendanceDTO {
	return &AttendanceDTO{
		ID:          a.ID(),
		EmployeeID:  a.EmployeeID(),
		Date:        a.Date(),
		CheckIn:     a.CheckIn(),
		CheckOut:    a.CheckOut(),
		WorkedHours: a.WorkedHours(),
		CreatedAt:   a.CreatedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}
}

type PayrollDTO struct {
	ID         uint       `json:"id"`
	EmployeeID uint       `json:"employee_id"`
	Year       int        `json:"year"`
	Month      int        `json:"month"`
	BaseSalary float64    `json:"base_salary"`
	Bonus      float64    `json:"bonus"`
	Deductions float64    `json:"deductions"`
	NetPay     float64    `json:"net_pay"`
	Status     string     `json:"status"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func NewPayrollDTO(p *hr.Payroll) *PayrollDTO {
	return &PayrollDTO{
		ID:         p.ID(),
		EmployeeID: p.EmployeeID(),
		Year:       p.Year(),
		Month:      int(p.Month()),
		BaseSalary: p.BaseSalary(),
		Bonus:      p.Bonus(),
		Deductions: p.Deductions(),
		NetPay:     p.NetPay(),
		Status:     p.Status().String(),
		PaidAt:     p.PaidAt(),
		CreatedAt:  p.CreatedAt(),
		UpdatedAt:  p.UpdatedAt(),
	}
}
