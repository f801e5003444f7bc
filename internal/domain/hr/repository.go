package hr

import (
	"context"
	"time"

	"flowdesk/internal/shared/query"
)

type EmployeeFilter struct {
	query.BaseFilter
	Department *string
}

type EmployeeRepository interface {
	Save(ctx context.Context, employee *Employee) error
	Update(ctx context.Context, employee *Employee) error
	Delete(ctx context.Context, employeeID uint) error
	GetByID(ctx context.Context, employeeID uint) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]*Employee, int64, error)
}

type AttendanceFilter struct {
	query.BaseFilter
	EmployeeID *uint
	From       *time.Time
	To         *time.Time
}

type AttendanceRepository interface {
	Save(ctx context.Context, attendance *Attendance) error
	Update(ctx context.Context, attendance *Attendance) error
	GetByID(ctx context.Context, attendanceID uint) (*Attendance, error)
	// GetOpenForDay returns the employee's record for the given day that
	// has no check-out yet, or a not-found error.
	GetOpenForDay(ctx context.Context, employeeID uint, day time.Time) (*Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]*Attendance, int64, error)
}

type PayrollFilter struct {
	query.BaseFilter
	EmployeeID *uint
	Year       *int
	Month      *time.Month
	Status     *PayrollStatus
}

type PayrollRepository interface {
	Save(ctx context.Context, payroll *Payroll) error
	Update(ctx context.Context, payroll *Payroll) error
	Delete(ctx context.Context, payrollID uint) error
	GetByID(ctx context.Context, payrollID uint) (*Payroll, error)
	// GetByPeriod looks up an employee's entry for a specific month.
	GetByPeriod(ctx context.Context, employeeID uint, year int, month time.Month) (*Payroll, error)
	List(ctx context.Context, filter PayrollFilter) ([]*Payroll, int64, error)
}
