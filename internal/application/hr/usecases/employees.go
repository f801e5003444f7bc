package usecases

import (
	"context"
	"time"

	"flowdesk/internal/domain/hr"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/query"
)

type ListEmployeesQuery struct {
	query.BaseFilter
	Department *string
}

type ListEmployeesResult struct {
	Employees []*EmployeeDTO `json:"employees"`
	Total     int64          `json:"total"`
}

type CreateEmployeeCommand struct {
	FirstName  string
	LastName   string
	Email      string
	Position   string
	Department string
	Salary     float64
	HiredAt    *time.Time
	UserID     *uint
}

type UpdateEmployeeCommand struct {
	EmployeeID uint
	FirstName  string
	LastName   string
	Email      string
	Position   string
	Department string
	Salary     float64
	HiredAt    *time.Time
}

type DeleteEmployeeCommand struct {
	EmployeeID uint
}

type EmployeeUseCases struct {
	employeeRepo hr.EmployeeRepository
	logger       logger.Interface
}

func NewEmployeeUseCases(employeeRepo hr.EmployeeRepository, logger logger.Interface) *EmployeeUseCases {
	return &EmployeeUseCases{employeeRepo: employeeRepo, logger: logger}
}

func (uc *EmployeeUseCases) List(ctx context.Context, q ListEmployeesQuery) (*ListEmployeesResult, error) {
	filter := hr.EmployeeFilter{BaseFilter: q.BaseFilter, Department: q.Department}

	employees, total, err := uc.employeeRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list employees", "error", err)
		return nil, err
	}

	dtos := make([]*EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = NewEmployeeDTO(e)
	}
	return &ListEmployeesResult{Employees: dtos, Total: total}, nil
}

func (uc *EmployeeUseCases) Create(ctx context.Context, cmd CreateEmployeeCommand) (*EmployeeDTO, error) {
	employee, err := hr.NewEmployee(cmd.FirstName, cmd.LastName, cmd.Email, cmd.Position, cmd.Department, cmd.Salary, cmd.HiredAt, cmd.UserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.employeeRepo.Save(ctx, employee); err != nil {
		uc.logger.Errorw("failed to create employee", "email", cmd.Email, "error", err)
		return nil, err
	}

	uc.logger.Infow("employee created", "employee_id", employee.ID())
	return NewEmployeeDTO(employee), nil
}

func (uc *EmployeeUseCases) Update(ctx context.Context, cmd UpdateEmployeeCommand) (*EmployeeDTO, error) {
	if cmd.EmployeeID == 0 {
		return nil, errors.NewValidationError("employee ID is required")
	}

	employee, err := uc.employeeRepo.GetByID(ctx, cmd.EmployeeID)
	if err != nil {
		return nil, err
	}

	if err := employee.Update(cmd.FirstName, cmd.LastName, cmd.Email, cmd.Position, cmd.Department, cmd.Salary, cmd.HiredAt); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.employeeRepo.Update(ctx, employee); err != nil {
		uc.logger.Errorw("failed to update employee", "employee_id", cmd.EmployeeID, "error", err)
		return nil, err
	}

	return NewEmployeeDTO(employee), nil
}

func (uc *EmployeeUseCases) Delete(ctx context.Context, cmd DeleteEmployeeCommand) error {
	if cmd.EmployeeID == 0 {
		return errors.NewValidationError("employee ID is required")
	}

	if _, err := uc.employeeRepo.GetByID(ctx, cmd.EmployeeID); err != nil {
		return err
	}

	if err := uc.employeeRepo.Delete(ctx, cmd.EmployeeID); err != nil {
		uc.logger.Errorw("failed to delete employee", "employee_id", cmd.EmployeeID, "error", err)
		return err
	}

	uc.logger.Infow("employee deleted", "employee_id", cmd.EmployeeID)
	return nil
}
