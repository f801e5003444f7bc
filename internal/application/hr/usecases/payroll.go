package usecases

import (
	"context"
	"time"

	"flowdesk/internal/domain/hr"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/query"
)

type ListPayrollQuery struct {
	query.BaseFilter
	EmployeeID *uint
	Year       *int
	Month      *int
	Status     *string
}

type ListPayrollResult struct {
	Entries []*PayrollDTO `json:"entries"`
	Total   int64         `json:"total"`
}

type CreatePayrollCommand struct {
	EmployeeID uint
	Year       int
	Month      int
	BaseSalary float64
	Bonus      float64
	Deductions float64
}

type UpdatePayrollCommand struct {
	PayrollID  uint
	BaseSalary float64
	Bonus      float64
	Deductions float64
}

type MarkPayrollPaidCommand struct {
	PayrollID uint
}

type DeletePayrollCommand struct {
	PayrollID uint
}

type PayrollUseCases struct {
	payrollRepo  hr.PayrollRepository
	employeeRepo hr.EmployeeRepository
	logger       logger.Interface
}

func NewPayrollUseCases(
	payrollRepo hr.PayrollRepository,
	employeeRepo hr.EmployeeRepository,
	logger logger.Interface,
) *PayrollUseCases {
	return &PayrollUseCases{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (uc *PayrollUseCases) List(ctx context.Context, q ListPayrollQuery) (*ListPayrollResult, error) {
	filter := hr.PayrollFilter{
		BaseFilter: q.BaseFilter,
		EmployeeID: q.EmployeeID,
		Year:       q.Year,
	}
	if q.Month != nil {
		month := time.Month(*q.Month)
		if month < time.January || month > time.December {
			return nil, errors.NewValidationError("invalid month")
		}
		filter.Month = &month
	}
	if q.Status != nil {
		status := hr.PayrollStatus(*q.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status")
		}
		filter.Status = &status
	}

	entries, total, err := uc.payrollRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list payroll", "error", err)
		return nil, err
	}

	dtos := make([]*PayrollDTO, len(entries))
	for i, p := range entries {
		dtos[i] = NewPayrollDTO(p)
	}
	return &ListPayrollResult{Entries: dtos, Total: total}, nil
}

func (uc *PayrollUseCases) Create(ctx context.Context, cmd CreatePayrollCommand) (*PayrollDTO, error) {
	if _, err := uc.employeeRepo.GetByID(ctx, cmd.EmployeeID); err != nil {
		return nil, err
	}

	// One entry per employee per month; the unique index backs this up.
	if _, err := uc.payrollRepo.GetByPeriod(ctx, cmd.EmployeeID, cmd.Year, time.Month(cmd.Month)); err == nil {
		return nil, errors.NewConflictError("payroll entry already exists for this period")
	} else if !errors.IsNotFoundError(err) {
		return nil, err
	}

	payroll, err := hr.NewPayroll(cmd.EmployeeID, cmd.Year, time.Month(cmd.Month), cmd.BaseSalary, cmd.Bonus, cmd.Deductions)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.payrollRepo.Save(ctx, payroll); err != nil {
		uc.logger.Errorw("failed to create payroll entry", "employee_id", cmd.EmployeeID, "error", err)
		return nil, err
	}

	uc.logger.Infow("payroll entry created", "payroll_id", payroll.ID(), "employee_id", cmd.EmployeeID)
	return NewPayrollDTO(payroll), nil
}

func (uc *PayrollUseCases) Update(ctx context.Context, cmd UpdatePayrollCommand) (*PayrollDTO, error) {
	if cmd.PayrollID == 0 {
		return nil, errors.NewValidationError("payroll ID is required")
	}

	payroll, err := uc.payrollRepo.GetByID(ctx, cmd.PayrollID)
	if err != nil {
		return nil, err
	}

	if err := payroll.UpdateAmounts(cmd.BaseSalary, cmd.Bonus, cmd.Deductions); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.payrollRepo.Update(ctx, payroll); err != nil {
		uc.logger.Errorw("failed to update payroll entry", "payroll_id", cmd.PayrollID, "error", err)
		return nil, err
	}

	return NewPayrollDTO(payroll), nil
}

func (uc *PayrollUseCases) MarkPaid(ctx context.Context, cmd MarkPayrollPaidCommand) (*PayrollDTO, error) {
	if cmd.PayrollID == 0 {
		return nil, errors.NewValidationError("payroll ID is required")
	}

	payroll, err := uc.payrollRepo.GetByID(ctx, cmd.PayrollID)
	if err != nil {
		return nil, err
	}

	if err := payroll.MarkPaid(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.payrollRepo.Update(ctx, payroll); err != nil {
		uc.logger.Errorw("failed to mark payroll paid", "payroll_id", cmd.PayrollID, "error", err)
		return nil, err
	}

	uc.logger.Infow("payroll entry paid", "payroll_id", cmd.PayrollID, "net_pay", payroll.NetPay())
	return NewPayrollDTO(payroll), nil
}

func (uc *PayrollUseCases) Delete(ctx context.Context, cmd DeletePayrollCommand) error {
	if cmd.PayrollID == 0 {
		return errors.NewValidationError("payroll ID is required")
	}

	payroll, err := uc.payrollRepo.GetByID(ctx, cmd.PayrollID)
	if err != nil {
		return err
	}
	if payroll.Status() == hr.PayrollStatusPaid {
		return errors.NewConflictError("paid payroll entries cannot be deleted")
	}

	if err := uc.payrollRepo.Delete(ctx, cmd.PayrollID); err != nil {
		uc.logger.Errorw("failed to delete payroll entry", "payroll_id", cmd.PayrollID, "error", err)
		return err
	}

	uc.logger.Infow("payroll entry deleted", "payroll_id", cmd.PayrollID)
	return nil
}
