package usecases

import (
	"context"
	"time"

	"flowdesk/internal/domain/hr"
	"flowdesk/internal/shared/biztime"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/query"
)

type CheckInCommand struct {
	EmployeeID uint
}

type CheckOutCommand struct {
	EmployeeID uint
}

type ListAttendanceQuery struct {
	query.BaseFilter
	EmployeeID *uint
	From       *time.Time
	To         *time.Time
}

type ListAttendanceResult struct {
	Records []*AttendanceDTO `json:"records"`
	Total   int64            `json:"total"`
}

type AttendanceUseCases struct {
	attendanceRepo hr.AttendanceRepository
	employeeRepo   hr.EmployeeRepository
	txManager      TransactionManager
	logger         logger.Interface
}

func NewAttendanceUseCases(
	attendanceRepo hr.AttendanceRepository,
	employeeRepo hr.EmployeeRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *AttendanceUseCases {
	return &AttendanceUseCases{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// CheckIn opens today's attendance record. A second check-in before
// checking out is rejected.
func (uc *AttendanceUseCases) CheckIn(ctx context.Context, cmd CheckInCommand) (*AttendanceDTO, error) {
	if cmd.EmployeeID == 0 {
		return nil, errors.NewValidationError("employee ID is required")
	}

	if _, err := uc.employeeRepo.GetByID(ctx, cmd.EmployeeID); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()

	var record *hr.Attendance
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		_, err := uc.attendanceRepo.GetOpenForDay(txCtx, cmd.EmployeeID, now)
		if err == nil {
			return errors.NewConflictError("already checked in")
		}
		if !errors.IsNotFoundError(err) {
			return err
		}

		record, err = hr.NewAttendance(cmd.EmployeeID, now)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		return uc.attendanceRepo.Save(txCtx, record)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("employee checked in", "employee_id", cmd.EmployeeID, "attendance_id", record.ID())
	return NewAttendanceDTO(record), nil
}

// CheckOut closes today's open record.
func (uc *AttendanceUseCases) CheckOut(ctx context.Context, cmd CheckOutCommand) (*AttendanceDTO, error) {
	if cmd.EmployeeID == 0 {
		return nil, errors.NewValidationError("employee ID is required")
	}

	now := biztime.NowUTC()

	var record *hr.Attendance
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		open, err := uc.attendanceRepo.GetOpenForDay(txCtx, cmd.EmployeeID, now)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewConflictError("no open attendance record")
			}
			return err
		}

		if err := open.Close(now); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.attendanceRepo.Update(txCtx, open); err != nil {
			return err
		}

		record = open
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("employee checked out", "employee_id", cmd.EmployeeID, "worked_hours", record.WorkedHours())
	return NewAttendanceDTO(record), nil
}

func (uc *AttendanceUseCases) List(ctx context.Context, q ListAttendanceQuery) (*ListAttendanceResult, error) {
	filter := hr.AttendanceFilter{
		BaseFilter: q.BaseFilter,
		EmployeeID: q.EmployeeID,
		From:       q.From,
		To:         q.To,
	}

	records, total, err := uc.attendanceRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list attendance", "error", err)
		return nil, err
	}

	dtos := make([]*AttendanceDTO, len(records))
	for i, r := range records {
		dtos[i] = NewAttendanceDTO(r)
	}
	return &ListAttendanceResult{Records: dtos, Total: total}, nil
}
