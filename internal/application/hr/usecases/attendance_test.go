package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowdesk/internal/domain/hr"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type mockEmployeeRepository struct {
	SaveFunc       func(ctx context.Context, e *hr.Employee) error
	UpdateFunc     func(ctx context.Context, e *hr.Employee) error
	DeleteFunc     func(ctx context.Context, employeeID uint) error
	GetByIDFunc    func(ctx context.Context, employeeID uint) (*hr.Employee, error)
	GetByEmailFunc func(ctx context.Context, email string) (*hr.Employee, error)
	ListFunc       func(ctx context.Context, filter hr.EmployeeFilter) ([]*hr.Employee, int64, error)
}

func (m *mockEmployeeRepository) Save(ctx context.Context, e *hr.Employee) error {
	return m.SaveFunc(ctx, e)
}

func (m *mockEmployeeRepository) Update(ctx context.Context, e *hr.Employee) error {
	return m.UpdateFunc(ctx, e)
}

func (m *mockEmployeeRepository) Delete(ctx context.Context, employeeID uint) error {
	return m.DeleteFunc(ctx, employeeID)
}

func (m *mockEmployeeRepository) GetByID(ctx context.Context, employeeID uint) (*hr.Employee, error) {
	return m.GetByIDFunc(ctx, employeeID)
}

func (m *mockEmployeeRepository) GetByEmail(ctx context.Context, email string) (*hr.Employee, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *mockEmployeeRepository) List(ctx context.Context, filter hr.EmployeeFilter) ([]*hr.Employee, int64, error) {
	return m.ListFunc(ctx, filter)
}

type mockAttendanceRepository struct {
	SaveFunc          func(ctx context.Context, a *hr.Attendance) error
	UpdateFunc        func(ctx context.Context, a *hr.Attendance) error
	GetByIDFunc       func(ctx context.Context, attendanceID uint) (*hr.Attendance, error)
	GetOpenForDayFunc func(ctx context.Context, employeeID uint, day time.Time) (*hr.Attendance, error)
	ListFunc          func(ctx context.Context, filter hr.AttendanceFilter) ([]*hr.Attendance, int64, error)
}

func (m *mockAttendanceRepository) Save(ctx context.Context, a *hr.Attendance) error {
	return m.SaveFunc(ctx, a)
}

func (m *mockAttendanceRepository) Update(ctx context.Context, a *hr.Attendance) error {
	return m.UpdateFunc(ctx, a)
}

func (m *mockAttendanceRepository) GetByID(ctx context.Context, attendanceID uint) (*hr.Attendance, error) {
	return m.GetByIDFunc(ctx, attendanceID)
}

func (m *mockAttendanceRepository) GetOpenForDay(ctx context.Context, employeeID uint, day time.Time) (*hr.Attendance, error) {
	return m.GetOpenForDayFunc(ctx, employeeID, day)
}

func (m *mockAttendanceRepository) List(ctx context.Context, filter hr.AttendanceFilter) ([]*hr.Attendance, int64, error) {
	return m.ListFunc(ctx, filter)
}

type mockPayrollRepository struct {
	SaveFunc        func(ctx context.Context, p *hr.Payroll) error
	UpdateFunc      func(ctx context.Context, p *hr.Payroll) error
	DeleteFunc      func(ctx context.Context, payrollID uint) error
	GetByIDFunc     func(ctx context.Context, payrollID uint) (*hr.Payroll, error)
	GetByPeriodFunc func(ctx context.Context, employeeID uint, year int, month time.Month) (*hr.Payroll, error)
	ListFunc        func(ctx context.Context, filter hr.PayrollFilter) ([]*hr.Payroll, int64, error)
}

func (m *mockPayrollRepository) Save(ctx context.Context, p *hr.Payroll) error {
	return m.SaveFunc(ctx, p)
}

func (m *mockPayrollRepository) Update(ctx context.Context, p *hr.Payroll) error {
	return m.UpdateFunc(ctx, p)
}

func (m *mockPayrollRepository) Delete(ctx context.Context, payrollID uint) error {
	return m.DeleteFunc(ctx, payrollID)
}

func (m *mockPayrollRepository) GetByID(ctx context.Context, payrollID uint) (*hr.Payroll, error) {
	return m.GetByIDFunc(ctx, payrollID)
}

func (m *mockPayrollRepository) GetByPeriod(ctx context.Context, employeeID uint, year int, month time.Month) (*hr.Payroll, error) {
	return m.GetByPeriodFunc(ctx, employeeID, year, month)
}

func (m *mockPayrollRepository) List(ctx context.Context, filter hr.PayrollFilter) ([]*hr.Payroll, int64, error) {
	return m.ListFunc(ctx, filter)
}

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func reconstructEmployee(t *testing.T, id uint) *hr.Employee {
	t.Helper()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	e, err := hr.ReconstructEmployee(id, "Dana", "Reyes", "dana@example.com", "Engineer", "Platform", 90000, nil, nil, now, now)
	require.NoError(t, err)
	return e
}

func TestAttendanceUseCases_CheckIn(t *testing.T) {
	ctx := context.Background()

	employeeRepo := &mockEmployeeRepository{
		GetByIDFunc: func(_ context.Context, id uint) (*hr.Employee, error) {
			return reconstructEmployee(t, id), nil
		},
	}

	t.Run("opens a record for the day", func(t *testing.T) {
		attendanceRepo := &mockAttendanceRepository{
			GetOpenForDayFunc: func(_ context.Context, _ uint, _ time.Time) (*hr.Attendance, error) {
				return nil, errors.NewNotFoundError("no open record")
			},
			SaveFunc: func(_ context.Context, a *hr.Attendance) error {
				return a.SetID(1)
			},
		}

		uc := NewAttendanceUseCases(attendanceRepo, employeeRepo, fakeTxManager{}, testLogger())
		dto, err := uc.CheckIn(ctx, CheckInCommand{EmployeeID: 3})
		require.NoError(t, err)
		assert.Equal(t, uint(3), dto.EmployeeID)
		assert.Nil(t, dto.CheckOut)
		assert.Zero(t, dto.WorkedHours)
	})

	t.Run("second check-in conflicts", func(t *testing.T) {
		open, err := hr.NewAttendance(3, time.Now().UTC())
		require.NoError(t, err)
		require.NoError(t, open.SetID(1))

		attendanceRepo := &mockAttendanceRepository{
			GetOpenForDayFunc: func(_ context.Context, _ uint, _ time.Time) (*hr.Attendance, error) {
				return open, nil
			},
		}

		uc := NewAttendanceUseCases(attendanceRepo, employeeRepo, fakeTxManager{}, testLogger())
		_, err = uc.CheckIn(ctx, CheckInCommand{EmployeeID: 3})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("unknown employee is rejected", func(t *testing.T) {
		missingRepo := &mockEmployeeRepository{
			GetByIDFunc: func(_ context.Context, _ uint) (*hr.Employee, error) {
				return nil, errors.NewNotFoundError("employee not found")
			},
		}

		uc := NewAttendanceUseCases(&mockAttendanceRepository{}, missingRepo, fakeTxManager{}, testLogger())
		_, err := uc.CheckIn(ctx, CheckInCommand{EmployeeID: 99})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("rejects zero employee ID", func(t *testing.T) {
		uc := NewAttendanceUseCases(&mockAttendanceRepository{}, &mockEmployeeRepository{}, fakeTxManager{}, testLogger())
		_, err := uc.CheckIn(ctx, CheckInCommand{})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestAttendanceUseCases_CheckOut(t *testing.T) {
	ctx := context.Background()

	t.Run("closes the open record", func(t *testing.T) {
		open, err := hr.NewAttendance(3, time.Now().UTC().Add(-8*time.Hour))
		require.NoError(t, err)
		require.NoError(t, open.SetID(1))

		var updated *hr.Attendance
		attendanceRepo := &mockAttendanceRepository{
			GetOpenForDayFunc: func(_ context.Context, _ uint, _ time.Time) (*hr.Attendance, error) {
				return open, nil
			},
			UpdateFunc: func(_ context.Context, a *hr.Attendance) error {
				updated = a
				return nil
			},
		}

		uc := NewAttendanceUseCases(attendanceRepo, &mockEmployeeRepository{}, fakeTxManager{}, testLogger())
		dto, err := uc.CheckOut(ctx, CheckOutCommand{EmployeeID: 3})
		require.NoError(t, err)

		require.NotNil(t, updated)
		assert.False(t, updated.IsOpen())
		require.NotNil(t, dto.CheckOut)
		assert.InDelta(t, 8, dto.WorkedHours, 0.1)
	})

	t.Run("check-out without an open record conflicts", func(t *testing.T) {
		attendanceRepo := &mockAttendanceRepository{
			GetOpenForDayFunc: func(_ context.Context, _ uint, _ time.Time) (*hr.Attendance, error) {
				return nil, errors.NewNotFoundError("no open record")
			},
		}

		uc := NewAttendanceUseCases(attendanceRepo, &mockEmployeeRepository{}, fakeTxManager{}, testLogger())
		_, err := uc.CheckOut(ctx, CheckOutCommand{EmployeeID: 3})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestPayrollUseCases(t *testing.T) {
	ctx := context.Background()

	employeeRepo := &mockEmployeeRepository{
		GetByIDFunc: func(_ context.Context, id uint) (*hr.Employee, error) {
			return reconstructEmployee(t, id), nil
		},
	}

	t.Run("create computes net pay", func(t *testing.T) {
		payrollRepo := &mockPayrollRepository{
			GetByPeriodFunc: func(_ context.Context, _ uint, _ int, _ time.Month) (*hr.Payroll, error) {
				return nil, errors.NewNotFoundError("no entry")
			},
			SaveFunc: func(_ context.Context, p *hr.Payroll) error {
				return p.SetID(1)
			},
		}

		uc := NewPayrollUseCases(payrollRepo, employeeRepo, testLogger())
		dto, err := uc.Create(ctx, CreatePayrollCommand{
			EmployeeID: 3,
			Year:       2025,
			Month:      3,
			BaseSalary: 7500,
			Bonus:      500,
			Deductions: 1200,
		})
		require.NoError(t, err)
		assert.Equal(t, float64(6800), dto.NetPay)
		assert.Equal(t, "draft", dto.Status)
	})

	t.Run("duplicate period conflicts", func(t *testing.T) {
		existing, err := hr.NewPayroll(3, 2025, time.March, 7500, 0, 0)
		require.NoError(t, err)

		payrollRepo := &mockPayrollRepository{
			GetByPeriodFunc: func(_ context.Context, _ uint, _ int, _ time.Month) (*hr.Payroll, error) {
				return existing, nil
			},
		}

		uc := NewPayrollUseCases(payrollRepo, employeeRepo, testLogger())
		_, err = uc.Create(ctx, CreatePayrollCommand{EmployeeID: 3, Year: 2025, Month: 3, BaseSalary: 7500})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("paid entries cannot be updated or paid twice", func(t *testing.T) {
		paid, err := hr.NewPayroll(3, 2025, time.March, 7500, 0, 0)
		require.NoError(t, err)
		require.NoError(t, paid.SetID(1))
		require.NoError(t, paid.MarkPaid())

		payrollRepo := &mockPayrollRepository{
			GetByIDFunc: func(_ context.Context, _ uint) (*hr.Payroll, error) {
				return paid, nil
			},
		}

		uc := NewPayrollUseCases(payrollRepo, employeeRepo, testLogger())

		_, err = uc.Update(ctx, UpdatePayrollCommand{PayrollID: 1, BaseSalary: 8000})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))

		_, err = uc.MarkPaid(ctx, MarkPayrollPaidCommand{PayrollID: 1})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("paid entries cannot be deleted", func(t *testing.T) {
		paid, err := hr.NewPayroll(3, 2025, time.March, 7500, 0, 0)
		require.NoError(t, err)
		require.NoError(t, paid.SetID(1))
		require.NoError(t, paid.MarkPaid())

		payrollRepo := &mockPayrollRepository{
			GetByIDFunc: func(_ context.Context, _ uint) (*hr.Payroll, error) {
				return paid, nil
			},
		}

		uc := NewPayrollUseCases(payrollRepo, employeeRepo, testLogger())
		err = uc.Delete(ctx, DeletePayrollCommand{PayrollID: 1})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("mark paid stamps the timestamp", func(t *testing.T) {
		draft, err := hr.NewPayroll(3, 2025, time.March, 7500, 500, 0)
		require.NoError(t, err)
		require.NoError(t, draft.SetID(1))

		payrollRepo := &mockPayrollRepository{
			GetByIDFunc: func(_ context.Context, _ uint) (*hr.Payroll, error) {
				return draft, nil
			},
			UpdateFunc: func(_ context.Context, _ *hr.Payroll) error { return nil },
		}

		uc := NewPayrollUseCases(payrollRepo, employeeRepo, testLogger())
		dto, err := uc.MarkPaid(ctx, MarkPayrollPaidCommand{PayrollID: 1})
		require.NoError(t, err)
		assert.Equal(t, "paid", dto.Status)
		assert.NotNil(t, dto.PaidAt)
	})
}
