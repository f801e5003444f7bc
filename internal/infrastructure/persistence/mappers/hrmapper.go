package mappers

import (
	"fmt"
	"time"

	"flowdesk/internal/domain/hr"
	"flowdesk/internal/infrastructure/persistence/models"
)

// HRMapper handles the conversion between HR domain entities and their
// persistence models.
type HRMapper interface {
	EmployeeToModel(entity *hr.Employee) *models.EmployeeModel
	EmployeeToDomain(model *models.EmployeeModel) (*hr.Employee, error)
	EmployeesToDomain(list []*models.EmployeeModel) ([]*hr.Employee, error)

	AttendanceToModel(entity *hr.Attendance) *models.AttendanceModel
	AttendanceToDomain(model *models.AttendanceModel) (*hr.Attendance, error)
	AttendancesToDomain(list []*models.AttendanceModel) ([]*hr.Attendance, error)

	PayrollToModel(entity *hr.Payroll) *models.PayrollModel
	PayrollToDomain(model *models.PayrollModel) (*hr.Payroll, error)
	PayrollsToDomain(list []*models.PayrollModel) ([]*hr.Payroll, error)
}

type HRMapperImpl struct{}

func NewHRMapper() HRMapper {
	return &HRMapperImpl{}
}

func (m *HRMapperImpl) EmployeeToModel(entity *hr.Employee) *models.EmployeeModel {
	return &models.EmployeeModel{
		ID:         entity.ID(),
		FirstName:  entity.FirstName(),
		LastName:   entity.LastName(),
		Email:      entity.Email(),
		Position:   entity.Position(),
		Department: entity.Department(),
		Salary:     entity.Salary(),
		HiredAt:    timePtrToMilliPtr(entity.HiredAt()),
		UserID:     entity.UserID(),
		CreatedAt:  entity.CreatedAt().UnixMilli(),
		UpdatedAt:  entity.UpdatedAt().UnixMilli(),
	}
}

func (m *HRMapperImpl) EmployeeToDomain(model *models.EmployeeModel) (*hr.Employee, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := hr.ReconstructEmployee(
		model.ID,
		model.FirstName,
		model.LastName,
		model.Email,
		model.Position,
		model.Department,
		model.Salary,
		milliPtrToTimePtr(model.HiredAt),
		model.UserID,
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct employee entity: %w", err)
	}

	return entity, nil
}

func (m *HRMapperImpl) EmployeesToDomain(list []*models.EmployeeModel) ([]*hr.Employee, error) {
	entities := make([]*hr.Employee, 0, len(list))
	for _, model := range list {
		entity, err := m.EmployeeToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *HRMapperImpl) AttendanceToModel(entity *hr.Attendance) *models.AttendanceModel {
	return &models.AttendanceModel{
		ID:         entity.ID(),
		EmployeeID: entity.EmployeeID(),
		Date:       entity.Date().UnixMilli(),
		CheckIn:    entity.CheckIn().UnixMilli(),
		CheckOut:   timePtrToMilliPtr(entity.CheckOut()),
		CreatedAt:  entity.CreatedAt().UnixMilli(),
		UpdatedAt:  entity.UpdatedAt().UnixMilli(),
	}
}

func (m *HRMapperImpl) AttendanceToDomain(model *models.AttendanceModel) (*hr.Attendance, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := hr.ReconstructAttendance(
		model.ID,
		model.EmployeeID,
		milliToTime(model.Date),
		milliToTime(model.CheckIn),
		milliPtrToTimePtr(model.CheckOut),
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct attendance entity: %w", err)
	}

	return entity, nil
}

func (m *HRMapperImpl) AttendancesToDomain(list []*models.AttendanceModel) ([]*hr.Attendance, error) {
	entities := make([]*hr.Attendance, 0, len(list))
	for _, model := range list {
		entity, err := m.AttendanceToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *HRMapperImpl) PayrollToModel(entity *hr.Payroll) *models.PayrollModel {
	return &models.PayrollModel{
		ID:         entity.ID(),
		EmployeeID: entity.EmployeeID(),
		Year:       entity.Year(),
		Month:      int(entity.Month()),
		BaseSalary: entity.BaseSalary(),
		Bonus:      entity.Bonus(),
		Deductions: entity.Deductions(),
		Status:     entity.Status().String(),
		PaidAt:     timePtrToMilliPtr(entity.PaidAt()),
		CreatedAt:  entity.CreatedAt().UnixMilli(),
		UpdatedAt:  entity.UpdatedAt().UnixMilli(),
	}
}

func (m *HRMapperImpl) PayrollToDomain(model *models.PayrollModel) (*hr.Payroll, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := hr.ReconstructPayroll(
		model.ID,
		model.EmployeeID,
		model.Year,
		time.Month(model.Month),
		model.BaseSalary,
		model.Bonus,
		model.Deductions,
		hr.PayrollStatus(model.Status),
		milliPtrToTimePtr(model.PaidAt),
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct payroll entity: %w", err)
	}

	return entity, nil
}

func (m *HRMapperImpl) PayrollsToDomain(list []*models.PayrollModel) ([]*hr.Payroll, error) {
	entities := make([]*hr.Payroll, 0, len(list))
	for _, model := range list {
		entity, err := m.PayrollToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
