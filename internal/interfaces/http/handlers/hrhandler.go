package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"flowdesk/internal/application/hr/usecases"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/utils"
)

type HRHandler struct {
	employees  *usecases.EmployeeUseCases
	attendance *usecases.AttendanceUseCases
	payroll    *usecases.PayrollUseCases
	logger     logger.Interface
}

func NewHRHandler(
	employees *usecases.EmployeeUseCases,
	attendance *usecases.AttendanceUseCases,
	payroll *usecases.PayrollUseCases,
) *HRHandler {
	return &HRHandler{
		employees:  employees,
		attendance: attendance,
		payroll:    payroll,
		logger:     logger.NewLogger(),
	}
}

type EmployeeRequest struct {
	FirstName  string     `json:"first_name" binding:"required,max=100"`
	LastName   string     `json:"last_name" binding:"required,max=100"`
	Email      string     `json:"email" binding:"required,email"`
	Position   string     `json:"position"`
	Department string     `json:"department"`
	Salary     float64    `json:"salary" binding:"gte=0"`
	HiredAt    *time.Time `json:"hired_at"`
	UserID     *uint      `json:"user_id"`
}

type CheckInRequest struct {
	EmployeeID uint `json:"employee_id" binding:"required"`
}

type PayrollRequest struct {
	EmployeeID uint    `json:"employee_id" binding:"required"`
	Year       int     `json:"year" binding:"required,min=2000,max=2100"`
	Month      int     `json:"month" binding:"required,min=1,max=12"`
	BaseSalary float64 `json:"base_salary" binding:"gte=0"`
	Bonus      float64 `json:"bonus" binding:"gte=0"`
	Deductions float64 `json:"deductions" binding:"gte=0"`
}

type UpdatePayrollRequest struct {
	BaseSalary float64 `json:"base_salary" binding:"gte=0"`
	Bonus      float64 `json:"bonus" binding:"gte=0"`
	Deductions float64 `json:"deductions" binding:"gte=0"`
}

// Employees

func (h *HRHandler) ListEmployees(c *gin.Context) {
	q := usecases.ListEmployeesQuery{
		BaseFilter: parseBaseFilter(c),
		Department: queryString(c, "department"),
	}

	result, err := h.employees.List(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Employees, result.Total, q.Page, q.PageSize)
}

func (h *HRHandler) CreateEmployee(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.employees.Create(c.Request.Context(), usecases.CreateEmployeeCommand{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Position:   req.Position,
		Department: req.Department,
		Salary:     req.Salary,
		HiredAt:    req.HiredAt,
		UserID:     req.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *HRHandler) UpdateEmployee(c *gin.Context) {
	employeeID, err := utils.ParseIDParam(c, "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.employees.Update(c.Request.Context(), usecases.UpdateEmployeeCommand{
		EmployeeID: employeeID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Position:   req.Position,
		Department: req.Department,
		Salary:     req.Salary,
		HiredAt:    req.HiredAt,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Employee updated", result)
}

func (h *HRHandler) DeleteEmployee(c *gin.Context) {
	employeeID, err := utils.ParseIDParam(c, "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.employees.Delete(c.Request.Context(), usecases.DeleteEmployeeCommand{EmployeeID: employeeID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Attendance

func (h *HRHandler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.attendance.CheckIn(c.Request.Context(), usecases.CheckInCommand{EmployeeID: req.EmployeeID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *HRHandler) CheckOut(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.attendance.CheckOut(c.Request.Context(), usecases.CheckOutCommand{EmployeeID: req.EmployeeID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Checked out", result)
}

func (h *HRHandler) ListAttendance(c *gin.Context) {
	q := usecases.ListAttendanceQuery{
		BaseFilter: parseBaseFilter(c),
		EmployeeID: queryUint(c, "employee_id"),
	}
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q.From = &t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q.To = &t
		}
	}

	result, err := h.attendance.List(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Records, result.Total, q.Page, q.PageSize)
}

// Payroll

func (h *HRHandler) ListPayroll(c *gin.Context) {
	q := usecases.ListPayrollQuery{
		BaseFilter: parseBaseFilter(c),
		EmployeeID: queryUint(c, "employee_id"),
		Year:       queryInt(c, "year"),
		Month:      queryInt(c, "month"),
		Status:     queryString(c, "status"),
	}

	result, err := h.payroll.List(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Entries, result.Total, q.Page, q.PageSize)
}

func (h *HRHandler) CreatePayroll(c *gin.Context) {
	var req PayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.payroll.Create(c.Request.Context(), usecases.CreatePayrollCommand{
		EmployeeID: req.EmployeeID,
		Year:       req.Year,
		Month:      req.Month,
		BaseSalary: req.BaseSalary,
		Bonus:      req.Bonus,
		Deductions: req.Deductions,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *HRHandler) UpdatePayroll(c *gin.Context) {
	payrollID, err := utils.ParseIDParam(c, "payroll")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.payroll.Update(c.Request.Context(), usecases.UpdatePayrollCommand{
		PayrollID:  payrollID,
		BaseSalary: req.BaseSalary,
		Bonus:      req.Bonus,
		Deductions: req.Deductions,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payroll updated", result)
}

func (h *HRHandler) MarkPayrollPaid(c *gin.Context) {
	payrollID, err := utils.ParseIDParam(c, "payroll")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.payroll.MarkPaid(c.Request.Context(), usecases.MarkPayrollPaidCommand{PayrollID: payrollID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payroll marked paid", result)
}

func (h *HRHandler) DeletePayroll(c *gin.Context) {
	payrollID, err := utils.ParseIDParam(c, "payroll")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.payroll.Delete(c.Request.Context(), usecases.DeletePayrollCommand{PayrollID: payrollID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
