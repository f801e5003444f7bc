package models

type EmployeeModel struct {
	ID         uint    `gorm:"primaryKey"`
	FirstName  string  `gorm:"size:100;not null"`
	LastName   string  `gorm:"size:100;not null"`
	Email      string  `gorm:"uniqueIndex;size:255;not null"`
	Position   string  `gorm:"size:100"`
	Department string  `gorm:"size:100;index"`
	Salary     float64 `gorm:"not null;default:0"`
	HiredAt    *int64
	UserID     *uint `gorm:"index"`
	CreatedAt  int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}

type AttendanceModel struct {
	ID         uint  `gorm:"primaryKey"`
	EmployeeID uint  `gorm:"not null;index:idx_attendance_employee_date"`
	Date       int64 `gorm:"not null;index:idx_attendance_employee_date"`
	CheckIn    int64 `gorm:"not null"`
	CheckOut   *int64
	CreatedAt  int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (AttendanceModel) TableName() string {
	return "attendance_records"
}

type PayrollModel struct {
	ID         uint    `gorm:"primaryKey"`
	EmployeeID uint    `gorm:"not null;uniqueIndex:idx_payroll_period"`
	Year       int     `gorm:"not null;uniqueIndex:idx_payroll_period"`
	Month      int     `gorm:"not null;uniqueIndex:idx_payroll_period"`
	BaseSalary float64 `gorm:"not null;default:0"`
	Bonus      float64 `gorm:"not null;default:0"`
	Deductions float64 `gorm:"not null;default:0"`
	Status     string  `gorm:"size:20;not null;index"`
	PaidAt     *int64
	CreatedAt  int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (PayrollModel) TableName() string {
	return "payroll_entries"
}
