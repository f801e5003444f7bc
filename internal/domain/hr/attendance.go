package hr

import (
	"fmt"
	"time"

	"flowdesk/internal/shared/biztime"
)

// Attendance is one employee's record for one calendar day. An open
// record has a check-in time and no check-out time.
type Attendance struct {
	id         uint
	employeeID uint
	date       time.Time
	checkIn    time.Time
	checkOut   *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

// NewAttendance opens an attendance record at the given check-in time.
// The date is derived from the check-in instant in UTC.
func NewAttendance(employeeID uint, checkIn time.Time) (*Attendance, error) {
	if employeeID == 0 {
		return nil, fmt.Errorf("employee ID is required")
	}
	if checkIn.IsZero() {
		return nil, fmt.Errorf("check-in time is required")
	}

	now := biztime.NowUTC()
	return &Attendance{
		employeeID: employeeID,
		date:       biztime.StartOfDayUTC(checkIn),
		checkIn:    checkIn.UTC(),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructAttendance(
	id uint,
	employeeID uint,
	date, checkIn time.Time,
	checkOut *time.Time,
	createdAt, updatedAt time.Time,
) (*Attendance, error) {
	if id == 0 {
		return nil, fmt.Errorf("attendance ID cannot be zero")
	}
	if employeeID == 0 {
		return nil, fmt.Errorf("employee ID is required")
	}

	return &Attendance{
		id:         id,
		employeeID: employeeID,
		date:       date,
		checkIn:    checkIn,
		checkOut:   checkOut,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (a *Attendance) ID() uint { return a.id }

func (a *Attendance) EmployeeID() uint { return a.employeeID }

func (a *Attendance) Date() time.Time { return a.date }

func (a *Attendance) CheckIn() time.Time { return a.checkIn }

func (a *Attendance) CheckOut() *time.Time { return a.checkOut }

func (a *Attendance) CreatedAt() time.Time { return a.createdAt }

func (a *Attendance) UpdatedAt() time.Time { return a.updatedAt }

func (a *Attendance) IsOpen() bool { return a.checkOut == nil }

func (a *Attendance) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attendance ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attendance ID cannot be zero")
	}
	a.id = id
	return nil
}

// Close records the check-out time. A record can only be closed once,
// and the check-out must not precede the check-in.
func (a *Attendance) Close(checkOut time.Time) error {
	if a.checkOut != nil {
		return fmt.Errorf("attendance record is already closed")
	}
	if checkOut.Before(a.checkIn) {
		return fmt.Errorf("check-out cannot be before check-in")
	}
	out := checkOut.UTC()
	a.checkOut = &out
	a.updatedAt = biztime.NowUTC()
	return nil
}

// WorkedHours returns the hours between check-in and check-out, or 0
// while the record is still open.
func (a *Attendance) WorkedHours() float64 {
	if a.checkOut == nil {
		return 0
	}
	return a.checkOut.Sub(a.checkIn).Hours()
}
