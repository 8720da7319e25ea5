package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayStatus is the kind of day an employee reports.
type DayStatus string

const (
	DayStatusPresent DayStatus = "present"
	DayStatusAbsent  DayStatus = "absent"
	DayStatusHalfDay DayStatus = "half-day"
	DayStatusLeave   DayStatus = "leave"
)

// DaysCredited is the number of worked days an approved report of this
// status adds to the monthly rollup. Leave days are fully credited because
// leave is paid; absences credit nothing.
func (s DayStatus) DaysCredited() float64 {
	switch s {
	case DayStatusPresent, DayStatusLeave:
		return 1.0
	case DayStatusHalfDay:
		return 0.5
	default:
		return 0
	}
}

// ApprovalStatus tracks a request through the manager approval workflow.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// Request is an employee-submitted attendance report awaiting a manager
// decision, unique per (employee, date).
type Request struct {
	ID             int64
	EmployeeID     string
	Date           time.Time
	Status         DayStatus
	HoursWorked    decimal.Decimal
	OvertimeHours  decimal.Decimal
	Notes          *string
	ApprovalStatus ApprovalStatus
	SubmittedAt    time.Time
	ApprovedAt     *time.Time
	ApprovedBy     *string

	// Joined fields
	FirstName   *string
	LastName    *string
	Designation *string
	Department  *string
}

// LedgerEntry is the canonical attendance record, mirroring an approved
// request. It is only ever written by the approval flow or by manager
// direct entry, never created independently.
type LedgerEntry struct {
	ID            int64
	EmployeeID    string
	Date          time.Time
	Status        DayStatus
	HoursWorked   decimal.Decimal
	OvertimeHours decimal.Decimal
	Notes         *string
	CreatedAt     time.Time
}

// MonthlyRollup accumulates approved attendance per (employee, month, year).
// DaysWorked grows additively as approvals accrue; it is never recomputed
// from scratch.
type MonthlyRollup struct {
	ID              int64
	EmployeeID      string
	Month           int
	Year            int
	DaysWorked      float64
	LeaveDays       float64
	ExtraDays       int
	ExtraDaysAmount decimal.Decimal
	Status          string
	ApprovedDate    *time.Time
}
