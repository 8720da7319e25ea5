package attendance

import (
	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var dayStatuses = []string{
	string(DayStatusPresent),
	string(DayStatusAbsent),
	string(DayStatusHalfDay),
	string(DayStatusLeave),
}

// ApproveRequest carries the manager decision for a pending request.
type ApproveRequest struct {
	ApprovalStatus string  `json:"approval_status"`
	Notes          *string `json:"notes,omitempty"`
}

func (r *ApproveRequest) Validate() error {
	if r.ApprovalStatus != string(ApprovalStatusApproved) && r.ApprovalStatus != string(ApprovalStatusRejected) {
		return ErrInvalidApprovalDecision
	}
	return nil
}

// SubmitRequest is an employee attendance report for a single day.
type SubmitRequest struct {
	Date          string          `json:"date"`
	Status        string          `json:"status"`
	HoursWorked   decimal.Decimal `json:"hours_worked"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	Notes         *string         `json:"notes,omitempty"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if !validator.IsInSlice(r.Status, dayStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, absent, half-day, leave"})
	}
	if r.HoursWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "must be non-negative"})
	}
	if r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DirectEntryRequest is a manager-recorded attendance day. It lands in the
// ledger immediately and the mirrored request is auto-approved.
type DirectEntryRequest struct {
	EmployeeID    string          `json:"employee_id"`
	Date          string          `json:"date"`
	Status        string          `json:"status"`
	HoursWorked   decimal.Decimal `json:"hours_worked"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	Notes         *string         `json:"notes,omitempty"`
}

func (r *DirectEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if !validator.IsInSlice(r.Status, dayStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, absent, half-day, leave"})
	}
	if r.HoursWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "must be non-negative"})
	}
	if r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEntryRequest edits an existing ledger row.
type UpdateEntryRequest struct {
	Status        string          `json:"status"`
	HoursWorked   decimal.Decimal `json:"hours_worked"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	Notes         *string         `json:"notes,omitempty"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, dayStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, absent, half-day, leave"})
	}
	if r.HoursWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "must be non-negative"})
	}
	if r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MarkExtraDayRequest records one extra day worked on a rest day.
type MarkExtraDayRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *MarkExtraDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID             int64           `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name,omitempty"`
	Designation    *string         `json:"designation,omitempty"`
	Department     *string         `json:"department,omitempty"`
	Date           string          `json:"date"`
	Status         string          `json:"status"`
	HoursWorked    decimal.Decimal `json:"hours_worked"`
	OvertimeHours  decimal.Decimal `json:"overtime_hours"`
	Notes          *string         `json:"notes,omitempty"`
	ApprovalStatus string          `json:"approval_status"`
	SubmittedAt    string          `json:"submitted_at"`
	ApprovedAt     *string         `json:"approved_at,omitempty"`
	ApprovedBy     *string         `json:"approved_by,omitempty"`
}

type EntryResponse struct {
	ID            int64           `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	Date          string          `json:"date"`
	Status        string          `json:"status"`
	HoursWorked   decimal.Decimal `json:"hours_worked"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	Notes         *string         `json:"notes,omitempty"`
}

type ExtraDayMarkedResponse struct {
	EmployeeID      string          `json:"employee_id"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	ExtraDays       int             `json:"extra_days"`
	ExtraDaysAmount decimal.Decimal `json:"extra_days_amount"`
	DailyRate       decimal.Decimal `json:"daily_rate"`
}

// EntryFilter narrows ledger listings; zero values mean "no filter".
type EntryFilter struct {
	EmployeeID string
	Month      int
	Year       int
}
