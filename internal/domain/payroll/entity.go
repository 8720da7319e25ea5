package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusGenerated Status = "generated"
	StatusApproved  Status = "approved"
	StatusPaid      Status = "paid"
)

// Record is one employee's committed payslip for one period. Regenerating
// a period replaces the row and resets the status to generated.
type Record struct {
	ID         int64
	EmployeeID string
	Month      int
	Year       int

	TotalDays     int
	DaysWorked    float64
	PaidLeaveDays float64
	PayableDays   float64
	AbsentDays    float64
	ExtraDays     float64
	HoursWorked   decimal.Decimal
	OvertimeHours decimal.Decimal

	BasicSalary decimal.Decimal
	HRA         decimal.Decimal
	DA          decimal.Decimal
	OvertimePay decimal.Decimal
	ExtraPay    decimal.Decimal
	Bonuses     decimal.Decimal
	GrossSalary decimal.Decimal

	Tax             decimal.Decimal
	ProvidentFund   decimal.Decimal
	Insurance       decimal.Decimal
	OtherDeductions decimal.Decimal
	NetSalary       decimal.Decimal

	Status      Status
	PaymentDate *time.Time
	GeneratedAt time.Time

	// Joined from employees for listing and payslip views.
	FirstName     *string
	LastName      *string
	Designation   *string
	Department    *string
	BankName      *string
	AccountNumber *string
}

// AttendanceTotals is the per-employee aggregate of ledger rows
// for one period.
type AttendanceTotals struct {
	PresentDays     int
	HalfDays        int
	LeaveDays       int
	TotalHours      decimal.Decimal
	TotalOvertime   decimal.Decimal
	WeekendWorkDays int
}

// PeriodAdjustments is the per-employee aggregate of bonuses,
// deductions and manual extra days for one period.
type PeriodAdjustments struct {
	ManualExtraDays float64
	TotalBonuses    decimal.Decimal
	TotalDeductions decimal.Decimal
}
