package adjustment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bonus is a one-off addition to an employee's pay, effective on a date.
// The approval flag is advisory only; generation sums every bonus dated
// inside the period.
type Bonus struct {
	ID            int64
	EmployeeID    string
	BonusType     string
	Amount        decimal.Decimal
	Description   *string
	Date          time.Time
	BonusApproved bool
	ApprovalDate  *time.Time
	CreatedAt     time.Time
}

// Deduction is a one-off subtraction from an employee's pay.
type Deduction struct {
	ID            int64
	EmployeeID    string
	DeductionType string
	Amount        decimal.Decimal
	Description   *string
	Date          time.Time
	CreatedAt     time.Time
}

// ExtraDay is a manually recorded batch of extra days worked, counted on
// top of the automatic weekend detection.
type ExtraDay struct {
	ID         int64
	EmployeeID string
	DaysCount  float64
	Reason     *string
	Date       time.Time
	CreatedAt  time.Time
}
