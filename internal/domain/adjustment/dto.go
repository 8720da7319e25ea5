package adjustment

import (
	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateBonusRequest struct {
	EmployeeID  string          `json:"employee_id"`
	BonusType   string          `json:"bonus_type"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
	Date        string          `json:"date"`
}

func (r *CreateBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.BonusType) {
		errs = append(errs, validator.ValidationError{Field: "bonus_type", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetBonusApprovalRequest struct {
	BonusApproved bool `json:"bonus_approved"`
}

type CreateDeductionRequest struct {
	EmployeeID    string          `json:"employee_id"`
	DeductionType string          `json:"deduction_type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   *string         `json:"description,omitempty"`
	Date          string          `json:"date"`
}

func (r *CreateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.DeductionType) {
		errs = append(errs, validator.ValidationError{Field: "deduction_type", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateExtraDayRequest struct {
	EmployeeID string  `json:"employee_id"`
	DaysCount  float64 `json:"days_count"`
	Reason     *string `json:"reason,omitempty"`
	Date       string  `json:"date"`
}

func (r *CreateExtraDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.DaysCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "days_count", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PeriodFilter narrows listings by employee and by the calendar month the
// effective date falls in. Zero values mean "no filter".
type PeriodFilter struct {
	EmployeeID string
	Month      int
	Year       int
}

type BonusResponse struct {
	ID            int64           `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	BonusType     string          `json:"bonus_type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   *string         `json:"description,omitempty"`
	Date          string          `json:"date"`
	BonusApproved bool            `json:"bonus_approved"`
	ApprovalDate  *string         `json:"approval_date,omitempty"`
}

type DeductionResponse struct {
	ID            int64           `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	DeductionType string          `json:"deduction_type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   *string         `json:"description,omitempty"`
	Date          string          `json:"date"`
}

type ExtraDayResponse struct {
	ID         int64   `json:"id"`
	EmployeeID string  `json:"employee_id"`
	DaysCount  float64 `json:"days_count"`
	Reason     *string `json:"reason,omitempty"`
	Date       string  `json:"date"`
}
