package advance

import (
	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Notes  *string         `json:"notes,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DecideRequest settles a pending advance. The deduction period is
// required when approving and ignored when rejecting.
type DecideRequest struct {
	ApprovalStatus string `json:"approval_status"`
	DeductionMonth int    `json:"deduction_month"`
	DeductionYear  int    `json:"deduction_year"`
}

func (r *DecideRequest) Validate() error {
	if r.ApprovalStatus != string(ApprovalStatusApproved) && r.ApprovalStatus != string(ApprovalStatusRejected) {
		return ErrInvalidDecision
	}

	if r.ApprovalStatus == string(ApprovalStatusApproved) {
		var errs validator.ValidationErrors
		if !validator.IsValidMonth(r.DeductionMonth) {
			errs = append(errs, validator.ValidationError{Field: "deduction_month", Message: "must be between 1 and 12"})
		}
		if !validator.IsValidYear(r.DeductionYear) {
			errs = append(errs, validator.ValidationError{Field: "deduction_year", Message: "must be between 2000 and 2100"})
		}
		if len(errs) > 0 {
			return errs
		}
	}
	return nil
}

type RequestResponse struct {
	ID             int64           `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Notes          *string         `json:"notes,omitempty"`
	ApprovalStatus string          `json:"approval_status"`
	RequestedDate  string          `json:"requested_date"`
	ApprovedDate   *string         `json:"approved_date,omitempty"`
	DeductionMonth *int            `json:"deduction_month,omitempty"`
	DeductionYear  *int            `json:"deduction_year,omitempty"`
}
