package employee

import (
	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeID  string          `json:"employee_id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	Phone       *string         `json:"phone,omitempty"`
	Gender      *string         `json:"gender,omitempty"`
	Designation string          `json:"designation"`
	Department  *string         `json:"department,omitempty"`
	HireDate    string          `json:"hire_date"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be 3-20 uppercase letters, digits or dashes"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be in YYYY-MM-DD format"})
	}
	if r.BasicSalary.IsNegative() || r.BasicSalary.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FirstName   *string          `json:"first_name,omitempty"`
	LastName    *string          `json:"last_name,omitempty"`
	Email       *string          `json:"email,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	Gender      *string          `json:"gender,omitempty"`
	Designation *string          `json:"designation,omitempty"`
	Department  *string          `json:"department,omitempty"`
	HireDate    *string          `json:"hire_date,omitempty"`
	BasicSalary *decimal.Decimal `json:"basic_salary,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.BasicSalary != nil && (r.BasicSalary.IsNegative() || r.BasicSalary.IsZero()) {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be positive"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active' or 'inactive'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateProfileRequest covers the self-service portal; employees may only
// touch contact and bank details, never salary or status.
type UpdateProfileRequest struct {
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	BankName      *string `json:"bank_name,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	IFSCCode      *string `json:"ifsc_code,omitempty"`
	PANNumber     *string `json:"pan_number,omitempty"`
	Gender        *string `json:"gender,omitempty"`
}

type EmployeeResponse struct {
	ID            int64           `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Email         string          `json:"email"`
	Phone         *string         `json:"phone,omitempty"`
	Gender        *string         `json:"gender,omitempty"`
	Designation   string          `json:"designation"`
	Department    *string         `json:"department,omitempty"`
	HireDate      string          `json:"hire_date"`
	BasicSalary   decimal.Decimal `json:"basic_salary"`
	Status        string          `json:"status"`
	BankName      *string         `json:"bank_name,omitempty"`
	AccountNumber *string         `json:"account_number,omitempty"`
	IFSCCode      *string         `json:"ifsc_code,omitempty"`
	PANNumber     *string         `json:"pan_number,omitempty"`
	Address       *string         `json:"address,omitempty"`
}
