package payroll

import (
	"time"

	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GenerateRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

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

var statuses = []string{
	string(StatusGenerated),
	string(StatusApproved),
	string(StatusPaid),
}

type UpdateStatusRequest struct {
	Status      string  `json:"status"`
	PaymentDate *string `json:"payment_date,omitempty"`
}

func (r *UpdateStatusRequest) Validate() error {
	if !validator.IsInSlice(r.Status, statuses) {
		return ErrInvalidStatus
	}
	if r.PaymentDate != nil {
		if _, ok := validator.IsValidDate(*r.PaymentDate); !ok {
			return validator.ValidationErrors{{Field: "payment_date", Message: "must be in YYYY-MM-DD format"}}
		}
	}
	return nil
}

// Filter narrows payroll listings. Zero values mean "no filter".
type Filter struct {
	EmployeeID string
	Month      int
	Year       int
	Status     string
}

type GenerateResult struct {
	Month     int              `json:"month"`
	Year      int              `json:"year"`
	Generated int              `json:"generated"`
	Records   []RecordResponse `json:"records"`
}

// Summary is the period-level rollup shown on the payroll dashboard.
type Summary struct {
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	EmployeeCount   int             `json:"employee_count"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalNet        decimal.Decimal `json:"total_net"`
	TotalTax        decimal.Decimal `json:"total_tax"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalPF         decimal.Decimal `json:"total_pf"`
	TotalInsurance  decimal.Decimal `json:"total_insurance"`
}

type RecordResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Designation  *string `json:"designation,omitempty"`
	Department   *string `json:"department,omitempty"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`

	TotalDays     int             `json:"total_days"`
	DaysWorked    float64         `json:"days_worked"`
	PaidLeaveDays float64         `json:"paid_leave_days"`
	PayableDays   float64         `json:"payable_days"`
	AbsentDays    float64         `json:"absent_days"`
	ExtraDays     float64         `json:"extra_days"`
	HoursWorked   decimal.Decimal `json:"hours_worked"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`

	BasicSalary decimal.Decimal `json:"basic_salary"`
	HRA         decimal.Decimal `json:"hra"`
	DA          decimal.Decimal `json:"da"`
	OvertimePay decimal.Decimal `json:"overtime_pay"`
	ExtraPay    decimal.Decimal `json:"extra_pay"`
	Bonuses     decimal.Decimal `json:"bonuses"`
	GrossSalary decimal.Decimal `json:"gross_salary"`

	Tax             decimal.Decimal `json:"tax"`
	ProvidentFund   decimal.Decimal `json:"provident_fund"`
	Insurance       decimal.Decimal `json:"insurance"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`

	Status        string    `json:"status"`
	PaymentDate   *string   `json:"payment_date,omitempty"`
	GeneratedAt   time.Time `json:"generated_at"`
	BankName      *string   `json:"bank_name,omitempty"`
	AccountNumber *string   `json:"account_number,omitempty"`
}

// NewRecordResponse maps a payroll record onto its API shape.
func NewRecordResponse(r *Record) RecordResponse {
	resp := RecordResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		Designation:     r.Designation,
		Department:      r.Department,
		Month:           r.Month,
		Year:            r.Year,
		TotalDays:       r.TotalDays,
		DaysWorked:      r.DaysWorked,
		PaidLeaveDays:   r.PaidLeaveDays,
		PayableDays:     r.PayableDays,
		AbsentDays:      r.AbsentDays,
		ExtraDays:       r.ExtraDays,
		HoursWorked:     r.HoursWorked,
		OvertimeHours:   r.OvertimeHours,
		BasicSalary:     r.BasicSalary,
		HRA:             r.HRA,
		DA:              r.DA,
		OvertimePay:     r.OvertimePay,
		ExtraPay:        r.ExtraPay,
		Bonuses:         r.Bonuses,
		GrossSalary:     r.GrossSalary,
		Tax:             r.Tax,
		ProvidentFund:   r.ProvidentFund,
		Insurance:       r.Insurance,
		OtherDeductions: r.OtherDeductions,
		NetSalary:       r.NetSalary,
		Status:          string(r.Status),
		GeneratedAt:     r.GeneratedAt,
		BankName:        r.BankName,
		AccountNumber:   r.AccountNumber,
	}
	if r.FirstName != nil && r.LastName != nil {
		resp.EmployeeName = *r.FirstName + " " + *r.LastName
	}
	if r.PaymentDate != nil {
		formatted := r.PaymentDate.Format("2006-01-02")
		resp.PaymentDate = &formatted
	}
	return resp
}

// PayslipDetail bundles a payroll record with the itemised adjustments
// behind its bonus and deduction totals.
type PayslipDetail struct {
	Record     RecordResponse `json:"record"`
	Bonuses    []BonusLine    `json:"bonuses"`
	Deductions []AdjustLine   `json:"deductions"`
}

type BonusLine struct {
	BonusType string          `json:"bonus_type"`
	Amount    decimal.Decimal `json:"amount"`
	Approved  bool            `json:"approved"`
}

type AdjustLine struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}
