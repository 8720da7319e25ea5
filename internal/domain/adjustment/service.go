package adjustment

import "context"

// Service defines business logic for payroll adjustments
type Service interface {
	// CreateBonus records a bonus for an employee and period
	CreateBonus(ctx context.Context, req *CreateBonusRequest) (*Bonus, error)

	// ListBonuses retrieves bonuses with optional filters
	ListBonuses(ctx context.Context, filter PeriodFilter) ([]Bonus, error)

	// SetBonusApproval flips the advisory approval flag on a bonus
	SetBonusApproval(ctx context.Context, id int64, req *SetBonusApprovalRequest) (*Bonus, error)

	// DeleteBonus removes a bonus
	DeleteBonus(ctx context.Context, id int64) error

	// CreateDeduction records a deduction for an employee and period
	CreateDeduction(ctx context.Context, req *CreateDeductionRequest) (*Deduction, error)

	// ListDeductions retrieves deductions with optional filters
	ListDeductions(ctx context.Context, filter PeriodFilter) ([]Deduction, error)

	// DeleteDeduction removes a deduction
	DeleteDeduction(ctx context.Context, id int64) error

	// CreateExtraDay records manually counted extra days for a period
	CreateExtraDay(ctx context.Context, req *CreateExtraDayRequest) (*ExtraDay, error)

	// ListExtraDays retrieves extra day records with optional filters
	ListExtraDays(ctx context.Context, filter PeriodFilter) ([]ExtraDay, error)

	// DeleteExtraDay removes an extra day record
	DeleteExtraDay(ctx context.Context, id int64) error
}
