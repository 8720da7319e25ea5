package payroll

import "context"

// Service defines business logic for payroll generation and payslips
type Service interface {
	// Generate computes and commits payroll records for every active
	// employee for the period. The whole batch runs in one transaction;
	// regeneration replaces existing records for the period.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error)

	// List retrieves payroll records with optional filters
	List(ctx context.Context, filter Filter) ([]Record, error)

	// UpdateStatus moves a record between generated, approved and paid.
	// Marking a record paid stamps the payment date.
	UpdateStatus(ctx context.Context, id int64, req *UpdateStatusRequest) (*Record, error)

	// Summary returns period-level totals across all records
	Summary(ctx context.Context, month, year int) (*Summary, error)

	// ListMine retrieves payroll records for the authenticated employee
	ListMine(ctx context.Context, employeeID string) ([]Record, error)

	// PayslipDetail returns one record with its itemised bonuses and
	// deductions for the period
	PayslipDetail(ctx context.Context, employeeID string, month, year int) (*PayslipDetail, error)
}
