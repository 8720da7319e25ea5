package advance

import "context"

type Repository interface {
	Create(ctx context.Context, req *Request) error
	GetByID(ctx context.Context, id int64) (*Request, error)
	ListAll(ctx context.Context) ([]Request, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)

	// SetDecision writes the decision and, when approving, the deduction
	// period. Only pending requests may be decided.
	SetDecision(ctx context.Context, id int64, decision ApprovalStatus, deductionMonth, deductionYear *int) error
}
