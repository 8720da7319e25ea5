package attendance

import (
	"context"

	"github.com/shopspring/decimal"
)

// RequestWithSalary pairs a pending request with the employee's basic salary
// so the approval flow can derive the daily rate without a second lookup.
type RequestWithSalary struct {
	Request
	BasicSalary decimal.Decimal
}

type RequestRepository interface {
	// Upsert stores an employee-submitted request. A resubmission for the
	// same employee and date replaces the previous one and resets the
	// approval state to pending.
	Upsert(ctx context.Context, req *Request) error

	// UpsertApproved mirrors a manager direct entry as an already-approved
	// request so the request history matches the ledger.
	UpsertApproved(ctx context.Context, req *Request) error

	GetByIDWithSalary(ctx context.Context, id int64) (*RequestWithSalary, error)
	ListPending(ctx context.Context) ([]Request, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)

	// SetDecision records the manager decision and stamps approved_at and
	// approved_by.
	SetDecision(ctx context.Context, id int64, decision ApprovalStatus, notes *string, approvedBy string) error
}

type LedgerRepository interface {
	// Upsert writes one day for one employee, replacing any existing row
	// for that employee and date.
	Upsert(ctx context.Context, entry *LedgerEntry) error

	List(ctx context.Context, filter EntryFilter) ([]LedgerEntry, error)
	UpdateByID(ctx context.Context, id int64, entry *LedgerEntry) error
	DeleteByID(ctx context.Context, id int64) error
}

type RollupRepository interface {
	Get(ctx context.Context, employeeID string, month, year int) (*MonthlyRollup, error)
	Insert(ctx context.Context, rollup *MonthlyRollup) error
	Update(ctx context.Context, rollup *MonthlyRollup) error
}
