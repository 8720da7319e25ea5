package attendance

import (
	"context"
)

// Service defines business logic for the attendance workflow
type Service interface {
	// Submit records an employee attendance request for a single day
	Submit(ctx context.Context, employeeID string, req *SubmitRequest) (*Request, error)

	// ListMine retrieves requests for the authenticated employee
	ListMine(ctx context.Context, employeeID string) ([]Request, error)

	// ListPending retrieves all requests awaiting a decision
	ListPending(ctx context.Context) ([]Request, error)

	// Approve settles a pending request, recording who decided it. An
	// approval writes the day to the ledger and folds it into the monthly
	// rollup in the same transaction.
	Approve(ctx context.Context, requestID int64, approvedBy string, req *ApproveRequest) (*Request, error)

	// RecordDirect writes a ledger day on behalf of an employee and mirrors
	// it as an already-approved request
	RecordDirect(ctx context.Context, req *DirectEntryRequest) (*LedgerEntry, error)

	// ListEntries retrieves ledger rows with optional filters
	ListEntries(ctx context.Context, filter EntryFilter) ([]LedgerEntry, error)

	// UpdateEntry corrects an existing ledger row
	UpdateEntry(ctx context.Context, id int64, req *UpdateEntryRequest) (*LedgerEntry, error)

	// DeleteEntry removes a ledger row
	DeleteEntry(ctx context.Context, id int64) error

	// MarkExtraDay credits one extra rest-day worked to the monthly rollup.
	// Calling it twice for the same day credits the day twice.
	MarkExtraDay(ctx context.Context, req *MarkExtraDayRequest) (*ExtraDayMarkedResponse, error)
}
