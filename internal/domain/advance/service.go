package advance

import "context"

// Service defines business logic for advance salary requests
type Service interface {
	// Create files an advance request for the authenticated employee
	Create(ctx context.Context, employeeID string, req *CreateRequest) (*Request, error)

	// ListAll retrieves every advance request (admin view)
	ListAll(ctx context.Context) ([]Request, error)

	// ListByEmployee retrieves requests for one employee
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)

	// Decide approves or rejects a pending request. Approval pins the
	// deduction period; a decided request cannot be decided again.
	Decide(ctx context.Context, id int64, req *DecideRequest) (*Request, error)
}
