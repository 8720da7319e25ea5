package employee

import "context"

// Service defines business logic for employee management
type Service interface {
	// Create registers a new employee with an initial portal password
	Create(ctx context.Context, req *CreateEmployeeRequest) (*Employee, error)

	// Get retrieves one employee by business key
	Get(ctx context.Context, employeeID string) (*Employee, error)

	// List retrieves all employees
	List(ctx context.Context) ([]Employee, error)

	// Update applies partial changes to an employee record
	Update(ctx context.Context, employeeID string, req *UpdateEmployeeRequest) (*Employee, error)

	// UpdateProfile applies self-service changes from the portal
	UpdateProfile(ctx context.Context, employeeID string, req *UpdateProfileRequest) (*Employee, error)

	// Delete removes an employee and, by cascade, every dependent row
	Delete(ctx context.Context, employeeID string) error
}
