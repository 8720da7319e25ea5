package employee

import "context"

// EmployeeRepository defines data access for employee records. Attendance,
// adjustment and payroll rows reference employees by the EmployeeID business
// key and are removed by cascade when an employee is deleted.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	GetActive(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	UpdateProfile(ctx context.Context, employeeID string, req UpdateProfileRequest) (Employee, error)
	Delete(ctx context.Context, employeeID string) error
}
