package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/nimbus-hr/payroll-backend-go/internal/domain/employee"
	"golang.org/x/crypto/bcrypt"
)

// Initial portal password for newly registered employees.
const defaultInitialPassword = "password123"

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employees employee.EmployeeRepository) employee.Service {
	return &EmployeeServiceImpl{EmployeeRepository: employees}
}

// Create implements employee.Service.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req *employee.CreateEmployeeRequest) (*employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultInitialPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash initial password: %w", err)
	}
	hashStr := string(hash)

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)
	emp := employee.Employee{
		EmployeeID:   req.EmployeeID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Gender:       req.Gender,
		Designation:  req.Designation,
		Department:   req.Department,
		HireDate:     hireDate,
		BasicSalary:  req.BasicSalary,
		Status:       employee.StatusActive,
		PasswordHash: &hashStr,
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// Get implements employee.Service.
func (s *EmployeeServiceImpl) Get(ctx context.Context, employeeID string) (*employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return s.EmployeeRepository.List(ctx)
}

// Update implements employee.Service. Unset fields keep their current
// values.
func (s *EmployeeServiceImpl) Update(ctx context.Context, employeeID string, req *employee.UpdateEmployeeRequest) (*employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		current.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		current.LastName = *req.LastName
	}
	if req.Email != nil {
		current.Email = *req.Email
	}
	if req.Phone != nil {
		current.Phone = req.Phone
	}
	if req.Gender != nil {
		current.Gender = req.Gender
	}
	if req.Designation != nil {
		current.Designation = *req.Designation
	}
	if req.Department != nil {
		current.Department = req.Department
	}
	if req.HireDate != nil {
		hireDate, _ := time.Parse("2006-01-02", *req.HireDate)
		current.HireDate = hireDate
	}
	if req.BasicSalary != nil {
		current.BasicSalary = *req.BasicSalary
	}
	if req.Status != nil {
		current.Status = employee.Status(*req.Status)
	}

	updated, err := s.EmployeeRepository.Update(ctx, current)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// UpdateProfile implements employee.Service.
func (s *EmployeeServiceImpl) UpdateProfile(ctx context.Context, employeeID string, req *employee.UpdateProfileRequest) (*employee.Employee, error) {
	updated, err := s.EmployeeRepository.UpdateProfile(ctx, employeeID, *req)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete implements employee.Service.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, employeeID string) error {
	return s.EmployeeRepository.Delete(ctx, employeeID)
}
