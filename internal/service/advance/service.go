package advance

import (
	"context"

	"github.com/nimbus-hr/payroll-backend-go/internal/domain/advance"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/employee"
)

type AdvanceServiceImpl struct {
	advance.Repository
	employee.EmployeeRepository
}

func NewAdvanceService(advances advance.Repository, employees employee.EmployeeRepository) advance.Service {
	return &AdvanceServiceImpl{
		Repository:         advances,
		EmployeeRepository: employees,
	}
}

// Create implements advance.Service.
func (s *AdvanceServiceImpl) Create(ctx context.Context, employeeID string, req *advance.CreateRequest) (*advance.Request, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID); err != nil {
		return nil, err
	}

	request := &advance.Request{
		EmployeeID: employeeID,
		Amount:     req.Amount,
		Notes:      req.Notes,
	}
	if err := s.Repository.Create(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

// ListAll implements advance.Service.
func (s *AdvanceServiceImpl) ListAll(ctx context.Context) ([]advance.Request, error) {
	return s.Repository.ListAll(ctx)
}

// ListByEmployee implements advance.Service.
func (s *AdvanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]advance.Request, error) {
	return s.Repository.ListByEmployee(ctx, employeeID)
}

// Decide implements advance.Service. The deduction period is stored only
// on approval; rejections leave it empty.
func (s *AdvanceServiceImpl) Decide(ctx context.Context, id int64, req *advance.DecideRequest) (*advance.Request, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	decision := advance.ApprovalStatus(req.ApprovalStatus)

	var deductionMonth, deductionYear *int
	if decision == advance.ApprovalStatusApproved {
		deductionMonth = &req.DeductionMonth
		deductionYear = &req.DeductionYear
	}

	if err := s.Repository.SetDecision(ctx, id, decision, deductionMonth, deductionYear); err != nil {
		return nil, err
	}

	return s.Repository.GetByID(ctx, id)
}
