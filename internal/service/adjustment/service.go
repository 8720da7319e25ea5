package adjustment

import (
	"context"
	"time"

	"github.com/nimbus-hr/payroll-backend-go/internal/domain/adjustment"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/employee"
)

type AdjustmentServiceImpl struct {
	adjustment.BonusRepository
	adjustment.DeductionRepository
	adjustment.ExtraDayRepository
	employee.EmployeeRepository
}

func NewAdjustmentService(
	bonuses adjustment.BonusRepository,
	deductions adjustment.DeductionRepository,
	extraDays adjustment.ExtraDayRepository,
	employees employee.EmployeeRepository,
) adjustment.Service {
	return &AdjustmentServiceImpl{
		BonusRepository:     bonuses,
		DeductionRepository: deductions,
		ExtraDayRepository:  extraDays,
		EmployeeRepository:  employees,
	}
}

// CreateBonus implements adjustment.Service.
func (s *AdjustmentServiceImpl) CreateBonus(ctx context.Context, req *adjustment.CreateBonusRequest) (*adjustment.Bonus, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	bonus := &adjustment.Bonus{
		EmployeeID:  req.EmployeeID,
		BonusType:   req.BonusType,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
	}
	if err := s.BonusRepository.Create(ctx, bonus); err != nil {
		return nil, err
	}

	return bonus, nil
}

// ListBonuses implements adjustment.Service.
func (s *AdjustmentServiceImpl) ListBonuses(ctx context.Context, filter adjustment.PeriodFilter) ([]adjustment.Bonus, error) {
	return s.BonusRepository.List(ctx, filter)
}

// SetBonusApproval implements adjustment.Service. The flag is advisory:
// payroll generation sums bonuses either way.
func (s *AdjustmentServiceImpl) SetBonusApproval(ctx context.Context, id int64, req *adjustment.SetBonusApprovalRequest) (*adjustment.Bonus, error) {
	return s.BonusRepository.SetApproval(ctx, id, req.BonusApproved)
}

// DeleteBonus implements adjustment.Service.
func (s *AdjustmentServiceImpl) DeleteBonus(ctx context.Context, id int64) error {
	return s.BonusRepository.Delete(ctx, id)
}

// CreateDeduction implements adjustment.Service.
func (s *AdjustmentServiceImpl) CreateDeduction(ctx context.Context, req *adjustment.CreateDeductionRequest) (*adjustment.Deduction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	deduction := &adjustment.Deduction{
		EmployeeID:    req.EmployeeID,
		DeductionType: req.DeductionType,
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          date,
	}
	if err := s.DeductionRepository.Create(ctx, deduction); err != nil {
		return nil, err
	}

	return deduction, nil
}

// ListDeductions implements adjustment.Service.
func (s *AdjustmentServiceImpl) ListDeductions(ctx context.Context, filter adjustment.PeriodFilter) ([]adjustment.Deduction, error) {
	return s.DeductionRepository.List(ctx, filter)
}

// DeleteDeduction implements adjustment.Service.
func (s *AdjustmentServiceImpl) DeleteDeduction(ctx context.Context, id int64) error {
	return s.DeductionRepository.Delete(ctx, id)
}

// CreateExtraDay implements adjustment.Service. A zero days count records
// a single day.
func (s *AdjustmentServiceImpl) CreateExtraDay(ctx context.Context, req *adjustment.CreateExtraDayRequest) (*adjustment.ExtraDay, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	daysCount := req.DaysCount
	if daysCount == 0 {
		daysCount = 1
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	extraDay := &adjustment.ExtraDay{
		EmployeeID: req.EmployeeID,
		DaysCount:  daysCount,
		Reason:     req.Reason,
		Date:       date,
	}
	if err := s.ExtraDayRepository.Create(ctx, extraDay); err != nil {
		return nil, err
	}

	return extraDay, nil
}

// ListExtraDays implements adjustment.Service.
func (s *AdjustmentServiceImpl) ListExtraDays(ctx context.Context, filter adjustment.PeriodFilter) ([]adjustment.ExtraDay, error) {
	return s.ExtraDayRepository.List(ctx, filter)
}

// DeleteExtraDay implements adjustment.Service.
func (s *AdjustmentServiceImpl) DeleteExtraDay(ctx context.Context, id int64) error {
	return s.ExtraDayRepository.Delete(ctx, id)
}
