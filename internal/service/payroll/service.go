package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/adjustment"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/database"
	"github.com/nimbus-hr/payroll-backend-go/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

type PayrollServiceImpl struct {
	db *database.DB
	payroll.Repository
	employee.EmployeeRepository
	bonuses    adjustment.BonusRepository
	deductions adjustment.DeductionRepository
}

func NewPayrollService(
	db *database.DB,
	payrolls payroll.Repository,
	employees employee.EmployeeRepository,
	bonuses adjustment.BonusRepository,
	deductions adjustment.DeductionRepository,
) payroll.Service {
	return &PayrollServiceImpl{
		db:                 db,
		Repository:         payrolls,
		EmployeeRepository: employees,
		bonuses:            bonuses,
		deductions:         deductions,
	}
}

// Generate implements payroll.Service. One transaction covers the whole
// batch: either every active employee gets a record for the period or
// none do.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req *payroll.GenerateRequest) (*payroll.GenerateResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result := &payroll.GenerateResult{Month: req.Month, Year: req.Year}
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		employees, err := s.EmployeeRepository.GetActive(txCtx)
		if err != nil {
			return err
		}

		for _, emp := range employees {
			totals, err := s.Repository.AttendanceTotals(txCtx, emp.EmployeeID, req.Month, req.Year)
			if err != nil {
				return err
			}

			adjustments, err := s.Repository.PeriodAdjustments(txCtx, emp.EmployeeID, req.Month, req.Year)
			if err != nil {
				return err
			}

			record := Calculate(CalculationInput{
				MonthlyBasic: emp.BasicSalary,
				Attendance:   *totals,
				Adjustments:  *adjustments,
			})
			record.EmployeeID = emp.EmployeeID
			record.Month = req.Month
			record.Year = req.Year

			if err := s.Repository.Upsert(txCtx, &record); err != nil {
				return fmt.Errorf("failed to commit payroll for %s: %w", emp.EmployeeID, err)
			}
			record.FirstName = &emp.FirstName
			record.LastName = &emp.LastName
			result.Generated++
			result.Records = append(result.Records, payroll.NewRecordResponse(&record))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// List implements payroll.Service.
func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.Filter) ([]payroll.Record, error) {
	return s.Repository.List(ctx, filter)
}

// UpdateStatus implements payroll.Service.
func (s *PayrollServiceImpl) UpdateStatus(ctx context.Context, id int64, req *payroll.UpdateStatusRequest) (*payroll.Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var paymentDate *time.Time
	if req.PaymentDate != nil {
		parsed, _ := time.Parse("2006-01-02", *req.PaymentDate)
		paymentDate = &parsed
	}

	return s.Repository.UpdateStatus(ctx, id, payroll.Status(req.Status), paymentDate)
}

// Summary implements payroll.Service.
func (s *PayrollServiceImpl) Summary(ctx context.Context, month, year int) (*payroll.Summary, error) {
	return s.Repository.Summary(ctx, month, year)
}

// ListMine implements payroll.Service.
func (s *PayrollServiceImpl) ListMine(ctx context.Context, employeeID string) ([]payroll.Record, error) {
	return s.Repository.ListByEmployee(ctx, employeeID)
}

// PayslipDetail implements payroll.Service. The record and its adjustment
// line items are independent reads, so they run concurrently.
func (s *PayrollServiceImpl) PayslipDetail(ctx context.Context, employeeID string, month, year int) (*payroll.PayslipDetail, error) {
	var (
		record     *payroll.Record
		bonuses    []adjustment.Bonus
		deductions []adjustment.Deduction
	)

	g, gCtx := errgroup.WithContext(ctx)
	filter := adjustment.PeriodFilter{EmployeeID: employeeID, Month: month, Year: year}

	g.Go(func() error {
		var err error
		record, err = s.Repository.GetByEmployeePeriod(gCtx, employeeID, month, year)
		return err
	})
	g.Go(func() error {
		var err error
		bonuses, err = s.bonuses.List(gCtx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		deductions, err = s.deductions.List(gCtx, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail := &payroll.PayslipDetail{
		Record:     payroll.NewRecordResponse(record),
		Bonuses:    make([]payroll.BonusLine, 0, len(bonuses)),
		Deductions: make([]payroll.AdjustLine, 0, len(deductions)),
	}
	for _, b := range bonuses {
		detail.Bonuses = append(detail.Bonuses, payroll.BonusLine{
			BonusType: b.BonusType,
			Amount:    b.Amount,
			Approved:  b.BonusApproved,
		})
	}
	for _, d := range deductions {
		detail.Deductions = append(detail.Deductions, payroll.AdjustLine{
			Type:   d.DeductionType,
			Amount: d.Amount,
		})
	}

	return detail, nil
}
