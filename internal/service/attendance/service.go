package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/database"
	"github.com/nimbus-hr/payroll-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

var daysPerMonth = decimal.NewFromInt(30)

type AttendanceServiceImpl struct {
	// runInTx brackets multi-repository writes in one transaction.
	runInTx func(ctx context.Context, fn func(tx pgx.Tx) error) error
	attendance.RequestRepository
	attendance.LedgerRepository
	attendance.RollupRepository
	employee.EmployeeRepository
}

func NewAttendanceService(
	db *database.DB,
	requests attendance.RequestRepository,
	ledger attendance.LedgerRepository,
	rollups attendance.RollupRepository,
	employees employee.EmployeeRepository,
) attendance.Service {
	return &AttendanceServiceImpl{
		runInTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		RequestRepository:  requests,
		LedgerRepository:   ledger,
		RollupRepository:   rollups,
		EmployeeRepository: employees,
	}
}

// Submit implements attendance.Service.
func (s *AttendanceServiceImpl) Submit(ctx context.Context, employeeID string, req *attendance.SubmitRequest) (*attendance.Request, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID); err != nil {
		return nil, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	request := &attendance.Request{
		EmployeeID:    employeeID,
		Date:          date,
		Status:        attendance.DayStatus(req.Status),
		HoursWorked:   req.HoursWorked,
		OvertimeHours: req.OvertimeHours,
		Notes:         req.Notes,
	}

	if err := s.RequestRepository.Upsert(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

// ListMine implements attendance.Service.
func (s *AttendanceServiceImpl) ListMine(ctx context.Context, employeeID string) ([]attendance.Request, error) {
	return s.RequestRepository.ListByEmployee(ctx, employeeID)
}

// ListPending implements attendance.Service.
func (s *AttendanceServiceImpl) ListPending(ctx context.Context) ([]attendance.Request, error) {
	return s.RequestRepository.ListPending(ctx)
}

// Approve implements attendance.Service. The decision, the ledger write and
// the monthly rollup move together; any failure rolls the whole thing back.
func (s *AttendanceServiceImpl) Approve(ctx context.Context, requestID int64, approvedBy string, req *attendance.ApproveRequest) (*attendance.Request, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	decision := attendance.ApprovalStatus(req.ApprovalStatus)

	var result *attendance.Request
	err := s.runInTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		request, err := s.RequestRepository.GetByIDWithSalary(txCtx, requestID)
		if err != nil {
			return err
		}

		if err := s.RequestRepository.SetDecision(txCtx, requestID, decision, req.Notes, approvedBy); err != nil {
			return err
		}

		if decision == attendance.ApprovalStatusApproved {
			entry := &attendance.LedgerEntry{
				EmployeeID:    request.EmployeeID,
				Date:          request.Date,
				Status:        request.Status,
				HoursWorked:   request.HoursWorked,
				OvertimeHours: request.OvertimeHours,
				Notes:         request.Notes,
			}
			if err := s.LedgerRepository.Upsert(txCtx, entry); err != nil {
				return err
			}

			if err := s.applyToRollup(txCtx, request); err != nil {
				return err
			}
		}

		now := time.Now()
		request.ApprovalStatus = decision
		request.ApprovedAt = &now
		request.ApprovedBy = &approvedBy
		if req.Notes != nil {
			request.Notes = req.Notes
		}
		result = &request.Request
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// applyToRollup folds an approved request into the monthly rollup. The
// extra day columns are left at zero here; they belong to MarkExtraDay.
func (s *AttendanceServiceImpl) applyToRollup(ctx context.Context, request *attendance.RequestWithSalary) error {
	month := int(request.Date.Month())
	year := request.Date.Year()
	credited := request.Status.DaysCredited()
	now := time.Now()

	rollup, err := s.RollupRepository.Get(ctx, request.EmployeeID, month, year)
	if err != nil {
		if err == attendance.ErrRollupNotFound {
			return s.RollupRepository.Insert(ctx, &attendance.MonthlyRollup{
				EmployeeID:      request.EmployeeID,
				Month:           month,
				Year:            year,
				DaysWorked:      credited,
				ExtraDaysAmount: decimal.Zero,
				Status:          "approved",
				ApprovedDate:    &now,
			})
		}
		return err
	}

	rollup.DaysWorked += credited
	rollup.ExtraDays = 0
	rollup.ExtraDaysAmount = decimal.Zero
	rollup.Status = "approved"
	rollup.ApprovedDate = &now
	return s.RollupRepository.Update(ctx, rollup)
}

// RecordDirect implements attendance.Service. The ledger write and the
// mirrored approved request share one transaction.
func (s *AttendanceServiceImpl) RecordDirect(ctx context.Context, req *attendance.DirectEntryRequest) (*attendance.LedgerEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	entry := &attendance.LedgerEntry{
		EmployeeID:    req.EmployeeID,
		Date:          date,
		Status:        attendance.DayStatus(req.Status),
		HoursWorked:   req.HoursWorked,
		OvertimeHours: req.OvertimeHours,
		Notes:         req.Notes,
	}

	err := s.runInTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.LedgerRepository.Upsert(txCtx, entry); err != nil {
			return err
		}

		mirrored := &attendance.Request{
			EmployeeID:    req.EmployeeID,
			Date:          date,
			Status:        attendance.DayStatus(req.Status),
			HoursWorked:   req.HoursWorked,
			OvertimeHours: req.OvertimeHours,
			Notes:         req.Notes,
		}
		return s.RequestRepository.UpsertApproved(txCtx, mirrored)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// ListEntries implements attendance.Service.
func (s *AttendanceServiceImpl) ListEntries(ctx context.Context, filter attendance.EntryFilter) ([]attendance.LedgerEntry, error) {
	return s.LedgerRepository.List(ctx, filter)
}

// UpdateEntry implements attendance.Service. The corrected request mirror
// shares a transaction with the ledger update, so a later resubmission for
// the same day starts from the corrected state.
func (s *AttendanceServiceImpl) UpdateEntry(ctx context.Context, id int64, req *attendance.UpdateEntryRequest) (*attendance.LedgerEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry := &attendance.LedgerEntry{
		Status:        attendance.DayStatus(req.Status),
		HoursWorked:   req.HoursWorked,
		OvertimeHours: req.OvertimeHours,
		Notes:         req.Notes,
	}

	err := s.runInTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.LedgerRepository.UpdateByID(txCtx, id, entry); err != nil {
			return err
		}

		mirrored := &attendance.Request{
			EmployeeID:    entry.EmployeeID,
			Date:          entry.Date,
			Status:        entry.Status,
			HoursWorked:   entry.HoursWorked,
			OvertimeHours: entry.OvertimeHours,
			Notes:         entry.Notes,
		}
		return s.RequestRepository.UpsertApproved(txCtx, mirrored)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteEntry implements attendance.Service.
func (s *AttendanceServiceImpl) DeleteEntry(ctx context.Context, id int64) error {
	return s.LedgerRepository.DeleteByID(ctx, id)
}

// MarkExtraDay implements attendance.Service. Each call credits exactly one
// more extra day; the caller is responsible for calling it once per day
// actually worked.
func (s *AttendanceServiceImpl) MarkExtraDay(ctx context.Context, req *attendance.MarkExtraDayRequest) (*attendance.ExtraDayMarkedResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var result *attendance.ExtraDayMarkedResponse
	err := s.runInTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		emp, err := s.EmployeeRepository.GetByEmployeeID(txCtx, req.EmployeeID)
		if err != nil {
			return err
		}
		dailyRate := emp.BasicSalary.Div(daysPerMonth)

		rollup, err := s.RollupRepository.Get(txCtx, req.EmployeeID, req.Month, req.Year)
		if err != nil {
			if err == attendance.ErrRollupNotFound {
				created := &attendance.MonthlyRollup{
					EmployeeID:      req.EmployeeID,
					Month:           req.Month,
					Year:            req.Year,
					ExtraDays:       1,
					ExtraDaysAmount: dailyRate,
					Status:          "active",
				}
				if err := s.RollupRepository.Insert(txCtx, created); err != nil {
					return err
				}
				result = &attendance.ExtraDayMarkedResponse{
					EmployeeID:      req.EmployeeID,
					Month:           req.Month,
					Year:            req.Year,
					ExtraDays:       1,
					ExtraDaysAmount: dailyRate,
					DailyRate:       dailyRate,
				}
				return nil
			}
			return err
		}

		rollup.ExtraDays++
		rollup.ExtraDaysAmount = dailyRate.Mul(decimal.NewFromInt(int64(rollup.ExtraDays)))
		if err := s.RollupRepository.Update(txCtx, rollup); err != nil {
			return fmt.Errorf("failed to increment extra days: %w", err)
		}

		result = &attendance.ExtraDayMarkedResponse{
			EmployeeID:      req.EmployeeID,
			Month:           req.Month,
			Year:            req.Year,
			ExtraDays:       rollup.ExtraDays,
			ExtraDaysAmount: rollup.ExtraDaysAmount,
			DailyRate:       dailyRate,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
