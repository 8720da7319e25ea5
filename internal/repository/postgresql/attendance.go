package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/database"
)

type attendanceRequestRepository struct {
	db *database.DB
}

func NewAttendanceRequestRepository(db *database.DB) attendance.RequestRepository {
	return &attendanceRequestRepository{db: db}
}

// Upsert implements attendance.RequestRepository. A resubmission for the
// same employee and date replaces the previous request and goes back to
// pending.
func (r *attendanceRequestRepository) Upsert(ctx context.Context, req *attendance.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_requests (
			employee_id, date, status, hours_worked, overtime_hours, notes, approval_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, 'pending'
		)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET
			status = EXCLUDED.status,
			hours_worked = EXCLUDED.hours_worked,
			overtime_hours = EXCLUDED.overtime_hours,
			notes = EXCLUDED.notes,
			approval_status = 'pending',
			approved_at = NULL,
			submitted_at = NOW()
		RETURNING id, approval_status, submitted_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.Date,
		req.Status,
		req.HoursWorked,
		req.OvertimeHours,
		req.Notes,
	).Scan(&req.ID, &req.ApprovalStatus, &req.SubmittedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert attendance request: %w", err)
	}

	return nil
}

// UpsertApproved implements attendance.RequestRepository. Used by direct
// entries so the request history stays in step with the ledger.
func (r *attendanceRequestRepository) UpsertApproved(ctx context.Context, req *attendance.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_requests (
			employee_id, date, status, hours_worked, overtime_hours, notes, approval_status, approved_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, 'approved', NOW()
		)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET
			status = EXCLUDED.status,
			hours_worked = EXCLUDED.hours_worked,
			overtime_hours = EXCLUDED.overtime_hours,
			notes = EXCLUDED.notes,
			approval_status = 'approved',
			approved_at = NOW()
		RETURNING id, approval_status, submitted_at, approved_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.Date,
		req.Status,
		req.HoursWorked,
		req.OvertimeHours,
		req.Notes,
	).Scan(&req.ID, &req.ApprovalStatus, &req.SubmittedAt, &req.ApprovedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert approved attendance request: %w", err)
	}

	return nil
}

// GetByIDWithSalary implements attendance.RequestRepository.
func (r *attendanceRequestRepository) GetByIDWithSalary(ctx context.Context, id int64) (*attendance.RequestWithSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.employee_id, ar.date, ar.status, ar.hours_worked, ar.overtime_hours,
			   ar.notes, ar.approval_status, ar.submitted_at, ar.approved_at, ar.approved_by,
			   e.basic_salary
		FROM attendance_requests ar
		JOIN employees e ON e.employee_id = ar.employee_id
		WHERE ar.id = $1
	`

	var rws attendance.RequestWithSalary
	err := q.QueryRow(ctx, query, id).Scan(
		&rws.ID, &rws.EmployeeID, &rws.Date, &rws.Status, &rws.HoursWorked, &rws.OvertimeHours,
		&rws.Notes, &rws.ApprovalStatus, &rws.SubmittedAt, &rws.ApprovedAt, &rws.ApprovedBy,
		&rws.BasicSalary,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, attendance.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get attendance request %d: %w", id, err)
	}

	return &rws, nil
}

// ListPending implements attendance.RequestRepository.
func (r *attendanceRequestRepository) ListPending(ctx context.Context) ([]attendance.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.employee_id, ar.date, ar.status, ar.hours_worked, ar.overtime_hours,
			   ar.notes, ar.approval_status, ar.submitted_at, ar.approved_at, ar.approved_by,
			   e.first_name, e.last_name, e.designation, e.department
		FROM attendance_requests ar
		JOIN employees e ON e.employee_id = ar.employee_id
		WHERE ar.approval_status = 'pending'
		ORDER BY ar.date, ar.employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending attendance requests: %w", err)
	}
	defer rows.Close()

	var requests []attendance.Request
	for rows.Next() {
		var req attendance.Request
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Date, &req.Status, &req.HoursWorked, &req.OvertimeHours,
			&req.Notes, &req.ApprovalStatus, &req.SubmittedAt, &req.ApprovedAt, &req.ApprovedBy,
			&req.FirstName, &req.LastName, &req.Designation, &req.Department,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// ListByEmployee implements attendance.RequestRepository.
func (r *attendanceRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, hours_worked, overtime_hours,
			   notes, approval_status, submitted_at, approved_at, approved_by
		FROM attendance_requests
		WHERE employee_id = $1
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance requests for %s: %w", employeeID, err)
	}
	defer rows.Close()

	var requests []attendance.Request
	for rows.Next() {
		var req attendance.Request
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Date, &req.Status, &req.HoursWorked, &req.OvertimeHours,
			&req.Notes, &req.ApprovalStatus, &req.SubmittedAt, &req.ApprovedAt, &req.ApprovedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// SetDecision implements attendance.RequestRepository.
func (r *attendanceRequestRepository) SetDecision(ctx context.Context, id int64, decision attendance.ApprovalStatus, notes *string, approvedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_requests
		SET approval_status = $2,
			approved_at = NOW(),
			approved_by = $4,
			notes = COALESCE($3, notes)
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, decision, notes, approvedBy)
	if err != nil {
		return fmt.Errorf("failed to set decision on attendance request %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRequestNotFound
	}

	return nil
}

type attendanceLedgerRepository struct {
	db *database.DB
}

func NewAttendanceLedgerRepository(db *database.DB) attendance.LedgerRepository {
	return &attendanceLedgerRepository{db: db}
}

// Upsert implements attendance.LedgerRepository. One row per employee and
// date; the latest write wins.
func (r *attendanceLedgerRepository) Upsert(ctx context.Context, entry *attendance.LedgerEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (
			employee_id, date, status, hours_worked, overtime_hours, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET
			status = EXCLUDED.status,
			hours_worked = EXCLUDED.hours_worked,
			overtime_hours = EXCLUDED.overtime_hours,
			notes = EXCLUDED.notes
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID,
		entry.Date,
		entry.Status,
		entry.HoursWorked,
		entry.OvertimeHours,
		entry.Notes,
	).Scan(&entry.ID)

	if err != nil {
		return fmt.Errorf("failed to upsert attendance entry: %w", err)
	}

	return nil
}

// List implements attendance.LedgerRepository.
func (r *attendanceLedgerRepository) List(ctx context.Context, filter attendance.EntryFilter) ([]attendance.LedgerEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, hours_worked, overtime_hours, notes
		FROM attendance
	`

	var conditions []string
	var args []any

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.Month != 0 {
		args = append(args, filter.Month)
		conditions = append(conditions, fmt.Sprintf("EXTRACT(MONTH FROM date) = $%d", len(args)))
	}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM date) = $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date DESC, employee_id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance entries: %w", err)
	}
	defer rows.Close()

	var entries []attendance.LedgerEntry
	for rows.Next() {
		var entry attendance.LedgerEntry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.Date, &entry.Status,
			&entry.HoursWorked, &entry.OvertimeHours, &entry.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// UpdateByID implements attendance.LedgerRepository.
func (r *attendanceLedgerRepository) UpdateByID(ctx context.Context, id int64, entry *attendance.LedgerEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET status = $2, hours_worked = $3, overtime_hours = $4, notes = $5
		WHERE id = $1
		RETURNING employee_id, date
	`

	err := q.QueryRow(ctx, query,
		id,
		entry.Status,
		entry.HoursWorked,
		entry.OvertimeHours,
		entry.Notes,
	).Scan(&entry.EmployeeID, &entry.Date)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrEntryNotFound
		}
		return fmt.Errorf("failed to update attendance entry %d: %w", id, err)
	}
	entry.ID = id

	return nil
}

// DeleteByID implements attendance.LedgerRepository.
func (r *attendanceLedgerRepository) DeleteByID(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance entry %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEntryNotFound
	}

	return nil
}

type monthlyRollupRepository struct {
	db *database.DB
}

func NewMonthlyRollupRepository(db *database.DB) attendance.RollupRepository {
	return &monthlyRollupRepository{db: db}
}

// Get implements attendance.RollupRepository.
func (r *monthlyRollupRepository) Get(ctx context.Context, employeeID string, month, year int) (*attendance.MonthlyRollup, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, year, days_worked, leave_days,
			   extra_days, extra_days_amount, status, approved_date
		FROM monthly_attendance
		WHERE employee_id = $1 AND month = $2 AND year = $3
	`

	var rollup attendance.MonthlyRollup
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&rollup.ID, &rollup.EmployeeID, &rollup.Month, &rollup.Year, &rollup.DaysWorked, &rollup.LeaveDays,
		&rollup.ExtraDays, &rollup.ExtraDaysAmount, &rollup.Status, &rollup.ApprovedDate,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, attendance.ErrRollupNotFound
		}
		return nil, fmt.Errorf("failed to get monthly attendance for %s %d/%d: %w", employeeID, month, year, err)
	}

	return &rollup, nil
}

// Insert implements attendance.RollupRepository.
func (r *monthlyRollupRepository) Insert(ctx context.Context, rollup *attendance.MonthlyRollup) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_attendance (
			employee_id, month, year, days_worked, leave_days,
			extra_days, extra_days_amount, status, approved_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id
	`

	err := q.QueryRow(ctx, query,
		rollup.EmployeeID,
		rollup.Month,
		rollup.Year,
		rollup.DaysWorked,
		rollup.LeaveDays,
		rollup.ExtraDays,
		rollup.ExtraDaysAmount,
		rollup.Status,
		rollup.ApprovedDate,
	).Scan(&rollup.ID)

	if err != nil {
		return fmt.Errorf("failed to insert monthly attendance: %w", err)
	}

	return nil
}

// Update implements attendance.RollupRepository.
func (r *monthlyRollupRepository) Update(ctx context.Context, rollup *attendance.MonthlyRollup) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE monthly_attendance
		SET days_worked = $4, leave_days = $5, extra_days = $6,
			extra_days_amount = $7, status = $8, approved_date = $9
		WHERE employee_id = $1 AND month = $2 AND year = $3
	`

	tag, err := q.Exec(ctx, query,
		rollup.EmployeeID,
		rollup.Month,
		rollup.Year,
		rollup.DaysWorked,
		rollup.LeaveDays,
		rollup.ExtraDays,
		rollup.ExtraDaysAmount,
		rollup.Status,
		rollup.ApprovedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update monthly attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRollupNotFound
	}

	return nil
}
