package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/advance"
	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/database"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.Repository {
	return &advanceRepository{db: db}
}

// Create implements advance.Repository.
func (r *advanceRepository) Create(ctx context.Context, req *advance.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advance_salary (
			employee_id, amount, notes, approval_status
		) VALUES (
			$1, $2, $3, 'pending'
		) RETURNING id, approval_status, requested_date
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.Amount,
		req.Notes,
	).Scan(&req.ID, &req.ApprovalStatus, &req.RequestedDate)

	if err != nil {
		return fmt.Errorf("failed to create advance salary request: %w", err)
	}

	return nil
}

// GetByID implements advance.Repository.
func (r *advanceRepository) GetByID(ctx context.Context, id int64) (*advance.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, notes, approval_status,
			   requested_date, approved_date, deduction_month, deduction_year
		FROM advance_salary
		WHERE id = $1
	`

	var req advance.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Amount, &req.Notes, &req.ApprovalStatus,
		&req.RequestedDate, &req.ApprovedDate, &req.DeductionMonth, &req.DeductionYear,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, advance.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get advance salary request %d: %w", id, err)
	}

	return &req, nil
}

// ListAll implements advance.Repository.
func (r *advanceRepository) ListAll(ctx context.Context) ([]advance.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.amount, a.notes, a.approval_status,
			   a.requested_date, a.approved_date, a.deduction_month, a.deduction_year,
			   e.first_name, e.last_name
		FROM advance_salary a
		JOIN employees e ON e.employee_id = a.employee_id
		ORDER BY a.requested_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list advance salary requests: %w", err)
	}
	defer rows.Close()

	var requests []advance.Request
	for rows.Next() {
		var req advance.Request
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Amount, &req.Notes, &req.ApprovalStatus,
			&req.RequestedDate, &req.ApprovedDate, &req.DeductionMonth, &req.DeductionYear,
			&req.FirstName, &req.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance salary request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// ListByEmployee implements advance.Repository.
func (r *advanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]advance.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, notes, approval_status,
			   requested_date, approved_date, deduction_month, deduction_year
		FROM advance_salary
		WHERE employee_id = $1
		ORDER BY requested_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list advance salary requests for %s: %w", employeeID, err)
	}
	defer rows.Close()

	var requests []advance.Request
	for rows.Next() {
		var req advance.Request
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Amount, &req.Notes, &req.ApprovalStatus,
			&req.RequestedDate, &req.ApprovedDate, &req.DeductionMonth, &req.DeductionYear,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance salary request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// SetDecision implements advance.Repository. Only pending requests are
// touched; deciding a settled request reports ErrRequestNotOpen.
func (r *advanceRepository) SetDecision(ctx context.Context, id int64, decision advance.ApprovalStatus, deductionMonth, deductionYear *int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE advance_salary
		SET approval_status = $2,
			approved_date = CASE WHEN $2 = 'approved' THEN CURRENT_DATE ELSE approved_date END,
			deduction_month = $3,
			deduction_year = $4
		WHERE id = $1 AND approval_status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, decision, deductionMonth, deductionYear)
	if err != nil {
		return fmt.Errorf("failed to set decision on advance salary request %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return advance.ErrRequestNotOpen
	}

	return nil
}
