package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/adjustment"
	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/database"
)

// periodConditions builds WHERE clauses for adjustment listings. The month
// and year filters match on the effective date column.
func periodConditions(filter adjustment.PeriodFilter) (string, []any) {
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

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

type bonusRepository struct {
	db *database.DB
}

func NewBonusRepository(db *database.DB) adjustment.BonusRepository {
	return &bonusRepository{db: db}
}

// Create implements adjustment.BonusRepository.
func (r *bonusRepository) Create(ctx context.Context, bonus *adjustment.Bonus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bonuses (
			employee_id, bonus_type, amount, description, date, bonus_approved
		) VALUES (
			$1, $2, $3, $4, $5, false
		) RETURNING id, bonus_approved, created_at
	`

	err := q.QueryRow(ctx, query,
		bonus.EmployeeID,
		bonus.BonusType,
		bonus.Amount,
		bonus.Description,
		bonus.Date,
	).Scan(&bonus.ID, &bonus.BonusApproved, &bonus.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create bonus: %w", err)
	}

	return nil
}

// List implements adjustment.BonusRepository.
func (r *bonusRepository) List(ctx context.Context, filter adjustment.PeriodFilter) ([]adjustment.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, bonus_type, amount, description, date,
			   bonus_approved, approval_date, created_at
		FROM bonuses
	`
	where, args := periodConditions(filter)
	query += where + " ORDER BY date DESC, id DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonuses: %w", err)
	}
	defer rows.Close()

	var bonuses []adjustment.Bonus
	for rows.Next() {
		var b adjustment.Bonus
		err := rows.Scan(
			&b.ID, &b.EmployeeID, &b.BonusType, &b.Amount, &b.Description, &b.Date,
			&b.BonusApproved, &b.ApprovalDate, &b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bonus: %w", err)
		}
		bonuses = append(bonuses, b)
	}

	return bonuses, rows.Err()
}

// SetApproval implements adjustment.BonusRepository.
func (r *bonusRepository) SetApproval(ctx context.Context, id int64, approved bool) (*adjustment.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bonuses
		SET bonus_approved = $2,
			approval_date = CASE WHEN $2 THEN NOW() ELSE NULL END
		WHERE id = $1
		RETURNING id, employee_id, bonus_type, amount, description, date,
				  bonus_approved, approval_date, created_at
	`

	var b adjustment.Bonus
	err := q.QueryRow(ctx, query, id, approved).Scan(
		&b.ID, &b.EmployeeID, &b.BonusType, &b.Amount, &b.Description, &b.Date,
		&b.BonusApproved, &b.ApprovalDate, &b.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, adjustment.ErrBonusNotFound
		}
		return nil, fmt.Errorf("failed to set approval on bonus %d: %w", id, err)
	}

	return &b, nil
}

// Delete implements adjustment.BonusRepository.
func (r *bonusRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM bonuses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bonus %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return adjustment.ErrBonusNotFound
	}

	return nil
}

type deductionRepository struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) adjustment.DeductionRepository {
	return &deductionRepository{db: db}
}

// Create implements adjustment.DeductionRepository.
func (r *deductionRepository) Create(ctx context.Context, deduction *adjustment.Deduction) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deductions (
			employee_id, deduction_type, amount, description, date
		) VALUES (
			$1, $2, $3, $4, $5
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		deduction.EmployeeID,
		deduction.DeductionType,
		deduction.Amount,
		deduction.Description,
		deduction.Date,
	).Scan(&deduction.ID, &deduction.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create deduction: %w", err)
	}

	return nil
}

// List implements adjustment.DeductionRepository.
func (r *deductionRepository) List(ctx context.Context, filter adjustment.PeriodFilter) ([]adjustment.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, deduction_type, amount, description, date, created_at
		FROM deductions
	`
	where, args := periodConditions(filter)
	query += where + " ORDER BY date DESC, id DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	defer rows.Close()

	var deductions []adjustment.Deduction
	for rows.Next() {
		var d adjustment.Deduction
		err := rows.Scan(
			&d.ID, &d.EmployeeID, &d.DeductionType, &d.Amount, &d.Description, &d.Date, &d.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deduction: %w", err)
		}
		deductions = append(deductions, d)
	}

	return deductions, rows.Err()
}

// Delete implements adjustment.DeductionRepository.
func (r *deductionRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM deductions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deduction %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return adjustment.ErrDeductionNotFound
	}

	return nil
}

type extraDayRepository struct {
	db *database.DB
}

func NewExtraDayRepository(db *database.DB) adjustment.ExtraDayRepository {
	return &extraDayRepository{db: db}
}

// Create implements adjustment.ExtraDayRepository.
func (r *extraDayRepository) Create(ctx context.Context, extraDay *adjustment.ExtraDay) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO extra_days (
			employee_id, days_count, reason, date
		) VALUES (
			$1, $2, $3, $4
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		extraDay.EmployeeID,
		extraDay.DaysCount,
		extraDay.Reason,
		extraDay.Date,
	).Scan(&extraDay.ID, &extraDay.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create extra day record: %w", err)
	}

	return nil
}

// List implements adjustment.ExtraDayRepository.
func (r *extraDayRepository) List(ctx context.Context, filter adjustment.PeriodFilter) ([]adjustment.ExtraDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, days_count, reason, date, created_at
		FROM extra_days
	`
	where, args := periodConditions(filter)
	query += where + " ORDER BY date DESC, id DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list extra day records: %w", err)
	}
	defer rows.Close()

	var extraDays []adjustment.ExtraDay
	for rows.Next() {
		var ed adjustment.ExtraDay
		err := rows.Scan(
			&ed.ID, &ed.EmployeeID, &ed.DaysCount, &ed.Reason, &ed.Date, &ed.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan extra day record: %w", err)
		}
		extraDays = append(extraDays, ed)
	}

	return extraDays, rows.Err()
}

// Delete implements adjustment.ExtraDayRepository.
func (r *extraDayRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM extra_days WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete extra day record %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return adjustment.ErrExtraDayNotFound
	}

	return nil
}
