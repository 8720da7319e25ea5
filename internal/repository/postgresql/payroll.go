package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/database"
)

const payrollColumns = `p.id, p.employee_id, p.month, p.year,
	p.total_days, p.days_worked, p.paid_leave_days, p.payable_days, p.absent_days, p.extra_days,
	p.hours_worked, p.overtime_hours,
	p.basic_salary, p.hra, p.da, p.overtime_pay, p.extra_pay, p.bonuses, p.gross_salary,
	p.tax, p.provident_fund, p.insurance, p.other_deductions, p.net_salary,
	p.status, p.payment_date, p.generated_at`

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepository{db: db}
}

func scanPayrollRecord(row pgx.Row, withEmployee bool) (payroll.Record, error) {
	var rec payroll.Record
	dest := []any{
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year,
		&rec.TotalDays, &rec.DaysWorked, &rec.PaidLeaveDays, &rec.PayableDays, &rec.AbsentDays, &rec.ExtraDays,
		&rec.HoursWorked, &rec.OvertimeHours,
		&rec.BasicSalary, &rec.HRA, &rec.DA, &rec.OvertimePay, &rec.ExtraPay, &rec.Bonuses, &rec.GrossSalary,
		&rec.Tax, &rec.ProvidentFund, &rec.Insurance, &rec.OtherDeductions, &rec.NetSalary,
		&rec.Status, &rec.PaymentDate, &rec.GeneratedAt,
	}
	if withEmployee {
		dest = append(dest, &rec.FirstName, &rec.LastName, &rec.Designation, &rec.Department,
			&rec.BankName, &rec.AccountNumber)
	}
	err := row.Scan(dest...)
	return rec, err
}

// Upsert implements payroll.Repository. Regeneration replaces the row for
// the employee and period and resets the status to generated.
func (r *payrollRepository) Upsert(ctx context.Context, record *payroll.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll (
			employee_id, month, year,
			total_days, days_worked, paid_leave_days, payable_days, absent_days, extra_days,
			hours_worked, overtime_hours,
			basic_salary, hra, da, overtime_pay, extra_pay, bonuses, gross_salary,
			tax, provident_fund, insurance, other_deductions, net_salary,
			status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, 'generated'
		)
		ON CONFLICT (employee_id, month, year)
		DO UPDATE SET
			total_days = EXCLUDED.total_days,
			days_worked = EXCLUDED.days_worked,
			paid_leave_days = EXCLUDED.paid_leave_days,
			payable_days = EXCLUDED.payable_days,
			absent_days = EXCLUDED.absent_days,
			extra_days = EXCLUDED.extra_days,
			hours_worked = EXCLUDED.hours_worked,
			overtime_hours = EXCLUDED.overtime_hours,
			basic_salary = EXCLUDED.basic_salary,
			hra = EXCLUDED.hra,
			da = EXCLUDED.da,
			overtime_pay = EXCLUDED.overtime_pay,
			extra_pay = EXCLUDED.extra_pay,
			bonuses = EXCLUDED.bonuses,
			gross_salary = EXCLUDED.gross_salary,
			tax = EXCLUDED.tax,
			provident_fund = EXCLUDED.provident_fund,
			insurance = EXCLUDED.insurance,
			other_deductions = EXCLUDED.other_deductions,
			net_salary = EXCLUDED.net_salary,
			status = 'generated',
			payment_date = NULL,
			generated_at = NOW()
		RETURNING id, status, generated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Month, record.Year,
		record.TotalDays, record.DaysWorked, record.PaidLeaveDays, record.PayableDays, record.AbsentDays, record.ExtraDays,
		record.HoursWorked, record.OvertimeHours,
		record.BasicSalary, record.HRA, record.DA, record.OvertimePay, record.ExtraPay, record.Bonuses, record.GrossSalary,
		record.Tax, record.ProvidentFund, record.Insurance, record.OtherDeductions, record.NetSalary,
	).Scan(&record.ID, &record.Status, &record.GeneratedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert payroll record: %w", err)
	}

	return nil
}

// GetByEmployeePeriod implements payroll.Repository.
func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (*payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `,
			   e.first_name, e.last_name, e.designation, e.department,
			   e.bank_name, e.account_number
		FROM payroll p
		JOIN employees e ON e.employee_id = p.employee_id
		WHERE p.employee_id = $1 AND p.month = $2 AND p.year = $3
	`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, month, year), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, payroll.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get payroll record for %s %d/%d: %w", employeeID, month, year, err)
	}

	return &rec, nil
}

// List implements payroll.Repository.
func (r *payrollRepository) List(ctx context.Context, filter payroll.Filter) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `,
			   e.first_name, e.last_name, e.designation, e.department,
			   e.bank_name, e.account_number
		FROM payroll p
		JOIN employees e ON e.employee_id = p.employee_id
	`

	var conditions []string
	var args []any

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", len(args)))
	}
	if filter.Month != 0 {
		args = append(args, filter.Month)
		conditions = append(conditions, fmt.Sprintf("p.month = $%d", len(args)))
	}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		conditions = append(conditions, fmt.Sprintf("p.year = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.year DESC, p.month DESC, p.employee_id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanPayrollRecord(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListByEmployee implements payroll.Repository.
func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Record, error) {
	return r.List(ctx, payroll.Filter{EmployeeID: employeeID})
}

// UpdateStatus implements payroll.Repository. A nil payment date leaves a
// paid record stamped with the current date.
func (r *payrollRepository) UpdateStatus(ctx context.Context, id int64, status payroll.Status, paymentDate *time.Time) (*payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll p
		SET status = $2,
			payment_date = CASE
				WHEN $3::date IS NOT NULL THEN $3::date
				WHEN $2 = 'paid' THEN CURRENT_DATE
				ELSE payment_date
			END
		WHERE p.id = $1
		RETURNING ` + payrollColumns

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id, status, paymentDate), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, payroll.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to update payroll status for %d: %w", id, err)
	}

	return &rec, nil
}

// Summary implements payroll.Repository.
func (r *payrollRepository) Summary(ctx context.Context, month, year int) (*payroll.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COALESCE(SUM(gross_salary), 0),
			   COALESCE(SUM(net_salary), 0),
			   COALESCE(SUM(tax), 0),
			   COALESCE(SUM(other_deductions), 0),
			   COALESCE(SUM(provident_fund), 0),
			   COALESCE(SUM(insurance), 0)
		FROM payroll
		WHERE month = $1 AND year = $2
	`

	summary := payroll.Summary{Month: month, Year: year}
	err := q.QueryRow(ctx, query, month, year).Scan(
		&summary.EmployeeCount,
		&summary.TotalGross,
		&summary.TotalNet,
		&summary.TotalTax,
		&summary.TotalDeductions,
		&summary.TotalPF,
		&summary.TotalInsurance,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarise payroll for %d/%d: %w", month, year, err)
	}

	return &summary, nil
}

// AttendanceTotals implements payroll.Repository. Weekend days count both
// in the present totals and again as automatic extra days.
func (r *payrollRepository) AttendanceTotals(ctx context.Context, employeeID string, month, year int) (*payroll.AttendanceTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FILTER (WHERE status = 'present'),
			   COUNT(*) FILTER (WHERE status = 'half-day'),
			   COUNT(*) FILTER (WHERE status = 'leave'),
			   COALESCE(SUM(hours_worked), 0),
			   COALESCE(SUM(overtime_hours), 0),
			   COUNT(*) FILTER (WHERE status IN ('present', 'half-day') AND EXTRACT(DOW FROM date) IN (0, 6))
		FROM attendance
		WHERE employee_id = $1
		  AND EXTRACT(MONTH FROM date) = $2
		  AND EXTRACT(YEAR FROM date) = $3
	`

	var totals payroll.AttendanceTotals
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&totals.PresentDays,
		&totals.HalfDays,
		&totals.LeaveDays,
		&totals.TotalHours,
		&totals.TotalOvertime,
		&totals.WeekendWorkDays,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate attendance for %s %d/%d: %w", employeeID, month, year, err)
	}

	return &totals, nil
}

// PeriodAdjustments implements payroll.Repository. Bonuses are summed
// whether or not they carry the approval flag.
func (r *payrollRepository) PeriodAdjustments(ctx context.Context, employeeID string, month, year int) (*payroll.PeriodAdjustments, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE((SELECT SUM(days_count) FROM extra_days
						 WHERE employee_id = $1
						   AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(YEAR FROM date) = $3), 0),
			   COALESCE((SELECT SUM(amount) FROM bonuses
						 WHERE employee_id = $1
						   AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(YEAR FROM date) = $3), 0),
			   COALESCE((SELECT SUM(amount) FROM deductions
						 WHERE employee_id = $1
						   AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(YEAR FROM date) = $3), 0)
	`

	var adj payroll.PeriodAdjustments
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&adj.ManualExtraDays,
		&adj.TotalBonuses,
		&adj.TotalDeductions,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate adjustments for %s %d/%d: %w", employeeID, month, year, err)
	}

	return &adj, nil
}
