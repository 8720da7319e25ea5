package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/database"
)

const employeeColumns = `id, employee_id, first_name, last_name, email, phone, gender,
	designation, department, hire_date, basic_salary, status, password_hash,
	bank_name, account_number, ifsc_code, pan_number, address, created_at`

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone, &emp.Gender,
		&emp.Designation, &emp.Department, &emp.HireDate, &emp.BasicSalary, &emp.Status, &emp.PasswordHash,
		&emp.BankName, &emp.AccountNumber, &emp.IFSCCode, &emp.PANNumber, &emp.Address, &emp.CreatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			employee_id, first_name, last_name, email, phone, gender,
			designation, department, hire_date, basic_salary, status, password_hash
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		emp.EmployeeID,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.Phone,
		emp.Gender,
		emp.Designation,
		emp.Department,
		emp.HireDate,
		emp.BasicSalary,
		emp.Status,
		emp.PasswordHash,
	).Scan(&emp.ID, &emp.CreatedAt)

	if err != nil {
		// Unique constraint violation on employee_id or email
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return employee.Employee{}, employee.ErrEmailExists
			}
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY employee_id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// GetActive implements employee.EmployeeRepository.
func (r *employeeRepository) GetActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE status = 'active' ORDER BY employee_id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, email = $4, phone = $5, gender = $6,
			designation = $7, department = $8, hire_date = $9, basic_salary = $10, status = $11
		WHERE employee_id = $1
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		emp.EmployeeID,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.Phone,
		emp.Gender,
		emp.Designation,
		emp.Department,
		emp.HireDate,
		emp.BasicSalary,
		emp.Status,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee %s: %w", emp.EmployeeID, err)
	}

	return updated, nil
}

// UpdateProfile implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateProfile(ctx context.Context, employeeID string, req employee.UpdateProfileRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET phone = COALESCE($2, phone),
			address = COALESCE($3, address),
			bank_name = COALESCE($4, bank_name),
			account_number = COALESCE($5, account_number),
			ifsc_code = COALESCE($6, ifsc_code),
			pan_number = COALESCE($7, pan_number),
			gender = COALESCE($8, gender)
		WHERE employee_id = $1
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		employeeID,
		req.Phone,
		req.Address,
		req.BankName,
		req.AccountNumber,
		req.IFSCCode,
		req.PANNumber,
		req.Gender,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee profile %s: %w", employeeID, err)
	}

	return updated, nil
}

// Delete implements employee.EmployeeRepository. Dependent attendance,
// adjustment and payroll rows are removed by ON DELETE CASCADE.
func (r *employeeRepository) Delete(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
