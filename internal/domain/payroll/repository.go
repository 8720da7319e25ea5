package payroll

import (
	"context"
	"time"
)

type Repository interface {
	// Upsert replaces any existing record for the employee and period
	// and resets the status to generated.
	Upsert(ctx context.Context, record *Record) error

	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (*Record, error)
	List(ctx context.Context, filter Filter) ([]Record, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
	UpdateStatus(ctx context.Context, id int64, status Status, paymentDate *time.Time) (*Record, error)
	Summary(ctx context.Context, month, year int) (*Summary, error)

	// Period aggregates feeding the generator.
	AttendanceTotals(ctx context.Context, employeeID string, month, year int) (*AttendanceTotals, error)
	PeriodAdjustments(ctx context.Context, employeeID string, month, year int) (*PeriodAdjustments, error)
}
