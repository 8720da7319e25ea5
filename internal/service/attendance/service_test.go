package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedDecision struct {
	id         int64
	decision   attendance.ApprovalStatus
	approvedBy string
}

type stubRequestRepo struct {
	request         *attendance.RequestWithSalary
	decisions       []recordedDecision
	approvedUpserts []attendance.Request
}

func (r *stubRequestRepo) Upsert(ctx context.Context, req *attendance.Request) error {
	return nil
}

func (r *stubRequestRepo) UpsertApproved(ctx context.Context, req *attendance.Request) error {
	r.approvedUpserts = append(r.approvedUpserts, *req)
	return nil
}

func (r *stubRequestRepo) GetByIDWithSalary(ctx context.Context, id int64) (*attendance.RequestWithSalary, error) {
	if r.request == nil || r.request.ID != id {
		return nil, attendance.ErrRequestNotFound
	}
	rws := *r.request
	return &rws, nil
}

func (r *stubRequestRepo) ListPending(ctx context.Context) ([]attendance.Request, error) {
	return nil, nil
}

func (r *stubRequestRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Request, error) {
	return nil, nil
}

func (r *stubRequestRepo) SetDecision(ctx context.Context, id int64, decision attendance.ApprovalStatus, notes *string, approvedBy string) error {
	r.decisions = append(r.decisions, recordedDecision{id: id, decision: decision, approvedBy: approvedBy})
	return nil
}

type stubLedgerRepo struct {
	upserts []attendance.LedgerEntry

	// returned by UpdateByID into the entry, mirroring the row lookup.
	updateEmployeeID string
	updateDate       time.Time
	updates          []attendance.LedgerEntry
}

func (r *stubLedgerRepo) Upsert(ctx context.Context, entry *attendance.LedgerEntry) error {
	r.upserts = append(r.upserts, *entry)
	return nil
}

func (r *stubLedgerRepo) List(ctx context.Context, filter attendance.EntryFilter) ([]attendance.LedgerEntry, error) {
	return nil, nil
}

func (r *stubLedgerRepo) UpdateByID(ctx context.Context, id int64, entry *attendance.LedgerEntry) error {
	if r.updateEmployeeID == "" {
		return attendance.ErrEntryNotFound
	}
	entry.ID = id
	entry.EmployeeID = r.updateEmployeeID
	entry.Date = r.updateDate
	r.updates = append(r.updates, *entry)
	return nil
}

func (r *stubLedgerRepo) DeleteByID(ctx context.Context, id int64) error {
	return nil
}

type stubRollupRepo struct {
	existing *attendance.MonthlyRollup
	inserted []attendance.MonthlyRollup
	updated  []attendance.MonthlyRollup
}

func (r *stubRollupRepo) Get(ctx context.Context, employeeID string, month, year int) (*attendance.MonthlyRollup, error) {
	if r.existing == nil {
		return nil, attendance.ErrRollupNotFound
	}
	rollup := *r.existing
	return &rollup, nil
}

func (r *stubRollupRepo) Insert(ctx context.Context, rollup *attendance.MonthlyRollup) error {
	r.inserted = append(r.inserted, *rollup)
	return nil
}

func (r *stubRollupRepo) Update(ctx context.Context, rollup *attendance.MonthlyRollup) error {
	r.updated = append(r.updated, *rollup)
	return nil
}

type stubEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *stubEmployeeRepo) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	emp, ok := r.employees[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *stubEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (r *stubEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (r *stubEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *stubEmployeeRepo) UpdateProfile(ctx context.Context, employeeID string, req employee.UpdateProfileRequest) (employee.Employee, error) {
	return employee.Employee{}, nil
}

func (r *stubEmployeeRepo) Delete(ctx context.Context, employeeID string) error {
	return nil
}

func newStubService(requests *stubRequestRepo, ledger *stubLedgerRepo, rollups *stubRollupRepo) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		runInTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return fn(nil)
		},
		RequestRepository:  requests,
		LedgerRepository:   ledger,
		RollupRepository:   rollups,
		EmployeeRepository: &stubEmployeeRepo{},
	}
}

func pendingRequest(id int64, status attendance.DayStatus) *attendance.RequestWithSalary {
	return &attendance.RequestWithSalary{
		Request: attendance.Request{
			ID:             id,
			EmployeeID:     "EMP001",
			Date:           time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			Status:         status,
			HoursWorked:    decimal.NewFromInt(8),
			OvertimeHours:  decimal.NewFromInt(2),
			ApprovalStatus: attendance.ApprovalStatusPending,
		},
		BasicSalary: decimal.NewFromInt(30000),
	}
}

func TestApprove_RejectionLeavesLedgerAndRollupUntouched(t *testing.T) {
	ctx := context.Background()
	requests := &stubRequestRepo{request: pendingRequest(7, attendance.DayStatusPresent)}
	ledger := &stubLedgerRepo{}
	rollups := &stubRollupRepo{existing: &attendance.MonthlyRollup{EmployeeID: "EMP001", Month: 3, Year: 2026, DaysWorked: 5}}
	svc := newStubService(requests, ledger, rollups)

	result, err := svc.Approve(ctx, 7, "Manager", &attendance.ApproveRequest{ApprovalStatus: "rejected"})
	require.NoError(t, err)

	assert.Empty(t, ledger.upserts)
	assert.Empty(t, rollups.inserted)
	assert.Empty(t, rollups.updated)
	require.Len(t, requests.decisions, 1)
	assert.Equal(t, attendance.ApprovalStatusRejected, requests.decisions[0].decision)
	assert.Equal(t, "Manager", requests.decisions[0].approvedBy)
	assert.Equal(t, attendance.ApprovalStatusRejected, result.ApprovalStatus)
	require.NotNil(t, result.ApprovedBy)
	assert.Equal(t, "Manager", *result.ApprovedBy)
}

func TestApprove_WritesOneLedgerRowWithRequestFields(t *testing.T) {
	ctx := context.Background()
	req := pendingRequest(3, attendance.DayStatusPresent)
	requests := &stubRequestRepo{request: req}
	ledger := &stubLedgerRepo{}
	rollups := &stubRollupRepo{}
	svc := newStubService(requests, ledger, rollups)

	_, err := svc.Approve(ctx, 3, "Manager", &attendance.ApproveRequest{ApprovalStatus: "approved"})
	require.NoError(t, err)

	require.Len(t, ledger.upserts, 1)
	entry := ledger.upserts[0]
	assert.Equal(t, "EMP001", entry.EmployeeID)
	assert.Equal(t, req.Date, entry.Date)
	assert.Equal(t, attendance.DayStatusPresent, entry.Status)
	assert.True(t, entry.HoursWorked.Equal(req.HoursWorked))
	assert.True(t, entry.OvertimeHours.Equal(req.OvertimeHours))
}

func TestApprove_FirstApprovalCreatesRollupWithCreditedDays(t *testing.T) {
	ctx := context.Background()
	requests := &stubRequestRepo{request: pendingRequest(4, attendance.DayStatusHalfDay)}
	rollups := &stubRollupRepo{}
	svc := newStubService(requests, &stubLedgerRepo{}, rollups)

	_, err := svc.Approve(ctx, 4, "Manager", &attendance.ApproveRequest{ApprovalStatus: "approved"})
	require.NoError(t, err)

	require.Len(t, rollups.inserted, 1)
	rollup := rollups.inserted[0]
	assert.Equal(t, "EMP001", rollup.EmployeeID)
	assert.Equal(t, 3, rollup.Month)
	assert.Equal(t, 2026, rollup.Year)
	assert.Equal(t, 0.5, rollup.DaysWorked)
	assert.Equal(t, "approved", rollup.Status)
}

func TestApprove_DaysWorkedAccumulatesAcrossApprovals(t *testing.T) {
	ctx := context.Background()
	requests := &stubRequestRepo{request: pendingRequest(5, attendance.DayStatusPresent)}
	rollups := &stubRollupRepo{existing: &attendance.MonthlyRollup{
		EmployeeID: "EMP001", Month: 3, Year: 2026,
		DaysWorked: 10.5, ExtraDays: 2, ExtraDaysAmount: decimal.NewFromInt(2000),
	}}
	svc := newStubService(requests, &stubLedgerRepo{}, rollups)

	_, err := svc.Approve(ctx, 5, "Manager", &attendance.ApproveRequest{ApprovalStatus: "approved"})
	require.NoError(t, err)

	require.Len(t, rollups.updated, 1)
	rollup := rollups.updated[0]
	assert.Equal(t, 11.5, rollup.DaysWorked)
	assert.Equal(t, 0, rollup.ExtraDays)
	assert.True(t, rollup.ExtraDaysAmount.IsZero())
	assert.Equal(t, "approved", rollup.Status)
}

func TestApprove_UnknownRequest(t *testing.T) {
	ctx := context.Background()
	svc := newStubService(&stubRequestRepo{}, &stubLedgerRepo{}, &stubRollupRepo{})

	_, err := svc.Approve(ctx, 99, "Manager", &attendance.ApproveRequest{ApprovalStatus: "approved"})
	assert.ErrorIs(t, err, attendance.ErrRequestNotFound)
}

func TestUpdateEntry_SyncsApprovedRequest(t *testing.T) {
	ctx := context.Background()
	requests := &stubRequestRepo{}
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	ledger := &stubLedgerRepo{updateEmployeeID: "EMP002", updateDate: date}
	svc := newStubService(requests, ledger, &stubRollupRepo{})

	entry, err := svc.UpdateEntry(ctx, 11, &attendance.UpdateEntryRequest{
		Status:      "half-day",
		HoursWorked: decimal.NewFromInt(4),
	})
	require.NoError(t, err)

	require.Len(t, requests.approvedUpserts, 1)
	mirrored := requests.approvedUpserts[0]
	assert.Equal(t, "EMP002", mirrored.EmployeeID)
	assert.Equal(t, date, mirrored.Date)
	assert.Equal(t, attendance.DayStatusHalfDay, mirrored.Status)
	assert.True(t, mirrored.HoursWorked.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, "EMP002", entry.EmployeeID)
}

func TestUpdateEntry_MissingRowSkipsRequestSync(t *testing.T) {
	ctx := context.Background()
	requests := &stubRequestRepo{}
	svc := newStubService(requests, &stubLedgerRepo{}, &stubRollupRepo{})

	_, err := svc.UpdateEntry(ctx, 44, &attendance.UpdateEntryRequest{Status: "present"})
	assert.ErrorIs(t, err, attendance.ErrEntryNotFound)
	assert.Empty(t, requests.approvedUpserts)
}
