package attendance

import (
	"errors"
	"testing"

	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApproveRequestValidate(t *testing.T) {
	approve := &ApproveRequest{ApprovalStatus: "approved"}
	assert.NoError(t, approve.Validate())

	reject := &ApproveRequest{ApprovalStatus: "rejected"}
	assert.NoError(t, reject.Validate())

	for _, status := range []string{"", "pending", "maybe", "APPROVED"} {
		req := &ApproveRequest{ApprovalStatus: status}
		assert.ErrorIs(t, req.Validate(), ErrInvalidApprovalDecision, "status %q", status)
	}
}

func TestSubmitRequestValidate(t *testing.T) {
	valid := &SubmitRequest{Date: "2026-03-02", Status: "present", HoursWorked: decimal.NewFromInt(8)}
	assert.NoError(t, valid.Validate())

	bad := &SubmitRequest{Date: "03/02/2026", Status: "working", HoursWorked: decimal.NewFromInt(-1)}
	err := bad.Validate()
	assert.Error(t, err)

	var errs validator.ValidationErrors
	assert.True(t, errors.As(err, &errs))
	assert.Len(t, errs, 3)
}

func TestDirectEntryRequestValidate(t *testing.T) {
	valid := &DirectEntryRequest{
		EmployeeID:  "EMP-001",
		Date:        "2026-03-02",
		Status:      "half-day",
		HoursWorked: decimal.NewFromInt(4),
	}
	assert.NoError(t, valid.Validate())

	missing := &DirectEntryRequest{Date: "2026-03-02", Status: "present"}
	assert.Error(t, missing.Validate())
}

func TestMarkExtraDayRequestValidate(t *testing.T) {
	valid := &MarkExtraDayRequest{EmployeeID: "EMP-001", Date: "2026-03-07", Month: 3, Year: 2026}
	assert.NoError(t, valid.Validate())

	bad := &MarkExtraDayRequest{Month: 13, Year: 1990}
	err := bad.Validate()
	assert.Error(t, err)

	var errs validator.ValidationErrors
	assert.True(t, errors.As(err, &errs))
	assert.Len(t, errs, 3)
}
