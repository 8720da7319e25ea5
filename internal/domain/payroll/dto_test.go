package payroll

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGenerateRequestValidate(t *testing.T) {
	valid := &GenerateRequest{Month: 3, Year: 2026}
	assert.NoError(t, valid.Validate())

	for _, req := range []*GenerateRequest{
		{Month: 0, Year: 2026},
		{Month: 13, Year: 2026},
		{Month: 3, Year: 1999},
		{Month: 3, Year: 2101},
	} {
		assert.Error(t, req.Validate(), "month %d year %d", req.Month, req.Year)
	}
}

func TestUpdateStatusRequestValidate(t *testing.T) {
	for _, status := range []string{"generated", "approved", "paid"} {
		req := &UpdateStatusRequest{Status: status}
		assert.NoError(t, req.Validate(), "status %q", status)
	}

	for _, status := range []string{"", "pending", "PAID", "cancelled"} {
		req := &UpdateStatusRequest{Status: status}
		assert.ErrorIs(t, req.Validate(), ErrInvalidStatus, "status %q", status)
	}

	date := "2026-03-31"
	withDate := &UpdateStatusRequest{Status: "paid", PaymentDate: &date}
	assert.NoError(t, withDate.Validate())

	badDate := "31/03/2026"
	withBadDate := &UpdateStatusRequest{Status: "paid", PaymentDate: &badDate}
	assert.Error(t, withBadDate.Validate())
}

func TestNewRecordResponse(t *testing.T) {
	first := "Asha"
	last := "Nair"
	paid := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	rec := &Record{
		ID:          7,
		EmployeeID:  "EMP-001",
		Month:       3,
		Year:        2026,
		NetSalary:   decimal.NewFromInt(36840),
		Status:      StatusPaid,
		PaymentDate: &paid,
		FirstName:   &first,
		LastName:    &last,
	}

	resp := NewRecordResponse(rec)
	assert.Equal(t, "Asha Nair", resp.EmployeeName)
	assert.Equal(t, "paid", resp.Status)
	assert.NotNil(t, resp.PaymentDate)
	assert.Equal(t, "2026-03-31", *resp.PaymentDate)

	bare := NewRecordResponse(&Record{EmployeeID: "EMP-002", Status: StatusGenerated})
	assert.Empty(t, bare.EmployeeName)
	assert.Nil(t, bare.PaymentDate)
}

// The period summary exposes a deductions total alongside the tax and
// statutory totals.
func TestSummaryIncludesDeductionsTotal(t *testing.T) {
	summary := Summary{
		Month:           3,
		Year:            2026,
		EmployeeCount:   2,
		TotalGross:      decimal.NewFromInt(96000),
		TotalNet:        decimal.NewFromInt(73680),
		TotalTax:        decimal.NewFromInt(14400),
		TotalDeductions: decimal.NewFromInt(1200),
		TotalPF:         decimal.NewFromInt(7200),
		TotalInsurance:  decimal.NewFromInt(720),
	}

	payload, err := json.Marshal(summary)
	assert.NoError(t, err)
	assert.Contains(t, string(payload), `"total_deductions":"1200"`)
}
