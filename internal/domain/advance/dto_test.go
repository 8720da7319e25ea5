package advance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateRequestValidate(t *testing.T) {
	valid := &CreateRequest{Amount: decimal.NewFromInt(5000)}
	assert.NoError(t, valid.Validate())

	zero := &CreateRequest{Amount: decimal.Zero}
	assert.Error(t, zero.Validate())

	negative := &CreateRequest{Amount: decimal.NewFromInt(-100)}
	assert.Error(t, negative.Validate())
}

func TestDecideRequestValidate(t *testing.T) {
	approve := &DecideRequest{ApprovalStatus: "approved", DeductionMonth: 4, DeductionYear: 2026}
	assert.NoError(t, approve.Validate())

	// Rejections need no deduction period.
	reject := &DecideRequest{ApprovalStatus: "rejected"}
	assert.NoError(t, reject.Validate())

	missingPeriod := &DecideRequest{ApprovalStatus: "approved"}
	assert.Error(t, missingPeriod.Validate())

	badPeriod := &DecideRequest{ApprovalStatus: "approved", DeductionMonth: 13, DeductionYear: 1990}
	assert.Error(t, badPeriod.Validate())

	for _, status := range []string{"", "pending", "maybe"} {
		req := &DecideRequest{ApprovalStatus: status}
		assert.ErrorIs(t, req.Validate(), ErrInvalidDecision, "status %q", status)
	}
}
