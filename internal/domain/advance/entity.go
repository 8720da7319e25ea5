package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// Request is an advance salary request. The deduction period is chosen
// by the approver, not the requester.
type Request struct {
	ID             int64
	EmployeeID     string
	Amount         decimal.Decimal
	Notes          *string
	ApprovalStatus ApprovalStatus
	RequestedDate  time.Time
	ApprovedDate   *time.Time
	DeductionMonth *int
	DeductionYear  *int

	// Joined from employees for listing views.
	FirstName *string
	LastName  *string
}
