package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            int64
	EmployeeID    string
	FirstName     string
	LastName      string
	Email         string
	Phone         *string
	Gender        *string
	Designation   string
	Department    *string
	HireDate      time.Time
	BasicSalary   decimal.Decimal
	Status        Status
	PasswordHash  *string
	BankName      *string
	AccountNumber *string
	IFSCCode      *string
	PANNumber     *string
	Address       *string
	CreatedAt     time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
