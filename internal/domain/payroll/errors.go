package payroll

import "errors"

var (
	ErrRecordNotFound = errors.New("payroll record not found")
	ErrInvalidPeriod  = errors.New("invalid payroll period")
	ErrInvalidStatus  = errors.New("invalid payroll status")
)
