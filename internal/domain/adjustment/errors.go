package adjustment

import "errors"

var (
	ErrBonusNotFound     = errors.New("bonus not found")
	ErrDeductionNotFound = errors.New("deduction not found")
	ErrExtraDayNotFound  = errors.New("extra day record not found")
)
