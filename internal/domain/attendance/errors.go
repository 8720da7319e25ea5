package attendance

import "errors"

var (
	ErrRequestNotFound         = errors.New("attendance request not found")
	ErrEntryNotFound           = errors.New("attendance record not found")
	ErrRollupNotFound          = errors.New("monthly attendance record not found")
	ErrInvalidApprovalDecision = errors.New("invalid approval status")
)
