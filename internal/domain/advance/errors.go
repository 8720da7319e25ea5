package advance

import "errors"

var (
	ErrRequestNotFound = errors.New("advance salary request not found")
	ErrRequestNotOpen  = errors.New("advance salary request already decided")
	ErrInvalidDecision = errors.New("invalid approval status")
)
