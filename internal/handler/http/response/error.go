package response

import (
	"errors"
	"net/http"

	"github.com/nimbus-hr/payroll-backend-go/internal/domain/adjustment"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/advance"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/auth"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRequestNotFound):
		NotFound(w, "Attendance request not found")
	case errors.Is(err, attendance.ErrEntryNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrRollupNotFound):
		NotFound(w, "Monthly attendance record not found")
	case errors.Is(err, attendance.ErrInvalidApprovalDecision):
		BadRequest(w, "Invalid approval status", nil)

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrBonusNotFound):
		NotFound(w, "Bonus not found")
	case errors.Is(err, adjustment.ErrDeductionNotFound):
		NotFound(w, "Deduction not found")
	case errors.Is(err, adjustment.ErrExtraDayNotFound):
		NotFound(w, "Extra day record not found")

	// Advance salary domain errors
	case errors.Is(err, advance.ErrRequestNotFound):
		NotFound(w, "Advance salary request not found")
	case errors.Is(err, advance.ErrRequestNotOpen):
		Conflict(w, "Advance salary request already decided")
	case errors.Is(err, advance.ErrInvalidDecision):
		BadRequest(w, "Invalid approval status", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrInvalidStatus):
		BadRequest(w, "Invalid payroll status", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
