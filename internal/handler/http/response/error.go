package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
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
	// Token errors
	case errors.Is(err, jwt.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, jwt.ErrCompanyIDRequired),
		errors.Is(err, jwt.ErrAdminPrivilegeRequired):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeEmpty):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrShiftNotAssigned):
		UnprocessableEntity(w, "Employee has no shift assigned")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrShiftNotFound):
		NotFound(w, "Shift schedule not found")
	case errors.Is(err, attendance.ErrRuleSetNotFound):
		NotFound(w, "Attendance rules not configured")
	case errors.Is(err, attendance.ErrDuplicateCompoundingRule),
		errors.Is(err, attendance.ErrNegativeThreshold),
		errors.Is(err, attendance.ErrInvalidDirection):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrSummaryNotFound):
		UnprocessableEntity(w, "Monthly attendance summary not prepared")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, payroll.ErrAdjustmentNotFound):
		NotFound(w, "Payroll adjustment not found")
	case errors.Is(err, payroll.ErrRecordLocked):
		Conflict(w, "Salary record is locked, unlock it before editing")
	case errors.Is(err, payroll.ErrUnlockConfirmationRequired):
		BadRequest(w, "Unlock requires explicit confirmation", map[string]string{"confirm": "must be true"})
	case errors.Is(err, payroll.ErrInvalidPeriod),
		errors.Is(err, payroll.ErrEmployeeCodesRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrSalaryStructureNotConfigured):
		UnprocessableEntity(w, "Salary structure not configured")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
