package payroll

import "errors"

var (
	ErrSalaryStructureNotConfigured = errors.New("salary structure not configured")
	ErrRecordNotFound               = errors.New("salary record not found")
	ErrRecordLocked                 = errors.New("salary record is locked, unlock it before editing")
	ErrUnlockConfirmationRequired   = errors.New("unlock requires explicit confirmation")
	ErrAdjustmentNotFound           = errors.New("payroll adjustment not found")
	ErrInvalidPeriod                = errors.New("invalid payroll period")
	ErrEmployeeCodesRequired        = errors.New("at least one employee code is required")
)
