package attendance

import "errors"

// Attendance domain errors
var (
	ErrRuleSetNotFound          = errors.New("attendance threshold rules not configured")
	ErrDuplicateCompoundingRule = errors.New("duplicate compounding rule for the same in/out status pair")
	ErrNegativeThreshold        = errors.New("threshold minutes must not be negative")
	ErrShiftNotFound            = errors.New("shift schedule not found")
	ErrSummaryNotFound          = errors.New("monthly attendance summary not prepared")
	ErrWeeklyOffNotFound        = errors.New("weekly off setting not found")
	ErrInvalidDirection         = errors.New("punch type must be IN or OUT")
)
