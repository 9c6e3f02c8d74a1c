package attendance

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

// AttendanceRepository reads the collaborator-owned attendance data.
// All methods include companyID parameter to prevent cross-company data access attacks.
type AttendanceRepository interface {
	// ListPunches returns punches in [from, to) ordered by punch_time.
	ListPunches(ctx context.Context, companyID string, employeeCode string, from, to time.Time) ([]RawPunch, error)

	// ListOverrides returns applied leaves and regularizations in [from, to).
	ListOverrides(ctx context.Context, companyID string, employeeCode string, from, to time.Time) ([]ManualOverride, error)

	// GetWeeklyOff returns the setting effective for the employee, or ErrWeeklyOffNotFound.
	GetWeeklyOff(ctx context.Context, companyID string, employeeCode string) (WeeklyOffSetting, error)

	GetShiftByID(ctx context.Context, id string, companyID string) (ShiftSchedule, error)

	// GetMonthlySummary returns the prepared summary, or ErrSummaryNotFound.
	GetMonthlySummary(ctx context.Context, companyID string, employeeCode string, month string, year int) (MonthlyAttendanceSummary, error)
}

// RuleRepository persists the threshold rule set.
type RuleRepository interface {
	GetRules(ctx context.Context, companyID string) (ThresholdRuleSet, error)
	SaveRules(ctx context.Context, rules ThresholdRuleSet) (ThresholdRuleSet, error)
}
