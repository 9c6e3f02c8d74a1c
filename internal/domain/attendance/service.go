package attendance

import "context"

// AttendanceService exposes classification and aggregation to the HTTP layer.
type AttendanceService interface {
	// ClassifyPunch classifies a single punch against a shift time.
	ClassifyPunch(ctx context.Context, req ClassifyPunchRequest) (ClassifyPunchResponse, error)

	// GetDailyStatus resolves one employee-day from punches, overrides and weekly off.
	GetDailyStatus(ctx context.Context, req DailyStatusRequest) (DailyStatusResponse, error)

	// GetMonthlyAttendance resolves every day of a month and tallies it.
	GetMonthlyAttendance(ctx context.Context, req MonthlyAttendanceRequest) (MonthlyAttendanceResponse, error)

	GetRules(ctx context.Context) (ThresholdRuleSet, error)

	// SaveRules validates and persists the rule set. Duplicate compounding rules are rejected here.
	SaveRules(ctx context.Context, req SaveRulesRequest) (ThresholdRuleSet, error)
}
