package attendance

import (
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// CLASSIFICATION DTOs
// ========================================

type ClassifyPunchRequest struct {
	PunchTime string `json:"punch_time"` // "HH:MM", empty or "absent" for no punch
	ShiftTime string `json:"shift_time"`
	Direction string `json:"direction"`
}

func (r *ClassifyPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if !Direction(r.Direction).Valid() {
		errs = append(errs, validator.ValidationError{Field: "direction", Message: "must be IN or OUT"})
	}
	if !validator.IsValidClock(r.ShiftTime) {
		errs = append(errs, validator.ValidationError{Field: "shift_time", Message: "must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClassifyPunchResponse struct {
	PunchTime string     `json:"punch_time"`
	ShiftTime string     `json:"shift_time"`
	Direction string     `json:"direction"`
	Status    StatusCode `json:"status"`
}

// ========================================
// DAILY / MONTHLY DTOs
// ========================================

type DailyStatusRequest struct {
	EmployeeCode string `json:"employee_code"`
	Date         string `json:"date"`
}

func (r *DailyStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyStatusResponse struct {
	EmployeeCode string     `json:"employee_code"`
	Date         string     `json:"date"`
	Weekday      string     `json:"weekday"`
	InPunch      *string    `json:"in_punch,omitempty"`
	OutPunch     *string    `json:"out_punch,omitempty"`
	InStatus     StatusCode `json:"in_status"`
	OutStatus    StatusCode `json:"out_status"`
	Status       StatusCode `json:"status"`
	Source       DaySource  `json:"source"`
}

type MonthlyAttendanceRequest struct {
	EmployeeCode string `json:"employee_code"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
}

func (r *MonthlyAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TallyResponse struct {
	Present    int `json:"present"`
	Late       int `json:"late"`
	ShortLeave int `json:"short_leave"`
	HalfDay    int `json:"half_day"`
	Missing    int `json:"missing"`
	WeeklyOff  int `json:"weekly_off"`
	Absent     int `json:"absent"`
	Leave      int `json:"leave"`
	Working    int `json:"working"`
}

type SummaryResponse struct {
	EmployeeCode  string          `json:"employee_code"`
	Month         string          `json:"month"`
	Year          int             `json:"year"`
	Holiday       decimal.Decimal `json:"holiday"`
	WeekOff       decimal.Decimal `json:"week_off"`
	Present       decimal.Decimal `json:"present"`
	LWP           decimal.Decimal `json:"lwp"`
	Leave         decimal.Decimal `json:"leave"`
	ArrearDays    decimal.Decimal `json:"arrear_days"`
	TotalPaidDays decimal.Decimal `json:"total_paid_days"`
}

type MonthlyAttendanceResponse struct {
	EmployeeCode string                `json:"employee_code"`
	Month        string                `json:"month"`
	Year         int                   `json:"year"`
	Days         []DailyStatusResponse `json:"days"`
	Tally        TallyResponse         `json:"tally"`
	Summary      *SummaryResponse      `json:"summary,omitempty"`
	// PaidDaysDelta is summary paid days minus the tallied paid days. Non-zero
	// means the prepared summary and the punches disagree.
	PaidDaysDelta *decimal.Decimal `json:"paid_days_delta,omitempty"`
}

// ========================================
// RULE SET DTOs
// ========================================

type SaveRulesRequest struct {
	InGracePeriod          int               `json:"in_grace_period"`
	OutGracePeriod         int               `json:"out_grace_period"`
	LateThreshold          int               `json:"late_threshold"`
	InShortLeaveThreshold  int               `json:"in_short_leave_threshold"`
	OutShortLeaveThreshold int               `json:"out_short_leave_threshold"`
	InHalfDayThreshold     int               `json:"in_half_day_threshold"`
	OutHalfDayThreshold    int               `json:"out_half_day_threshold"`
	CompoundingRules       []CompoundingRule `json:"compounding_rules"`
}

func (r *SaveRulesRequest) Validate() error {
	var errs validator.ValidationErrors

	minutes := []struct {
		field string
		value int
	}{
		{"in_grace_period", r.InGracePeriod},
		{"out_grace_period", r.OutGracePeriod},
		{"late_threshold", r.LateThreshold},
		{"in_short_leave_threshold", r.InShortLeaveThreshold},
		{"out_short_leave_threshold", r.OutShortLeaveThreshold},
		{"in_half_day_threshold", r.InHalfDayThreshold},
		{"out_half_day_threshold", r.OutHalfDayThreshold},
	}
	for _, m := range minutes {
		if m.value < 0 {
			errs = append(errs, validator.ValidationError{Field: m.field, Message: "must be non-negative"})
		}
	}

	for i, rule := range r.CompoundingRules {
		if rule.InStatus == "" || rule.OutStatus == "" || rule.ResultStatus == "" {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("compounding_rules[%d]", i),
				Message: "in_status, out_status and result_status are required",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToRuleSet copies the request into a rule set for companyID.
func (r *SaveRulesRequest) ToRuleSet(companyID string) ThresholdRuleSet {
	rules := make([]CompoundingRule, len(r.CompoundingRules))
	copy(rules, r.CompoundingRules)
	return ThresholdRuleSet{
		CompanyID:              companyID,
		InGracePeriod:          r.InGracePeriod,
		OutGracePeriod:         r.OutGracePeriod,
		LateThreshold:          r.LateThreshold,
		InShortLeaveThreshold:  r.InShortLeaveThreshold,
		OutShortLeaveThreshold: r.OutShortLeaveThreshold,
		InHalfDayThreshold:     r.InHalfDayThreshold,
		OutHalfDayThreshold:    r.OutHalfDayThreshold,
		CompoundingRules:       rules,
	}
}
