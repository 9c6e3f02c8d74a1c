package attendance

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StatusCode is the per-day (or per-punch) attendance code. Leave types are
// also status codes: any value outside the constants below is treated as a
// leave code.
type StatusCode string

const (
	StatusPresent        StatusCode = "P"
	StatusAbsent         StatusCode = "A"
	StatusLate           StatusCode = "LT"
	StatusLateShort      StatusCode = "LTS"
	StatusShortLeave     StatusCode = "SL"
	StatusHalfDay        StatusCode = "HD"
	StatusEarlyDeparture StatusCode = "ED"
	StatusWeeklyOff      StatusCode = "W/O"
	StatusPunchInOnly    StatusCode = "PI"
	StatusPunchOutOnly   StatusCode = "PO"
)

var builtinStatuses = map[StatusCode]bool{
	StatusPresent:        true,
	StatusAbsent:         true,
	StatusLate:           true,
	StatusLateShort:      true,
	StatusShortLeave:     true,
	StatusHalfDay:        true,
	StatusEarlyDeparture: true,
	StatusWeeklyOff:      true,
	StatusPunchInOnly:    true,
	StatusPunchOutOnly:   true,
}

// IsLeave reports whether the code is a leave-type code rather than one of
// the classifier's own codes.
func (s StatusCode) IsLeave() bool {
	return s != "" && !builtinStatuses[s]
}

type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

func (d Direction) Valid() bool {
	return d == DirectionIn || d == DirectionOut
}

// ShiftSchedule is the expected IN/OUT time-of-day for an employee.
type ShiftSchedule struct {
	ID        string
	CompanyID string
	Name      string
	StartTime string // "15:04"
	EndTime   string
}

// CompoundingRule maps an (IN, OUT) status pair to one day status.
type CompoundingRule struct {
	InStatus     StatusCode `json:"in_status"`
	OutStatus    StatusCode `json:"out_status"`
	ResultStatus StatusCode `json:"result_status"`
}

// ThresholdRuleSet is the company-wide classification configuration. It is
// passed explicitly into every classification call.
type ThresholdRuleSet struct {
	ID                     string            `json:"id,omitempty"`
	CompanyID              string            `json:"company_id,omitempty"`
	InGracePeriod          int               `json:"in_grace_period"`
	OutGracePeriod         int               `json:"out_grace_period"`
	LateThreshold          int               `json:"late_threshold"`
	InShortLeaveThreshold  int               `json:"in_short_leave_threshold"`
	OutShortLeaveThreshold int               `json:"out_short_leave_threshold"`
	InHalfDayThreshold     int               `json:"in_half_day_threshold"`
	OutHalfDayThreshold    int               `json:"out_half_day_threshold"`
	CompoundingRules       []CompoundingRule `json:"compounding_rules"`
	UpdatedAt              time.Time         `json:"updated_at"`
}

// RawPunch is one clock event. Punches are append-only.
type RawPunch struct {
	ID           string
	CompanyID    string
	EmployeeCode string
	PunchTime    time.Time
	PunchType    Direction
}

type WeeklyOffType string

const (
	WeeklyOffFixedDay WeeklyOffType = "FixedDay"
	WeeklyOffMonthly4 WeeklyOffType = "Monthly4"
)

type WeeklyOffSetting struct {
	EmployeeCode  string
	Type          WeeklyOffType
	Days          []time.Weekday
	SandwichRule  bool
	EffectiveFrom time.Time
}

// IsOff reports whether date is a configured rest day. Only FixedDay
// settings name weekdays; Monthly4 settings are a count, not a calendar.
func (w *WeeklyOffSetting) IsOff(date time.Time) bool {
	if w == nil || w.Type != WeeklyOffFixedDay {
		return false
	}
	if !w.EffectiveFrom.IsZero() && date.Before(truncateDay(w.EffectiveFrom)) {
		return false
	}
	wd := date.Weekday()
	for _, d := range w.Days {
		if d == wd {
			return true
		}
	}
	return false
}

// ParseWeekday accepts full or three-letter weekday names in any case.
func ParseWeekday(name string) (time.Weekday, bool) {
	name = strings.TrimSpace(name)
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := d.String()
		if strings.EqualFold(name, full) || strings.EqualFold(name, full[:3]) {
			return d, true
		}
	}
	return 0, false
}

// ManualOverride is an applied leave or regularization for one date. It
// wins over anything derived from punches.
type ManualOverride struct {
	EmployeeCode string
	Date         time.Time
	StatusCode   StatusCode
	Reason       *string
}

type DaySource string

const (
	SourceOverride    DaySource = "override"
	SourceCompounding DaySource = "compounding"
	SourceFallback    DaySource = "fallback"
)

// DailyStatus is derived per employee-day and never persisted on its own.
type DailyStatus struct {
	EmployeeCode string
	Date         time.Time
	InStatus     StatusCode
	OutStatus    StatusCode
	Status       StatusCode
	Source       DaySource
}

// MonthlyTally is the informational count of daily statuses.
type MonthlyTally struct {
	Present    int
	Late       int
	ShortLeave int
	HalfDay    int
	Missing    int
	WeeklyOff  int
	Absent     int
	Leave      int
	Working    int
	Days       int
}

// MonthlyAttendanceSummary is prepared outside payroll and only read here.
// Day counts are decimals because half days are paid as 0.5.
type MonthlyAttendanceSummary struct {
	CompanyID     string
	EmployeeCode  string
	Month         string // full month name
	Year          int
	Holiday       decimal.Decimal
	WeekOff       decimal.Decimal
	Present       decimal.Decimal
	LWP           decimal.Decimal
	Leave         decimal.Decimal
	ArrearDays    decimal.Decimal
	TotalPaidDays decimal.Decimal
	UpdatedAt     time.Time
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
