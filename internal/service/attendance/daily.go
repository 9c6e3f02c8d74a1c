package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/period"
)

const dateLayout = "2006-01-02"

// DayPunches is the earliest IN and latest OUT of one calendar day.
type DayPunches struct {
	InAt  *time.Time
	OutAt *time.Time
}

func (d DayPunches) In() ClockReading {
	if d.InAt == nil {
		return Absent()
	}
	return ReadingOf(*d.InAt)
}

func (d DayPunches) Out() ClockReading {
	if d.OutAt == nil {
		return Absent()
	}
	return ReadingOf(*d.OutAt)
}

// CollapsePunches groups one employee's punches by calendar date in loc,
// keeping the earliest IN and the latest OUT of each day.
func CollapsePunches(punches []attendance.RawPunch, loc *time.Location) map[string]DayPunches {
	if loc == nil {
		loc = time.UTC
	}
	days := make(map[string]DayPunches)
	for _, p := range punches {
		local := p.PunchTime.In(loc)
		key := local.Format(dateLayout)
		day := days[key]
		switch p.PunchType {
		case attendance.DirectionIn:
			if day.InAt == nil || local.Before(*day.InAt) {
				t := local
				day.InAt = &t
			}
		case attendance.DirectionOut:
			if day.OutAt == nil || local.After(*day.OutAt) {
				t := local
				day.OutAt = &t
			}
		default:
			continue
		}
		days[key] = day
	}
	return days
}

// DayInput is everything needed to resolve one employee-day.
type DayInput struct {
	EmployeeCode string
	Date         time.Time
	In           ClockReading
	Out          ClockReading
	Shift        attendance.ShiftSchedule
	Override     *attendance.ManualOverride
}

// ResolveDay produces the final status of one employee-day.
//
// A manual override wins outright. Otherwise both directions are classified;
// a day with no punches on a weekly off becomes W/O; a day with a punch in
// only one direction reports PI (in only) or PO (out only) on the missing
// side. The compounding table is consulted next, and without a match the IN
// status is used unless it is P or W/O.
func ResolveDay(in DayInput, rules attendance.ThresholdRuleSet, weeklyOff *attendance.WeeklyOffSetting) attendance.DailyStatus {
	day := attendance.DailyStatus{
		EmployeeCode: in.EmployeeCode,
		Date:         in.Date,
	}

	if in.Override != nil && in.Override.StatusCode != "" {
		day.InStatus = in.Override.StatusCode
		day.OutStatus = in.Override.StatusCode
		day.Status = in.Override.StatusCode
		day.Source = attendance.SourceOverride
		return day
	}

	day.InStatus = Classify(in.In, ParseClock(in.Shift.StartTime), attendance.DirectionIn, rules)
	day.OutStatus = Classify(in.Out, ParseClock(in.Shift.EndTime), attendance.DirectionOut, rules)

	switch {
	case !in.In.Present() && !in.Out.Present():
		if weeklyOff.IsOff(in.Date) {
			day.InStatus = attendance.StatusWeeklyOff
			day.OutStatus = attendance.StatusWeeklyOff
		}
	case in.In.Present() && !in.Out.Present():
		day.OutStatus = attendance.StatusPunchInOnly
	case !in.In.Present() && in.Out.Present():
		day.InStatus = attendance.StatusPunchOutOnly
	}

	if result, ok := ResolveCompounding(day.InStatus, day.OutStatus, rules.CompoundingRules); ok {
		day.Status = result
		day.Source = attendance.SourceCompounding
		return day
	}

	day.Source = attendance.SourceFallback
	if day.InStatus != attendance.StatusPresent && day.InStatus != attendance.StatusWeeklyOff {
		day.Status = day.InStatus
	} else {
		day.Status = day.OutStatus
	}
	return day
}

// MonthInput is the already-fetched data for one employee-month.
type MonthInput struct {
	EmployeeCode string
	Period       period.Period
	Location     *time.Location
	Shift        attendance.ShiftSchedule
	Punches      []attendance.RawPunch
	Overrides    []attendance.ManualOverride
	Rules        attendance.ThresholdRuleSet
	WeeklyOff    *attendance.WeeklyOffSetting
}

// ResolveMonth resolves every calendar day of the period in order.
func ResolveMonth(in MonthInput) ([]attendance.DailyStatus, map[string]DayPunches) {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}
	punches := CollapsePunches(in.Punches, loc)

	overrides := make(map[string]*attendance.ManualOverride, len(in.Overrides))
	for i := range in.Overrides {
		o := &in.Overrides[i]
		overrides[o.Date.In(loc).Format(dateLayout)] = o
	}

	start := in.Period.Start(loc)
	days := make([]attendance.DailyStatus, 0, in.Period.Days())
	for d := 0; d < in.Period.Days(); d++ {
		date := start.AddDate(0, 0, d)
		key := date.Format(dateLayout)
		p := punches[key]
		days = append(days, ResolveDay(DayInput{
			EmployeeCode: in.EmployeeCode,
			Date:         date,
			In:           p.In(),
			Out:          p.Out(),
			Shift:        in.Shift,
			Override:     overrides[key],
		}, in.Rules, in.WeeklyOff))
	}
	return days, punches
}
