package attendance

import (
	"sort"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
)

// ClockReading is a time of day in minutes after midnight, or absent.
type ClockReading struct {
	minutes int
	present bool
}

// Absent is the reading for a missing punch.
func Absent() ClockReading {
	return ClockReading{}
}

// At builds a present reading.
func At(hour, minute int) ClockReading {
	return ClockReading{minutes: hour*60 + minute, present: true}
}

// ReadingOf takes the wall-clock time of t.
func ReadingOf(t time.Time) ClockReading {
	return At(t.Hour(), t.Minute())
}

var clockLayouts = []string{"15:04", "15:04:05", "3:04 PM", "03:04 PM", "3:04PM"}

// ParseClock normalizes a time-of-day string. Empty, "absent" and anything
// unparsable become Absent, so classification never sees bad input.
func ParseClock(s string) ClockReading {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "absent") {
		return Absent()
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return At(t.Hour(), t.Minute())
		}
	}
	return Absent()
}

func (c ClockReading) Present() bool {
	return c.present
}

func (c ClockReading) Minutes() int {
	return c.minutes
}

func (c ClockReading) String() string {
	if !c.present {
		return "absent"
	}
	return time.Date(0, 1, 1, c.minutes/60, c.minutes%60, 0, 0, time.UTC).Format("15:04")
}

// thresholdStep is one rung of the classification ladder: a deviation of at
// least minutes yields status.
type thresholdStep struct {
	minutes int
	status  attendance.StatusCode
}

// ladder returns the rungs for dir sorted from most to least severe. Zero
// thresholds are unconfigured and skipped. Ties keep declaration order, so
// HD beats SL beats LT when two thresholds are equal.
func ladder(dir attendance.Direction, rules attendance.ThresholdRuleSet) []thresholdStep {
	var steps []thresholdStep
	switch dir {
	case attendance.DirectionIn:
		steps = []thresholdStep{
			{rules.InHalfDayThreshold, attendance.StatusHalfDay},
			{rules.InShortLeaveThreshold, attendance.StatusShortLeave},
			{rules.LateThreshold, attendance.StatusLate},
		}
	case attendance.DirectionOut:
		steps = []thresholdStep{
			{rules.OutHalfDayThreshold, attendance.StatusHalfDay},
			{rules.OutShortLeaveThreshold, attendance.StatusShortLeave},
		}
	}

	configured := steps[:0]
	for _, s := range steps {
		if s.minutes > 0 {
			configured = append(configured, s)
		}
	}
	sort.SliceStable(configured, func(i, j int) bool {
		return configured[i].minutes > configured[j].minutes
	})
	return configured
}

// deviation is the signed lateness (IN) or earliness (OUT) in minutes
// within one calendar day.
func deviation(punch, shift ClockReading, dir attendance.Direction) int {
	if dir == attendance.DirectionOut {
		return shift.minutes - punch.minutes
	}
	return punch.minutes - shift.minutes
}

// Classify maps one punch to a status code. The most severe satisfied
// threshold wins; below every threshold the grace period decides between
// LT/ED and P. A present punch against an unknown shift time is P.
func Classify(punch, shift ClockReading, dir attendance.Direction, rules attendance.ThresholdRuleSet) attendance.StatusCode {
	if !punch.present {
		return attendance.StatusAbsent
	}
	if !shift.present {
		return attendance.StatusPresent
	}

	diff := deviation(punch, shift, dir)
	for _, step := range ladder(dir, rules) {
		if diff >= step.minutes {
			return step.status
		}
	}

	if dir == attendance.DirectionOut {
		if diff > rules.OutGracePeriod {
			return attendance.StatusEarlyDeparture
		}
		return attendance.StatusPresent
	}
	if diff > rules.InGracePeriod {
		return attendance.StatusLate
	}
	return attendance.StatusPresent
}
