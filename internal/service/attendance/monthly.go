package attendance

import (
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// TallyMonth counts daily statuses into the audit categories. ED days have
// no category of their own and count as Present; LTS counts as Late.
// Working is P+LT+SL+HD.
func TallyMonth(days []attendance.DailyStatus) attendance.MonthlyTally {
	var t attendance.MonthlyTally
	for _, d := range days {
		t.Days++
		switch d.Status {
		case attendance.StatusPresent, attendance.StatusEarlyDeparture:
			t.Present++
		case attendance.StatusLate, attendance.StatusLateShort:
			t.Late++
		case attendance.StatusShortLeave:
			t.ShortLeave++
		case attendance.StatusHalfDay:
			t.HalfDay++
		case attendance.StatusPunchInOnly, attendance.StatusPunchOutOnly:
			t.Missing++
		case attendance.StatusWeeklyOff:
			t.WeeklyOff++
		case attendance.StatusAbsent:
			t.Absent++
		default:
			if d.Status.IsLeave() {
				t.Leave++
			}
		}
	}
	t.Working = t.Present + t.Late + t.ShortLeave + t.HalfDay
	return t
}

var half = decimal.NewFromFloat(0.5)

// TalliedPaidDays estimates paid days from the tally: worked days with half
// days at 0.5, plus weekly offs and leave. Holidays are not known here.
func TalliedPaidDays(t attendance.MonthlyTally) decimal.Decimal {
	full := decimal.NewFromInt(int64(t.Present + t.Late + t.ShortLeave + t.WeeklyOff + t.Leave))
	return full.Add(half.Mul(decimal.NewFromInt(int64(t.HalfDay))))
}

// PaidDaysDelta is the prepared summary's paid days minus the tally
// estimate less holidays. Zero means both sources agree.
func PaidDaysDelta(t attendance.MonthlyTally, summary attendance.MonthlyAttendanceSummary) decimal.Decimal {
	return summary.TotalPaidDays.Sub(summary.Holiday).Sub(TalliedPaidDays(t))
}
