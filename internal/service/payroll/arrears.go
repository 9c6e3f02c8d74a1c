package payroll

import "github.com/shopspring/decimal"

// Arrears is the retroactive pay for previously unpaid days plus any manual
// adjustment.
type Arrears struct {
	DailyGross decimal.Decimal
	Calculated decimal.Decimal
	Manual     decimal.Decimal
	Total      decimal.Decimal
}

// ComputeArrears prices arrearDays at the monthly gross's daily rate. The
// daily gross is reported to two places; the calculated amount is
// round(gross × arrearDays / days) so the reported rate's rounding never
// leaks into it.
func ComputeArrears(monthlyGross, arrearDays decimal.Decimal, daysInMonth int, manual decimal.Decimal) Arrears {
	a := Arrears{
		DailyGross: decimal.Zero,
		Calculated: decimal.Zero,
		Manual:     manual,
	}
	if daysInMonth > 0 {
		days := decimal.NewFromInt(int64(daysInMonth))
		a.DailyGross = monthlyGross.DivRound(days, 2)
		a.Calculated = monthlyGross.Mul(arrearDays).Div(days).Round(0)
	}
	a.Total = a.Calculated.Add(a.Manual)
	return a
}
