package payroll

import (
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// grossLineName labels the single earnings line used when a structure has no
// earnings breakdown.
const grossLineName = "Monthly Gross"

// ProratedSalary is a salary structure scaled to the paid days of a month.
type ProratedSalary struct {
	DaysInMonth        int
	PaidDays           decimal.Decimal
	Factor             decimal.Decimal
	Earnings           []payroll.EarnedLine
	Deductions         []payroll.EarnedLine
	EmployerAdditional []payroll.EarnedLine

	Gross                   decimal.Decimal
	TotalDeductions         decimal.Decimal
	TotalEmployerAdditional decimal.Decimal
}

// ProrationFactor is paidDays/daysInMonth, or 0 for an empty month.
func ProrationFactor(paidDays decimal.Decimal, daysInMonth int) decimal.Decimal {
	if daysInMonth <= 0 {
		return decimal.Zero
	}
	return paidDays.DivRound(decimal.NewFromInt(int64(daysInMonth)), 8)
}

// prorateAmount multiplies before dividing so whole-day fractions such as
// 27/30 stay exact before rounding.
func prorateAmount(amount, paidDays decimal.Decimal, daysInMonth int) decimal.Decimal {
	if daysInMonth <= 0 {
		return decimal.Zero
	}
	days := decimal.NewFromInt(int64(daysInMonth))
	if paidDays.Equal(days) {
		return amount
	}
	return amount.Mul(paidDays).Div(days).Round(0)
}

func prorateLines(items []payroll.LineItem, paidDays decimal.Decimal, daysInMonth int) ([]payroll.EarnedLine, decimal.Decimal) {
	lines := make([]payroll.EarnedLine, 0, len(items))
	total := decimal.Zero
	for _, item := range items {
		earned := prorateAmount(item.Amount, paidDays, daysInMonth)
		lines = append(lines, payroll.EarnedLine{Name: item.Name, Amount: item.Amount, Earned: earned})
		total = total.Add(earned)
	}
	return lines, total
}

// Prorate scales every breakdown line by the paid-days factor, rounding each
// line half-up to a whole amount. Totals are sums of the rounded lines, so
// they can differ from a single rounding of the monthly gross by up to one
// unit per line. A nil structure is ErrSalaryStructureNotConfigured.
func Prorate(structure *payroll.SalaryStructure, paidDays decimal.Decimal, daysInMonth int) (*ProratedSalary, error) {
	if structure == nil {
		return nil, payroll.ErrSalaryStructureNotConfigured
	}

	earnings := structure.EarningsBreakdown
	if len(earnings) == 0 {
		earnings = []payroll.LineItem{{Name: grossLineName, Amount: structure.MonthlyGross}}
	}

	result := &ProratedSalary{
		DaysInMonth: daysInMonth,
		PaidDays:    paidDays,
		Factor:      ProrationFactor(paidDays, daysInMonth),
	}
	result.Earnings, result.Gross = prorateLines(earnings, paidDays, daysInMonth)
	result.Deductions, result.TotalDeductions = prorateLines(structure.DeductionsBreakdown, paidDays, daysInMonth)
	result.EmployerAdditional, result.TotalEmployerAdditional = prorateLines(structure.EmployerAdditionalBreakdown, paidDays, daysInMonth)
	return result, nil
}
