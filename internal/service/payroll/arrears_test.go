package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeArrears(t *testing.T) {
	a := ComputeArrears(dec("30000"), dec("2"), 30, dec("500"))

	assertDecimal(t, "1000", a.DailyGross)
	assertDecimal(t, "2000", a.Calculated)
	assertDecimal(t, "500", a.Manual)
	assertDecimal(t, "2500", a.Total)
}

func TestComputeArrears_RoundsCalculated(t *testing.T) {
	// 25000 / 31 * 3 = 2419.35...
	a := ComputeArrears(dec("25000"), dec("3"), 31, decimal.Zero)

	assertDecimal(t, "806.45", a.DailyGross)
	assertDecimal(t, "2419", a.Calculated)
	assertDecimal(t, "2419", a.Total)
}

func TestComputeArrears_NegativeManual(t *testing.T) {
	a := ComputeArrears(dec("30000"), dec("1"), 30, dec("-300"))

	assertDecimal(t, "700", a.Total)
}

func TestComputeArrears_ZeroDays(t *testing.T) {
	a := ComputeArrears(dec("30000"), dec("2"), 0, dec("500"))

	assertDecimal(t, "0", a.DailyGross)
	assertDecimal(t, "0", a.Calculated)
	assertDecimal(t, "500", a.Total)
}
