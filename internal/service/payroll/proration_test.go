package payroll

import (
	"testing"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]interface{}{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func sampleStructure() *payroll.SalaryStructure {
	return &payroll.SalaryStructure{
		EmployeeCode: "E001",
		MonthlyGross: dec("30000"),
		EarningsBreakdown: []payroll.LineItem{
			{Name: "Basic", Amount: dec("15000")},
			{Name: "HRA", Amount: dec("9000")},
			{Name: "Special Allowance", Amount: dec("6000")},
		},
		DeductionsBreakdown: []payroll.LineItem{
			{Name: "PF", Amount: dec("1800")},
		},
		EmployerAdditionalBreakdown: []payroll.LineItem{
			{Name: "Employer PF", Amount: dec("1800")},
		},
	}
}

func TestProrate_FullMonthIsIdentity(t *testing.T) {
	structure := sampleStructure()
	structure.EarningsBreakdown = append(structure.EarningsBreakdown, payroll.LineItem{Name: "Meal", Amount: dec("1234.56")})

	got, err := Prorate(structure, dec("31"), 31)

	require.NoError(t, err)
	assertDecimal(t, "1", got.Factor)
	for i, line := range got.Earnings {
		assert.True(t, structure.EarningsBreakdown[i].Amount.Equal(line.Earned), line.Name)
	}
	assertDecimal(t, "31234.56", got.Gross)
}

func TestProrate_PartialMonth(t *testing.T) {
	got, err := Prorate(sampleStructure(), dec("27"), 30)

	require.NoError(t, err)
	assertDecimal(t, "0.9", got.Factor)
	require.Len(t, got.Earnings, 3)
	assertDecimal(t, "13500", got.Earnings[0].Earned)
	assertDecimal(t, "8100", got.Earnings[1].Earned)
	assertDecimal(t, "5400", got.Earnings[2].Earned)
	assertDecimal(t, "27000", got.Gross)
	assertDecimal(t, "1620", got.TotalDeductions)
	assertDecimal(t, "1620", got.TotalEmployerAdditional)
}

func TestProrate_RoundsEachLine(t *testing.T) {
	structure := &payroll.SalaryStructure{
		MonthlyGross: dec("3000"),
		EarningsBreakdown: []payroll.LineItem{
			{Name: "A", Amount: dec("1000")},
			{Name: "B", Amount: dec("1000")},
			{Name: "C", Amount: dec("1000")},
		},
	}

	got, err := Prorate(structure, dec("10"), 30)

	require.NoError(t, err)
	for _, line := range got.Earnings {
		assertDecimal(t, "333", line.Earned, line.Name)
	}
	// sum of rounded lines, not round(3000 / 3)
	assertDecimal(t, "999", got.Gross)
}

func TestProrate_HalfRoundsUp(t *testing.T) {
	structure := &payroll.SalaryStructure{
		MonthlyGross:      dec("5"),
		EarningsBreakdown: []payroll.LineItem{{Name: "Basic", Amount: dec("5")}},
	}

	got, err := Prorate(structure, dec("15"), 30)

	require.NoError(t, err)
	assertDecimal(t, "3", got.Gross)
}

func TestProrate_HalfPaidDay(t *testing.T) {
	got, err := Prorate(sampleStructure(), dec("29.5"), 30)

	require.NoError(t, err)
	assertDecimal(t, "14750", got.Earnings[0].Earned)
	assertDecimal(t, "8850", got.Earnings[1].Earned)
	assertDecimal(t, "5900", got.Earnings[2].Earned)
}

func TestProrate_EmptyBreakdownUsesMonthlyGross(t *testing.T) {
	structure := &payroll.SalaryStructure{MonthlyGross: dec("30000")}

	got, err := Prorate(structure, dec("27"), 30)

	require.NoError(t, err)
	require.Len(t, got.Earnings, 1)
	assert.Equal(t, grossLineName, got.Earnings[0].Name)
	assertDecimal(t, "27000", got.Gross)
	assert.Empty(t, got.Deductions)
	assertDecimal(t, "0", got.TotalDeductions)
}

func TestProrate_ZeroDaysIsTotal(t *testing.T) {
	got, err := Prorate(sampleStructure(), dec("10"), 0)

	require.NoError(t, err)
	assertDecimal(t, "0", got.Factor)
	assertDecimal(t, "0", got.Gross)
}

func TestProrate_NoStructure(t *testing.T) {
	got, err := Prorate(nil, dec("27"), 30)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, payroll.ErrSalaryStructureNotConfigured)
}
