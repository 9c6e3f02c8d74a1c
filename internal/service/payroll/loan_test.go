package payroll

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func mustPeriod(t *testing.T, month, year int) period.Period {
	t.Helper()
	p, err := period.New(month, year)
	require.NoError(t, err)
	return p
}

func lockedMonths(year int, from, to time.Month, advance string) []payroll.LockedAdvance {
	var out []payroll.LockedAdvance
	for m := from; m <= to; m++ {
		out = append(out, payroll.LockedAdvance{Month: m.String(), Year: year, Advance: dec(advance)})
	}
	return out
}

func standardLoan() payroll.LoanRecord {
	return payroll.LoanRecord{
		ID:                 "loan-1",
		EmployeeCode:       "E001",
		TotalAmount:        dec("12000"),
		InstallmentAmount:  dec("1000"),
		RepaymentStartDate: date(2024, time.January, 15),
		Status:             payroll.LoanStatusActive,
	}
}

func TestTotalRepaid_OnlyStrictlyBefore(t *testing.T) {
	history := lockedMonths(2024, time.January, time.May, "1000")
	history = append(history, payroll.LockedAdvance{Month: "Smarch", Year: 2024, Advance: dec("999")})

	got := TotalRepaid(history, mustPeriod(t, 4, 2024))

	assertDecimal(t, "3000", got)
}

func TestLoan_Monotonicity(t *testing.T) {
	loan := standardLoan()
	april := mustPeriod(t, 4, 2024)

	repaid := TotalRepaid(lockedMonths(2024, time.January, time.March, "1000"), april)
	outstanding := Outstanding(loan, repaid)
	proposed, ok := ProposeDeduction(loan, outstanding, false, april)

	assertDecimal(t, "9000", outstanding)
	require.True(t, ok)
	assertDecimal(t, "1000", proposed)
}

func TestLoan_NoProposalOnceRepaid(t *testing.T) {
	loan := standardLoan()
	next := mustPeriod(t, 1, 2025)

	repaid := TotalRepaid(lockedMonths(2024, time.January, time.December, "1000"), next)
	outstanding := Outstanding(loan, repaid)
	_, ok := ProposeDeduction(loan, outstanding, false, next)

	assertDecimal(t, "0", outstanding)
	assert.False(t, ok)
}

func TestLoan_OverpaymentClampsToZero(t *testing.T) {
	assertDecimal(t, "0", Outstanding(standardLoan(), dec("15000")))
}

func TestProposeDeduction_LastInstallmentIsRemainder(t *testing.T) {
	proposed, ok := ProposeDeduction(standardLoan(), dec("400"), false, mustPeriod(t, 12, 2024))

	require.True(t, ok)
	assertDecimal(t, "400", proposed)
}

func TestProposeDeduction_ExistingAdjustmentWins(t *testing.T) {
	_, ok := ProposeDeduction(standardLoan(), dec("9000"), true, mustPeriod(t, 4, 2024))
	assert.False(t, ok)
}

func TestProposeDeduction_BeforeRepaymentStart(t *testing.T) {
	loan := standardLoan()
	loan.RepaymentStartDate = date(2024, time.June, 1)

	_, ok := ProposeDeduction(loan, dec("12000"), false, mustPeriod(t, 5, 2024))
	assert.False(t, ok)

	_, ok = ProposeDeduction(loan, dec("12000"), false, mustPeriod(t, 6, 2024))
	assert.True(t, ok)
}

func TestRepaymentStarted_FallsBackToDisbursement(t *testing.T) {
	loan := standardLoan()
	loan.RepaymentStartDate = nil
	loan.DisbursementDate = date(2024, time.March, 10)

	assert.False(t, RepaymentStarted(loan, mustPeriod(t, 2, 2024)))
	assert.True(t, RepaymentStarted(loan, mustPeriod(t, 3, 2024)))
}

func TestPlanLoans_AllocatesOldestFirst(t *testing.T) {
	older := payroll.LoanRecord{
		ID:                 "loan-a",
		TotalAmount:        dec("2000"),
		InstallmentAmount:  dec("500"),
		RepaymentStartDate: date(2024, time.January, 1),
		Status:             payroll.LoanStatusActive,
	}
	newer := payroll.LoanRecord{
		ID:                 "loan-b",
		TotalAmount:        dec("3000"),
		InstallmentAmount:  dec("1000"),
		RepaymentStartDate: date(2024, time.March, 1),
		Status:             payroll.LoanStatusApproved,
	}
	closed := payroll.LoanRecord{ID: "loan-c", TotalAmount: dec("9999"), Status: payroll.LoanStatusClosed}
	history := []payroll.LockedAdvance{
		{Month: "January", Year: 2024, Advance: dec("500")},
		{Month: "February", Year: 2024, Advance: dec("500")},
		{Month: "March", Year: 2024, Advance: dec("1500")},
	}

	pos := PlanLoans([]payroll.LoanRecord{newer, closed, older}, history, mustPeriod(t, 4, 2024))

	require.Len(t, pos.Balances, 2)
	assert.Equal(t, "loan-a", pos.Balances[0].Loan.ID)
	assertDecimal(t, "0", pos.Balances[0].Outstanding)
	assertDecimal(t, "0", pos.Balances[0].Proposed)
	assertDecimal(t, "2500", pos.Balances[1].Outstanding)
	assertDecimal(t, "1000", pos.Balances[1].Proposed)
	assertDecimal(t, "5000", pos.TotalAmount)
	assertDecimal(t, "2500", pos.TotalRepaid)
	assertDecimal(t, "2500", pos.Outstanding)
	assertDecimal(t, "1000", pos.Proposed)
}
