package payroll

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

// TotalRepaid sums the advances of locked records strictly before p.
// Records whose month cannot be parsed are ignored.
func TotalRepaid(history []payroll.LockedAdvance, p period.Period) decimal.Decimal {
	total := decimal.Zero
	for _, h := range history {
		hp, err := period.Parse(h.Month, h.Year)
		if err != nil || !hp.Before(p) {
			continue
		}
		total = total.Add(h.Advance)
	}
	return total
}

// Outstanding is max(0, total − repaid).
func Outstanding(loan payroll.LoanRecord, repaid decimal.Decimal) decimal.Decimal {
	out := loan.TotalAmount.Sub(repaid)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// RepaymentStarted reports whether p is on or after the loan's repayment
// start month. A loan without any start date repays from approval.
func RepaymentStarted(loan payroll.LoanRecord, p period.Period) bool {
	start := loan.StartDate()
	if start == nil {
		return true
	}
	return !p.Before(period.Of(*start))
}

// ProposeDeduction returns min(outstanding, installment) when a deduction may
// be proposed: no adjustment exists for the month, something is still owed
// and repayment has started.
func ProposeDeduction(loan payroll.LoanRecord, outstanding decimal.Decimal, hasAdjustment bool, p period.Period) (decimal.Decimal, bool) {
	if hasAdjustment || !outstanding.IsPositive() || !RepaymentStarted(loan, p) {
		return decimal.Zero, false
	}
	return decimal.Min(outstanding, loan.InstallmentAmount), true
}

// LoanBalance is one loan after allocating repaid advances.
type LoanBalance struct {
	Loan        payroll.LoanRecord
	Repaid      decimal.Decimal
	Outstanding decimal.Decimal
	Proposed    decimal.Decimal
}

// LoanPosition is the combined state of an employee's repayable loans for
// one month.
type LoanPosition struct {
	Balances    []LoanBalance
	TotalAmount decimal.Decimal
	TotalRepaid decimal.Decimal
	Outstanding decimal.Decimal
	Installment decimal.Decimal
	Proposed    decimal.Decimal
}

func loanOrderKey(l payroll.LoanRecord) time.Time {
	if start := l.StartDate(); start != nil {
		return *start
	}
	return l.CreatedAt
}

// PlanLoans allocates the advances repaid before p across the loans oldest
// first and proposes each started loan's next installment. Advances are not
// tagged with a loan, so the oldest loan is assumed to be repaid first.
func PlanLoans(loans []payroll.LoanRecord, history []payroll.LockedAdvance, p period.Period) LoanPosition {
	ordered := make([]payroll.LoanRecord, 0, len(loans))
	for _, l := range loans {
		if l.IsRepayable() {
			ordered = append(ordered, l)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return loanOrderKey(ordered[i]).Before(loanOrderKey(ordered[j]))
	})

	pos := LoanPosition{
		TotalAmount: decimal.Zero,
		TotalRepaid: TotalRepaid(history, p),
		Outstanding: decimal.Zero,
		Installment: decimal.Zero,
		Proposed:    decimal.Zero,
	}

	remaining := pos.TotalRepaid
	for _, l := range ordered {
		repaid := decimal.Min(remaining, l.TotalAmount)
		if repaid.IsNegative() {
			repaid = decimal.Zero
		}
		remaining = remaining.Sub(repaid)

		b := LoanBalance{Loan: l, Repaid: repaid, Outstanding: Outstanding(l, repaid), Proposed: decimal.Zero}
		if amount, ok := ProposeDeduction(l, b.Outstanding, false, p); ok {
			b.Proposed = amount
			pos.Installment = pos.Installment.Add(l.InstallmentAmount)
		}

		pos.Balances = append(pos.Balances, b)
		pos.TotalAmount = pos.TotalAmount.Add(l.TotalAmount)
		pos.Outstanding = pos.Outstanding.Add(b.Outstanding)
		pos.Proposed = pos.Proposed.Add(b.Proposed)
	}
	return pos
}
