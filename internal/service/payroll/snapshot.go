package payroll

import (
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

// SnapshotInput is the already-fetched data for one employee-month.
type SnapshotInput struct {
	EmployeeCode  string
	EmployeeName  string
	Period        period.Period
	Structure     *payroll.SalaryStructure
	Summary       *attendance.MonthlyAttendanceSummary
	Adjustment    *payroll.PayrollAdjustment
	Loans         []payroll.LoanRecord
	LockedHistory []payroll.LockedAdvance
}

// ComputeSnapshot derives the full payroll snapshot. It is a pure function of
// its input: calling it twice with the same input yields equal snapshots.
//
// Without an adjustment the advance is the loan proposal for the month, so a
// preview shows what locking would deduct.
func ComputeSnapshot(in SnapshotInput) (payroll.PayrollSnapshot, error) {
	if in.Summary == nil {
		return payroll.PayrollSnapshot{}, attendance.ErrSummaryNotFound
	}

	days := in.Period.Days()
	prorated, err := Prorate(in.Structure, in.Summary.TotalPaidDays, days)
	if err != nil {
		return payroll.PayrollSnapshot{}, err
	}

	manualArrears := decimal.Zero
	otherDeduction := decimal.Zero
	tds := decimal.Zero
	advance := decimal.Zero
	autoProposed := false
	if in.Adjustment != nil {
		manualArrears = in.Adjustment.ArrearAmount
		otherDeduction = in.Adjustment.OtherDeduction
		tds = in.Adjustment.TDS
		advance = in.Adjustment.Advance
		autoProposed = in.Adjustment.AutoProposed
	}

	arrears := ComputeArrears(in.Structure.MonthlyGross, in.Summary.ArrearDays, days, manualArrears)

	var loan *payroll.LoanSnapshot
	if len(in.Loans) > 0 {
		pos := PlanLoans(in.Loans, in.LockedHistory, in.Period)
		if in.Adjustment == nil && pos.Proposed.IsPositive() {
			advance = pos.Proposed
			autoProposed = true
		}
		after := pos.Outstanding.Sub(advance)
		if after.IsNegative() {
			after = decimal.Zero
		}
		loan = &payroll.LoanSnapshot{
			Loans:             len(pos.Balances),
			TotalAmount:       pos.TotalAmount,
			TotalRepaid:       pos.TotalRepaid,
			OutstandingBefore: pos.Outstanding,
			OutstandingAfter:  after,
			Installment:       pos.Installment,
		}
	}

	grossWithArrears := prorated.Gross.Add(arrears.Total)
	netPay := grossWithArrears.
		Sub(prorated.TotalDeductions).
		Sub(otherDeduction).
		Sub(tds).
		Sub(advance)

	return payroll.PayrollSnapshot{
		EmployeeCode: in.EmployeeCode,
		EmployeeName: in.EmployeeName,
		Month:        in.Period.MonthName(),
		Year:         in.Period.Year,

		Attendance: payroll.AttendanceSnapshot{
			Holiday:       in.Summary.Holiday,
			WeekOff:       in.Summary.WeekOff,
			Present:       in.Summary.Present,
			LWP:           in.Summary.LWP,
			Leave:         in.Summary.Leave,
			ArrearDays:    in.Summary.ArrearDays,
			TotalPaidDays: in.Summary.TotalPaidDays,
		},
		DaysInMonth:     days,
		PaidDays:        prorated.PaidDays,
		ArrearDays:      in.Summary.ArrearDays,
		ProrationFactor: prorated.Factor,

		MonthlyGross:       in.Structure.MonthlyGross,
		Earnings:           prorated.Earnings,
		Deductions:         prorated.Deductions,
		EmployerAdditional: prorated.EmployerAdditional,

		ProratedGross:           prorated.Gross,
		TotalDeductions:         prorated.TotalDeductions,
		TotalEmployerAdditional: prorated.TotalEmployerAdditional,

		DailyGross:        arrears.DailyGross,
		CalculatedArrears: arrears.Calculated,
		ManualArrears:     arrears.Manual,
		TotalArrears:      arrears.Total,
		GrossWithArrears:  grossWithArrears,

		OtherDeduction:      otherDeduction,
		TDS:                 tds,
		Advance:             advance,
		AdvanceAutoProposed: autoProposed,
		Loan:                loan,

		NetPay: netPay,
	}, nil
}
