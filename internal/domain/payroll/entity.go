package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one named amount of a salary structure breakdown.
type LineItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// SalaryStructure is owned by the salary-structure screens and read here.
type SalaryStructure struct {
	ID                          string          `json:"id,omitempty"`
	CompanyID                   string          `json:"company_id,omitempty"`
	EmployeeCode                string          `json:"employee_code"`
	MonthlyGross                decimal.Decimal `json:"monthly_gross"`
	EarningsBreakdown           []LineItem      `json:"earnings_breakdown"`
	DeductionsBreakdown         []LineItem      `json:"deductions_breakdown"`
	EmployerAdditionalBreakdown []LineItem      `json:"employer_additional_breakdown"`
	UpdatedAt                   time.Time       `json:"updated_at"`
}

// PayrollAdjustment holds the per-month manual inputs. At most one exists per
// (employee_code, month, year).
type PayrollAdjustment struct {
	ID             string
	CompanyID      string
	EmployeeCode   string
	Month          string // full month name
	Year           int
	ArrearAmount   decimal.Decimal
	OtherDeduction decimal.Decimal
	TDS            decimal.Decimal
	Advance        decimal.Decimal
	AutoProposed   bool
	Remarks        *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LoanStatus enum
type LoanStatus string

const (
	LoanStatusPending  LoanStatus = "Pending"
	LoanStatusApproved LoanStatus = "Approved"
	LoanStatusActive   LoanStatus = "Active"
	LoanStatusClosed   LoanStatus = "Closed"
	LoanStatusRejected LoanStatus = "Rejected"
)

// LoanRecord is an employee advance repaid through monthly deductions. The
// outstanding balance is never stored; it is derived from locked history.
type LoanRecord struct {
	ID                 string
	CompanyID          string
	EmployeeCode       string
	TotalAmount        decimal.Decimal
	InstallmentAmount  decimal.Decimal
	RepaymentStartDate *time.Time
	DisbursementDate   *time.Time
	Status             LoanStatus
	CreatedAt          time.Time
}

// StartDate is the first month repayment may be deducted. Older loan rows
// only carry the disbursement date.
func (l LoanRecord) StartDate() *time.Time {
	if l.RepaymentStartDate != nil {
		return l.RepaymentStartDate
	}
	return l.DisbursementDate
}

// IsRepayable reports whether the loan status allows deductions.
func (l LoanRecord) IsRepayable() bool {
	return l.Status == LoanStatusApproved || l.Status == LoanStatusActive
}

// RecordStatus enum
type RecordStatus string

const (
	RecordStatusOpen   RecordStatus = "Open"
	RecordStatusLocked RecordStatus = "Locked"
)

// MonthlySalaryRecord is the persisted payroll result. SalaryData is frozen
// while the record is Locked.
type MonthlySalaryRecord struct {
	ID           string
	CompanyID    string
	EmployeeCode string
	EmployeeName string
	Month        string
	Year         int
	Status       RecordStatus
	SalaryData   PayrollSnapshot
	NetPay       decimal.Decimal
	LockedAt     *time.Time
	LockedBy     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LockedAdvance is the advance deducted by one Locked salary record.
type LockedAdvance struct {
	Month   string
	Year    int
	Advance decimal.Decimal
}

// EarnedLine is a structure line next to what was earned for the month.
type EarnedLine struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Earned decimal.Decimal `json:"earned"`
}

// AttendanceSnapshot copies the attendance summary used for the computation.
type AttendanceSnapshot struct {
	Holiday       decimal.Decimal `json:"holiday"`
	WeekOff       decimal.Decimal `json:"week_off"`
	Present       decimal.Decimal `json:"present"`
	LWP           decimal.Decimal `json:"lwp"`
	Leave         decimal.Decimal `json:"leave"`
	ArrearDays    decimal.Decimal `json:"arrear_days"`
	TotalPaidDays decimal.Decimal `json:"total_paid_days"`
}

// LoanSnapshot records the loan position at computation time.
type LoanSnapshot struct {
	Loans             int             `json:"loans"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	TotalRepaid       decimal.Decimal `json:"total_repaid"`
	OutstandingBefore decimal.Decimal `json:"outstanding_before"`
	OutstandingAfter  decimal.Decimal `json:"outstanding_after"`
	Installment       decimal.Decimal `json:"installment"`
}

// PayrollSnapshot is every value the computation derived. It is the audit
// trail of a locked record and carries no timestamps, so computing it twice
// from the same inputs marshals to identical bytes.
type PayrollSnapshot struct {
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	Month        string `json:"month"`
	Year         int    `json:"year"`

	Attendance      AttendanceSnapshot `json:"attendance"`
	DaysInMonth     int                `json:"days_in_month"`
	PaidDays        decimal.Decimal    `json:"paid_days"`
	ArrearDays      decimal.Decimal    `json:"arrear_days"`
	ProrationFactor decimal.Decimal    `json:"proration_factor"`

	MonthlyGross       decimal.Decimal `json:"monthly_gross"`
	Earnings           []EarnedLine    `json:"earnings"`
	Deductions         []EarnedLine    `json:"deductions"`
	EmployerAdditional []EarnedLine    `json:"employer_additional"`

	ProratedGross           decimal.Decimal `json:"prorated_gross"`
	TotalDeductions         decimal.Decimal `json:"total_deductions"`
	TotalEmployerAdditional decimal.Decimal `json:"total_employer_additional"`

	DailyGross        decimal.Decimal `json:"daily_gross"`
	CalculatedArrears decimal.Decimal `json:"calculated_arrears"`
	ManualArrears     decimal.Decimal `json:"manual_arrears"`
	TotalArrears      decimal.Decimal `json:"total_arrears"`
	GrossWithArrears  decimal.Decimal `json:"gross_with_arrears"`

	OtherDeduction      decimal.Decimal `json:"other_deduction"`
	TDS                 decimal.Decimal `json:"tds"`
	Advance             decimal.Decimal `json:"advance"`
	AdvanceAutoProposed bool            `json:"advance_auto_proposed"`
	Loan                *LoanSnapshot   `json:"loan,omitempty"`

	NetPay decimal.Decimal `json:"net_pay"`
}

// PayrollSummary is the dashboard total over frozen snapshots of a month.
type PayrollSummary struct {
	Month              string
	Year               int
	TotalEmployees     int
	LockedCount        int
	OpenCount          int
	TotalGross         decimal.Decimal
	TotalArrears       decimal.Decimal
	TotalDeductions    decimal.Decimal
	TotalAdvance       decimal.Decimal
	TotalNetPay        decimal.Decimal
	TotalEmployerCosts decimal.Decimal
}
