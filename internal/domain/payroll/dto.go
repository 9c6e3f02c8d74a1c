package payroll

import (
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

func validatePeriod(errs validator.ValidationErrors, month, year int) validator.ValidationErrors {
	if !validator.IsValidPeriod(month, year) {
		if month < 1 || month > 12 {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
		} else {
			errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
		}
	}
	return errs
}

// ========== RECORD DTOs ==========

type RecordRequest struct {
	EmployeeCode string `json:"employee_code"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
}

func (r *RecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	}
	errs = validatePeriod(errs, r.Month, r.Year)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UnlockRequest struct {
	EmployeeCode string `json:"employee_code"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
	Confirm      bool   `json:"confirm"`
}

func (r *UnlockRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	}
	errs = validatePeriod(errs, r.Month, r.Year)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkRequest struct {
	EmployeeCodes []string `json:"employee_codes"`
	Month         int      `json:"month"`
	Year          int      `json:"year"`
	Confirm       bool     `json:"confirm"` // bulk unlock only
}

func (r *BulkRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeCodes) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_codes", Message: "at least one employee code is required"})
	}
	for _, code := range r.EmployeeCodes {
		if validator.IsEmpty(code) {
			errs = append(errs, validator.ValidationError{Field: "employee_codes", Message: "must not contain empty codes"})
			break
		}
	}
	errs = validatePeriod(errs, r.Month, r.Year)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkFailure struct {
	EmployeeCode string `json:"employee_code"`
	Reason       string `json:"reason"`
}

// BulkResult is the partial-success summary of a bulk operation.
type BulkResult struct {
	Requested int           `json:"requested"`
	Succeeded int           `json:"succeeded"`
	Skipped   []BulkFailure `json:"skipped"`
}

type SalaryRecordResponse struct {
	ID           string          `json:"id,omitempty"`
	EmployeeCode string          `json:"employee_code"`
	EmployeeName string          `json:"employee_name"`
	Month        string          `json:"month"`
	Year         int             `json:"year"`
	Status       string          `json:"status"`
	SalaryData   PayrollSnapshot `json:"salary_data"`
	NetPay       decimal.Decimal `json:"net_pay"`
	LockedAt     *string         `json:"locked_at,omitempty"`
	LockedBy     *string         `json:"locked_by,omitempty"`
}

type RecordFilter struct {
	Month        *string `json:"month,omitempty"` // full month name
	Year         *int    `json:"year,omitempty"`
	Status       *string `json:"status,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	Page         int     `json:"page"`
	Limit        int     `json:"limit"`
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{string(RecordStatusOpen), string(RecordStatusLocked)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be Open or Locked"})
	}
	if f.Year != nil && *f.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListSalaryRecordResponse struct {
	Data       []SalaryRecordResponse `json:"data"`
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
}

// ========== ADJUSTMENT DTOs ==========

type SaveAdjustmentRequest struct {
	EmployeeCode   string          `json:"employee_code"`
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	ArrearAmount   decimal.Decimal `json:"arrear_amount"` // may be negative to claw back
	OtherDeduction decimal.Decimal `json:"other_deduction"`
	TDS            decimal.Decimal `json:"tds"`
	Advance        decimal.Decimal `json:"advance"`
	Remarks        *string         `json:"remarks,omitempty"`
}

func (r *SaveAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	}
	errs = validatePeriod(errs, r.Month, r.Year)
	if !validator.IsNonNegative(r.OtherDeduction) {
		errs = append(errs, validator.ValidationError{Field: "other_deduction", Message: "must be non-negative"})
	}
	if !validator.IsNonNegative(r.TDS) {
		errs = append(errs, validator.ValidationError{Field: "tds", Message: "must be non-negative"})
	}
	if !validator.IsNonNegative(r.Advance) {
		errs = append(errs, validator.ValidationError{Field: "advance", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdjustmentResponse struct {
	EmployeeCode   string          `json:"employee_code"`
	Month          string          `json:"month"`
	Year           int             `json:"year"`
	ArrearAmount   decimal.Decimal `json:"arrear_amount"`
	OtherDeduction decimal.Decimal `json:"other_deduction"`
	TDS            decimal.Decimal `json:"tds"`
	Advance        decimal.Decimal `json:"advance"`
	AutoProposed   bool            `json:"auto_proposed"`
	Remarks        *string         `json:"remarks,omitempty"`
}

// ========== LOAN DTOs ==========

type LoanProposalRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *LoanProposalRequest) Validate() error {
	errs := validatePeriod(nil, r.Month, r.Year)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoanProposal struct {
	EmployeeCode string          `json:"employee_code"`
	Outstanding  decimal.Decimal `json:"outstanding"`
	Amount       decimal.Decimal `json:"amount"`
}

type LoanProposalResult struct {
	Month    string         `json:"month"`
	Year     int            `json:"year"`
	Proposed []LoanProposal `json:"proposed"`
	// Kept counts employees whose existing adjustment was left untouched.
	Kept    int           `json:"kept"`
	Skipped []BulkFailure `json:"skipped"`
}

// ========== SUMMARY DTOs ==========

type PayrollSummaryResponse struct {
	Month              string          `json:"month"`
	Year               int             `json:"year"`
	TotalEmployees     int             `json:"total_employees"`
	LockedCount        int             `json:"locked_count"`
	OpenCount          int             `json:"open_count"`
	TotalGross         decimal.Decimal `json:"total_gross"`
	TotalArrears       decimal.Decimal `json:"total_arrears"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	TotalAdvance       decimal.Decimal `json:"total_advance"`
	TotalNetPay        decimal.Decimal `json:"total_net_pay"`
	TotalEmployerCosts decimal.Decimal `json:"total_employer_costs"`
}
