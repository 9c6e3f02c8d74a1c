package payroll

import "context"

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

// PayrollRepository defines data access methods for payroll.
// All methods include companyID parameter to prevent cross-company data access attacks.
type PayrollRepository interface {
	// Salary structures (read-only)
	GetSalaryStructure(ctx context.Context, companyID string, employeeCode string) (SalaryStructure, error)

	// Adjustments
	GetAdjustment(ctx context.Context, companyID string, employeeCode string, month string, year int) (PayrollAdjustment, error)
	UpsertAdjustment(ctx context.Context, adj PayrollAdjustment) (PayrollAdjustment, error)
	// CreateAdjustmentIfAbsent inserts adj unless a row already exists for the
	// employee-month. It reports whether a row was written.
	CreateAdjustmentIfAbsent(ctx context.Context, adj PayrollAdjustment) (bool, error)

	// Loans
	ListRepayableLoans(ctx context.Context, companyID string, employeeCode string) ([]LoanRecord, error)
	ListEmployeeCodesWithRepayableLoans(ctx context.Context, companyID string) ([]string, error)
	ListCompanyIDsWithRepayableLoans(ctx context.Context) ([]string, error)
	ListLockedAdvances(ctx context.Context, companyID string, employeeCode string) ([]LockedAdvance, error)

	// Salary records
	GetSalaryRecord(ctx context.Context, companyID string, employeeCode string, month string, year int) (MonthlySalaryRecord, error)
	// GetSalaryRecordForUpdate locks the row until the surrounding transaction ends.
	GetSalaryRecordForUpdate(ctx context.Context, companyID string, employeeCode string, month string, year int) (MonthlySalaryRecord, error)
	UpsertSalaryRecord(ctx context.Context, record MonthlySalaryRecord) (MonthlySalaryRecord, error)
	// SetRecordStatusBulk moves every listed record currently in from to to in
	// one statement and returns the employee codes that changed.
	SetRecordStatusBulk(ctx context.Context, companyID string, employeeCodes []string, month string, year int, from, to RecordStatus) ([]string, error)
	ListSalaryRecords(ctx context.Context, companyID string, filter RecordFilter) ([]MonthlySalaryRecord, int64, error)

	// Aggregations
	GetPayrollSummary(ctx context.Context, companyID string, month string, year int) (PayrollSummary, error)
}
