package payroll

import "context"

type PayrollService interface {
	// Preview computes the snapshot for an employee-month without saving it.
	Preview(ctx context.Context, req RecordRequest) (SalaryRecordResponse, error)

	GetAdjustment(ctx context.Context, req RecordRequest) (AdjustmentResponse, error)
	// SaveAdjustment fails with ErrRecordLocked while the month is locked.
	SaveAdjustment(ctx context.Context, req SaveAdjustmentRequest) (AdjustmentResponse, error)

	Lock(ctx context.Context, req RecordRequest) (SalaryRecordResponse, error)
	Unlock(ctx context.Context, req UnlockRequest) (SalaryRecordResponse, error)
	BulkLock(ctx context.Context, req BulkRequest) (BulkResult, error)
	BulkUnlock(ctx context.Context, req BulkRequest) (BulkResult, error)

	// ProposeLoanDeductions writes auto-proposed advances for the caller's company.
	ProposeLoanDeductions(ctx context.Context, req LoanProposalRequest) (LoanProposalResult, error)
	// ProposeLoanDeductionsForCompany is the scheduler entry point; it takes
	// the company explicitly instead of from the token.
	ProposeLoanDeductionsForCompany(ctx context.Context, companyID string, month, year int) (LoanProposalResult, error)

	GetRecord(ctx context.Context, req RecordRequest) (SalaryRecordResponse, error)
	ListRecords(ctx context.Context, filter RecordFilter) (ListSalaryRecordResponse, error)
	GetSummary(ctx context.Context, month, year int) (PayrollSummaryResponse, error)
}
