package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
)

// LoanProposer is the part of the payroll service the loan job drives.
type LoanProposer interface {
	ProposeLoanDeductionsForCompany(ctx context.Context, companyID string, month, year int) (payroll.LoanProposalResult, error)
}

// CompanyLister lists companies with loans still being repaid.
type CompanyLister interface {
	ListCompanyIDsWithRepayableLoans(ctx context.Context) ([]string, error)
}

type PayrollJobs struct {
	proposer  LoanProposer
	companies CompanyLister
	location  *time.Location
	interval  time.Duration
	now       func() time.Time
}

func NewPayrollJobs(proposer LoanProposer, companies CompanyLister, location *time.Location, interval time.Duration) *PayrollJobs {
	if location == nil {
		location = time.UTC
	}
	return &PayrollJobs{
		proposer:  proposer,
		companies: companies,
		location:  location,
		interval:  interval,
		now:       time.Now,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) error {
	return scheduler.AddJob(Job{
		Name:     "propose_loan_deductions",
		Interval: j.interval,
		Fn:       j.ProposeLoanDeductions,
	})
}

// ProposeLoanDeductions writes auto-proposed advances for the current month
// of every company with repayable loans. Existing adjustments are kept, so
// repeated runs are harmless.
func (j *PayrollJobs) ProposeLoanDeductions(ctx context.Context) error {
	now := j.now().In(j.location)
	month, year := int(now.Month()), now.Year()

	companyIDs, err := j.companies.ListCompanyIDsWithRepayableLoans(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies with loans: %w", err)
	}

	slog.Info("Cron: proposing loan deductions", "companies", len(companyIDs), "month", month, "year", year)

	failed := 0
	for _, companyID := range companyIDs {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		result, err := j.proposer.ProposeLoanDeductionsForCompany(ctx, companyID, month, year)
		if err != nil {
			failed++
			slog.Error("Cron: loan proposal failed", "company_id", companyID, "error", err)
			continue
		}
		slog.Info("Cron: loan proposal done",
			"company_id", companyID,
			"proposed", len(result.Proposed),
			"kept", result.Kept,
			"skipped", len(result.Skipped),
		)
	}

	if failed > 0 {
		return fmt.Errorf("loan proposal failed for %d of %d companies", failed, len(companyIDs))
	}
	return nil
}
