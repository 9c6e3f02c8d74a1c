package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/messaging/kafka"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/period"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type PayrollServiceImpl struct {
	tx             database.Transactor
	payrollRepo    payroll.PayrollRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	outbox         kafka.OutboxRepository
	topic          string
	now            func() time.Time
}

// NewPayrollService wires the lock state machine. outbox may be nil, in
// which case lock transitions publish nothing.
func NewPayrollService(
	tx database.Transactor,
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	outbox kafka.OutboxRepository,
	topic string,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		tx:             tx,
		payrollRepo:    payrollRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		outbox:         outbox,
		topic:          topic,
		now:            time.Now,
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

func newPeriod(month, year int) (period.Period, error) {
	p, err := period.New(month, year)
	if err != nil {
		return period.Period{}, fmt.Errorf("%w: %v", payroll.ErrInvalidPeriod, err)
	}
	return p, nil
}

// ========== COMPUTATION ==========

// compute gathers the inputs of one employee-month and derives its snapshot.
func (s *PayrollServiceImpl) compute(ctx context.Context, companyID, employeeCode string, p period.Period) (payroll.PayrollSnapshot, error) {
	emp, err := s.employeeRepo.GetByEmployeeCode(ctx, companyID, employeeCode)
	if err != nil {
		return payroll.PayrollSnapshot{}, err
	}

	structure, err := s.payrollRepo.GetSalaryStructure(ctx, companyID, employeeCode)
	if err != nil {
		return payroll.PayrollSnapshot{}, err
	}

	summary, err := s.attendanceRepo.GetMonthlySummary(ctx, companyID, employeeCode, p.MonthName(), p.Year)
	if err != nil {
		return payroll.PayrollSnapshot{}, err
	}

	var adjustment *payroll.PayrollAdjustment
	adj, err := s.payrollRepo.GetAdjustment(ctx, companyID, employeeCode, p.MonthName(), p.Year)
	switch {
	case err == nil:
		adjustment = &adj
	case errors.Is(err, payroll.ErrAdjustmentNotFound):
	default:
		return payroll.PayrollSnapshot{}, err
	}

	loans, history, err := s.loanHistory(ctx, companyID, employeeCode)
	if err != nil {
		return payroll.PayrollSnapshot{}, err
	}

	return ComputeSnapshot(SnapshotInput{
		EmployeeCode:  employeeCode,
		EmployeeName:  emp.FullName,
		Period:        p,
		Structure:     &structure,
		Summary:       &summary,
		Adjustment:    adjustment,
		Loans:         loans,
		LockedHistory: history,
	})
}

func (s *PayrollServiceImpl) loanHistory(ctx context.Context, companyID, employeeCode string) ([]payroll.LoanRecord, []payroll.LockedAdvance, error) {
	loans, err := s.payrollRepo.ListRepayableLoans(ctx, companyID, employeeCode)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list loans: %w", err)
	}
	if len(loans) == 0 {
		return nil, nil, nil
	}
	history, err := s.payrollRepo.ListLockedAdvances(ctx, companyID, employeeCode)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list locked advances: %w", err)
	}
	return loans, history, nil
}

// Preview implements payroll.PayrollService.
func (s *PayrollServiceImpl) Preview(ctx context.Context, req payroll.RecordRequest) (payroll.SalaryRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	p, err := newPeriod(req.Month, req.Year)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	// A locked month shows its frozen snapshot, never a recomputation.
	record, err := s.payrollRepo.GetSalaryRecord(ctx, companyID, req.EmployeeCode, p.MonthName(), p.Year)
	if err == nil && record.Status == payroll.RecordStatusLocked {
		return mapToRecordResponse(record), nil
	}
	if err != nil && !errors.Is(err, payroll.ErrRecordNotFound) {
		return payroll.SalaryRecordResponse{}, err
	}

	snapshot, err := s.compute(ctx, companyID, req.EmployeeCode, p)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	return mapToRecordResponse(payroll.MonthlySalaryRecord{
		ID:           record.ID,
		EmployeeCode: req.EmployeeCode,
		EmployeeName: snapshot.EmployeeName,
		Month:        p.MonthName(),
		Year:         p.Year,
		Status:       payroll.RecordStatusOpen,
		SalaryData:   snapshot,
		NetPay:       snapshot.NetPay,
	}), nil
}

// ========== ADJUSTMENTS ==========

func (s *PayrollServiceImpl) GetAdjustment(ctx context.Context, req payroll.RecordRequest) (payroll.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.AdjustmentResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.AdjustmentResponse{}, err
	}

	p, err := newPeriod(req.Month, req.Year)
	if err != nil {
		return payroll.AdjustmentResponse{}, err
	}

	adj, err := s.payrollRepo.GetAdjustment(ctx, companyID, req.EmployeeCode, p.MonthName(), p.Year)
	if err != nil {
		return payroll.AdjustmentResponse{}, err
	}
	return mapToAdjustmentResponse(adj), nil
}

// SaveAdjustment implements payroll.PayrollService.
func (s *PayrollServiceImpl) SaveAdjustment(ctx context.Context, req payroll.SaveAdjustmentRequest) (payroll.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.AdjustmentResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.AdjustmentResponse{}, err
	}

	p, err := newPeriod(req.Month, req.Year)
	if err != nil {
		return payroll.AdjustmentResponse{}, err
	}

	var saved payroll.PayrollAdjustment
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.ensureNotLocked(ctx, companyID, req.EmployeeCode, p); err != nil {
			return err
		}

		var err error
		saved, err = s.payrollRepo.UpsertAdjustment(ctx, payroll.PayrollAdjustment{
			CompanyID:      companyID,
			EmployeeCode:   req.EmployeeCode,
			Month:          p.MonthName(),
			Year:           p.Year,
			ArrearAmount:   req.ArrearAmount,
			OtherDeduction: req.OtherDeduction,
			TDS:            req.TDS,
			Advance:        req.Advance,
			AutoProposed:   false,
			Remarks:        req.Remarks,
		})
		return err
	})
	if err != nil {
		return payroll.AdjustmentResponse{}, err
	}

	return mapToAdjustmentResponse(saved), nil
}

// ensureNotLocked row-locks the salary record, if any, and fails while it is
// Locked. It must run inside a transaction.
func (s *PayrollServiceImpl) ensureNotLocked(ctx context.Context, companyID, employeeCode string, p period.Period) error {
	record, err := s.payrollRepo.GetSalaryRecordForUpdate(ctx, companyID, employeeCode, p.MonthName(), p.Year)
	if err != nil {
		if errors.Is(err, payroll.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if record.Status == payroll.RecordStatusLocked {
		return payroll.ErrRecordLocked
	}
	return nil
}

// ========== LOCK STATE MACHINE ==========

// Lock implements payroll.PayrollService.
func (s *PayrollServiceImpl) Lock(ctx context.Context, req payroll.RecordRequest) (payroll.SalaryRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	p, err := newPeriod(req.Month, req.Year)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	record, err := s.lockOne(ctx, companyID, userID, req.EmployeeCode, p)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}
	return mapToRecordResponse(record), nil
}

// lockOne recomputes and locks one record in its own transaction. A record
// that is already Locked is returned as is so its snapshot stays frozen.
func (s *PayrollServiceImpl) lockOne(ctx context.Context, companyID, userID, employeeCode string, p period.Period) (payroll.MonthlySalaryRecord, error) {
	var result payroll.MonthlySalaryRecord
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.payrollRepo.GetSalaryRecordForUpdate(ctx, companyID, employeeCode, p.MonthName(), p.Year)
		switch {
		case err == nil && existing.Status == payroll.RecordStatusLocked:
			result = existing
			return nil
		case err != nil && !errors.Is(err, payroll.ErrRecordNotFound):
			return err
		}

		snapshot, err := s.compute(ctx, companyID, employeeCode, p)
		if err != nil {
			return err
		}

		lockedAt := s.now().UTC()
		record := payroll.MonthlySalaryRecord{
			CompanyID:    companyID,
			EmployeeCode: employeeCode,
			EmployeeName: snapshot.EmployeeName,
			Month:        p.MonthName(),
			Year:         p.Year,
			Status:       payroll.RecordStatusLocked,
			SalaryData:   snapshot,
			NetPay:       snapshot.NetPay,
			LockedAt:     &lockedAt,
		}
		if userID != "" {
			record.LockedBy = &userID
		}

		result, err = s.payrollRepo.UpsertSalaryRecord(ctx, record)
		if err != nil {
			return err
		}

		return s.enqueue(ctx, kafka.EventSalaryRecordLocked, result, userID)
	})
	if err != nil {
		return payroll.MonthlySalaryRecord{}, err
	}
	return result, nil
}

// Unlock implements payroll.PayrollService.
func (s *PayrollServiceImpl) Unlock(ctx context.Context, req payroll.UnlockRequest) (payroll.SalaryRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryRecordResponse{}, err
	}
	if !req.Confirm {
		return payroll.SalaryRecordResponse{}, payroll.ErrUnlockConfirmationRequired
	}

	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	p, err := newPeriod(req.Month, req.Year)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	var result payroll.MonthlySalaryRecord
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		record, err := s.payrollRepo.GetSalaryRecordForUpdate(ctx, companyID, req.EmployeeCode, p.MonthName(), p.Year)
		if err != nil {
			return err
		}
		result = record
		if record.Status != payroll.RecordStatusLocked {
			return nil
		}

		changed, err := s.payrollRepo.SetRecordStatusBulk(ctx, companyID, []string{req.EmployeeCode}, p.MonthName(), p.Year,
			payroll.RecordStatusLocked, payroll.RecordStatusOpen)
		if err != nil {
			return err
		}
		if len(changed) == 0 {
			return nil
		}

		result.Status = payroll.RecordStatusOpen
		return s.enqueue(ctx, kafka.EventSalaryRecordUnlocked, result, userID)
	})
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	return mapToRecordResponse(result), nil
}

// BulkLock implements payroll.PayrollService. Every employee is locked in
// its own transaction; one failure never rolls back another employee.
func (s *PayrollServiceImpl) BulkLock(ctx context.Context, req payroll.BulkRequest) (payroll.BulkResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.BulkResult{}, err
	}

	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.BulkResult{}, err
	}

	p, err := newPeriod(req.Month, req.Year)
	if err != nil {
		return payroll.BulkResult{}, err
	}

	codes := uniqueCodes(req.EmployeeCodes)
	result := payroll.BulkResult{Requested: len(codes), Skipped: []payroll.BulkFailure{}}
	for _, code := range codes {
		if _, err := s.lockOne(ctx, companyID, userID, code, p); err != nil {
			slog.Warn("bulk lock skipped employee",
				"company_id", companyID,
				"employee_code", code,
				"period", p.String(),
				"error", err,
			)
			result.Skipped = append(result.Skipped, payroll.BulkFailure{EmployeeCode: code, Reason: err.Error()})
			continue
		}
		result.Succeeded++
	}

	slog.Info("bulk lock finished",
		"company_id", companyID,
		"period", p.String(),
		"locked", result.Succeeded,
		"skipped", len(result.Skipped),
	)
	return result, nil
}

// BulkUnlock implements payroll.PayrollService with a single batched status
// update. Codes that were not Locked are reported as skipped.
func (s *PayrollServiceImpl) BulkUnlock(ctx context.Context, req payroll.BulkRequest) (payroll.BulkResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.BulkResult{}, err
	}
	if !req.Confirm {
		return payroll.BulkResult{}, payroll.ErrUnlockConfirmationRequired
	}

	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.BulkResult{}, err
	}

	p, err := newPeriod(req.Month, req.Year)
	if err != nil {
		return payroll.BulkResult{}, err
	}

	codes := uniqueCodes(req.EmployeeCodes)
	result := payroll.BulkResult{Requested: len(codes), Skipped: []payroll.BulkFailure{}}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		changed, err := s.payrollRepo.SetRecordStatusBulk(ctx, companyID, codes, p.MonthName(), p.Year,
			payroll.RecordStatusLocked, payroll.RecordStatusOpen)
		if err != nil {
			return err
		}

		unlocked := make(map[string]bool, len(changed))
		for _, code := range changed {
			unlocked[code] = true
			record := payroll.MonthlySalaryRecord{
				CompanyID:    companyID,
				EmployeeCode: code,
				Month:        p.MonthName(),
				Year:         p.Year,
				Status:       payroll.RecordStatusOpen,
			}
			if err := s.enqueue(ctx, kafka.EventSalaryRecordUnlocked, record, userID); err != nil {
				return err
			}
		}

		for _, code := range codes {
			if !unlocked[code] {
				result.Skipped = append(result.Skipped, payroll.BulkFailure{EmployeeCode: code, Reason: "record is not locked"})
			}
		}
		result.Succeeded = len(changed)
		return nil
	})
	if err != nil {
		return payroll.BulkResult{}, err
	}

	return result, nil
}

// ========== LOANS ==========

// ProposeLoanDeductions implements payroll.PayrollService.
func (s *PayrollServiceImpl) ProposeLoanDeductions(ctx context.Context, req payroll.LoanProposalRequest) (payroll.LoanProposalResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.LoanProposalResult{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.LoanProposalResult{}, err
	}

	return s.ProposeLoanDeductionsForCompany(ctx, companyID, req.Month, req.Year)
}

// ProposeLoanDeductionsForCompany writes an auto-proposed advance for every
// employee with a repayable loan. Existing adjustments are never touched and
// locked months are left alone.
func (s *PayrollServiceImpl) ProposeLoanDeductionsForCompany(ctx context.Context, companyID string, month, year int) (payroll.LoanProposalResult, error) {
	p, err := newPeriod(month, year)
	if err != nil {
		return payroll.LoanProposalResult{}, err
	}

	codes, err := s.payrollRepo.ListEmployeeCodesWithRepayableLoans(ctx, companyID)
	if err != nil {
		return payroll.LoanProposalResult{}, fmt.Errorf("failed to list employees with loans: %w", err)
	}

	result := payroll.LoanProposalResult{
		Month:    p.MonthName(),
		Year:     p.Year,
		Proposed: []payroll.LoanProposal{},
		Skipped:  []payroll.BulkFailure{},
	}
	for _, code := range codes {
		proposal, written, err := s.proposeOne(ctx, companyID, code, p)
		switch {
		case err != nil:
			slog.Warn("loan proposal skipped employee",
				"company_id", companyID,
				"employee_code", code,
				"period", p.String(),
				"error", err,
			)
			result.Skipped = append(result.Skipped, payroll.BulkFailure{EmployeeCode: code, Reason: err.Error()})
		case written:
			result.Proposed = append(result.Proposed, proposal)
		case proposal.Amount.IsPositive():
			result.Kept++
		}
	}

	slog.Info("loan deductions proposed",
		"company_id", companyID,
		"period", p.String(),
		"proposed", len(result.Proposed),
		"kept", result.Kept,
		"skipped", len(result.Skipped),
	)
	return result, nil
}

func (s *PayrollServiceImpl) proposeOne(ctx context.Context, companyID, employeeCode string, p period.Period) (payroll.LoanProposal, bool, error) {
	var proposal payroll.LoanProposal
	var written bool
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.ensureNotLocked(ctx, companyID, employeeCode, p); err != nil {
			return err
		}

		loans, history, err := s.loanHistory(ctx, companyID, employeeCode)
		if err != nil {
			return err
		}
		pos := PlanLoans(loans, history, p)
		proposal = payroll.LoanProposal{EmployeeCode: employeeCode, Outstanding: pos.Outstanding, Amount: pos.Proposed}
		if !pos.Proposed.IsPositive() {
			return nil
		}

		written, err = s.payrollRepo.CreateAdjustmentIfAbsent(ctx, payroll.PayrollAdjustment{
			CompanyID:    companyID,
			EmployeeCode: employeeCode,
			Month:        p.MonthName(),
			Year:         p.Year,
			Advance:      pos.Proposed,
			AutoProposed: true,
		})
		return err
	})
	return proposal, written, err
}

// ========== RECORDS ==========

func (s *PayrollServiceImpl) GetRecord(ctx context.Context, req payroll.RecordRequest) (payroll.SalaryRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	p, err := newPeriod(req.Month, req.Year)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	record, err := s.payrollRepo.GetSalaryRecord(ctx, companyID, req.EmployeeCode, p.MonthName(), p.Year)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}
	return mapToRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.RecordFilter) (payroll.ListSalaryRecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListSalaryRecordResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ListSalaryRecordResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, totalCount, err := s.payrollRepo.ListSalaryRecords(ctx, companyID, filter)
	if err != nil {
		return payroll.ListSalaryRecordResponse{}, err
	}

	return payroll.ListSalaryRecordResponse{
		Data:       mapToRecordResponses(records),
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// ========== SUMMARY ==========

// GetSummary totals the month from stored snapshots only.
func (s *PayrollServiceImpl) GetSummary(ctx context.Context, month, year int) (payroll.PayrollSummaryResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	p, err := newPeriod(month, year)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	summary, err := s.payrollRepo.GetPayrollSummary(ctx, companyID, p.MonthName(), p.Year)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	return payroll.PayrollSummaryResponse{
		Month:              p.MonthName(),
		Year:               p.Year,
		TotalEmployees:     summary.TotalEmployees,
		LockedCount:        summary.LockedCount,
		OpenCount:          summary.OpenCount,
		TotalGross:         summary.TotalGross,
		TotalArrears:       summary.TotalArrears,
		TotalDeductions:    summary.TotalDeductions,
		TotalAdvance:       summary.TotalAdvance,
		TotalNetPay:        summary.TotalNetPay,
		TotalEmployerCosts: summary.TotalEmployerCosts,
	}, nil
}

// ========== HELPERS ==========

// enqueue writes a lock transition event into the outbox within the
// transaction carried by ctx.
func (s *PayrollServiceImpl) enqueue(ctx context.Context, eventType string, record payroll.MonthlySalaryRecord, actorID string) error {
	if s.outbox == nil {
		return nil
	}

	aggregateID := record.ID
	if aggregateID == "" {
		aggregateID = fmt.Sprintf("%s:%s:%s:%d", record.CompanyID, record.EmployeeCode, record.Month, record.Year)
	}

	payload, err := json.Marshal(kafka.SalaryRecordEvent{
		EventType:    eventType,
		CompanyID:    record.CompanyID,
		RecordID:     record.ID,
		EmployeeCode: record.EmployeeCode,
		Month:        record.Month,
		Year:         record.Year,
		Status:       string(record.Status),
		NetPay:       record.NetPay,
		ActorID:      actorID,
		OccurredAt:   s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	event := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		CompanyID:     record.CompanyID,
		AggregateType: kafka.AggregateSalaryRecord,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         s.topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := kafka.ValidateOutboxEvent(event); err != nil {
		return err
	}
	if err := s.outbox.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to queue %s event: %w", eventType, err)
	}
	return nil
}

func uniqueCodes(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

func mapToRecordResponse(r payroll.MonthlySalaryRecord) payroll.SalaryRecordResponse {
	var lockedAtStr *string
	if r.LockedAt != nil {
		str := r.LockedAt.Format(time.RFC3339)
		lockedAtStr = &str
	}

	return payroll.SalaryRecordResponse{
		ID:           r.ID,
		EmployeeCode: r.EmployeeCode,
		EmployeeName: r.EmployeeName,
		Month:        r.Month,
		Year:         r.Year,
		Status:       string(r.Status),
		SalaryData:   r.SalaryData,
		NetPay:       r.NetPay,
		LockedAt:     lockedAtStr,
		LockedBy:     r.LockedBy,
	}
}

func mapToRecordResponses(records []payroll.MonthlySalaryRecord) []payroll.SalaryRecordResponse {
	result := make([]payroll.SalaryRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToRecordResponse(r))
	}
	return result
}

func mapToAdjustmentResponse(a payroll.PayrollAdjustment) payroll.AdjustmentResponse {
	return payroll.AdjustmentResponse{
		EmployeeCode:   a.EmployeeCode,
		Month:          a.Month,
		Year:           a.Year,
		ArrearAmount:   a.ArrearAmount,
		OtherDeduction: a.OtherDeduction,
		TDS:            a.TDS,
		Advance:        a.Advance,
		AutoProposed:   a.AutoProposed,
		Remarks:        a.Remarks,
	}
}
