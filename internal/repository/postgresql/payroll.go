package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== SALARY STRUCTURES ==========

func (r *payrollRepository) GetSalaryStructure(ctx context.Context, companyID string, employeeCode string) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT company_id, employee_code, monthly_gross, earnings_breakdown, deductions_breakdown, employer_additional_breakdown
		FROM salary_structures
		WHERE company_id = $1 AND employee_code = $2
	`

	var s payroll.SalaryStructure
	var earningsBytes, deductionsBytes, employerBytes []byte
	err := q.QueryRow(ctx, query, companyID, employeeCode).Scan(
		&s.CompanyID, &s.EmployeeCode, &s.MonthlyGross, &earningsBytes, &deductionsBytes, &employerBytes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryStructure{}, payroll.ErrSalaryStructureNotConfigured
		}
		return payroll.SalaryStructure{}, fmt.Errorf("failed to get salary structure: %w", err)
	}

	for _, part := range []struct {
		raw  []byte
		dest *[]payroll.LineItem
	}{
		{earningsBytes, &s.EarningsBreakdown},
		{deductionsBytes, &s.DeductionsBreakdown},
		{employerBytes, &s.EmployerAdditionalBreakdown},
	} {
		if err := json.Unmarshal(part.raw, part.dest); err != nil {
			return payroll.SalaryStructure{}, fmt.Errorf("failed to decode salary breakdown: %w", err)
		}
	}

	return s, nil
}

// ========== ADJUSTMENTS ==========

const adjustmentColumns = `id, company_id, employee_code, month, year, arrear_amount, other_deduction, tds, advance,
	auto_proposed, remarks, created_at, updated_at`

func scanAdjustment(row pgx.Row) (payroll.PayrollAdjustment, error) {
	var a payroll.PayrollAdjustment
	err := row.Scan(
		&a.ID, &a.CompanyID, &a.EmployeeCode, &a.Month, &a.Year, &a.ArrearAmount, &a.OtherDeduction, &a.TDS, &a.Advance,
		&a.AutoProposed, &a.Remarks, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *payrollRepository) GetAdjustment(ctx context.Context, companyID string, employeeCode string, month string, year int) (payroll.PayrollAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + adjustmentColumns + `
		FROM payroll_adjustments
		WHERE company_id = $1 AND employee_code = $2 AND month = $3 AND year = $4
	`

	adj, err := scanAdjustment(q.QueryRow(ctx, query, companyID, employeeCode, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollAdjustment{}, payroll.ErrAdjustmentNotFound
		}
		return payroll.PayrollAdjustment{}, fmt.Errorf("failed to get adjustment: %w", err)
	}
	return adj, nil
}

func (r *payrollRepository) UpsertAdjustment(ctx context.Context, adj payroll.PayrollAdjustment) (payroll.PayrollAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_adjustments (
			company_id, employee_code, month, year, arrear_amount, other_deduction, tds, advance, auto_proposed, remarks
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (company_id, employee_code, month, year) DO UPDATE SET
			arrear_amount = EXCLUDED.arrear_amount,
			other_deduction = EXCLUDED.other_deduction,
			tds = EXCLUDED.tds,
			advance = EXCLUDED.advance,
			auto_proposed = EXCLUDED.auto_proposed,
			remarks = EXCLUDED.remarks,
			updated_at = NOW()
		RETURNING ` + adjustmentColumns

	saved, err := scanAdjustment(q.QueryRow(ctx, query,
		adj.CompanyID, adj.EmployeeCode, adj.Month, adj.Year, adj.ArrearAmount, adj.OtherDeduction,
		adj.TDS, adj.Advance, adj.AutoProposed, adj.Remarks,
	))
	if err != nil {
		return payroll.PayrollAdjustment{}, fmt.Errorf("failed to save adjustment: %w", err)
	}
	return saved, nil
}

// CreateAdjustmentIfAbsent inserts adj unless a row for the same month
// exists. It reports whether a row was written.
func (r *payrollRepository) CreateAdjustmentIfAbsent(ctx context.Context, adj payroll.PayrollAdjustment) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_adjustments (
			company_id, employee_code, month, year, arrear_amount, other_deduction, tds, advance, auto_proposed, remarks
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (company_id, employee_code, month, year) DO NOTHING
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		adj.CompanyID, adj.EmployeeCode, adj.Month, adj.Year, adj.ArrearAmount, adj.OtherDeduction,
		adj.TDS, adj.Advance, adj.AutoProposed, adj.Remarks,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create adjustment: %w", err)
	}
	return true, nil
}

// ========== LOANS ==========

func (r *payrollRepository) ListRepayableLoans(ctx context.Context, companyID string, employeeCode string) ([]payroll.LoanRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_code, total_amount, installment_amount,
			repayment_start_date, disbursement_date, status, created_at
		FROM loan_records
		WHERE company_id = $1 AND employee_code = $2 AND status IN ($3, $4)
		ORDER BY COALESCE(repayment_start_date, disbursement_date, created_at::date), created_at
	`

	rows, err := q.Query(ctx, query, companyID, employeeCode, payroll.LoanStatusApproved, payroll.LoanStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var loans []payroll.LoanRecord
	for rows.Next() {
		var l payroll.LoanRecord
		if err := rows.Scan(
			&l.ID, &l.CompanyID, &l.EmployeeCode, &l.TotalAmount, &l.InstallmentAmount,
			&l.RepaymentStartDate, &l.DisbursementDate, &l.Status, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return loans, nil
}

func (r *payrollRepository) ListEmployeeCodesWithRepayableLoans(ctx context.Context, companyID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT employee_code
		FROM loan_records
		WHERE company_id = $1 AND status IN ($2, $3)
		ORDER BY employee_code
	`

	return collectStrings(q.Query(ctx, query, companyID, payroll.LoanStatusApproved, payroll.LoanStatusActive))
}

func (r *payrollRepository) ListCompanyIDsWithRepayableLoans(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT company_id::text
		FROM loan_records
		WHERE status IN ($1, $2)
	`

	return collectStrings(q.Query(ctx, query, payroll.LoanStatusApproved, payroll.LoanStatusActive))
}

// ListLockedAdvances reads the advance frozen in every Locked snapshot of
// the employee.
func (r *payrollRepository) ListLockedAdvances(ctx context.Context, companyID string, employeeCode string) ([]payroll.LockedAdvance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT month, year, COALESCE((salary_data->>'advance')::numeric, 0)
		FROM monthly_salary_records
		WHERE company_id = $1 AND employee_code = $2 AND status = $3
		ORDER BY year, created_at
	`

	rows, err := q.Query(ctx, query, companyID, employeeCode, payroll.RecordStatusLocked)
	if err != nil {
		return nil, fmt.Errorf("failed to list locked advances: %w", err)
	}
	defer rows.Close()

	var history []payroll.LockedAdvance
	for rows.Next() {
		var h payroll.LockedAdvance
		if err := rows.Scan(&h.Month, &h.Year, &h.Advance); err != nil {
			return nil, fmt.Errorf("failed to scan locked advance: %w", err)
		}
		history = append(history, h)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

// ========== SALARY RECORDS ==========

const recordColumns = `id, company_id, employee_code, employee_name, month, year, status, salary_data, net_pay,
	locked_at, locked_by, created_at, updated_at`

func scanRecord(row pgx.Row) (payroll.MonthlySalaryRecord, error) {
	var rec payroll.MonthlySalaryRecord
	var salaryData []byte
	err := row.Scan(
		&rec.ID, &rec.CompanyID, &rec.EmployeeCode, &rec.EmployeeName, &rec.Month, &rec.Year, &rec.Status,
		&salaryData, &rec.NetPay, &rec.LockedAt, &rec.LockedBy, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return payroll.MonthlySalaryRecord{}, err
	}
	if err := json.Unmarshal(salaryData, &rec.SalaryData); err != nil {
		return payroll.MonthlySalaryRecord{}, fmt.Errorf("failed to decode salary data: %w", err)
	}
	return rec, nil
}

func (r *payrollRepository) getSalaryRecord(ctx context.Context, companyID, employeeCode, month string, year int, forUpdate bool) (payroll.MonthlySalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + recordColumns + `
		FROM monthly_salary_records
		WHERE company_id = $1 AND employee_code = $2 AND month = $3 AND year = $4
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	rec, err := scanRecord(q.QueryRow(ctx, query, companyID, employeeCode, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.MonthlySalaryRecord{}, payroll.ErrRecordNotFound
		}
		return payroll.MonthlySalaryRecord{}, fmt.Errorf("failed to get salary record: %w", err)
	}
	return rec, nil
}

func (r *payrollRepository) GetSalaryRecord(ctx context.Context, companyID string, employeeCode string, month string, year int) (payroll.MonthlySalaryRecord, error) {
	return r.getSalaryRecord(ctx, companyID, employeeCode, month, year, false)
}

// GetSalaryRecordForUpdate row-locks the record until the surrounding
// transaction ends.
func (r *payrollRepository) GetSalaryRecordForUpdate(ctx context.Context, companyID string, employeeCode string, month string, year int) (payroll.MonthlySalaryRecord, error) {
	return r.getSalaryRecord(ctx, companyID, employeeCode, month, year, true)
}

func (r *payrollRepository) UpsertSalaryRecord(ctx context.Context, record payroll.MonthlySalaryRecord) (payroll.MonthlySalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	salaryData, err := json.Marshal(record.SalaryData)
	if err != nil {
		return payroll.MonthlySalaryRecord{}, fmt.Errorf("failed to encode salary data: %w", err)
	}

	query := `
		INSERT INTO monthly_salary_records (
			company_id, employee_code, employee_name, month, year, status, salary_data, net_pay, locked_at, locked_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (company_id, employee_code, month, year) DO UPDATE SET
			employee_name = EXCLUDED.employee_name,
			status = EXCLUDED.status,
			salary_data = EXCLUDED.salary_data,
			net_pay = EXCLUDED.net_pay,
			locked_at = EXCLUDED.locked_at,
			locked_by = EXCLUDED.locked_by,
			updated_at = NOW()
		RETURNING ` + recordColumns

	saved, err := scanRecord(q.QueryRow(ctx, query,
		record.CompanyID, record.EmployeeCode, record.EmployeeName, record.Month, record.Year, record.Status,
		salaryData, record.NetPay, record.LockedAt, record.LockedBy,
	))
	if err != nil {
		return payroll.MonthlySalaryRecord{}, fmt.Errorf("failed to save salary record: %w", err)
	}
	return saved, nil
}

// SetRecordStatusBulk moves every listed record in status from to status to
// and returns the employee codes that changed. Leaving Locked clears the
// lock stamp.
func (r *payrollRepository) SetRecordStatusBulk(ctx context.Context, companyID string, employeeCodes []string, month string, year int, from, to payroll.RecordStatus) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE monthly_salary_records
		SET status = $6,
			locked_at = CASE WHEN $6 = 'Locked' THEN locked_at ELSE NULL END,
			locked_by = CASE WHEN $6 = 'Locked' THEN locked_by ELSE NULL END,
			updated_at = NOW()
		WHERE company_id = $1 AND employee_code = ANY($2) AND month = $3 AND year = $4 AND status = $5
		RETURNING employee_code
	`

	codes, err := collectStrings(q.Query(ctx, query, companyID, employeeCodes, month, year, string(from), string(to)))
	if err != nil {
		return nil, fmt.Errorf("failed to update salary record status: %w", err)
	}
	return codes, nil
}

func (r *payrollRepository) ListSalaryRecords(ctx context.Context, companyID string, filter payroll.RecordFilter) ([]payroll.MonthlySalaryRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM monthly_salary_records
		WHERE company_id = $1
	`
	args := []interface{}{companyID}
	argIdx := 2

	if filter.Month != nil {
		baseQuery += fmt.Sprintf(" AND month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		baseQuery += fmt.Sprintf(" AND year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmployeeCode != nil {
		baseQuery += fmt.Sprintf(" AND employee_code = $%d", argIdx)
		args = append(args, *filter.EmployeeCode)
		argIdx++
	}

	// Count query
	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count salary records: %w", err)
	}

	// Pagination
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT %s
		%s
		ORDER BY year DESC, created_at DESC, employee_code ASC
		LIMIT $%d OFFSET $%d
	`, recordColumns, baseQuery, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var records []payroll.MonthlySalaryRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan salary record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, totalCount, nil
}

// GetPayrollSummary totals the stored snapshots of one month. Deductions
// cover structure deductions, other deductions and TDS; employer cost is
// gross with arrears plus employer contributions.
func (r *payrollRepository) GetPayrollSummary(ctx context.Context, companyID string, month string, year int) (payroll.PayrollSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) as total_employees,
			COUNT(*) FILTER (WHERE status = 'Locked') as locked_count,
			COUNT(*) FILTER (WHERE status = 'Open') as open_count,
			COALESCE(SUM((salary_data->>'prorated_gross')::numeric), 0) as total_gross,
			COALESCE(SUM((salary_data->>'total_arrears')::numeric), 0) as total_arrears,
			COALESCE(SUM((salary_data->>'total_deductions')::numeric
				+ (salary_data->>'other_deduction')::numeric
				+ (salary_data->>'tds')::numeric), 0) as total_deductions,
			COALESCE(SUM((salary_data->>'advance')::numeric), 0) as total_advance,
			COALESCE(SUM(net_pay), 0) as total_net_pay,
			COALESCE(SUM((salary_data->>'gross_with_arrears')::numeric
				+ (salary_data->>'total_employer_additional')::numeric), 0) as total_employer_costs
		FROM monthly_salary_records
		WHERE company_id = $1 AND month = $2 AND year = $3
	`

	summary := payroll.PayrollSummary{Month: month, Year: year}
	err := q.QueryRow(ctx, query, companyID, month, year).Scan(
		&summary.TotalEmployees, &summary.LockedCount, &summary.OpenCount,
		&summary.TotalGross, &summary.TotalArrears, &summary.TotalDeductions,
		&summary.TotalAdvance, &summary.TotalNetPay, &summary.TotalEmployerCosts,
	)
	if err != nil {
		return payroll.PayrollSummary{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	return summary, nil
}

func collectStrings(rows pgx.Rows, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
