package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type ruleRepositoryImpl struct {
	db *database.DB
}

func NewRuleRepository(db *database.DB) attendance.RuleRepository {
	return &ruleRepositoryImpl{db: db}
}

// GetRules implements attendance.RuleRepository.
func (r *ruleRepositoryImpl) GetRules(ctx context.Context, companyID string) (attendance.ThresholdRuleSet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, in_grace_period, out_grace_period, late_threshold,
			in_short_leave_threshold, out_short_leave_threshold, in_half_day_threshold, out_half_day_threshold,
			compounding_rules, updated_at
		FROM attendance_threshold_rules
		WHERE company_id = $1
	`

	rules, err := scanRuleSet(q.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ThresholdRuleSet{}, attendance.ErrRuleSetNotFound
		}
		return attendance.ThresholdRuleSet{}, fmt.Errorf("failed to get threshold rules: %w", err)
	}
	return rules, nil
}

// SaveRules implements attendance.RuleRepository. One rule set exists per
// company; saving replaces it.
func (r *ruleRepositoryImpl) SaveRules(ctx context.Context, rules attendance.ThresholdRuleSet) (attendance.ThresholdRuleSet, error) {
	q := GetQuerier(ctx, r.db)

	compounding := rules.CompoundingRules
	if compounding == nil {
		compounding = []attendance.CompoundingRule{}
	}
	compoundingJSON, err := json.Marshal(compounding)
	if err != nil {
		return attendance.ThresholdRuleSet{}, fmt.Errorf("failed to marshal compounding rules: %w", err)
	}

	query := `
		INSERT INTO attendance_threshold_rules (
			company_id, in_grace_period, out_grace_period, late_threshold,
			in_short_leave_threshold, out_short_leave_threshold, in_half_day_threshold, out_half_day_threshold,
			compounding_rules
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (company_id) DO UPDATE SET
			in_grace_period = EXCLUDED.in_grace_period,
			out_grace_period = EXCLUDED.out_grace_period,
			late_threshold = EXCLUDED.late_threshold,
			in_short_leave_threshold = EXCLUDED.in_short_leave_threshold,
			out_short_leave_threshold = EXCLUDED.out_short_leave_threshold,
			in_half_day_threshold = EXCLUDED.in_half_day_threshold,
			out_half_day_threshold = EXCLUDED.out_half_day_threshold,
			compounding_rules = EXCLUDED.compounding_rules,
			updated_at = NOW()
		RETURNING id, company_id, in_grace_period, out_grace_period, late_threshold,
			in_short_leave_threshold, out_short_leave_threshold, in_half_day_threshold, out_half_day_threshold,
			compounding_rules, updated_at
	`

	saved, err := scanRuleSet(q.QueryRow(ctx, query,
		rules.CompanyID, rules.InGracePeriod, rules.OutGracePeriod, rules.LateThreshold,
		rules.InShortLeaveThreshold, rules.OutShortLeaveThreshold, rules.InHalfDayThreshold, rules.OutHalfDayThreshold,
		compoundingJSON,
	))
	if err != nil {
		return attendance.ThresholdRuleSet{}, fmt.Errorf("failed to save threshold rules: %w", err)
	}
	return saved, nil
}

func scanRuleSet(row pgx.Row) (attendance.ThresholdRuleSet, error) {
	var rules attendance.ThresholdRuleSet
	var compoundingBytes []byte
	err := row.Scan(
		&rules.ID, &rules.CompanyID, &rules.InGracePeriod, &rules.OutGracePeriod, &rules.LateThreshold,
		&rules.InShortLeaveThreshold, &rules.OutShortLeaveThreshold, &rules.InHalfDayThreshold, &rules.OutHalfDayThreshold,
		&compoundingBytes, &rules.UpdatedAt,
	)
	if err != nil {
		return attendance.ThresholdRuleSet{}, err
	}
	if err := json.Unmarshal(compoundingBytes, &rules.CompoundingRules); err != nil {
		return attendance.ThresholdRuleSet{}, fmt.Errorf("failed to decode compounding rules: %w", err)
	}
	return rules, nil
}
