package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// ListPunches implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListPunches(ctx context.Context, companyID string, employeeCode string, from, to time.Time) ([]attendance.RawPunch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_code, punch_time, punch_type
		FROM raw_punches
		WHERE company_id = $1 AND employee_code = $2 AND punch_time >= $3 AND punch_time < $4
		ORDER BY punch_time ASC
	`

	rows, err := q.Query(ctx, query, companyID, employeeCode, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []attendance.RawPunch
	for rows.Next() {
		var p attendance.RawPunch
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.EmployeeCode, &p.PunchTime, &p.PunchType); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return punches, nil
}

// ListOverrides implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListOverrides(ctx context.Context, companyID string, employeeCode string, from, to time.Time) ([]attendance.ManualOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_code, date, status_code, reason
		FROM attendance_overrides
		WHERE company_id = $1 AND employee_code = $2 AND date >= $3::date AND date < $4::date
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, companyID, employeeCode, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}
	defer rows.Close()

	var overrides []attendance.ManualOverride
	for rows.Next() {
		var o attendance.ManualOverride
		if err := rows.Scan(&o.EmployeeCode, &o.Date, &o.StatusCode, &o.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan override: %w", err)
		}
		overrides = append(overrides, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return overrides, nil
}

// GetWeeklyOff implements attendance.AttendanceRepository. The most recent
// setting wins.
func (r *attendanceRepositoryImpl) GetWeeklyOff(ctx context.Context, companyID string, employeeCode string) (attendance.WeeklyOffSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_code, off_type, days, sandwich_rule, effective_from
		FROM weekly_off_settings
		WHERE company_id = $1 AND employee_code = $2
		ORDER BY effective_from DESC
		LIMIT 1
	`

	var setting attendance.WeeklyOffSetting
	var days []string
	err := q.QueryRow(ctx, query, companyID, employeeCode).Scan(
		&setting.EmployeeCode, &setting.Type, &days, &setting.SandwichRule, &setting.EffectiveFrom,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.WeeklyOffSetting{}, attendance.ErrWeeklyOffNotFound
		}
		return attendance.WeeklyOffSetting{}, fmt.Errorf("failed to get weekly off: %w", err)
	}

	for _, name := range days {
		if wd, ok := attendance.ParseWeekday(name); ok {
			setting.Days = append(setting.Days, wd)
		}
	}

	return setting, nil
}

// GetShiftByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetShiftByID(ctx context.Context, id string, companyID string) (attendance.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		FROM shift_schedules
		WHERE id = $1 AND company_id = $2
	`

	var shift attendance.ShiftSchedule
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&shift.ID, &shift.CompanyID, &shift.Name, &shift.StartTime, &shift.EndTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ShiftSchedule{}, attendance.ErrShiftNotFound
		}
		return attendance.ShiftSchedule{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return shift, nil
}

// GetMonthlySummary implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetMonthlySummary(ctx context.Context, companyID string, employeeCode string, month string, year int) (attendance.MonthlyAttendanceSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT company_id, employee_code, month, year, holiday, week_off, present, lwp, leave,
			arrear_days, total_paid_days, updated_at
		FROM monthly_attendance_summaries
		WHERE company_id = $1 AND employee_code = $2 AND month = $3 AND year = $4
	`

	var s attendance.MonthlyAttendanceSummary
	err := q.QueryRow(ctx, query, companyID, employeeCode, month, year).Scan(
		&s.CompanyID, &s.EmployeeCode, &s.Month, &s.Year, &s.Holiday, &s.WeekOff, &s.Present,
		&s.LWP, &s.Leave, &s.ArrearDays, &s.TotalPaidDays, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.MonthlyAttendanceSummary{}, attendance.ErrSummaryNotFound
		}
		return attendance.MonthlyAttendanceSummary{}, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	return s, nil
}
