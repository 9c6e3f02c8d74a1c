package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/period"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	ruleRepo       attendance.RuleRepository
	employeeRepo   employee.EmployeeRepository
	location       *time.Location
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	ruleRepo attendance.RuleRepository,
	employeeRepo employee.EmployeeRepository,
	location *time.Location,
) attendance.AttendanceService {
	if location == nil {
		location = time.UTC
	}
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		ruleRepo:       ruleRepo,
		employeeRepo:   employeeRepo,
		location:       location,
	}
}

// Helper to get company_id from JWT context
func getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

// ClassifyPunch implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClassifyPunch(ctx context.Context, req attendance.ClassifyPunchRequest) (attendance.ClassifyPunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClassifyPunchResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return attendance.ClassifyPunchResponse{}, err
	}

	rules, err := s.loadRules(ctx, companyID)
	if err != nil {
		return attendance.ClassifyPunchResponse{}, err
	}

	punch := ParseClock(req.PunchTime)
	status := Classify(punch, ParseClock(req.ShiftTime), attendance.Direction(req.Direction), rules)

	return attendance.ClassifyPunchResponse{
		PunchTime: punch.String(),
		ShiftTime: req.ShiftTime,
		Direction: req.Direction,
		Status:    status,
	}, nil
}

// GetDailyStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDailyStatus(ctx context.Context, req attendance.DailyStatusRequest) (attendance.DailyStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DailyStatusResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return attendance.DailyStatusResponse{}, err
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, s.location)
	if err != nil {
		return attendance.DailyStatusResponse{}, fmt.Errorf("invalid date: %w", err)
	}

	ctxData, err := s.loadEmployeeContext(ctx, companyID, req.EmployeeCode)
	if err != nil {
		return attendance.DailyStatusResponse{}, err
	}

	from, to := date, date.AddDate(0, 0, 1)
	punches, err := s.attendanceRepo.ListPunches(ctx, companyID, req.EmployeeCode, from, to)
	if err != nil {
		return attendance.DailyStatusResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}
	overrides, err := s.attendanceRepo.ListOverrides(ctx, companyID, req.EmployeeCode, from, to)
	if err != nil {
		return attendance.DailyStatusResponse{}, fmt.Errorf("failed to list overrides: %w", err)
	}

	day := CollapsePunches(punches, s.location)[req.Date]
	var override *attendance.ManualOverride
	if len(overrides) > 0 {
		override = &overrides[0]
	}

	status := ResolveDay(DayInput{
		EmployeeCode: req.EmployeeCode,
		Date:         date,
		In:           day.In(),
		Out:          day.Out(),
		Shift:        ctxData.shift,
		Override:     override,
	}, ctxData.rules, ctxData.weeklyOff)

	return mapToDailyResponse(status, day), nil
}

// GetMonthlyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthlyAttendance(ctx context.Context, req attendance.MonthlyAttendanceRequest) (attendance.MonthlyAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthlyAttendanceResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return attendance.MonthlyAttendanceResponse{}, err
	}

	p, err := period.New(req.Month, req.Year)
	if err != nil {
		return attendance.MonthlyAttendanceResponse{}, err
	}

	ctxData, err := s.loadEmployeeContext(ctx, companyID, req.EmployeeCode)
	if err != nil {
		return attendance.MonthlyAttendanceResponse{}, err
	}

	from, to := p.Start(s.location), p.End(s.location)
	punches, err := s.attendanceRepo.ListPunches(ctx, companyID, req.EmployeeCode, from, to)
	if err != nil {
		return attendance.MonthlyAttendanceResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}
	overrides, err := s.attendanceRepo.ListOverrides(ctx, companyID, req.EmployeeCode, from, to)
	if err != nil {
		return attendance.MonthlyAttendanceResponse{}, fmt.Errorf("failed to list overrides: %w", err)
	}

	days, collapsed := ResolveMonth(MonthInput{
		EmployeeCode: req.EmployeeCode,
		Period:       p,
		Location:     s.location,
		Shift:        ctxData.shift,
		Punches:      punches,
		Overrides:    overrides,
		Rules:        ctxData.rules,
		WeeklyOff:    ctxData.weeklyOff,
	})
	tally := TallyMonth(days)

	resp := attendance.MonthlyAttendanceResponse{
		EmployeeCode: req.EmployeeCode,
		Month:        p.MonthName(),
		Year:         p.Year,
		Days:         make([]attendance.DailyStatusResponse, 0, len(days)),
		Tally:        mapToTallyResponse(tally),
	}
	for _, d := range days {
		resp.Days = append(resp.Days, mapToDailyResponse(d, collapsed[d.Date.Format(dateLayout)]))
	}

	summary, err := s.attendanceRepo.GetMonthlySummary(ctx, companyID, req.EmployeeCode, p.MonthName(), p.Year)
	switch {
	case err == nil:
		sr := mapToSummaryResponse(summary)
		delta := PaidDaysDelta(tally, summary)
		resp.Summary = &sr
		resp.PaidDaysDelta = &delta
	case errors.Is(err, attendance.ErrSummaryNotFound):
		// the summary is prepared separately; the tally stands alone
	default:
		return attendance.MonthlyAttendanceResponse{}, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	return resp, nil
}

// GetRules implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetRules(ctx context.Context) (attendance.ThresholdRuleSet, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return attendance.ThresholdRuleSet{}, err
	}
	return s.loadRules(ctx, companyID)
}

// SaveRules implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SaveRules(ctx context.Context, req attendance.SaveRulesRequest) (attendance.ThresholdRuleSet, error) {
	if err := req.Validate(); err != nil {
		return attendance.ThresholdRuleSet{}, err
	}
	if err := ValidateCompoundingRules(req.CompoundingRules); err != nil {
		return attendance.ThresholdRuleSet{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return attendance.ThresholdRuleSet{}, err
	}

	return s.ruleRepo.SaveRules(ctx, req.ToRuleSet(companyID))
}

// loadRules falls back to an empty rule set (no thresholds, zero grace)
// when the company has not saved one yet.
func (s *AttendanceServiceImpl) loadRules(ctx context.Context, companyID string) (attendance.ThresholdRuleSet, error) {
	rules, err := s.ruleRepo.GetRules(ctx, companyID)
	if err != nil {
		if errors.Is(err, attendance.ErrRuleSetNotFound) {
			return attendance.ThresholdRuleSet{CompanyID: companyID}, nil
		}
		return attendance.ThresholdRuleSet{}, err
	}
	return rules, nil
}

type employeeContext struct {
	shift     attendance.ShiftSchedule
	rules     attendance.ThresholdRuleSet
	weeklyOff *attendance.WeeklyOffSetting
}

func (s *AttendanceServiceImpl) loadEmployeeContext(ctx context.Context, companyID, employeeCode string) (employeeContext, error) {
	emp, err := s.employeeRepo.GetByEmployeeCode(ctx, companyID, employeeCode)
	if err != nil {
		return employeeContext{}, err
	}
	if emp.ShiftID == nil {
		return employeeContext{}, employee.ErrShiftNotAssigned
	}

	shift, err := s.attendanceRepo.GetShiftByID(ctx, *emp.ShiftID, companyID)
	if err != nil {
		return employeeContext{}, err
	}

	rules, err := s.loadRules(ctx, companyID)
	if err != nil {
		return employeeContext{}, err
	}

	var weeklyOff *attendance.WeeklyOffSetting
	setting, err := s.attendanceRepo.GetWeeklyOff(ctx, companyID, employeeCode)
	switch {
	case err == nil:
		weeklyOff = &setting
	case errors.Is(err, attendance.ErrWeeklyOffNotFound):
	default:
		return employeeContext{}, fmt.Errorf("failed to get weekly off: %w", err)
	}

	return employeeContext{shift: shift, rules: rules, weeklyOff: weeklyOff}, nil
}

// ========== HELPERS ==========

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	str := t.Format("15:04")
	return &str
}

func mapToDailyResponse(d attendance.DailyStatus, punches DayPunches) attendance.DailyStatusResponse {
	return attendance.DailyStatusResponse{
		EmployeeCode: d.EmployeeCode,
		Date:         d.Date.Format(dateLayout),
		Weekday:      d.Date.Weekday().String(),
		InPunch:      formatClock(punches.InAt),
		OutPunch:     formatClock(punches.OutAt),
		InStatus:     d.InStatus,
		OutStatus:    d.OutStatus,
		Status:       d.Status,
		Source:       d.Source,
	}
}

func mapToTallyResponse(t attendance.MonthlyTally) attendance.TallyResponse {
	return attendance.TallyResponse{
		Present:    t.Present,
		Late:       t.Late,
		ShortLeave: t.ShortLeave,
		HalfDay:    t.HalfDay,
		Missing:    t.Missing,
		WeeklyOff:  t.WeeklyOff,
		Absent:     t.Absent,
		Leave:      t.Leave,
		Working:    t.Working,
	}
}

func mapToSummaryResponse(s attendance.MonthlyAttendanceSummary) attendance.SummaryResponse {
	return attendance.SummaryResponse{
		EmployeeCode:  s.EmployeeCode,
		Month:         s.Month,
		Year:          s.Year,
		Holiday:       s.Holiday,
		WeekOff:       s.WeekOff,
		Present:       s.Present,
		LWP:           s.LWP,
		Leave:         s.Leave,
		ArrearDays:    s.ArrearDays,
		TotalPaidDays: s.TotalPaidDays,
	}
}
