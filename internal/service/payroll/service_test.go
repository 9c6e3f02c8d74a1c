package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	attendancemock "github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance/mock"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
	employeemock "github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee/mock"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	payrollmock "github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll/mock"
	"github.com/cmlabs-hris/hris-payroll-go/internal/messaging/kafka"
	kafkamock "github.com/cmlabs-hris/hris-payroll-go/internal/messaging/kafka/mock"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testCompanyID = "company-1"
	testUserID    = "user-1"
	testTopic     = "hris.payroll.events"
)

// passthroughTx runs fn directly on the caller's context.
type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type serviceFixture struct {
	payrollRepo    *payrollmock.MockPayrollRepository
	attendanceRepo *attendancemock.MockAttendanceRepository
	employeeRepo   *employeemock.MockEmployeeRepository
	outbox         *kafkamock.MockOutboxRepository
	service        *PayrollServiceImpl
	ctx            context.Context
}

func newServiceFixture(t *testing.T) *serviceFixture {
	ctrl := gomock.NewController(t)
	f := &serviceFixture{
		payrollRepo:    payrollmock.NewMockPayrollRepository(ctrl),
		attendanceRepo: attendancemock.NewMockAttendanceRepository(ctrl),
		employeeRepo:   employeemock.NewMockEmployeeRepository(ctrl),
		outbox:         kafkamock.NewMockOutboxRepository(ctrl),
	}
	svc := NewPayrollService(passthroughTx{}, f.payrollRepo, f.attendanceRepo, f.employeeRepo, f.outbox, testTopic)
	f.service = svc.(*PayrollServiceImpl)
	f.service.now = func() time.Time { return time.Date(2024, time.July, 2, 9, 0, 0, 0, time.UTC) }

	token := jwt.New()
	require.NoError(t, token.Set("company_id", testCompanyID))
	require.NoError(t, token.Set("user_id", testUserID))
	f.ctx = jwtauth.NewContext(context.Background(), token, nil)
	return f
}

// expectCompute registers the reads behind one snapshot computation: the
// June 2024 month with a 500 manual arrear and 1000 TDS.
func (f *serviceFixture) expectCompute(code string) {
	f.employeeRepo.EXPECT().
		GetByEmployeeCode(gomock.Any(), testCompanyID, code).
		Return(employee.Employee{EmployeeCode: code, FullName: "Employee " + code}, nil)
	f.payrollRepo.EXPECT().
		GetSalaryStructure(gomock.Any(), testCompanyID, code).
		Return(*sampleStructure(), nil)
	f.attendanceRepo.EXPECT().
		GetMonthlySummary(gomock.Any(), testCompanyID, code, "June", 2024).
		Return(*juneSummary(), nil)
	f.payrollRepo.EXPECT().
		GetAdjustment(gomock.Any(), testCompanyID, code, "June", 2024).
		Return(payroll.PayrollAdjustment{
			EmployeeCode: code,
			Month:        "June",
			Year:         2024,
			ArrearAmount: dec("500"),
			TDS:          dec("1000"),
		}, nil)
	f.payrollRepo.EXPECT().
		ListRepayableLoans(gomock.Any(), testCompanyID, code).
		Return(nil, nil)
}

func (f *serviceFixture) expectRecord(code, month string, record payroll.MonthlySalaryRecord, err error) {
	f.payrollRepo.EXPECT().
		GetSalaryRecordForUpdate(gomock.Any(), testCompanyID, code, month, 2024).
		Return(record, err)
}

func TestPayrollService_SaveAdjustment_RejectedWhileLocked(t *testing.T) {
	f := newServiceFixture(t)
	f.expectRecord("E001", "June", payroll.MonthlySalaryRecord{ID: "rec-1", Status: payroll.RecordStatusLocked}, nil)
	f.payrollRepo.EXPECT().UpsertAdjustment(gomock.Any(), gomock.Any()).Times(0)

	// Act
	_, err := f.service.SaveAdjustment(f.ctx, payroll.SaveAdjustmentRequest{
		EmployeeCode: "E001", Month: 6, Year: 2024, TDS: dec("1000"),
	})

	// Assert
	assert.ErrorIs(t, err, payroll.ErrRecordLocked)
}

func TestPayrollService_SaveAdjustment_Success(t *testing.T) {
	f := newServiceFixture(t)
	f.expectRecord("E001", "June", payroll.MonthlySalaryRecord{ID: "rec-1", Status: payroll.RecordStatusOpen}, nil)
	f.payrollRepo.EXPECT().
		UpsertAdjustment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, adj payroll.PayrollAdjustment) (payroll.PayrollAdjustment, error) {
			return adj, nil
		})

	// Act
	resp, err := f.service.SaveAdjustment(f.ctx, payroll.SaveAdjustmentRequest{
		EmployeeCode: "E001", Month: 6, Year: 2024, TDS: dec("1000"), Advance: dec("500"),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "June", resp.Month)
	assertDecimal(t, "1000", resp.TDS)
	assertDecimal(t, "500", resp.Advance)
	assert.False(t, resp.AutoProposed)
}

func TestPayrollService_SaveAdjustment_ValidationError(t *testing.T) {
	f := newServiceFixture(t)

	// Act
	_, err := f.service.SaveAdjustment(f.ctx, payroll.SaveAdjustmentRequest{
		EmployeeCode: "E001", Month: 13, Year: 2024, TDS: dec("-1"),
	})

	// Assert
	assert.Error(t, err)
}

func TestPayrollService_Lock_Success(t *testing.T) {
	f := newServiceFixture(t)
	f.expectRecord("E001", "June", payroll.MonthlySalaryRecord{}, payroll.ErrRecordNotFound)
	f.expectCompute("E001")

	var stored payroll.MonthlySalaryRecord
	f.payrollRepo.EXPECT().
		UpsertSalaryRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r payroll.MonthlySalaryRecord) (payroll.MonthlySalaryRecord, error) {
			r.ID = "rec-1"
			stored = r
			return r, nil
		})

	var event kafka.OutboxEvent
	f.outbox.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			event = e
			return nil
		})

	// Act
	resp, err := f.service.Lock(f.ctx, payroll.RecordRequest{EmployeeCode: "E001", Month: 6, Year: 2024})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Locked", resp.Status)
	assertDecimal(t, "26880", resp.NetPay)
	assertDecimal(t, "27000", resp.SalaryData.ProratedGross)
	assertDecimal(t, "2000", resp.SalaryData.CalculatedArrears)
	assertDecimal(t, "500", resp.SalaryData.ManualArrears)
	assertDecimal(t, "29500", resp.SalaryData.GrossWithArrears)
	assertDecimal(t, "1620", resp.SalaryData.TotalDeductions)
	assertDecimal(t, "1000", resp.SalaryData.TDS)
	assertDecimal(t, "26880", resp.SalaryData.NetPay)
	assert.Equal(t, payroll.RecordStatusLocked, stored.Status)
	assertDecimal(t, "26880", stored.NetPay)
	require.NotNil(t, stored.LockedBy)
	assert.Equal(t, testUserID, *stored.LockedBy)
	require.NotNil(t, stored.LockedAt)

	assert.Equal(t, kafka.EventSalaryRecordLocked, event.EventType)
	assert.Equal(t, kafka.AggregateSalaryRecord, event.AggregateType)
	assert.Equal(t, "rec-1", event.AggregateID)
	assert.Equal(t, testTopic, event.Topic)
	assert.Contains(t, string(event.Payload), `"employee_code":"E001"`)
}

func TestPayrollService_Lock_AlreadyLockedIsNoop(t *testing.T) {
	f := newServiceFixture(t)
	frozen := payroll.MonthlySalaryRecord{
		ID:           "rec-1",
		EmployeeCode: "E001",
		Month:        "June",
		Year:         2024,
		Status:       payroll.RecordStatusLocked,
		NetPay:       dec("12345"),
	}
	f.expectRecord("E001", "June", frozen, nil)
	f.payrollRepo.EXPECT().UpsertSalaryRecord(gomock.Any(), gomock.Any()).Times(0)
	f.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Act
	resp, err := f.service.Lock(f.ctx, payroll.RecordRequest{EmployeeCode: "E001", Month: 6, Year: 2024})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "rec-1", resp.ID)
	assertDecimal(t, "12345", resp.NetPay)
}

func TestPayrollService_Lock_NoSalaryStructure(t *testing.T) {
	f := newServiceFixture(t)
	f.expectRecord("E001", "June", payroll.MonthlySalaryRecord{}, payroll.ErrRecordNotFound)
	f.employeeRepo.EXPECT().
		GetByEmployeeCode(gomock.Any(), testCompanyID, "E001").
		Return(employee.Employee{EmployeeCode: "E001"}, nil)
	f.payrollRepo.EXPECT().
		GetSalaryStructure(gomock.Any(), testCompanyID, "E001").
		Return(payroll.SalaryStructure{}, payroll.ErrSalaryStructureNotConfigured)
	f.payrollRepo.EXPECT().UpsertSalaryRecord(gomock.Any(), gomock.Any()).Times(0)

	// Act
	_, err := f.service.Lock(f.ctx, payroll.RecordRequest{EmployeeCode: "E001", Month: 6, Year: 2024})

	// Assert
	assert.ErrorIs(t, err, payroll.ErrSalaryStructureNotConfigured)
}

func TestPayrollService_Unlock_RequiresConfirmation(t *testing.T) {
	f := newServiceFixture(t)

	// Act
	_, err := f.service.Unlock(f.ctx, payroll.UnlockRequest{EmployeeCode: "E001", Month: 6, Year: 2024})

	// Assert
	assert.ErrorIs(t, err, payroll.ErrUnlockConfirmationRequired)
}

func TestPayrollService_Unlock_Success(t *testing.T) {
	f := newServiceFixture(t)
	f.expectRecord("E001", "June", payroll.MonthlySalaryRecord{
		ID: "rec-1", CompanyID: testCompanyID, EmployeeCode: "E001", Month: "June", Year: 2024,
		Status: payroll.RecordStatusLocked,
	}, nil)
	f.payrollRepo.EXPECT().
		SetRecordStatusBulk(gomock.Any(), testCompanyID, []string{"E001"}, "June", 2024,
			payroll.RecordStatusLocked, payroll.RecordStatusOpen).
		Return([]string{"E001"}, nil)
	f.outbox.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, kafka.EventSalaryRecordUnlocked, e.EventType)
			return nil
		})

	// Act
	resp, err := f.service.Unlock(f.ctx, payroll.UnlockRequest{EmployeeCode: "E001", Month: 6, Year: 2024, Confirm: true})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Open", resp.Status)
}

func TestPayrollService_Unlock_OpenRecordIsNoop(t *testing.T) {
	f := newServiceFixture(t)
	f.expectRecord("E001", "June", payroll.MonthlySalaryRecord{ID: "rec-1", Status: payroll.RecordStatusOpen}, nil)
	f.payrollRepo.EXPECT().SetRecordStatusBulk(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Act
	resp, err := f.service.Unlock(f.ctx, payroll.UnlockRequest{EmployeeCode: "E001", Month: 6, Year: 2024, Confirm: true})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Open", resp.Status)
}

func TestPayrollService_BulkLock_PartialFailure(t *testing.T) {
	f := newServiceFixture(t)

	f.expectRecord("E001", "June", payroll.MonthlySalaryRecord{}, payroll.ErrRecordNotFound)
	f.expectCompute("E001")
	f.payrollRepo.EXPECT().
		UpsertSalaryRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r payroll.MonthlySalaryRecord) (payroll.MonthlySalaryRecord, error) {
			r.ID = "rec-1"
			return r, nil
		})
	f.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	f.expectRecord("E002", "June", payroll.MonthlySalaryRecord{}, payroll.ErrRecordNotFound)
	f.employeeRepo.EXPECT().
		GetByEmployeeCode(gomock.Any(), testCompanyID, "E002").
		Return(employee.Employee{}, employee.ErrEmployeeNotFound)

	// Act
	result, err := f.service.BulkLock(f.ctx, payroll.BulkRequest{
		EmployeeCodes: []string{"E001", "E002", "E001"}, Month: 6, Year: 2024,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, result.Requested)
	assert.Equal(t, 1, result.Succeeded)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "E002", result.Skipped[0].EmployeeCode)
	assert.Equal(t, employee.ErrEmployeeNotFound.Error(), result.Skipped[0].Reason)
}

func TestPayrollService_BulkUnlock_ReportsNotLocked(t *testing.T) {
	f := newServiceFixture(t)
	f.payrollRepo.EXPECT().
		SetRecordStatusBulk(gomock.Any(), testCompanyID, []string{"E001", "E002"}, "June", 2024,
			payroll.RecordStatusLocked, payroll.RecordStatusOpen).
		Return([]string{"E001"}, nil)
	f.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// Act
	result, err := f.service.BulkUnlock(f.ctx, payroll.BulkRequest{
		EmployeeCodes: []string{"E001", "E002"}, Month: 6, Year: 2024, Confirm: true,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "E002", result.Skipped[0].EmployeeCode)
}

func TestPayrollService_BulkUnlock_RequiresConfirmation(t *testing.T) {
	f := newServiceFixture(t)

	// Act
	_, err := f.service.BulkUnlock(f.ctx, payroll.BulkRequest{EmployeeCodes: []string{"E001"}, Month: 6, Year: 2024})

	// Assert
	assert.ErrorIs(t, err, payroll.ErrUnlockConfirmationRequired)
}

func TestPayrollService_Preview_LockedReturnsSnapshot(t *testing.T) {
	f := newServiceFixture(t)
	f.payrollRepo.EXPECT().
		GetSalaryRecord(gomock.Any(), testCompanyID, "E001", "June", 2024).
		Return(payroll.MonthlySalaryRecord{
			ID: "rec-1", EmployeeCode: "E001", Status: payroll.RecordStatusLocked, NetPay: dec("100"),
		}, nil)

	// Act
	resp, err := f.service.Preview(f.ctx, payroll.RecordRequest{EmployeeCode: "E001", Month: 6, Year: 2024})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Locked", resp.Status)
	assertDecimal(t, "100", resp.NetPay)
}

func TestPayrollService_Preview_ComputesOpenMonth(t *testing.T) {
	f := newServiceFixture(t)
	f.payrollRepo.EXPECT().
		GetSalaryRecord(gomock.Any(), testCompanyID, "E001", "June", 2024).
		Return(payroll.MonthlySalaryRecord{}, payroll.ErrRecordNotFound)
	f.expectCompute("E001")

	// Act
	resp, err := f.service.Preview(f.ctx, payroll.RecordRequest{EmployeeCode: "E001", Month: 6, Year: 2024})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Open", resp.Status)
	assert.Equal(t, 30, resp.SalaryData.DaysInMonth)
	assertDecimal(t, "0.9", resp.SalaryData.ProrationFactor)
	assertDecimal(t, "27000", resp.SalaryData.ProratedGross)
	assertDecimal(t, "2500", resp.SalaryData.TotalArrears)
	assertDecimal(t, "29500", resp.SalaryData.GrossWithArrears)
	assertDecimal(t, "26880", resp.SalaryData.NetPay)
	assertDecimal(t, "26880", resp.NetPay)
}

func TestPayrollService_Preview_MissingSummary(t *testing.T) {
	f := newServiceFixture(t)
	f.payrollRepo.EXPECT().
		GetSalaryRecord(gomock.Any(), testCompanyID, "E001", "June", 2024).
		Return(payroll.MonthlySalaryRecord{}, payroll.ErrRecordNotFound)
	f.employeeRepo.EXPECT().
		GetByEmployeeCode(gomock.Any(), testCompanyID, "E001").
		Return(employee.Employee{EmployeeCode: "E001"}, nil)
	f.payrollRepo.EXPECT().
		GetSalaryStructure(gomock.Any(), testCompanyID, "E001").
		Return(*sampleStructure(), nil)
	f.attendanceRepo.EXPECT().
		GetMonthlySummary(gomock.Any(), testCompanyID, "E001", "June", 2024).
		Return(attendance.MonthlyAttendanceSummary{}, attendance.ErrSummaryNotFound)

	// Act
	_, err := f.service.Preview(f.ctx, payroll.RecordRequest{EmployeeCode: "E001", Month: 6, Year: 2024})

	// Assert
	assert.ErrorIs(t, err, attendance.ErrSummaryNotFound)
}

func TestPayrollService_ProposeLoanDeductions(t *testing.T) {
	f := newServiceFixture(t)
	f.payrollRepo.EXPECT().
		ListEmployeeCodesWithRepayableLoans(gomock.Any(), testCompanyID).
		Return([]string{"E001", "E002", "E003"}, nil)

	// E001: fresh proposal
	f.expectRecord("E001", "April", payroll.MonthlySalaryRecord{}, payroll.ErrRecordNotFound)
	f.payrollRepo.EXPECT().
		ListRepayableLoans(gomock.Any(), testCompanyID, "E001").
		Return([]payroll.LoanRecord{standardLoan()}, nil)
	f.payrollRepo.EXPECT().
		ListLockedAdvances(gomock.Any(), testCompanyID, "E001").
		Return(lockedMonths(2024, time.January, time.March, "1000"), nil)
	f.payrollRepo.EXPECT().
		CreateAdjustmentIfAbsent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, adj payroll.PayrollAdjustment) (bool, error) {
			assert.True(t, adj.AutoProposed)
			assertDecimal(t, "1000", adj.Advance)
			assert.Equal(t, "April", adj.Month)
			return true, nil
		})

	// E002: an adjustment already exists
	f.expectRecord("E002", "April", payroll.MonthlySalaryRecord{}, payroll.ErrRecordNotFound)
	f.payrollRepo.EXPECT().
		ListRepayableLoans(gomock.Any(), testCompanyID, "E002").
		Return([]payroll.LoanRecord{standardLoan()}, nil)
	f.payrollRepo.EXPECT().
		ListLockedAdvances(gomock.Any(), testCompanyID, "E002").
		Return(nil, nil)
	f.payrollRepo.EXPECT().
		CreateAdjustmentIfAbsent(gomock.Any(), gomock.Any()).
		Return(false, nil)

	// E003: month already locked
	f.expectRecord("E003", "April", payroll.MonthlySalaryRecord{Status: payroll.RecordStatusLocked}, nil)

	// Act
	result, err := f.service.ProposeLoanDeductions(f.ctx, payroll.LoanProposalRequest{Month: 4, Year: 2024})

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Proposed, 1)
	assert.Equal(t, "E001", result.Proposed[0].EmployeeCode)
	assertDecimal(t, "9000", result.Proposed[0].Outstanding)
	assert.Equal(t, 1, result.Kept)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "E003", result.Skipped[0].EmployeeCode)
}

func TestPayrollService_ListRecords_RejectsUnknownStatus(t *testing.T) {
	f := newServiceFixture(t)
	paid := "Paid"
	f.payrollRepo.EXPECT().ListSalaryRecords(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Act
	_, err := f.service.ListRecords(f.ctx, payroll.RecordFilter{Status: &paid})

	// Assert
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "status", errs[0].Field)
}

func TestPayrollService_ListRecords_DefaultsPaging(t *testing.T) {
	f := newServiceFixture(t)
	locked := "Locked"
	f.payrollRepo.EXPECT().
		ListSalaryRecords(gomock.Any(), testCompanyID, payroll.RecordFilter{Status: &locked, Page: 1, Limit: 20}).
		Return([]payroll.MonthlySalaryRecord{{ID: "rec-1", EmployeeCode: "E001", Status: payroll.RecordStatusLocked}}, int64(1), nil)

	// Act
	resp, err := f.service.ListRecords(f.ctx, payroll.RecordFilter{Status: &locked})

	// Assert
	require.NoError(t, err)
	assert.EqualValues(t, 1, resp.TotalCount)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Locked", resp.Data[0].Status)
}
