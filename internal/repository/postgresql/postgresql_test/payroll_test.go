package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/messaging/kafka"
	"github.com/cmlabs-hris/hris-payroll-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCompanyID = "7b0c5d1e-7f1a-4a55-9a39-2f6b2d6f4e01"

func lockedRecord(code, month string, advance int64) payroll.MonthlySalaryRecord {
	now := time.Now().UTC()
	return payroll.MonthlySalaryRecord{
		CompanyID:    testCompanyID,
		EmployeeCode: code,
		EmployeeName: "Employee " + code,
		Month:        month,
		Year:         2024,
		Status:       payroll.RecordStatusLocked,
		SalaryData: payroll.PayrollSnapshot{
			EmployeeCode:     code,
			Month:            month,
			Year:             2024,
			ProratedGross:    decimal.NewFromInt(27000),
			TotalArrears:     decimal.NewFromInt(2500),
			GrossWithArrears: decimal.NewFromInt(29500),
			TotalDeductions:  decimal.NewFromInt(1620),
			TDS:              decimal.NewFromInt(1000),
			Advance:          decimal.NewFromInt(advance),
			NetPay:           decimal.NewFromInt(26880 - advance),
		},
		NetPay:   decimal.NewFromInt(26880 - advance),
		LockedAt: &now,
	}
}

func TestPayrollRepository_UpsertSalaryRecord_Success(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewPayrollRepository(setup.DB)

	saved, err := repo.UpsertSalaryRecord(ctx, lockedRecord("E001", "June", 0))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	again, err := repo.UpsertSalaryRecord(ctx, lockedRecord("E001", "June", 500))
	require.NoError(t, err)
	assert.Equal(t, saved.ID, again.ID)

	got, err := repo.GetSalaryRecord(ctx, testCompanyID, "E001", "June", 2024)
	require.NoError(t, err)
	assert.Equal(t, payroll.RecordStatusLocked, got.Status)
	assert.True(t, got.SalaryData.Advance.Equal(decimal.NewFromInt(500)))
}

func TestPayrollRepository_GetSalaryRecord_NotFound(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewPayrollRepository(setup.DB)

	_, err := repo.GetSalaryRecord(context.Background(), testCompanyID, "E404", "June", 2024)

	assert.ErrorIs(t, err, payroll.ErrRecordNotFound)
}

func TestPayrollRepository_SetRecordStatusBulk_ReturnsChanged(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewPayrollRepository(setup.DB)

	_, err := repo.UpsertSalaryRecord(ctx, lockedRecord("E001", "June", 0))
	require.NoError(t, err)
	open := lockedRecord("E002", "June", 0)
	open.Status = payroll.RecordStatusOpen
	open.LockedAt = nil
	_, err = repo.UpsertSalaryRecord(ctx, open)
	require.NoError(t, err)

	changed, err := repo.SetRecordStatusBulk(ctx, testCompanyID, []string{"E001", "E002", "E003"}, "June", 2024,
		payroll.RecordStatusLocked, payroll.RecordStatusOpen)

	require.NoError(t, err)
	assert.Equal(t, []string{"E001"}, changed)
	got, err := repo.GetSalaryRecord(ctx, testCompanyID, "E001", "June", 2024)
	require.NoError(t, err)
	assert.Equal(t, payroll.RecordStatusOpen, got.Status)
	assert.Nil(t, got.LockedAt)
}

func TestPayrollRepository_CreateAdjustmentIfAbsent(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewPayrollRepository(setup.DB)

	manual := payroll.PayrollAdjustment{
		CompanyID: testCompanyID, EmployeeCode: "E001", Month: "June", Year: 2024,
		Advance: decimal.NewFromInt(250),
	}
	_, err := repo.UpsertAdjustment(ctx, manual)
	require.NoError(t, err)

	written, err := repo.CreateAdjustmentIfAbsent(ctx, payroll.PayrollAdjustment{
		CompanyID: testCompanyID, EmployeeCode: "E001", Month: "June", Year: 2024,
		Advance: decimal.NewFromInt(1000), AutoProposed: true,
	})
	require.NoError(t, err)
	assert.False(t, written)

	got, err := repo.GetAdjustment(ctx, testCompanyID, "E001", "June", 2024)
	require.NoError(t, err)
	assert.True(t, got.Advance.Equal(decimal.NewFromInt(250)))
	assert.False(t, got.AutoProposed)

	written, err = repo.CreateAdjustmentIfAbsent(ctx, payroll.PayrollAdjustment{
		CompanyID: testCompanyID, EmployeeCode: "E002", Month: "June", Year: 2024,
		Advance: decimal.NewFromInt(1000), AutoProposed: true,
	})
	require.NoError(t, err)
	assert.True(t, written)
}

func TestPayrollRepository_ListLockedAdvances_And_Summary(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewPayrollRepository(setup.DB)

	for _, month := range []string{"January", "February"} {
		_, err := repo.UpsertSalaryRecord(ctx, lockedRecord("E001", month, 1000))
		require.NoError(t, err)
	}

	history, err := repo.ListLockedAdvances(ctx, testCompanyID, "E001")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].Advance.Equal(decimal.NewFromInt(1000)))

	summary, err := repo.GetPayrollSummary(ctx, testCompanyID, "January", 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalEmployees)
	assert.Equal(t, 1, summary.LockedCount)
	assert.True(t, summary.TotalGross.Equal(decimal.NewFromInt(27000)), summary.TotalGross.String())
	assert.True(t, summary.TotalDeductions.Equal(decimal.NewFromInt(2620)), summary.TotalDeductions.String())
	assert.True(t, summary.TotalNetPay.Equal(decimal.NewFromInt(25880)), summary.TotalNetPay.String())
}

func TestPayrollRepository_RowLockInsideTransaction(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewPayrollRepository(setup.DB)
	tx := postgresql.NewTransactor(setup.DB)

	_, err := repo.UpsertSalaryRecord(ctx, lockedRecord("E001", "June", 0))
	require.NoError(t, err)

	errLocked := errors.New("locked")
	err = tx.WithinTransaction(ctx, func(ctx context.Context) error {
		rec, err := repo.GetSalaryRecordForUpdate(ctx, testCompanyID, "E001", "June", 2024)
		if err != nil {
			return err
		}
		if rec.Status == payroll.RecordStatusLocked {
			return errLocked
		}
		return nil
	})

	assert.ErrorIs(t, err, errLocked)
}

func TestRuleRepository_SaveAndGet(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewRuleRepository(setup.DB)

	_, err := repo.GetRules(ctx, testCompanyID)
	require.ErrorIs(t, err, attendance.ErrRuleSetNotFound)

	saved, err := repo.SaveRules(ctx, attendance.ThresholdRuleSet{
		CompanyID:     testCompanyID,
		InGracePeriod: 5,
		LateThreshold: 15,
		CompoundingRules: []attendance.CompoundingRule{
			{InStatus: "LT", OutStatus: "ED", ResultStatus: "HD"},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	got, err := repo.GetRules(ctx, testCompanyID)
	require.NoError(t, err)
	assert.Equal(t, 15, got.LateThreshold)
	require.Len(t, got.CompoundingRules, 1)
	assert.Equal(t, attendance.StatusHalfDay, got.CompoundingRules[0].ResultStatus)
}

func TestOutboxRepository_Lifecycle(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewOutboxRepository(setup.DB)

	id := uuid.NewString()
	err := repo.Create(ctx, kafka.OutboxEvent{
		ID:            id,
		CompanyID:     testCompanyID,
		AggregateType: kafka.AggregateSalaryRecord,
		AggregateID:   "rec-1",
		EventType:     kafka.EventSalaryRecordLocked,
		Topic:         "hris.payroll.events",
		Payload:       []byte(`{"employee_code":"E001"}`),
		Status:        kafka.OutboxStatusPending,
	})
	require.NoError(t, err)

	pending, err := repo.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, id, pending[0].ID)

	require.NoError(t, repo.MarkFailed(ctx, id, "broker unavailable"))
	pending, err = repo.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending, "failed events wait for their retry time")

	require.NoError(t, repo.MarkSent(ctx, id))
}
