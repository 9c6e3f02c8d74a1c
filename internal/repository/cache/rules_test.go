package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance/mock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const companyID = "company-1"

func sampleRules() attendance.ThresholdRuleSet {
	return attendance.ThresholdRuleSet{
		ID:                    "rules-1",
		CompanyID:             companyID,
		InGracePeriod:         5,
		LateThreshold:         15,
		InShortLeaveThreshold: 30,
		CompoundingRules: []attendance.CompoundingRule{
			{InStatus: "LT", OutStatus: "ED", ResultStatus: "HD"},
		},
		UpdatedAt: time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC),
	}
}

func setup(t *testing.T) (*RuleRepository, *mock.MockRuleRepository, redismock.ClientMock) {
	ctrl := gomock.NewController(t)
	next := mock.NewMockRuleRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()
	t.Cleanup(func() {
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
	return NewRuleRepository(next, rdb, time.Hour), next, redisMock
}

func TestRuleRepository_GetRules_CacheHit(t *testing.T) {
	repo, next, redisMock := setup(t)
	data, err := json.Marshal(sampleRules())
	require.NoError(t, err)

	redisMock.ExpectGet(RuleSetKey(companyID)).SetVal(string(data))
	next.EXPECT().GetRules(gomock.Any(), gomock.Any()).Times(0)

	// Act
	rules, err := repo.GetRules(context.Background(), companyID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 15, rules.LateThreshold)
	require.Len(t, rules.CompoundingRules, 1)
	assert.Equal(t, attendance.StatusHalfDay, rules.CompoundingRules[0].ResultStatus)
}

func TestRuleRepository_GetRules_CacheMissLoadsAndStores(t *testing.T) {
	repo, next, redisMock := setup(t)
	data, err := json.Marshal(sampleRules())
	require.NoError(t, err)

	redisMock.ExpectGet(RuleSetKey(companyID)).RedisNil()
	next.EXPECT().GetRules(gomock.Any(), companyID).Return(sampleRules(), nil)
	redisMock.ExpectSet(RuleSetKey(companyID), data, time.Hour).SetVal("OK")

	// Act
	rules, err := repo.GetRules(context.Background(), companyID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "rules-1", rules.ID)
}

func TestRuleRepository_GetRules_NotFoundIsNotCached(t *testing.T) {
	repo, next, redisMock := setup(t)

	redisMock.ExpectGet(RuleSetKey(companyID)).RedisNil()
	next.EXPECT().GetRules(gomock.Any(), companyID).Return(attendance.ThresholdRuleSet{}, attendance.ErrRuleSetNotFound)

	// Act
	_, err := repo.GetRules(context.Background(), companyID)

	// Assert
	assert.ErrorIs(t, err, attendance.ErrRuleSetNotFound)
}

func TestRuleRepository_GetRules_RedisDownFallsThrough(t *testing.T) {
	repo, next, redisMock := setup(t)
	data, err := json.Marshal(sampleRules())
	require.NoError(t, err)

	redisMock.ExpectGet(RuleSetKey(companyID)).SetErr(errors.New("connection refused"))
	next.EXPECT().GetRules(gomock.Any(), companyID).Return(sampleRules(), nil)
	redisMock.ExpectSet(RuleSetKey(companyID), data, time.Hour).SetErr(errors.New("connection refused"))

	// Act
	rules, err := repo.GetRules(context.Background(), companyID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 5, rules.InGracePeriod)
}

func TestRuleRepository_SaveRules_Invalidates(t *testing.T) {
	repo, next, redisMock := setup(t)

	next.EXPECT().SaveRules(gomock.Any(), sampleRules()).Return(sampleRules(), nil)
	redisMock.ExpectDel(RuleSetKey(companyID)).SetVal(1)

	// Act
	saved, err := repo.SaveRules(context.Background(), sampleRules())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "rules-1", saved.ID)
}

func TestRuleRepository_SaveRules_FailureKeepsCache(t *testing.T) {
	repo, next, _ := setup(t)

	next.EXPECT().SaveRules(gomock.Any(), gomock.Any()).Return(attendance.ThresholdRuleSet{}, errors.New("db down"))

	// Act
	_, err := repo.SaveRules(context.Background(), sampleRules())

	// Assert
	assert.EqualError(t, err, "db down")
}
