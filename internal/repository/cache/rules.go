package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const DefaultRuleTTL = 30 * time.Minute

func RuleSetKey(companyID string) string {
	return fmt.Sprintf("attendance:rules:%s", companyID)
}

// RuleRepository caches rule sets in Redis in front of another
// RuleRepository. Concurrent misses for one company share a single load.
// Redis failures are logged and fall through to the wrapped repository.
type RuleRepository struct {
	next attendance.RuleRepository
	rdb  *redis.Client
	ttl  time.Duration
	sf   singleflight.Group
}

func NewRuleRepository(next attendance.RuleRepository, rdb *redis.Client, ttl time.Duration) *RuleRepository {
	if ttl <= 0 {
		ttl = DefaultRuleTTL
	}
	return &RuleRepository{next: next, rdb: rdb, ttl: ttl}
}

// GetRules implements attendance.RuleRepository.
func (r *RuleRepository) GetRules(ctx context.Context, companyID string) (attendance.ThresholdRuleSet, error) {
	key := RuleSetKey(companyID)

	if r.rdb != nil {
		cached, err := r.rdb.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var rules attendance.ThresholdRuleSet
			if err := json.Unmarshal(cached, &rules); err == nil {
				return rules, nil
			}
			slog.Warn("discarding unreadable cached rule set", "key", key)
		case !errors.Is(err, redis.Nil):
			slog.Warn("rule set cache read failed", "key", key, "error", err)
		}
	}

	v, err, _ := r.sf.Do(key, func() (interface{}, error) {
		rules, err := r.next.GetRules(ctx, companyID)
		if err != nil {
			return nil, err
		}
		r.store(ctx, key, rules)
		return rules, nil
	})
	if err != nil {
		return attendance.ThresholdRuleSet{}, err
	}
	return v.(attendance.ThresholdRuleSet), nil
}

// SaveRules implements attendance.RuleRepository. The cached entry is
// dropped after a successful save so the next read reloads it.
func (r *RuleRepository) SaveRules(ctx context.Context, rules attendance.ThresholdRuleSet) (attendance.ThresholdRuleSet, error) {
	saved, err := r.next.SaveRules(ctx, rules)
	if err != nil {
		return attendance.ThresholdRuleSet{}, err
	}

	if r.rdb != nil {
		key := RuleSetKey(rules.CompanyID)
		if err := r.rdb.Del(ctx, key).Err(); err != nil {
			slog.Error("failed to invalidate rule set cache", "key", key, "error", err)
		}
	}
	return saved, nil
}

func (r *RuleRepository) store(ctx context.Context, key string, rules attendance.ThresholdRuleSet) {
	if r.rdb == nil {
		return
	}
	data, err := json.Marshal(rules)
	if err != nil {
		return
	}
	if err := r.rdb.Set(ctx, key, data, r.ttl).Err(); err != nil {
		slog.Warn("rule set cache write failed", "key", key, "error", err)
	}
}
