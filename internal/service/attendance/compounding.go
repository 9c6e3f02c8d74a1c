package attendance

import (
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
)

// ResolveCompounding looks up the (in, out) pair in the rule table. The first
// matching rule wins; ok is false when nothing matches.
func ResolveCompounding(in, out attendance.StatusCode, rules []attendance.CompoundingRule) (attendance.StatusCode, bool) {
	for _, r := range rules {
		if r.InStatus == in && r.OutStatus == out {
			return r.ResultStatus, true
		}
	}
	return "", false
}

// ValidateCompoundingRules rejects rule tables with two rules for the same
// pair. It runs when a rule set is saved; evaluation stays first-match-wins.
func ValidateCompoundingRules(rules []attendance.CompoundingRule) error {
	seen := make(map[[2]attendance.StatusCode]int, len(rules))
	for i, r := range rules {
		key := [2]attendance.StatusCode{r.InStatus, r.OutStatus}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: rules %d and %d both match in=%s out=%s",
				attendance.ErrDuplicateCompoundingRule, prev, i, r.InStatus, r.OutStatus)
		}
		seen[key] = i
	}
	return nil
}
