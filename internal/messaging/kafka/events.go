package kafka

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventSalaryRecordLocked   = "payroll.record.locked.v1"
	EventSalaryRecordUnlocked = "payroll.record.unlocked.v1"

	AggregateSalaryRecord = "salary_record"
)

// SalaryRecordEvent is the payload of lock and unlock events. Consumers that
// need the figures read the frozen snapshot; the event carries the key and
// net pay only.
type SalaryRecordEvent struct {
	EventType    string          `json:"event_type"`
	CompanyID    string          `json:"company_id"`
	RecordID     string          `json:"record_id"`
	EmployeeCode string          `json:"employee_code"`
	Month        string          `json:"month"`
	Year         int             `json:"year"`
	Status       string          `json:"status"`
	NetPay       decimal.Decimal `json:"net_pay"`
	ActorID      string          `json:"actor_id,omitempty"`
	OccurredAt   time.Time       `json:"occurred_at"`
}
