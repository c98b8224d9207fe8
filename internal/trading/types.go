// Package trading defines the desk's item types and their configured
// priority engines.
package trading

import "github.com/harborline/tradewatch/internal/priority"

// TradeStatus enumerates the lifecycle states of a trade.
type TradeStatus string

const (
	TradeStatusDraft             TradeStatus = "draft"
	TradeStatusInReview          TradeStatus = "in_review"
	TradeStatusInDueDiligence    TradeStatus = "in_due_diligence"
	TradeStatusPendingSettlement TradeStatus = "pending_settlement"
	TradeStatusSettled           TradeStatus = "settled"
	TradeStatusCancelled         TradeStatus = "cancelled"
)

// Trade is a loan trade working its way through the desk.
type Trade struct {
	ID             string      `json:"id"`
	Borrower       string      `json:"borrower"`
	Facility       string      `json:"facility"`
	Counterparty   string      `json:"counterparty"`
	Side           string      `json:"side"` // "buy" or "sell"
	Amount         float64     `json:"amount"`
	Status         TradeStatus `json:"status"`
	SettlementDate string      `json:"settlement_date,omitempty"` // YYYY-MM-DD, empty when unscheduled
	FlaggedItems   int         `json:"flagged_items"`
	OpenQuestions  int         `json:"open_questions"`
	DDProgress     int         `json:"dd_progress"` // 0-100 percent complete
}

// TradeDetail is one document or checklist line under review for a trade.
type TradeDetail struct {
	ID                 string `json:"id"`
	TradeID            string `json:"trade_id"`
	DocumentName       string `json:"document_name"`
	Severity           string `json:"severity"` // "critical", "high", "medium", "low"
	Status             string `json:"status"`   // "pending_review", "changes_requested", "approved"
	UnresolvedComments int    `json:"unresolved_comments"`
	ReviewDueDate      string `json:"review_due_date,omitempty"`
}

// SettlementStatus enumerates the operational states of a settlement.
type SettlementStatus string

const (
	SettlementStatusPending  SettlementStatus = "pending"
	SettlementStatusAwaiting SettlementStatus = "awaiting_instructions"
	SettlementStatusOnHold   SettlementStatus = "on_hold"
	SettlementStatusFailed   SettlementStatus = "failed"
	SettlementStatusSettled  SettlementStatus = "settled"
)

// Settlement is a cash/asset exchange scheduled against a trade.
type Settlement struct {
	ID           string           `json:"id"`
	TradeID      string           `json:"trade_id"`
	Counterparty string           `json:"counterparty"`
	Side         string           `json:"side"` // "buy" or "sell"
	Amount       float64          `json:"amount"`
	Currency     string           `json:"currency"`
	Status       SettlementStatus `json:"status"`
	ValueDate    string           `json:"value_date,omitempty"` // YYYY-MM-DD
}

// Tuning carries the thresholds the domain engines are built from. It is
// normally populated from configuration; DefaultTuning matches the shipped
// config defaults.
type Tuning struct {
	TradeDeadline      priority.DeadlineTiers
	DetailDeadline     priority.DeadlineTiers
	SettlementDeadline priority.DeadlineTiers
	LargeAmount        float64
	SizableAmount      float64
	Buckets            priority.Buckets
}

// DefaultTuning returns the desk-standard thresholds.
func DefaultTuning() Tuning {
	return Tuning{
		TradeDeadline:      priority.DeadlineTiers{Overdue: 40, Today: 30, Within3Days: 20, Within7Days: 10},
		DetailDeadline:     priority.DeadlineTiers{Overdue: 45, Today: 35, Within3Days: 20, Within7Days: 8},
		SettlementDeadline: priority.DeadlineTiers{Overdue: 50, Today: 40, Within3Days: 25, Within7Days: 10},
		LargeAmount:        50_000_000,
		SizableAmount:      10_000_000,
		Buckets:            priority.DefaultBuckets(),
	}
}
