package trading

import (
	"fmt"

	"github.com/harborline/tradewatch/internal/priority"
)

// settlementStatusWeights score settlement exception states. Healthy states
// ("pending", "settled") carry no bonus.
var settlementStatusWeights = map[string]priority.StatusWeight{
	string(SettlementStatusFailed):   {Label: "Settlement failed", Score: 30},
	string(SettlementStatusOnHold):   {Label: "Settlement on hold", Score: 18},
	string(SettlementStatusAwaiting): {Label: "Awaiting settlement instructions", Score: 10},
}

// NewSettlementEngine builds the settlement inbox engine.
func NewSettlementEngine(tn Tuning) *priority.Engine[Settlement] {
	return priority.New(priority.Config[Settlement]{
		Factors: []priority.Factor[Settlement]{
			priority.DeadlineProximity(func(s Settlement) string { return s.ValueDate }, tn.SettlementDeadline),
			priority.AmountThreshold(func(s Settlement) float64 { return s.Amount },
				[]priority.AmountTier{
					{Min: tn.LargeAmount, Score: 15, Label: "Large notional settlement"},
					{Min: tn.SizableAmount, Score: 8, Label: "Sizable notional settlement"},
				},
			),
			priority.StatusScore(priority.ReasonStatus,
				func(s Settlement) string { return string(s.Status) }, settlementStatusWeights),
		},
		Suggest: suggestSettlementAction,
		Buckets: tn.Buckets,
	})
}

func suggestSettlementAction(s Settlement, reasons []priority.Reason) string {
	if len(reasons) == 0 {
		return "Monitor settlement"
	}
	switch reasons[0].Type {
	case priority.ReasonDeadline:
		if isOverdue(reasons[0]) {
			return fmt.Sprintf("Settlement %s is overdue - contact %s operations", s.ID, s.Counterparty)
		}
		return fmt.Sprintf("Confirm instructions for %s before value date", s.ID)
	case priority.ReasonAmount:
		return fmt.Sprintf("Verify funding and approvals for %s", s.ID)
	case priority.ReasonStatus:
		return fmt.Sprintf("Resolve settlement exception on %s", s.ID)
	default:
		return "Monitor settlement"
	}
}
