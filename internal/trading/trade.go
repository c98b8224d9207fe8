package trading

import (
	"fmt"
	"strings"

	"github.com/harborline/tradewatch/internal/priority"
)

// isOverdue pattern-matches the deadline label; the deadline factor
// guarantees overdue labels contain "overdue".
func isOverdue(r priority.Reason) bool {
	return strings.Contains(r.Label, "overdue")
}

// tradeStatusWeights are the fixed urgency bonuses per trade lifecycle
// state. Terminal states carry no bonus.
var tradeStatusWeights = map[string]priority.StatusWeight{
	string(TradeStatusInReview):          {Label: "Trade in review", Score: 5},
	string(TradeStatusInDueDiligence):    {Label: "Trade in due diligence", Score: 8},
	string(TradeStatusPendingSettlement): {Label: "Trade pending settlement", Score: 12},
}

// NewTradeEngine builds the trade inbox engine. Construct once and share;
// the engine holds no per-call state.
func NewTradeEngine(tn Tuning) *priority.Engine[Trade] {
	return priority.New(priority.Config[Trade]{
		Factors: []priority.Factor[Trade]{
			priority.DeadlineProximity(func(t Trade) string { return t.SettlementDate }, tn.TradeDeadline),
			priority.CountThreshold(priority.ReasonFlaggedItems, "%d flagged item(s)",
				func(t Trade) int { return t.FlaggedItems },
				[]priority.CountTier{{Min: 5, Score: 35}, {Min: 3, Score: 20}, {Min: 1, Score: 10}},
			),
			priority.CountThreshold(priority.ReasonOpenQuestions, "%d open question(s)",
				func(t Trade) int { return t.OpenQuestions },
				[]priority.CountTier{{Min: 10, Score: 20}, {Min: 5, Score: 12}, {Min: 1, Score: 5}},
			),
			dueDiligenceStall,
			priority.StatusScore(priority.ReasonStatus,
				func(t Trade) string { return string(t.Status) }, tradeStatusWeights),
		},
		Suggest: suggestTradeAction,
		Buckets: tn.Buckets,
	})
}

// dueDiligenceStall scores trades stuck early in due diligence. A trade
// outside the DD stage, or far enough along, contributes nothing.
func dueDiligenceStall(t Trade) priority.Outcome {
	if t.Status != TradeStatusInDueDiligence {
		return priority.Outcome{}
	}

	var score float64
	switch {
	case t.DDProgress < 30:
		score = 25
	case t.DDProgress < 60:
		score = 15
	default:
		return priority.Outcome{}
	}

	return priority.Outcome{
		Score: score,
		Reason: &priority.Reason{
			Type:   priority.ReasonDDProgress,
			Label:  fmt.Sprintf("Due diligence only %d%% complete", t.DDProgress),
			Weight: score,
		},
	}
}

func suggestTradeAction(t Trade, reasons []priority.Reason) string {
	if len(reasons) == 0 {
		return "Monitor trade progress"
	}
	switch reasons[0].Type {
	case priority.ReasonDeadline:
		if isOverdue(reasons[0]) {
			return fmt.Sprintf("Escalate %s: settlement date overdue", t.ID)
		}
		return fmt.Sprintf("Prepare %s for upcoming settlement", t.ID)
	case priority.ReasonFlaggedItems:
		return fmt.Sprintf("Review flagged items on %s with the deal team", t.ID)
	case priority.ReasonOpenQuestions:
		return fmt.Sprintf("Chase outstanding diligence questions on %s", t.ID)
	case priority.ReasonDDProgress:
		return fmt.Sprintf("Accelerate due diligence on %s", t.ID)
	case priority.ReasonStatus:
		return fmt.Sprintf("Advance %s to its next stage", t.ID)
	default:
		return "Monitor trade progress"
	}
}
