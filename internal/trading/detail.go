package trading

import (
	"fmt"

	"github.com/harborline/tradewatch/internal/priority"
)

// detailSeverityWeights score a detail's finding severity.
var detailSeverityWeights = map[string]priority.StatusWeight{
	"critical": {Label: "Critical severity finding", Score: 35},
	"high":     {Label: "High severity finding", Score: 20},
	"medium":   {Label: "Medium severity finding", Score: 10},
}

// detailStatusWeights score a detail's review state.
var detailStatusWeights = map[string]priority.StatusWeight{
	"changes_requested": {Label: "Changes requested", Score: 15},
	"pending_review":    {Label: "Pending review", Score: 10},
}

// NewDetailEngine builds the trade-detail (document review) inbox engine.
func NewDetailEngine(tn Tuning) *priority.Engine[TradeDetail] {
	return priority.New(priority.Config[TradeDetail]{
		Factors: []priority.Factor[TradeDetail]{
			priority.DeadlineProximity(func(d TradeDetail) string { return d.ReviewDueDate }, tn.DetailDeadline),
			priority.CountThreshold(priority.ReasonUnresolvedComments, "%d unresolved comment(s)",
				func(d TradeDetail) int { return d.UnresolvedComments },
				[]priority.CountTier{{Min: 8, Score: 30}, {Min: 4, Score: 18}, {Min: 1, Score: 8}},
			),
			priority.StatusScore(priority.ReasonSeverity,
				func(d TradeDetail) string { return d.Severity }, detailSeverityWeights),
			priority.StatusScore(priority.ReasonStatus,
				func(d TradeDetail) string { return d.Status }, detailStatusWeights),
		},
		Suggest: suggestDetailAction,
		Buckets: tn.Buckets,
	})
}

func suggestDetailAction(d TradeDetail, reasons []priority.Reason) string {
	if len(reasons) == 0 {
		return "Monitor document review"
	}
	switch reasons[0].Type {
	case priority.ReasonDeadline:
		if isOverdue(reasons[0]) {
			return fmt.Sprintf("Review of %s is overdue - reassign if blocked", d.DocumentName)
		}
		return fmt.Sprintf("Complete review of %s before its due date", d.DocumentName)
	case priority.ReasonUnresolvedComments:
		return fmt.Sprintf("Resolve open comment threads on %s", d.DocumentName)
	case priority.ReasonSeverity:
		return fmt.Sprintf("Address findings on %s first", d.DocumentName)
	case priority.ReasonStatus:
		return fmt.Sprintf("Finish the outstanding review of %s", d.DocumentName)
	default:
		return "Monitor document review"
	}
}
