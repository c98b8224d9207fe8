package dataset

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/harborline/tradewatch/internal/trading"
)

var (
	sampleBorrowers = []string{
		"Acme Industrial", "Northgate Logistics", "Bluewater Energy",
		"Crestline Media", "Halverson Foods", "Ironpeak Mining",
		"Seabright Pharma", "Torrent Networks",
	}
	sampleCounterparties = []string{
		"Granite Capital", "Westbrook Partners", "Meridian Credit",
		"Oakline Securities", "Pacific Loan Desk",
	}
	sampleDocuments = []string{
		"Credit Agreement", "Assignment Agreement", "Collateral Schedule",
		"Funding Memo", "Amendment No. 2", "Guaranty",
	}
	sampleTradeStatuses = []trading.TradeStatus{
		trading.TradeStatusDraft, trading.TradeStatusInReview,
		trading.TradeStatusInDueDiligence, trading.TradeStatusPendingSettlement,
	}
	sampleSettlementStatuses = []trading.SettlementStatus{
		trading.SettlementStatusPending, trading.SettlementStatusPending,
		trading.SettlementStatusAwaiting, trading.SettlementStatusOnHold,
		trading.SettlementStatusFailed,
	}
	sampleSeverities = []string{"low", "medium", "high", "critical"}
	sampleDocStates  = []string{"pending_review", "changes_requested", "approved"}
)

// SampleDesk generates a deterministic mock desk of n trades (with details
// and settlements hanging off them) from the given seed. Used by the seed
// command and as demo data.
func SampleDesk(n int, seed int64) *Desk {
	rng := rand.New(rand.NewSource(seed))
	desk := &Desk{}

	for i := 0; i < n; i++ {
		tradeID := fmt.Sprintf("LT-%04d", 1000+i)
		status := sampleTradeStatuses[rng.Intn(len(sampleTradeStatuses))]

		trade := trading.Trade{
			ID:            tradeID,
			Borrower:      sampleBorrowers[rng.Intn(len(sampleBorrowers))],
			Facility:      fmt.Sprintf("Term Loan %c", 'A'+rng.Intn(3)),
			Counterparty:  sampleCounterparties[rng.Intn(len(sampleCounterparties))],
			Side:          pick(rng, "buy", "sell"),
			Amount:        float64(rng.Intn(90)+5) * 1_000_000,
			Status:        status,
			FlaggedItems:  rng.Intn(7),
			OpenQuestions: rng.Intn(14),
		}
		if status == trading.TradeStatusInDueDiligence {
			trade.DDProgress = rng.Intn(100)
		}
		// Roughly a third of trades have no settlement date yet.
		if rng.Intn(3) != 0 {
			trade.SettlementDate = dateOffset(rng.Intn(18) - 3)
		}
		desk.Trades = append(desk.Trades, trade)

		for d := 0; d < rng.Intn(3); d++ {
			desk.Details = append(desk.Details, trading.TradeDetail{
				ID:                 fmt.Sprintf("TD-%04d-%d", 1000+i, d),
				TradeID:            tradeID,
				DocumentName:       sampleDocuments[rng.Intn(len(sampleDocuments))],
				Severity:           sampleSeverities[rng.Intn(len(sampleSeverities))],
				Status:             sampleDocStates[rng.Intn(len(sampleDocStates))],
				UnresolvedComments: rng.Intn(11),
				ReviewDueDate:      dateOffset(rng.Intn(10) - 2),
			})
		}

		if trade.SettlementDate != "" {
			desk.Settlements = append(desk.Settlements, trading.Settlement{
				ID:           fmt.Sprintf("ST-%04d", 2000+i),
				TradeID:      tradeID,
				Counterparty: trade.Counterparty,
				Side:         trade.Side,
				Amount:       trade.Amount,
				Currency:     "USD",
				Status:       sampleSettlementStatuses[rng.Intn(len(sampleSettlementStatuses))],
				ValueDate:    trade.SettlementDate,
			})
		}
	}

	return desk
}

func pick(rng *rand.Rand, a, b string) string {
	if rng.Intn(2) == 0 {
		return a
	}
	return b
}

func dateOffset(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}
