package output

import (
	"fmt"
	"strings"

	"github.com/harborline/tradewatch/internal/priority"
)

// DistributionBar renders a proportional bar for one bucket of a
// distribution, colored by band.
// Example: "████░░░░░░░░░░░░░░░░  4/20"
func DistributionBar(band priority.Band, count, total, width int) string {
	if width <= 0 {
		width = 20
	}

	filled := 0
	if total > 0 {
		filled = int(float64(count) / float64(total) * float64(width))
	}
	if filled > width {
		filled = width
	}
	if count > 0 && filled == 0 {
		filled = 1 // non-empty buckets always show
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s  %s", BandStyle(band).Render(bar),
		StyleMuted.Render(fmt.Sprintf("%d/%d", count, total)))
}

// TrendArrow returns a styled trend indicator for a bucket-count delta.
// Urgency counts regress when they grow, so positive deltas render in the
// critical color and negative ones in the low (improving) color.
func TrendArrow(delta int) string {
	switch {
	case delta == 0:
		return StyleMuted.Render("─")
	case delta > 0:
		return StyleCritical.Render(fmt.Sprintf("▲ +%d", delta))
	default:
		return StyleLow.Render(fmt.Sprintf("▼ %d", delta))
	}
}

// Section renders a section header with an underline.
func Section(title string) string {
	return StyleHeader.Render(title) + "\n" + StyleMuted.Render(strings.Repeat("═", len(title)))
}
