package display

import (
	"fmt"
	"strings"

	"scorekeeper/models"
)

// RenderSummary renders the year's headline statistics block.
func RenderSummary(year int, summary models.YearSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Summary %d\n", year)

	if summary.GameCount == 0 {
		fmt.Fprintf(&b, "No games recorded for %d.\n", year)
		return b.String()
	}

	fmt.Fprintf(&b, "🎮 Total games    %d\n", summary.GameCount)
	fmt.Fprintf(&b, "🏆 First place    %s\n", summary.FirstPlace)
	fmt.Fprintf(&b, "😢 Last place     %s\n", summary.LastPlace)
	fmt.Fprintf(&b, "🥇 Most wins      %s (%d)\n", summary.MostWins, summary.MostWinsCount)
	fmt.Fprintf(&b, "💀 Most losses    %s (%d)\n", summary.MostLosses, summary.MostLossesCount)
	fmt.Fprintf(&b, "📊 Overall avg    %s\n", FormatNumber(summary.OverallAverage))
	return b.String()
}
