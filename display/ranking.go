package display

import (
	"fmt"
	"strings"

	"scorekeeper/models"
)

// RenderRanking renders the year ranking, ascending by total. First
// place gets the medal, last place the consolation.
func RenderRanking(year int, entries []models.RankEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ranking %d\n", year)

	if len(entries) == 0 {
		fmt.Fprintf(&b, "No games recorded for %d.\n", year)
		return b.String()
	}

	nameWidth := 0
	for _, e := range entries {
		if len(e.Player) > nameWidth {
			nameWidth = len(e.Player)
		}
	}

	for _, e := range entries {
		prefix := "  "
		switch {
		case e.First:
			prefix = "🥇"
		case e.Last:
			prefix = "😢"
		}
		fmt.Fprintf(&b, "%s %-4s %s %s\n",
			prefix, ordinal(e.Rank), pad(e.Player, nameWidth+2), FormatNumber(e.Total))
	}
	return b.String()
}
