package display

import (
	"fmt"
	"sort"
	"strings"

	"scorekeeper/models"
)

// RenderRecent renders the most recent games of the year, newest first,
// marking each game's winners and losers.
func RenderRecent(year int, games []models.Game, players []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recent games %d\n", year)

	if len(games) == 0 {
		fmt.Fprintf(&b, "No games recorded for %d.\n", year)
		return b.String()
	}

	for _, g := range games {
		names := scoreOrder(g, players)
		values := make(map[string]int, len(names))
		for _, n := range names {
			values[n] = g.Scores[n]
		}
		cells := markCells(values, names)

		parts := make([]string, 0, len(names))
		for _, n := range names {
			parts = append(parts, fmt.Sprintf("%s %s", n, cells[n]))
		}
		fmt.Fprintf(&b, "%-6s %s  [%s]\n", FormatShortDate(g.Date), strings.Join(parts, "  "), g.ID)
	}
	return b.String()
}

// scoreOrder lists the game's own score entries: roster players first in
// roster order, then any names no longer on the roster, sorted.
func scoreOrder(g models.Game, players []string) []string {
	seen := make(map[string]bool, len(g.Scores))
	var names []string
	for _, p := range players {
		if _, ok := g.Scores[p]; ok {
			names = append(names, p)
			seen[p] = true
		}
	}
	var extra []string
	for n := range g.Scores {
		if !seen[n] {
			extra = append(extra, n)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}
