package display

import (
	"fmt"
	"strings"

	"scorekeeper/models"
)

// RenderHistory renders the year's history table: games grouped by date,
// a daily totals row per date, and the year totals row. Winners are
// marked '*', losers '!'.
func RenderHistory(view *models.HistoryView, players []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Game history %d — %s\n", view.Year, pluralGames(view.GameCount))

	if view.GameCount == 0 {
		fmt.Fprintf(&b, "No games recorded for %d.\n", view.Year)
		return b.String()
	}

	widths := columnWidths(view, players)

	gameNumber := 1
	for _, group := range view.Groups {
		fmt.Fprintf(&b, "\n📅 %s\n", FormatFullDate(group.Date))

		b.WriteString(pad("#", 4))
		for _, p := range players {
			b.WriteString(pad(p, widths[p]))
		}
		b.WriteString("id\n")

		for _, g := range group.Games {
			cells := markCells(scoresFor(g, players), players)
			b.WriteString(pad(fmt.Sprintf("%d", gameNumber), 4))
			for _, p := range players {
				b.WriteString(pad(cells[p], widths[p]))
			}
			b.WriteString(g.ID)
			b.WriteByte('\n')
			gameNumber++
		}

		cells := markCells(group.DailyTotals, players)
		b.WriteString(pad("Σ", 4))
		for _, p := range players {
			b.WriteString(pad(cells[p], widths[p]))
		}
		b.WriteByte('\n')
	}

	b.WriteString("\n🏆 Year totals\n")
	b.WriteString(pad("", 4))
	cells := markCells(view.YearTotals, players)
	for _, p := range players {
		b.WriteString(pad(cells[p], widths[p]))
	}
	b.WriteByte('\n')

	return b.String()
}

// columnWidths sizes each player column to fit the name, every marked
// score cell, and the totals rows.
func columnWidths(view *models.HistoryView, players []string) map[string]int {
	widths := make(map[string]int, len(players))
	grow := func(cells map[string]string) {
		for _, p := range players {
			if len(cells[p]) > widths[p] {
				widths[p] = len(cells[p])
			}
		}
	}

	for _, p := range players {
		widths[p] = len(p)
	}
	for _, group := range view.Groups {
		for _, g := range group.Games {
			grow(markCells(scoresFor(g, players), players))
		}
		grow(markCells(group.DailyTotals, players))
	}
	grow(markCells(view.YearTotals, players))

	for _, p := range players {
		widths[p] += 2
	}
	return widths
}

func scoresFor(g models.Game, players []string) map[string]int {
	scores := make(map[string]int, len(players))
	for _, p := range players {
		scores[p] = g.Score(p)
	}
	return scores
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

func pluralGames(n int) string {
	if n == 1 {
		return "1 game"
	}
	return fmt.Sprintf("%d games", n)
}
