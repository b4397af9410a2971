package display

import (
	"fmt"
	"strings"
	"time"

	"scorekeeper/models"
)

// FormatNumber formats a score with thousand separators
func FormatNumber(n int) string {
	str := fmt.Sprintf("%d", n)

	length := len(str)
	if length <= 3 {
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (length-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}
	return result.String()
}

// FormatShortDate renders an ISO calendar date as M/D
func FormatShortDate(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}

// FormatFullDate renders an ISO calendar date as YYYY/M/D
func FormatFullDate(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month()), t.Day())
}

// markCells renders one row of scores as text cells, marking the row's
// winners with '*' and its losers with '!'. A row where every value is
// equal has winners only.
func markCells(values map[string]int, players []string) map[string]string {
	cells := make(map[string]string, len(players))
	if len(players) == 0 {
		return cells
	}

	min, max := values[players[0]], values[players[0]]
	for _, p := range players[1:] {
		if values[p] < min {
			min = values[p]
		}
		if values[p] > max {
			max = values[p]
		}
	}

	for _, p := range players {
		cell := FormatNumber(values[p])
		switch {
		case values[p] == min:
			cell += " *"
		case values[p] == max && max != min:
			cell += " !"
		}
		cells[p] = cell
	}
	return cells
}

// ordinal renders a rank as 1st, 2nd, 3rd, 4th...
func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}
