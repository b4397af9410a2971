package service

import (
	"math"
	"sort"

	"scorekeeper/models"
)

// The functions in this file are the pure aggregation core: they never
// touch storage and never mutate their inputs. Lower score is better
// everywhere — the ranking comparator is ascending and must stay that way.

// GameOutcome partitions a single game into winners and losers. Winners
// are every player at the minimum score. Losers are every player at the
// maximum score, unless the maximum equals the minimum (all tied), in
// which case nobody loses.
func GameOutcome(g models.Game) models.Outcome {
	return outcomeOf(g.Scores)
}

func outcomeOf(scores map[string]int) models.Outcome {
	out := models.Outcome{
		Winners: make(map[string]bool),
		Losers:  make(map[string]bool),
	}
	if len(scores) == 0 {
		return out
	}

	first := true
	var min, max int
	for _, s := range scores {
		if first {
			min, max = s, s
			first = false
			continue
		}
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}

	for p, s := range scores {
		if s == min {
			out.Winners[p] = true
		}
		if s == max && max != min {
			out.Losers[p] = true
		}
	}
	return out
}

// rosterScores projects a game onto the roster, defaulting absent
// entries to 0.
func rosterScores(g models.Game, players []string) map[string]int {
	scores := make(map[string]int, len(players))
	for _, p := range players {
		scores[p] = g.Score(p)
	}
	return scores
}

// Totals sums each roster player's scores across the given games.
func Totals(games []models.Game, players []string) map[string]int {
	totals := make(map[string]int, len(players))
	for _, p := range players {
		totals[p] = 0
	}
	for _, g := range games {
		for _, p := range players {
			totals[p] += g.Score(p)
		}
	}
	return totals
}

// Cumulative returns each roster player's running totals, one entry per
// game in the order given.
func Cumulative(games []models.Game, players []string) map[string][]int {
	running := make(map[string]int, len(players))
	cumulative := make(map[string][]int, len(players))
	for _, p := range players {
		cumulative[p] = make([]int, 0, len(games))
	}
	for _, g := range games {
		for _, p := range players {
			running[p] += g.Score(p)
			cumulative[p] = append(cumulative[p], running[p])
		}
	}
	return cumulative
}

// Ranking orders players ascending by total. Ties keep roster order. The
// first entry is marked First; the last is marked Last only when the
// roster has more than one player.
func Ranking(totals map[string]int, players []string) []models.RankEntry {
	entries := make([]models.RankEntry, 0, len(players))
	for _, p := range players {
		entries = append(entries, models.RankEntry{Player: p, Total: totals[p]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total < entries[j].Total
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	if len(entries) > 0 {
		entries[0].First = true
		if len(entries) > 1 {
			entries[len(entries)-1].Last = true
		}
	}
	return entries
}

// WinLossCounts counts each roster player's wins and losses across the
// given games, with absent score entries read as 0.
func WinLossCounts(games []models.Game, players []string) map[string]models.WinLoss {
	counts := make(map[string]models.WinLoss, len(players))
	for _, p := range players {
		counts[p] = models.WinLoss{}
	}
	for _, g := range games {
		out := outcomeOf(rosterScores(g, players))
		for _, p := range players {
			wl := counts[p]
			if out.Winners[p] {
				wl.Wins++
			}
			if out.Losers[p] {
				wl.Losses++
			}
			counts[p] = wl
		}
	}
	return counts
}

// Averages returns each roster player's mean score rounded to the
// nearest integer. With no games it returns an empty map rather than
// dividing by zero.
func Averages(games []models.Game, players []string) map[string]int {
	averages := make(map[string]int, len(players))
	if len(games) == 0 {
		return averages
	}
	totals := Totals(games, players)
	for _, p := range players {
		averages[p] = int(math.Round(float64(totals[p]) / float64(len(games))))
	}
	return averages
}

// Summarize computes the year summary block. Every superlative breaks
// ties by picking the first player in roster order.
func Summarize(games []models.Game, players []string) models.YearSummary {
	summary := models.YearSummary{GameCount: len(games)}
	if len(games) == 0 || len(players) == 0 {
		return summary
	}

	totals := Totals(games, players)
	counts := WinLossCounts(games, players)

	summary.FirstPlace = firstBy(players, func(p string) int { return -totals[p] })
	summary.LastPlace = firstBy(players, func(p string) int { return totals[p] })
	summary.MostWins = firstBy(players, func(p string) int { return counts[p].Wins })
	summary.MostWinsCount = counts[summary.MostWins].Wins
	summary.MostLosses = firstBy(players, func(p string) int { return counts[p].Losses })
	summary.MostLossesCount = counts[summary.MostLosses].Losses

	grand := 0
	for _, p := range players {
		grand += totals[p]
	}
	summary.OverallAverage = int(math.Round(float64(grand) / float64(len(players)) / float64(len(games))))

	return summary
}

// firstBy returns the first player in roster order maximizing key.
func firstBy(players []string, key func(string) int) string {
	best := players[0]
	for _, p := range players[1:] {
		if key(p) > key(best) {
			best = p
		}
	}
	return best
}
