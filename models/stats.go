package models

// Outcome is the winner/loser partition of a single game. Winners are the
// players at the minimum score; losers are the players at the maximum score
// unless every score is tied, in which case there are no losers.
type Outcome struct {
	Winners map[string]bool
	Losers  map[string]bool
}

// WinLoss holds a player's win and loss counts across a game sequence.
type WinLoss struct {
	Wins   int
	Losses int
}

// RankEntry is one row of a year ranking, ordered ascending by total
// because the lowest total wins.
type RankEntry struct {
	Rank   int
	Player string
	Total  int
	First  bool
	Last   bool
}

// DateGroup is one calendar date's games in insertion order, with the
// summed score per player across those games.
type DateGroup struct {
	Date        string
	Games       []Game
	DailyTotals map[string]int
}

// HistoryView is the full history table for one year: games grouped by
// date with daily totals, plus the year totals row.
type HistoryView struct {
	Year       int
	GameCount  int
	Groups     []DateGroup
	YearTotals map[string]int
}

// YearSummary represents headline statistics for one year. Tie breaks on
// the superlative fields always pick the first player in roster order.
type YearSummary struct {
	GameCount       int
	FirstPlace      string
	LastPlace       string
	MostWins        string
	MostWinsCount   int
	MostLosses      string
	MostLossesCount int
	OverallAverage  int
}

// YearOverview bundles everything the stats command renders for one year.
type YearOverview struct {
	Year       int
	Players    []string
	GameCount  int
	Summary    YearSummary
	Cumulative map[string][]int
	WinLoss    map[string]WinLoss
	Averages   map[string]int
}
