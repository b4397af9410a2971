package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordAll(t *testing.T, svc ScoreService, entries []struct {
	date   string
	scores map[string]int
}) {
	t.Helper()
	ctx := context.Background()
	for _, e := range entries {
		_, err := svc.RecordGame(ctx, e.date, e.scores)
		require.NoError(t, err)
	}
}

func TestStatsService_History_DailyAndYearTotals(t *testing.T) {
	sb, _ := newTestScoreboard("A", "B")
	stats := NewStatsService(sb)

	// two games on the same date
	recordAll(t, NewScoreService(sb), []struct {
		date   string
		scores map[string]int
	}{
		{"2024-01-01", map[string]int{"A": 0, "B": 3}},
		{"2024-01-01", map[string]int{"A": 0, "B": 2}},
	})

	view := stats.History(2024)

	assert.Equal(t, 2, view.GameCount)
	require.Len(t, view.Groups, 1)
	assert.Equal(t, "2024-01-01", view.Groups[0].Date)
	assert.Len(t, view.Groups[0].Games, 2)
	assert.Equal(t, map[string]int{"A": 0, "B": 5}, view.Groups[0].DailyTotals)
	assert.Equal(t, map[string]int{"A": 0, "B": 5}, view.YearTotals)
}

func TestStatsService_History_GroupsSortedByDate(t *testing.T) {
	sb, _ := newTestScoreboard("A", "B")
	stats := NewStatsService(sb)

	recordAll(t, NewScoreService(sb), []struct {
		date   string
		scores map[string]int
	}{
		{"2024-03-10", map[string]int{"A": 0, "B": 1}},
		{"2024-01-05", map[string]int{"A": 2, "B": 0}},
		{"2024-03-10", map[string]int{"A": 0, "B": 4}},
		{"2024-02-20", map[string]int{"A": 0, "B": 3}},
	})

	view := stats.History(2024)

	require.Len(t, view.Groups, 3)
	assert.Equal(t, "2024-01-05", view.Groups[0].Date)
	assert.Equal(t, "2024-02-20", view.Groups[1].Date)
	assert.Equal(t, "2024-03-10", view.Groups[2].Date)
	assert.Len(t, view.Groups[2].Games, 2)
}

func TestStatsService_History_EmptyYear(t *testing.T) {
	sb, _ := newTestScoreboard("A", "B")
	stats := NewStatsService(sb)

	view := stats.History(1999)

	assert.Equal(t, 0, view.GameCount)
	assert.Empty(t, view.Groups)
	assert.Empty(t, view.YearTotals)
}

func TestStatsService_YearPartition(t *testing.T) {
	sb, _ := newTestScoreboard("A", "B")
	stats := NewStatsService(sb)

	recordAll(t, NewScoreService(sb), []struct {
		date   string
		scores map[string]int
	}{
		{"2023-12-31", map[string]int{"A": 0, "B": 9}},
		{"2024-01-01", map[string]int{"A": 0, "B": 1}},
	})

	assert.Equal(t, 1, stats.History(2023).GameCount)
	assert.Equal(t, 1, stats.History(2024).GameCount)
	assert.Equal(t, map[string]int{"A": 0, "B": 9}, stats.History(2023).YearTotals)
}

func TestStatsService_Recent_NewestFirstCappedAtFive(t *testing.T) {
	sb, _ := newTestScoreboard("A", "B")
	stats := NewStatsService(sb)

	var entries []struct {
		date   string
		scores map[string]int
	}
	dates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05", "2024-01-06", "2024-01-07"}
	for i, d := range dates {
		entries = append(entries, struct {
			date   string
			scores map[string]int
		}{d, map[string]int{"A": 0, "B": i}})
	}
	recordAll(t, NewScoreService(sb), entries)

	recent := stats.Recent(2024)

	require.Len(t, recent, 5)
	assert.Equal(t, "2024-01-07", recent[0].Date)
	assert.Equal(t, "2024-01-03", recent[4].Date)
}

func TestStatsService_Ranking_EmptyYear(t *testing.T) {
	sb, _ := newTestScoreboard("A", "B")
	stats := NewStatsService(sb)

	assert.Nil(t, stats.Ranking(2024))
}

func TestStatsService_Overview(t *testing.T) {
	sb, _ := newTestScoreboard("A", "B")
	stats := NewStatsService(sb)

	recordAll(t, NewScoreService(sb), []struct {
		date   string
		scores map[string]int
	}{
		{"2024-01-01", map[string]int{"A": 0, "B": 5}},
		{"2024-01-02", map[string]int{"A": 2, "B": 0}},
	})

	overview := stats.Overview(2024)

	assert.Equal(t, 2, overview.GameCount)
	assert.Equal(t, []string{"A", "B"}, overview.Players)
	assert.Equal(t, []int{0, 2}, overview.Cumulative["A"])
	assert.Equal(t, []int{5, 5}, overview.Cumulative["B"])
	assert.Equal(t, 1, overview.WinLoss["A"].Wins)
	assert.Equal(t, 1, overview.WinLoss["A"].Losses)
	assert.Equal(t, map[string]int{"A": 1, "B": 3}, overview.Averages)
	assert.Equal(t, "A", overview.Summary.FirstPlace)
}

func TestStatsService_Overview_EmptyYearDoesNotFail(t *testing.T) {
	sb, _ := newTestScoreboard("A", "B")
	stats := NewStatsService(sb)

	overview := stats.Overview(2024)

	assert.Equal(t, 0, overview.GameCount)
	assert.Empty(t, overview.Averages)
	assert.Empty(t, overview.Cumulative["A"])
}
