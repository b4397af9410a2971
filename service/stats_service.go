package service

import (
	"scorekeeper/models"
)

// recentLimit is how many games the recent view shows.
const recentLimit = 5

// statsService implements the StatsService interface
type statsService struct {
	scoreboard Scoreboard
}

// NewStatsService creates a new stats service
func NewStatsService(scoreboard Scoreboard) StatsService {
	return &statsService{scoreboard: scoreboard}
}

// History returns the year's games grouped by date, each group with its
// daily totals, plus the year totals. A year without games yields a view
// with a zero game count and no groups.
func (s *statsService) History(year int) *models.HistoryView {
	view := &models.HistoryView{Year: year}

	games := s.scoreboard.GamesForYear(year)
	view.GameCount = len(games)
	if len(games) == 0 {
		return view
	}

	players := s.scoreboard.Players()
	groups := s.scoreboard.GroupByDate(games)
	for i := range groups {
		groups[i].DailyTotals = Totals(groups[i].Games, players)
	}
	view.Groups = groups
	view.YearTotals = Totals(games, players)
	return view
}

// Recent returns up to the five most recent games of the year, newest
// first.
func (s *statsService) Recent(year int) []models.Game {
	games := s.scoreboard.GamesForYear(year)
	if len(games) > recentLimit {
		games = games[len(games)-recentLimit:]
	}
	// reverse: newest first
	recent := make([]models.Game, 0, len(games))
	for i := len(games) - 1; i >= 0; i-- {
		recent = append(recent, games[i])
	}
	return recent
}

// Ranking returns the year's players ordered ascending by total, or nil
// when the year has no games.
func (s *statsService) Ranking(year int) []models.RankEntry {
	games := s.scoreboard.GamesForYear(year)
	if len(games) == 0 {
		return nil
	}
	players := s.scoreboard.Players()
	return Ranking(Totals(games, players), players)
}

// Overview returns the year's summary together with the cumulative,
// win/loss, and average series the charts are drawn from.
func (s *statsService) Overview(year int) *models.YearOverview {
	players := s.scoreboard.Players()
	games := s.scoreboard.GamesForYear(year)

	return &models.YearOverview{
		Year:       year,
		Players:    players,
		GameCount:  len(games),
		Summary:    Summarize(games, players),
		Cumulative: Cumulative(games, players),
		WinLoss:    WinLossCounts(games, players),
		Averages:   Averages(games, players),
	}
}
