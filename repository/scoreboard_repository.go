package repository

import (
	"context"
	"sort"

	"scorekeeper/models"
)

// ScoreboardRepository owns the in-memory roster and game list. It is
// loaded from the persister once at construction and flushed back through
// it before any mutation returns.
type ScoreboardRepository struct {
	persister Persister
	doc       *models.StateDocument
}

// NewScoreboardRepository loads the saved state into memory.
func NewScoreboardRepository(ctx context.Context, persister Persister) *ScoreboardRepository {
	return &ScoreboardRepository{
		persister: persister,
		doc:       persister.Load(ctx),
	}
}

// Players returns the roster in display order.
func (r *ScoreboardRepository) Players() []string {
	return append([]string(nil), r.doc.Players...)
}

// Games returns every recorded game in insertion order.
func (r *ScoreboardRepository) Games() []models.Game {
	return append([]models.Game(nil), r.doc.Games...)
}

// AddGame appends a game and persists.
func (r *ScoreboardRepository) AddGame(ctx context.Context, game models.Game) error {
	r.doc.Games = append(r.doc.Games, game)
	return r.flush(ctx)
}

// DeleteGame removes the game with the given id and persists. Deleting an
// unknown id is a no-op.
func (r *ScoreboardRepository) DeleteGame(ctx context.Context, id string) (bool, error) {
	for i, g := range r.doc.Games {
		if g.ID == id {
			r.doc.Games = append(r.doc.Games[:i], r.doc.Games[i+1:]...)
			return true, r.flush(ctx)
		}
	}
	return false, nil
}

// ClearGames removes every game but keeps the roster, and persists.
func (r *ScoreboardRepository) ClearGames(ctx context.Context) error {
	r.doc.Games = []models.Game{}
	return r.flush(ctx)
}

// GamesForYear returns the games whose date falls in the given calendar
// year, sorted ascending by date. Same-date games keep insertion order.
func (r *ScoreboardRepository) GamesForYear(year int) []models.Game {
	var games []models.Game
	for _, g := range r.doc.Games {
		if g.Year() == year {
			games = append(games, g)
		}
	}
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Date < games[j].Date
	})
	return games
}

// GroupByDate groups an already date-sorted game sequence into one group
// per date, preserving order within each group. DailyTotals is left for
// the caller to fill in.
func (r *ScoreboardRepository) GroupByDate(games []models.Game) []models.DateGroup {
	var groups []models.DateGroup
	index := make(map[string]int)
	for _, g := range games {
		i, ok := index[g.Date]
		if !ok {
			i = len(groups)
			index[g.Date] = i
			groups = append(groups, models.DateGroup{Date: g.Date})
		}
		groups[i].Games = append(groups[i].Games, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date < groups[j].Date
	})
	return groups
}

// AddPlayer appends a player to the roster and persists.
func (r *ScoreboardRepository) AddPlayer(ctx context.Context, name string) error {
	r.doc.Players = append(r.doc.Players, name)
	return r.flush(ctx)
}

// RemovePlayer drops a player from the roster and persists. Historical
// games keep their score entries for the removed player.
func (r *ScoreboardRepository) RemovePlayer(ctx context.Context, name string) error {
	players := r.doc.Players[:0]
	for _, p := range r.doc.Players {
		if p != name {
			players = append(players, p)
		}
	}
	r.doc.Players = players
	return r.flush(ctx)
}

// Import applies an imported document in one flush: a non-nil players list
// replaces the roster wholesale, and incoming games are appended unless a
// game with the same id already exists. It returns how many games were
// added and how many were skipped as duplicates.
func (r *ScoreboardRepository) Import(ctx context.Context, players []string, games []models.Game) (added, skipped int, err error) {
	if players != nil {
		r.doc.Players = append([]string(nil), players...)
	}

	existing := make(map[string]bool, len(r.doc.Games))
	for _, g := range r.doc.Games {
		existing[g.ID] = true
	}
	for _, g := range games {
		if existing[g.ID] {
			skipped++
			continue
		}
		r.doc.Games = append(r.doc.Games, g)
		existing[g.ID] = true
		added++
	}

	return added, skipped, r.flush(ctx)
}

func (r *ScoreboardRepository) flush(ctx context.Context) error {
	return r.persister.Save(ctx, r.doc)
}
