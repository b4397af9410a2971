package service

import (
	"context"
	"io"

	"scorekeeper/models"
)

// Scoreboard defines the interface for the state-owning repository the
// services operate on. Every mutating method persists before returning.
type Scoreboard interface {
	// Players returns the roster in display order
	Players() []string

	// Games returns every recorded game in insertion order
	Games() []models.Game

	// AddGame appends a game
	AddGame(ctx context.Context, game models.Game) error

	// DeleteGame removes a game by id, reporting whether it existed
	DeleteGame(ctx context.Context, id string) (bool, error)

	// ClearGames removes every game but keeps the roster
	ClearGames(ctx context.Context) error

	// GamesForYear returns the year's games sorted ascending by date
	GamesForYear(year int) []models.Game

	// GroupByDate groups a date-sorted sequence into one group per date
	GroupByDate(games []models.Game) []models.DateGroup

	// AddPlayer appends a player to the roster
	AddPlayer(ctx context.Context, name string) error

	// RemovePlayer drops a player from the roster
	RemovePlayer(ctx context.Context, name string) error

	// Import replaces the roster (when players is non-nil) and merges
	// games by id in a single flush
	Import(ctx context.Context, players []string, games []models.Game) (added, skipped int, err error)
}

// ScoreService records and deletes games
type ScoreService interface {
	// RecordGame validates and records a game for the given date
	RecordGame(ctx context.Context, date string, scores map[string]int) (*models.Game, error)

	// DeleteGame removes a game by id, reporting whether it existed
	DeleteGame(ctx context.Context, id string) (bool, error)

	// ClearGames removes every recorded game
	ClearGames(ctx context.Context) error
}

// PlayerService manages the roster
type PlayerService interface {
	// List returns the roster in display order
	List() []string

	// Add appends a new player, rejecting blanks and duplicates
	Add(ctx context.Context, name string) error

	// Remove drops a player, rejecting removal below the roster floor
	Remove(ctx context.Context, name string) error
}

// StatsService derives the year-scoped views
type StatsService interface {
	// History returns the year's games grouped by date with daily and
	// yearly totals
	History(year int) *models.HistoryView

	// Recent returns up to the five most recent games of the year,
	// newest first
	Recent(year int) []models.Game

	// Ranking returns players ordered ascending by year total
	Ranking(year int) []models.RankEntry

	// Overview returns the year's summary plus chart inputs
	Overview(year int) *models.YearOverview
}

// ImportResult describes what an import changed.
type ImportResult struct {
	PlayersReplaced bool
	GamesAdded      int
	GamesSkipped    int
}

// ArchiveService moves state in and out of portable export documents
type ArchiveService interface {
	// Export writes the full state as an export document
	Export(w io.Writer) error

	// Import merges an export document; malformed input leaves state
	// untouched
	Import(ctx context.Context, r io.Reader) (*ImportResult, error)
}
