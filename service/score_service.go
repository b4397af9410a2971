package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"scorekeeper/models"
)

// Validation errors reported back to the user. None of them mutate state.
var (
	ErrNoScores      = errors.New("enter at least one score")
	ErrNegativeScore = errors.New("scores must be zero or positive")
	ErrUnknownPlayer = errors.New("player is not on the roster")
	ErrInvalidDate   = errors.New("date must be in YYYY-MM-DD format")
)

// scoreService implements the ScoreService interface
type scoreService struct {
	scoreboard Scoreboard
}

// NewScoreService creates a new score service
func NewScoreService(scoreboard Scoreboard) ScoreService {
	return &scoreService{scoreboard: scoreboard}
}

// RecordGame validates the entry and appends a new game. Every roster
// player gets a score entry, defaulting to 0 when none was supplied. The
// entry is accepted when at least one player scored 0 (a winner) or at
// least one nonzero score was entered.
func (s *scoreService) RecordGame(ctx context.Context, date string, scores map[string]int) (*models.Game, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	players := s.scoreboard.Players()
	roster := make(map[string]bool, len(players))
	for _, p := range players {
		roster[p] = true
	}

	full := make(map[string]int, len(players))
	for _, p := range players {
		full[p] = 0
	}
	for p, score := range scores {
		if !roster[p] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, p)
		}
		if score < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNegativeScore, p)
		}
		full[p] = score
	}

	hasWinner := false
	hasScore := false
	for _, score := range full {
		if score == 0 {
			hasWinner = true
		}
		if score > 0 {
			hasScore = true
		}
	}
	if !hasWinner && !hasScore {
		return nil, ErrNoScores
	}

	game := models.Game{
		ID:     uuid.NewString(),
		Date:   date,
		Scores: full,
	}
	if err := s.scoreboard.AddGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to record game: %w", err)
	}

	log.WithFields(log.Fields{"game": game.ID, "date": date}).Debug("recorded game")
	return &game, nil
}

// DeleteGame removes the game with the given id. Deleting an unknown id
// reports false without error.
func (s *scoreService) DeleteGame(ctx context.Context, id string) (bool, error) {
	removed, err := s.scoreboard.DeleteGame(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete game: %w", err)
	}
	return removed, nil
}

// ClearGames removes every recorded game but keeps the roster.
func (s *scoreService) ClearGames(ctx context.Context) error {
	if err := s.scoreboard.ClearGames(ctx); err != nil {
		return fmt.Errorf("failed to clear games: %w", err)
	}
	return nil
}
