package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// MinRosterSize is the smallest roster that can still produce a winner
// and a loser.
const MinRosterSize = 2

var (
	ErrEmptyName       = errors.New("player name must not be empty")
	ErrDuplicatePlayer = errors.New("a player with that name already exists")
	ErrRosterFloor     = fmt.Errorf("at least %d players are required", MinRosterSize)
)

// playerService implements the PlayerService interface
type playerService struct {
	scoreboard Scoreboard
}

// NewPlayerService creates a new player service
func NewPlayerService(scoreboard Scoreboard) PlayerService {
	return &playerService{scoreboard: scoreboard}
}

// List returns the roster in display order.
func (s *playerService) List() []string {
	return s.scoreboard.Players()
}

// Add appends a new player to the roster. Names are trimmed; blanks and
// duplicates are rejected.
func (s *playerService) Add(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	for _, p := range s.scoreboard.Players() {
		if p == name {
			return ErrDuplicatePlayer
		}
	}
	if err := s.scoreboard.AddPlayer(ctx, name); err != nil {
		return fmt.Errorf("failed to add player: %w", err)
	}
	return nil
}

// Remove drops a player from the roster. Removal is rejected when it
// would shrink the roster below the floor. Historical games keep the
// removed player's score entries.
func (s *playerService) Remove(ctx context.Context, name string) error {
	players := s.scoreboard.Players()
	if len(players) <= MinRosterSize {
		return ErrRosterFloor
	}

	found := false
	for _, p := range players {
		if p == name {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}

	if err := s.scoreboard.RemovePlayer(ctx, name); err != nil {
		return fmt.Errorf("failed to remove player: %w", err)
	}
	return nil
}
