package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerService_Add(t *testing.T) {
	ctx := context.Background()
	sb, _ := newTestScoreboard("A", "B")
	svc := NewPlayerService(sb)

	require.NoError(t, svc.Add(ctx, "  C  "))
	assert.Equal(t, []string{"A", "B", "C"}, svc.List())
}

func TestPlayerService_Add_RejectsDuplicate(t *testing.T) {
	sb, _ := newTestScoreboard("A", "B")
	svc := NewPlayerService(sb)

	err := svc.Add(context.Background(), "B")
	assert.ErrorIs(t, err, ErrDuplicatePlayer)
	assert.Equal(t, []string{"A", "B"}, svc.List())
}

func TestPlayerService_Add_RejectsEmpty(t *testing.T) {
	sb, _ := newTestScoreboard("A", "B")
	svc := NewPlayerService(sb)

	err := svc.Add(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestPlayerService_Remove_AtFloor(t *testing.T) {
	sb, _ := newTestScoreboard("A", "B")
	svc := NewPlayerService(sb)

	err := svc.Remove(context.Background(), "B")
	assert.ErrorIs(t, err, ErrRosterFloor)
	assert.Equal(t, []string{"A", "B"}, svc.List())
}

func TestPlayerService_Remove_AboveFloor(t *testing.T) {
	ctx := context.Background()
	sb, _ := newTestScoreboard("A", "B", "C")
	scores := NewScoreService(sb)
	svc := NewPlayerService(sb)

	game, err := scores.RecordGame(ctx, "2024-01-01", map[string]int{"A": 0, "B": 5, "C": 2})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, "C"))
	assert.Equal(t, []string{"A", "B"}, svc.List())

	// historical games keep the removed player's entry
	kept := sb.Games()
	require.Len(t, kept, 1)
	assert.Equal(t, game.Scores["C"], kept[0].Scores["C"])
	assert.Equal(t, 2, kept[0].Scores["C"])
}

func TestPlayerService_Remove_Unknown(t *testing.T) {
	sb, _ := newTestScoreboard("A", "B", "C")
	svc := NewPlayerService(sb)

	err := svc.Remove(context.Background(), "Z")
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}
