package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreService_RecordGame(t *testing.T) {
	ctx := context.Background()
	sb, persister := newTestScoreboard("A", "B", "C")
	svc := NewScoreService(sb)

	game, err := svc.RecordGame(ctx, "2024-01-01", map[string]int{"A": 0, "B": 5})
	require.NoError(t, err)

	assert.NotEmpty(t, game.ID)
	assert.Equal(t, "2024-01-01", game.Date)
	// every roster player gets an entry, defaulting to 0
	assert.Equal(t, map[string]int{"A": 0, "B": 5, "C": 0}, game.Scores)
	assert.Equal(t, 1, persister.saves)
}

func TestScoreService_RecordGame_FreshIDs(t *testing.T) {
	ctx := context.Background()
	sb, _ := newTestScoreboard("A", "B")
	svc := NewScoreService(sb)

	first, err := svc.RecordGame(ctx, "2024-01-01", map[string]int{"A": 0, "B": 5})
	require.NoError(t, err)

	removed, err := svc.DeleteGame(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	second, err := svc.RecordGame(ctx, "2024-01-01", map[string]int{"A": 0, "B": 5})
	require.NoError(t, err)

	// a deleted identifier is never reused
	assert.NotEqual(t, first.ID, second.ID)
}

func TestScoreService_RecordGame_InvalidDate(t *testing.T) {
	sb, _ := newTestScoreboard("A", "B")
	svc := NewScoreService(sb)

	_, err := svc.RecordGame(context.Background(), "01/02/2024", map[string]int{"A": 0})
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Empty(t, sb.Games())
}

func TestScoreService_RecordGame_UnknownPlayer(t *testing.T) {
	sb, _ := newTestScoreboard("A", "B")
	svc := NewScoreService(sb)

	_, err := svc.RecordGame(context.Background(), "2024-01-01", map[string]int{"Z": 3})
	assert.ErrorIs(t, err, ErrUnknownPlayer)
	assert.Empty(t, sb.Games())
}

func TestScoreService_RecordGame_NegativeScore(t *testing.T) {
	sb, _ := newTestScoreboard("A", "B")
	svc := NewScoreService(sb)

	_, err := svc.RecordGame(context.Background(), "2024-01-01", map[string]int{"A": -1})
	assert.ErrorIs(t, err, ErrNegativeScore)
	assert.Empty(t, sb.Games())
}

// The acceptance rule is "at least one zero score OR at least one nonzero
// score". Over a roster projected with default zeros the rule admits every
// entry: an all-zero game has winners, and an all-nonzero game has input.
// Both boundary cases are therefore recorded.
func TestScoreService_RecordGame_AcceptanceBoundaries(t *testing.T) {
	ctx := context.Background()
	sb, _ := newTestScoreboard("A", "B")
	svc := NewScoreService(sb)

	allZero, err := svc.RecordGame(ctx, "2024-01-01", map[string]int{"A": 0, "B": 0})
	require.NoError(t, err)
	out := GameOutcome(*allZero)
	assert.Equal(t, map[string]bool{"A": true, "B": true}, out.Winners)
	assert.Empty(t, out.Losers)

	_, err = svc.RecordGame(ctx, "2024-01-01", map[string]int{"A": 3, "B": 7})
	require.NoError(t, err)

	assert.Len(t, sb.Games(), 2)
}

func TestScoreService_DeleteGame_UnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	sb, persister := newTestScoreboard("A", "B")
	svc := NewScoreService(sb)

	removed, err := svc.DeleteGame(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 0, persister.saves)
}

func TestScoreService_ClearGames_KeepsRoster(t *testing.T) {
	ctx := context.Background()
	sb, _ := newTestScoreboard("A", "B")
	svc := NewScoreService(sb)

	_, err := svc.RecordGame(ctx, "2024-01-01", map[string]int{"A": 0, "B": 5})
	require.NoError(t, err)

	require.NoError(t, svc.ClearGames(ctx))
	assert.Empty(t, sb.Games())
	assert.Equal(t, []string{"A", "B"}, sb.Players())
}
