package service

import (
	"context"

	"scorekeeper/models"
	"scorekeeper/repository"
)

// memPersister keeps the state document in memory so service tests can
// run against the real repository without a database file.
type memPersister struct {
	doc      *models.StateDocument
	defaults []string
	saves    int
}

func (m *memPersister) Load(ctx context.Context) *models.StateDocument {
	if m.doc == nil {
		return &models.StateDocument{
			Players: append([]string(nil), m.defaults...),
			Games:   []models.Game{},
		}
	}
	return m.doc
}

func (m *memPersister) Save(ctx context.Context, doc *models.StateDocument) error {
	m.doc = doc
	m.saves++
	return nil
}

func newTestScoreboard(players ...string) (*repository.ScoreboardRepository, *memPersister) {
	p := &memPersister{defaults: players}
	return repository.NewScoreboardRepository(context.Background(), p), p
}
