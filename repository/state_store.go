package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"scorekeeper/database"
	"scorekeeper/models"
)

// stateKey is the app_state row the whole document lives under.
const stateKey = "scoreboard"

// Persister loads and saves the application state document.
type Persister interface {
	Load(ctx context.Context) *models.StateDocument
	Save(ctx context.Context, doc *models.StateDocument) error
}

// StateStore persists the state document as a single JSON value in the
// app_state table.
type StateStore struct {
	db             *database.DB
	defaultPlayers []string
}

// NewStateStore creates a state store backed by db. defaultPlayers seeds
// the roster when no usable saved state exists.
func NewStateStore(db *database.DB, defaultPlayers []string) *StateStore {
	return &StateStore{db: db, defaultPlayers: defaultPlayers}
}

// Load reads the saved state document. Missing or malformed state degrades
// to the default roster and an empty game list; it never fails the caller.
func (s *StateStore) Load(ctx context.Context) *models.StateDocument {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, stateKey,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return s.defaults()
	}
	if err != nil {
		log.WithError(err).Warn("failed to read saved state, starting from defaults")
		return s.defaults()
	}

	var doc models.StateDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		log.WithError(err).Warn("saved state is corrupt, starting from defaults")
		return s.defaults()
	}

	if len(doc.Players) == 0 {
		doc.Players = append([]string(nil), s.defaultPlayers...)
	}
	if doc.Games == nil {
		doc.Games = []models.Game{}
	}
	return &doc
}

// Save writes the state document, replacing any previous version.
func (s *StateStore) Save(ctx context.Context, doc *models.StateDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		stateKey, string(raw),
	)
	if err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

func (s *StateStore) defaults() *models.StateDocument {
	return &models.StateDocument{
		Players: append([]string(nil), s.defaultPlayers...),
		Games:   []models.Game{},
	}
}
