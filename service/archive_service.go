package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"scorekeeper/models"
)

// ErrMalformedImport reports an import document that could not be parsed.
// Existing state is left untouched.
var ErrMalformedImport = errors.New("import document is malformed")

// archiveService implements the ArchiveService interface
type archiveService struct {
	scoreboard Scoreboard
	now        func() time.Time
}

// NewArchiveService creates a new archive service
func NewArchiveService(scoreboard Scoreboard) ArchiveService {
	return &archiveService{scoreboard: scoreboard, now: time.Now}
}

// Export writes the full state — roster, every game, and an export
// timestamp — as an indented JSON document.
func (s *archiveService) Export(w io.Writer) error {
	doc := models.ExportDocument{
		Players:    s.scoreboard.Players(),
		Games:      s.scoreboard.Games(),
		ExportDate: s.now().UTC(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write export document: %w", err)
	}
	return nil
}

// Import merges an export document into the current state. A present
// players list replaces the roster wholesale; games are merged by id with
// existing games never overwritten. Parse failures leave state untouched.
func (s *archiveService) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	var doc models.ExportDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}

	added, skipped, err := s.scoreboard.Import(ctx, doc.Players, doc.Games)
	if err != nil {
		return nil, fmt.Errorf("failed to apply import: %w", err)
	}

	return &ImportResult{
		PlayersReplaced: doc.Players != nil,
		GamesAdded:      added,
		GamesSkipped:    skipped,
	}, nil
}
