package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"scorekeeper/config"
	"scorekeeper/database"
	"scorekeeper/repository"
	"scorekeeper/service"
)

// app bundles the wired services with the command environment
type app struct {
	cfg     *config.Config
	year    int
	scores  service.ScoreService
	players service.PlayerService
	stats   service.StatsService
	archive service.ArchiveService
	out     io.Writer
	in      io.Reader
}

// Run initializes the application and executes one command
func Run(ctx context.Context, args []string) error {
	cfg := config.Get()
	setupLogging(cfg.LogLevel)

	fs := flag.NewFlagSet("scorekeeper", flag.ContinueOnError)
	year := fs.Int("year", time.Now().Year(), "calendar year the command operates on")
	fs.Usage = func() { printUsage(os.Stderr) }
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		printUsage(os.Stderr)
		return fmt.Errorf("no command given")
	}

	db, err := database.NewConnection(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to prepare database: %w", err)
	}

	store := repository.NewStateStore(db, cfg.DefaultPlayers)
	scoreboard := repository.NewScoreboardRepository(ctx, store)

	a := &app{
		cfg:     cfg,
		year:    *year,
		scores:  service.NewScoreService(scoreboard),
		players: service.NewPlayerService(scoreboard),
		stats:   service.NewStatsService(scoreboard),
		archive: service.NewArchiveService(scoreboard),
		out:     os.Stdout,
		in:      os.Stdin,
	}
	return a.dispatch(ctx, rest[0], rest[1:])
}

func setupLogging(level string) {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.WarnLevel
	}
	log.SetLevel(parsed)
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `usage: scorekeeper [--year N] <command> [args]

commands:
  record --date YYYY-MM-DD NAME=SCORE...  record a game (omitted players score 0)
  delete <game-id> [--yes]                delete a game
  history                                 history table grouped by date
  recent                                  last five games of the year
  ranking                                 year ranking, lowest total first
  stats [--charts DIR]                    summary block plus chart images
  players [list|add <name>|remove <name> [--yes]]
  export [file]                           write export document (default scores_<year>.json)
  import <file>                           merge an export document
  clear [--yes]                           delete all games
  migrate up|down [steps]|status          manage the database schema
`)
}
