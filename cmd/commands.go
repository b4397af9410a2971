package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"scorekeeper/charts"
	"scorekeeper/display"
	"scorekeeper/models"
	"scorekeeper/service"
)

func (a *app) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "record":
		return a.recordCmd(ctx, args)
	case "delete":
		return a.deleteCmd(ctx, args)
	case "history":
		return a.historyCmd()
	case "recent":
		return a.recentCmd()
	case "ranking":
		return a.rankingCmd()
	case "stats":
		return a.statsCmd(args)
	case "players":
		return a.playersCmd(ctx, args)
	case "export":
		return a.exportCmd(args)
	case "import":
		return a.importCmd(ctx, args)
	case "clear":
		return a.clearCmd(ctx, args)
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func (a *app) recordCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("record", flag.ContinueOnError)
	date := fs.String("date", time.Now().Format(models.DateLayout), "game date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	scores, err := parseScorePairs(fs.Args())
	if err != nil {
		return err
	}

	game, err := a.scores.RecordGame(ctx, *date, scores)
	if err != nil {
		return err
	}

	outcome := service.GameOutcome(*game)
	fmt.Fprintf(a.out, "Game recorded for %s (%s)\n", display.FormatFullDate(game.Date), game.ID)
	fmt.Fprintf(a.out, "Winner(s): %s\n", joinNames(outcome.Winners))
	return nil
}

func (a *app) deleteCmd(ctx context.Context, args []string) error {
	yes, args := popYesFlag(args)
	if len(args) != 1 {
		return fmt.Errorf("usage: scorekeeper delete <game-id> [--yes]")
	}
	id := args[0]

	if !a.confirm(yes, "Delete this game record?") {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	removed, err := a.scores.DeleteGame(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Fprintf(a.out, "No game with id %s\n", id)
		return nil
	}
	fmt.Fprintln(a.out, "Game deleted.")
	return nil
}

func (a *app) historyCmd() error {
	view := a.stats.History(a.year)
	fmt.Fprint(a.out, display.RenderHistory(view, a.players.List()))
	return nil
}

func (a *app) recentCmd() error {
	games := a.stats.Recent(a.year)
	fmt.Fprint(a.out, display.RenderRecent(a.year, games, a.players.List()))
	return nil
}

func (a *app) rankingCmd() error {
	entries := a.stats.Ranking(a.year)
	fmt.Fprint(a.out, display.RenderRanking(a.year, entries))
	return nil
}

func (a *app) statsCmd(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	chartDir := fs.String("charts", a.cfg.ChartDir, "directory for chart images")
	if err := fs.Parse(args); err != nil {
		return err
	}

	overview := a.stats.Overview(a.year)
	fmt.Fprint(a.out, display.RenderSummary(a.year, overview.Summary))
	if overview.GameCount == 0 {
		return nil
	}

	if err := os.MkdirAll(*chartDir, 0o755); err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}

	gen := charts.NewGenerator()
	images := []struct {
		name   string
		render func() ([]byte, error)
	}{
		{fmt.Sprintf("cumulative_%d.png", a.year), func() ([]byte, error) {
			return gen.CumulativeLine(overview.Players, overview.Cumulative, overview.GameCount)
		}},
		{fmt.Sprintf("winloss_%d.png", a.year), func() ([]byte, error) {
			return gen.WinLossBars(overview.Players, overview.WinLoss)
		}},
		{fmt.Sprintf("average_%d.png", a.year), func() ([]byte, error) {
			return gen.AverageBars(overview.Players, overview.Averages)
		}},
	}

	for _, img := range images {
		data, err := img.render()
		if err != nil {
			return err
		}
		path := filepath.Join(*chartDir, img.name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
		fmt.Fprintf(a.out, "Wrote %s\n", path)
	}
	return nil
}

func (a *app) playersCmd(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}

	switch sub {
	case "list":
		for i, p := range a.players.List() {
			fmt.Fprintf(a.out, "%d. %s\n", i+1, p)
		}
		return nil
	case "add":
		if len(args) != 1 {
			return fmt.Errorf("usage: scorekeeper players add <name>")
		}
		if err := a.players.Add(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Added %s\n", args[0])
		return nil
	case "remove":
		yes, args := popYesFlag(args)
		if len(args) != 1 {
			return fmt.Errorf("usage: scorekeeper players remove <name> [--yes]")
		}
		name := args[0]
		if !a.confirm(yes, fmt.Sprintf("Remove %s? Their past games keep their scores.", name)) {
			fmt.Fprintln(a.out, "Cancelled.")
			return nil
		}
		if err := a.players.Remove(ctx, name); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Removed %s\n", name)
		return nil
	default:
		return fmt.Errorf("unknown players subcommand: %s", sub)
	}
}

func (a *app) exportCmd(args []string) error {
	name := fmt.Sprintf("scores_%d.json", a.year)
	if len(args) > 0 {
		name = args[0]
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := a.archive.Export(f); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Exported to %s\n", name)
	return nil
}

func (a *app) importCmd(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: scorekeeper import <file>")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	result, err := a.archive.Import(ctx, f)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Imported %d games (%d duplicates skipped)\n", result.GamesAdded, result.GamesSkipped)
	if result.PlayersReplaced {
		fmt.Fprintln(a.out, "Roster replaced from import.")
	}
	return nil
}

func (a *app) clearCmd(ctx context.Context, args []string) error {
	yes, _ := popYesFlag(args)
	if !a.confirm(yes, "Delete ALL game records? This cannot be undone.") {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}
	if err := a.scores.ClearGames(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "All games deleted.")
	return nil
}

// confirm gates destructive operations: --yes skips the prompt,
// otherwise the user must answer y.
func (a *app) confirm(yes bool, prompt string) bool {
	if yes {
		return true
	}
	fmt.Fprintf(a.out, "%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(a.in)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

// parseScorePairs parses NAME=SCORE arguments into a score map.
func parseScorePairs(args []string) (map[string]int, error) {
	scores := make(map[string]int, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid score %q, expected NAME=SCORE", arg)
		}
		score, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid score for %s: %q", name, value)
		}
		if _, dup := scores[name]; dup {
			return nil, fmt.Errorf("duplicate score for %s", name)
		}
		scores[name] = score
	}
	return scores, nil
}

func popYesFlag(args []string) (bool, []string) {
	rest := args[:0:0]
	yes := false
	for _, arg := range args {
		if arg == "--yes" || arg == "-y" {
			yes = true
			continue
		}
		rest = append(rest, arg)
	}
	return yes, rest
}

func joinNames(set map[string]bool) string {
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
