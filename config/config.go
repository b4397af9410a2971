package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	// DatabasePath is the SQLite file holding the score data.
	// Defaults to ~/.scorekeeper/scores.db.
	DatabasePath string `env:"SCOREKEEPER_DB"`

	// ChartDir is where the stats command writes chart images.
	ChartDir string `env:"SCOREKEEPER_CHART_DIR" envDefault:"."`

	// DefaultPlayers seeds the roster when no saved state exists.
	DefaultPlayers []string `env:"SCOREKEEPER_DEFAULT_PLAYERS" envSeparator:","`

	// LogLevel is a logrus level name.
	LogLevel string `env:"SCOREKEEPER_LOG_LEVEL" envDefault:"warn"`
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.DatabasePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		cfg.DatabasePath = filepath.Join(home, ".scorekeeper", "scores.db")
	}

	// The roster floor is two players; a smaller default would leave a
	// fresh install in an invalid state.
	if len(cfg.DefaultPlayers) < 2 {
		cfg.DefaultPlayers = []string{"Player 1", "Player 2"}
	}

	return &cfg, nil
}
