package cli

import (
	"fmt"

	"github.com/thenoetrevino/bidboard/internal/app"
	"github.com/thenoetrevino/bidboard/internal/config"
	"github.com/thenoetrevino/bidboard/internal/seed"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
}

// NewCLI loads the config and seed data and builds the application container.
// An empty seedPath falls back to the config's seed_file, then to the demo data.
func NewCLI(cfg *config.Config, seedPath string) (*CLI, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if seedPath == "" {
		seedPath = cfg.Board.SeedFile
	}

	data, err := seed.Load(seedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed data: %w", err)
	}

	application, err := app.New(data)
	if err != nil {
		return nil, err
	}

	return &CLI{
		App:    application,
		Config: cfg,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
