package main

import (
	"context"
	"errors"
	"os"

	"github.com/binarakost/kostctl/internal/shared"
	"github.com/binarakost/kostctl/internal/state"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("ignoring unreadable config.toml", "error", err)
		}
	}

	store := state.OpenOrMemory(config.StatePath(), logger)

	runner := NewRunner(RunnerOpts{
		Config: config,
		Store:  store,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "kostctl",
		Usage:    "Manage a kost backend: rooms, nearby places, rules, facilities",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrUnauthenticated) || errors.Is(err, shared.ErrUnauthorized) {
			logger.Error("not logged in, run: kostctl login")
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
