package main

import (
	"context"
	"fmt"
	"os"

	"github.com/binarakost/kostctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes a starter configuration file for the user to edit.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s already exists", shared.ErrInvalidInput, path)
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Infof("config written to %v", path)

	r.writePlain("✓ Config written to %s\n", path)
	r.writePlain("  Edit it, then run: kostctl login -u <username>\n")
	return nil
}
