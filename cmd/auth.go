package main

import (
	"context"
	"fmt"

	"github.com/binarakost/kostctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// Login exchanges credentials for a token and stores it for later commands.
func (r *Runner) Login(ctx context.Context, cmd *cli.Command) error {
	username := cmd.String("username")
	password := cmd.String("password")

	if password == "" {
		var err error
		password, err = r.promptLine("Password")
		if err != nil {
			return err
		}
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", shared.ErrMissingArgument)
	}

	r.logger.Infof("logging in as %v", username)

	if err := r.admin.Login(ctx, username, password); err != nil {
		return err
	}

	return r.writePlain("✓ Logged in as %s\n", username)
}

// Logout destroys the local session. The server keeps no session state, so
// this is purely local.
func (r *Runner) Logout(ctx context.Context, cmd *cli.Command) error {
	r.admin.Logout()
	r.logger.Info("session cleared")
	return r.writePlain("✓ Logged out\n")
}

// Status probes the backend health endpoint once.
func (r *Runner) Status(ctx context.Context, cmd *cli.Command) error {
	status := r.poller().Probe(ctx)

	if status.Up {
		return r.writePlain("✓ Backend up\n")
	}
	if status.Detail != "" {
		return r.writePlain("✗ Backend down: %s\n", status.Detail)
	}
	return r.writePlain("✗ Backend down\n")
}
