package main

import (
	"context"

	"github.com/binarakost/kostctl/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Export dumps complete listings to files, walking every page of each one.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	opts := tasks.ExportOpts{
		Format:     cmd.String("format"),
		OutputDir:  cmd.String("output"),
		NumWorkers: cmd.Int("workers"),
		RateLimit:  cmd.Float("rate"),
		Resources:  cmd.StringSlice("resource"),
	}

	r.logger.Info("starting export", "format", opts.Format)
	r.writePlain("Exporting listings...\n\n")

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.FetchPages:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.WriteFile:
				r.writePlain("📝 %s\n", update.Message)
			case tasks.Completed:
				r.writePlain("✓ %s\n", update.Message)
			case tasks.Failed:
				r.writePlain("✗ %s\n", update.Message)
			}
		}
	}()

	result, err := r.engine.Export(ctx, progressCh, opts)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	r.writePlain("\nExport complete: %d succeeded, %d failed\n", result.Succeeded, result.Failed)
	r.writePlain("Output: %s\n", result.OutputDirectory)
	for _, export := range result.Exports {
		if export.Success {
			r.writePlain("  %s: %d rows → %s\n", export.Resource, export.Rows, export.File)
		} else {
			r.writePlain("  %s: %v\n", export.Resource, export.Error)
		}
	}

	return nil
}
