package main

import (
	"context"
	"fmt"

	"github.com/binarakost/kostctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// KostGet fetches and prints the kost profile.
func (r *Runner) KostGet(ctx context.Context, cmd *cli.Command) error {
	kost, err := r.admin.Kost(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(kost, cmd.Bool("pretty"))
	}

	r.writePlain("Name: %s\n", kost.Name)
	r.writePlain("Address: %s\n", kost.Address)
	r.writePlain("WhatsApp: %s\n", kost.Whatsapp)
	if kost.GoogleMapsURL != "" {
		r.writePlain("Maps: %s\n", kost.GoogleMapsURL)
	}
	if kost.VisitingHours != "" {
		r.writePlain("Visiting hours: %s\n", kost.VisitingHours)
	}
	return nil
}

// KostSet overlays the provided flags on the stored profile and saves the
// whole record back.
func (r *Runner) KostSet(ctx context.Context, cmd *cli.Command) error {
	kost, err := r.admin.Kost(ctx)
	if err != nil {
		return err
	}

	changed := false
	overlay := func(flag string, dest *string) {
		if cmd.IsSet(flag) {
			*dest = cmd.String(flag)
			changed = true
		}
	}
	overlay("name", &kost.Name)
	overlay("address", &kost.Address)
	overlay("whatsapp", &kost.Whatsapp)
	overlay("maps-url", &kost.GoogleMapsURL)
	overlay("visiting-hours", &kost.VisitingHours)

	if !changed {
		return fmt.Errorf("%w: nothing to change, pass at least one flag", shared.ErrMissingArgument)
	}
	if kost.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", shared.ErrValidation)
	}

	if err := r.admin.SaveKost(ctx, kost); err != nil {
		return err
	}

	r.logger.Info("kost profile updated")
	return r.writePlain("✓ Kost profile updated\n")
}
