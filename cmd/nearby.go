package main

import (
	"context"
	"fmt"

	"github.com/binarakost/kostctl/internal/api"
	"github.com/binarakost/kostctl/internal/formatter"
	"github.com/binarakost/kostctl/internal/models"
	"github.com/binarakost/kostctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// parseCategory validates a category flag. Blank falls back to lainnya.
func parseCategory(s string) (models.NearbyCategory, error) {
	if s == "" {
		return models.CategoryLainnya, nil
	}
	for _, c := range models.NearbyCategories {
		if models.NearbyCategory(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", shared.ErrValidation, s)
}

func nearbyPayload(cmd *cli.Command) (api.NearbyPayload, error) {
	payload := api.NearbyPayload{
		Name:    cmd.String("name"),
		Address: cmd.String("address"),
		MapsURL: cmd.String("maps-url"),
		Note:    cmd.String("note"),
	}

	if payload.Name == "" {
		return payload, fmt.Errorf("%w: --name is required", shared.ErrValidation)
	}

	var err error
	if payload.Category, err = parseCategory(cmd.String("category")); err != nil {
		return payload, err
	}
	if payload.DistanceM, err = flagInt64(cmd, "distance"); err != nil {
		return payload, err
	}

	return payload, nil
}

// NearbyList prints one page of nearby places, optionally a single category.
func (r *Runner) NearbyList(ctx context.Context, cmd *cli.Command) error {
	var category models.NearbyCategory
	if cmd.IsSet("category") {
		var err error
		category, err = parseCategory(cmd.String("category"))
		if err != nil {
			return err
		}
	}

	page, err := r.admin.Nearby(ctx, cmd.Int("page"), cmd.Int("page-size"), category)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(page, cmd.Bool("pretty"))
	}

	return r.writeTable(formatter.NearbyTable(page.Items), page.Page, page.PageSize, page.Total)
}

// NearbyCreate creates a nearby place from flags.
func (r *Runner) NearbyCreate(ctx context.Context, cmd *cli.Command) error {
	payload, err := nearbyPayload(cmd)
	if err != nil {
		return err
	}

	if err := r.admin.CreateNearby(ctx, payload); err != nil {
		return err
	}

	r.logger.Infof("nearby place %v created", payload.Name)
	return r.writePlain("✓ Nearby place %s created\n", payload.Name)
}

// NearbyUpdate replaces a nearby place.
func (r *Runner) NearbyUpdate(ctx context.Context, cmd *cli.Command) error {
	payload, err := nearbyPayload(cmd)
	if err != nil {
		return err
	}

	id := cmd.Int64("id")
	if err := r.admin.UpdateNearby(ctx, id, payload); err != nil {
		return err
	}

	return r.writePlain("✓ Nearby place %d updated\n", id)
}

// NearbyDelete deletes a nearby place after confirmation.
func (r *Runner) NearbyDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int64("id")

	if !cmd.Bool("yes") && !r.confirm("Delete nearby place %d?", id) {
		return r.writePlain("Aborted\n")
	}

	if err := r.admin.DeleteNearby(ctx, id); err != nil {
		return err
	}

	return r.writePlain("✓ Nearby place %d deleted\n", id)
}
