package main

import (
	"context"
	"errors"

	"github.com/binarakost/kostctl/internal/formatter"
	"github.com/binarakost/kostctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// FacilitiesList prints one page of the facility catalog.
func (r *Runner) FacilitiesList(ctx context.Context, cmd *cli.Command) error {
	page, err := r.admin.Facilities(ctx, cmd.Int("page"), cmd.Int("page-size"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(page, cmd.Bool("pretty"))
	}

	return r.writeTable(formatter.FacilitiesTable(page.Items), page.Page, page.PageSize, page.Total)
}

// FacilityCreate adds a catalog entry.
func (r *Runner) FacilityCreate(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")

	if err := r.admin.CreateFacility(ctx, name); err != nil {
		return err
	}

	return r.writePlain("✓ Facility %s created\n", name)
}

// FacilityUpdate renames a catalog entry. Rooms referencing it pick up the
// new name on their next load.
func (r *Runner) FacilityUpdate(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int64("id")
	name := cmd.String("name")

	if err := r.admin.UpdateFacility(ctx, id, name); err != nil {
		return err
	}

	return r.writePlain("✓ Facility %d renamed to %s\n", id, name)
}

// FacilityDelete deletes a catalog entry. The backend rejects the delete
// while any room still references the facility; that refusal is surfaced
// verbatim.
func (r *Runner) FacilityDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int64("id")

	if !cmd.Bool("yes") && !r.confirm("Delete facility %d?", id) {
		return r.writePlain("Aborted\n")
	}

	if err := r.admin.DeleteFacility(ctx, id); err != nil {
		var status *shared.StatusError
		if errors.As(err, &status) && status.Status == 409 {
			return r.writePlain("✗ Cannot delete: %s\n", status.Error())
		}
		return err
	}

	return r.writePlain("✓ Facility %d deleted\n", id)
}
