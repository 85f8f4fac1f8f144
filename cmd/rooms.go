package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/binarakost/kostctl/internal/api"
	"github.com/binarakost/kostctl/internal/formatter"
	"github.com/binarakost/kostctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// flagInt64 parses an optional numeric flag. Blank means the column is not
// set.
func flagInt64(cmd *cli.Command, name string) (*int64, error) {
	s := cmd.String(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: --%s must be a whole number", shared.ErrValidation, name)
	}
	return &v, nil
}

func flagFloat64(cmd *cli.Command, name string) (*float64, error) {
	s := cmd.String(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: --%s must be a number", shared.ErrValidation, name)
	}
	return &v, nil
}

// writeTable prints a formatted listing with the page caption underneath.
func (r *Runner) writeTable(table formatter.Table, page, pageSize, total int) error {
	if _, err := r.output.Write(table.Text()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return r.writePlain("\nPage %d / %d • Total %d\n", page, pages, total)
}

// roomPayload builds a full room payload from the command's flags.
func roomPayload(cmd *cli.Command) (api.RoomPayload, error) {
	payload := api.RoomPayload{
		Code:                cmd.String("code"),
		ElectricityIncluded: cmd.Bool("electricity-included"),
		ElectricityNote:     cmd.String("electricity-note"),
		IsAvailable:         cmd.Bool("available"),
		Notes:               cmd.String("notes"),
		FacilityIDs:         cmd.Int64Slice("facility"),
	}

	if payload.Code == "" {
		return payload, fmt.Errorf("%w: --code is required", shared.ErrValidation)
	}

	var err error
	if payload.PriceMonthly, err = flagInt64(cmd, "price"); err != nil {
		return payload, err
	}
	if payload.Deposit, err = flagInt64(cmd, "deposit"); err != nil {
		return payload, err
	}
	if payload.SizeM2, err = flagFloat64(cmd, "size"); err != nil {
		return payload, err
	}

	return payload, nil
}

// RoomsList prints one page of rooms.
func (r *Runner) RoomsList(ctx context.Context, cmd *cli.Command) error {
	page, err := r.admin.Rooms(ctx, cmd.Int("page"), cmd.Int("page-size"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(page, cmd.Bool("pretty"))
	}

	return r.writeTable(formatter.RoomsTable(page.Items), page.Page, page.PageSize, page.Total)
}

// RoomCreate creates a room from flags.
func (r *Runner) RoomCreate(ctx context.Context, cmd *cli.Command) error {
	payload, err := roomPayload(cmd)
	if err != nil {
		return err
	}

	if err := r.admin.CreateRoom(ctx, payload); err != nil {
		return err
	}

	r.logger.Infof("room %v created", payload.Code)
	return r.writePlain("✓ Room %s created\n", payload.Code)
}

// RoomUpdate replaces a room. Flags describe the complete new state, not a
// diff.
func (r *Runner) RoomUpdate(ctx context.Context, cmd *cli.Command) error {
	payload, err := roomPayload(cmd)
	if err != nil {
		return err
	}

	id := cmd.Int64("id")
	if err := r.admin.UpdateRoom(ctx, id, payload); err != nil {
		return err
	}

	r.logger.Infof("room %v updated", id)
	return r.writePlain("✓ Room %d updated\n", id)
}

// RoomDelete deletes a room after confirmation.
func (r *Runner) RoomDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int64("id")

	if !cmd.Bool("yes") && !r.confirm("Delete room %d?", id) {
		return r.writePlain("Aborted\n")
	}

	if err := r.admin.DeleteRoom(ctx, id); err != nil {
		return err
	}

	r.logger.Infof("room %v deleted", id)
	return r.writePlain("✓ Room %d deleted\n", id)
}

// RoomAvailability flips only the availability flag, leaving every other
// column untouched.
func (r *Runner) RoomAvailability(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int64("id")
	available := cmd.Bool("available")

	if err := r.admin.SetRoomAvailability(ctx, id, available); err != nil {
		return err
	}

	state := "available"
	if !available {
		state = "occupied"
	}
	return r.writePlain("✓ Room %d marked %s\n", id, state)
}
