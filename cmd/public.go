package main

import (
	"context"

	"github.com/binarakost/kostctl/internal/formatter"
	"github.com/urfave/cli/v3"
)

// PublicKost prints the unauthenticated kost profile, the way a visitor sees
// it.
func (r *Runner) PublicKost(ctx context.Context, cmd *cli.Command) error {
	kost, err := r.public.Kost(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(kost, cmd.Bool("pretty"))
	}

	r.writePlain("Name: %s\n", kost.Name)
	r.writePlain("Address: %s\n", kost.Address)
	if kost.Type != "" {
		r.writePlain("Type: %s\n", kost.Type)
	}
	if kost.PhoneOwner != "" {
		r.writePlain("Owner: %s\n", kost.PhoneOwner)
		r.writePlain("WhatsApp: %s\n", formatter.WALink(kost.PhoneOwner, ""))
	}
	if kost.VisitHours != "" {
		r.writePlain("Visiting hours: %s\n", kost.VisitHours)
	}
	if kost.Notes != "" {
		r.writePlain("Notes: %s\n", kost.Notes)
	}
	return nil
}

// PublicRooms prints the unauthenticated room listing.
func (r *Runner) PublicRooms(ctx context.Context, cmd *cli.Command) error {
	rooms, err := r.public.Rooms(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(rooms, cmd.Bool("pretty"))
	}

	table := formatter.RoomsTable(rooms)
	if _, err := r.output.Write(table.Text()); err != nil {
		return err
	}
	return r.writePlain("\nTotal %d\n", len(rooms))
}
