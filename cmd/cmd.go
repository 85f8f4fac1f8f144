// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func pageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "page",
			Aliases: []string{"p"},
			Usage:   "Page to fetch",
			Value:   1,
		},
		&cli.IntFlag{
			Name:  "page-size",
			Usage: "Rows per page",
			Value: 10,
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
		},
	}
}

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Write a starter config file",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}

func loginCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Log in to the admin API and store the session token",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "username",
				Aliases:  []string{"u"},
				Usage:    "Admin username",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "password",
				Aliases: []string{"p"},
				Usage:   "Admin password (prompted when omitted)",
			},
		},
		Action: r.Login,
	}
}

func logoutCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "logout",
		Usage:  "Destroy the local session",
		Action: r.Logout,
	}
}

func kostCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "kost",
		Usage: "Kost profile operations",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Show the kost profile",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
				},
				Action: r.KostGet,
			},
			{
				Name:  "set",
				Usage: "Update fields of the kost profile",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Kost name"},
					&cli.StringFlag{Name: "address", Usage: "Street address"},
					&cli.StringFlag{Name: "whatsapp", Usage: "WhatsApp number"},
					&cli.StringFlag{Name: "maps-url", Usage: "Google Maps URL"},
					&cli.StringFlag{Name: "visiting-hours", Usage: "Visiting hours"},
				},
				Action: r.KostSet,
			},
		},
	}
}

func roomsCommand(r *Runner) *cli.Command {
	roomFlags := []cli.Flag{
		&cli.StringFlag{Name: "code", Usage: "Room code"},
		&cli.StringFlag{Name: "price", Usage: "Monthly price in rupiah (blank clears)"},
		&cli.StringFlag{Name: "deposit", Usage: "Deposit in rupiah (blank clears)"},
		&cli.BoolFlag{Name: "electricity-included", Usage: "Electricity included in the price"},
		&cli.StringFlag{Name: "electricity-note", Usage: "Electricity note"},
		&cli.StringFlag{Name: "size", Usage: "Size in m2 (blank clears)"},
		&cli.BoolFlag{Name: "available", Usage: "Room is available", Value: true},
		&cli.StringFlag{Name: "notes", Usage: "Free-form notes"},
		&cli.Int64SliceFlag{Name: "facility", Usage: "Facility id (repeatable, full set)"},
	}

	return &cli.Command{
		Name:    "rooms",
		Aliases: []string{"room"},
		Usage:   "Room operations",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List rooms, one page at a time",
				Flags:  pageFlags(),
				Action: r.RoomsList,
			},
			{
				Name:   "create",
				Usage:  "Create a room",
				Flags:  roomFlags,
				Action: r.RoomCreate,
			},
			{
				Name:  "update",
				Usage: "Replace a room",
				Flags: append([]cli.Flag{
					&cli.Int64Flag{Name: "id", Usage: "Room id", Required: true},
				}, roomFlags...),
				Action: r.RoomUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete a room",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Usage: "Room id", Required: true},
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip the confirmation prompt"},
				},
				Action: r.RoomDelete,
			},
			{
				Name:  "availability",
				Usage: "Set just the availability flag",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Usage: "Room id", Required: true},
					&cli.BoolFlag{Name: "available", Usage: "Room is available", Required: true},
				},
				Action: r.RoomAvailability,
			},
		},
	}
}

func nearbyCommand(r *Runner) *cli.Command {
	nearbyFlags := []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "Place name"},
		&cli.StringFlag{Name: "category", Usage: "laundry, minimarket, makan, transport or lainnya", Value: "lainnya"},
		&cli.StringFlag{Name: "address", Usage: "Street address"},
		&cli.StringFlag{Name: "distance", Usage: "Distance in meters (blank clears)"},
		&cli.StringFlag{Name: "maps-url", Usage: "Google Maps URL"},
		&cli.StringFlag{Name: "note", Usage: "Free-form note"},
	}

	return &cli.Command{
		Name:  "nearby",
		Usage: "Nearby place operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List nearby places, one page at a time",
				Flags: append(pageFlags(),
					&cli.StringFlag{Name: "category", Usage: "Only this category"},
				),
				Action: r.NearbyList,
			},
			{
				Name:   "create",
				Usage:  "Create a nearby place",
				Flags:  nearbyFlags,
				Action: r.NearbyCreate,
			},
			{
				Name:  "update",
				Usage: "Replace a nearby place",
				Flags: append([]cli.Flag{
					&cli.Int64Flag{Name: "id", Usage: "Place id", Required: true},
				}, nearbyFlags...),
				Action: r.NearbyUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete a nearby place",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Usage: "Place id", Required: true},
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip the confirmation prompt"},
				},
				Action: r.NearbyDelete,
			},
		},
	}
}

func rulesCommand(r *Runner) *cli.Command {
	ruleFlags := []cli.Flag{
		&cli.StringFlag{Name: "title", Usage: "Rule title"},
		&cli.StringFlag{Name: "description", Usage: "Rule description"},
	}

	return &cli.Command{
		Name:    "rules",
		Aliases: []string{"rule"},
		Usage:   "House rule operations",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List house rules, one page at a time",
				Flags:  pageFlags(),
				Action: r.RulesList,
			},
			{
				Name:   "create",
				Usage:  "Create a house rule",
				Flags:  ruleFlags,
				Action: r.RuleCreate,
			},
			{
				Name:  "update",
				Usage: "Replace a house rule",
				Flags: append([]cli.Flag{
					&cli.Int64Flag{Name: "id", Usage: "Rule id", Required: true},
				}, ruleFlags...),
				Action: r.RuleUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete a house rule",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Usage: "Rule id", Required: true},
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip the confirmation prompt"},
				},
				Action: r.RuleDelete,
			},
		},
	}
}

func facilitiesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "facilities",
		Aliases: []string{"facility"},
		Usage:   "Facility catalog operations",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List facilities, one page at a time",
				Flags:  pageFlags(),
				Action: r.FacilitiesList,
			},
			{
				Name:  "create",
				Usage: "Create a facility",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Facility name", Required: true},
				},
				Action: r.FacilityCreate,
			},
			{
				Name:  "update",
				Usage: "Rename a facility",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Usage: "Facility id", Required: true},
					&cli.StringFlag{Name: "name", Usage: "Facility name", Required: true},
				},
				Action: r.FacilityUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete a facility (rejected while rooms reference it)",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Usage: "Facility id", Required: true},
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip the confirmation prompt"},
				},
				Action: r.FacilityDelete,
			},
		},
	}
}

func publicCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "public",
		Usage: "Read the unauthenticated endpoints",
		Commands: []*cli.Command{
			{
				Name:  "kost",
				Usage: "Show the public kost profile",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
				},
				Action: r.PublicKost,
			},
			{
				Name:  "rooms",
				Usage: "Show the public room listing",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
				},
				Action: r.PublicRooms,
			},
		},
	}
}

func chatCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "chat",
		Usage: "Talk to the visitor assistant",
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Send one message and print the reply",
				ArgsUsage: "<message>",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "message"},
				},
				Action: r.ChatAsk,
			},
		},
	}
}

func statusCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Probe the backend health endpoint",
		Action: r.Status,
	}
}

func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Dump complete listings to files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "csv, markdown, txt or xlsx",
				Value:   "csv",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory",
			},
			&cli.StringSliceFlag{
				Name:  "resource",
				Usage: "Listing to export (repeatable; default all)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Concurrent exports",
				Value: 2,
			},
			&cli.FloatFlag{
				Name:  "rate",
				Usage: "Page requests per second",
				Value: 5,
			},
		},
		Action: r.Export,
	}
}

func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Open the interactive dashboard",
		Action: r.TUI,
	}
}
