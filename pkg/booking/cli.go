package booking

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "booking",
		Usage: "Purchase tickets and inspect the booking ledger",
		Subcommands: []*cli.Command{
			{
				Name:  "purchase",
				Usage: "purchase a ticket on a route",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "route",
						Usage:    "route name from the catalog",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "user",
						Usage:    "rider username",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "luggage",
						Usage: "luggage option (small, medium, large, extra)",
					},
					&cli.StringFlag{
						Name:  "provider",
						Usage: "payment provider (defaults to the rider's preferred one)",
					},
					&cli.StringFlag{
						Name:  "seat",
						Usage: "advisory seat label",
					},
				},
				Action: func(c *cli.Context) error {
					engine, err := NewDefaultEngine()
					if err != nil {
						return err
					}

					result, err := engine.Purchase(PurchaseRequest{
						Route:    c.String("route"),
						Username: c.String("user"),
						Luggage:  c.String("luggage"),
						Provider: c.String("provider"),
						Seat:     c.String("seat"),
					})
					if err != nil {
						return err
					}

					for _, warning := range result.Warnings {
						log.Warn().Msg(warning)
					}

					log.Info().
						Str("route", result.Entry.RouteName).
						Str("departure", result.Entry.Departure).
						Int("total", result.Entry.TotalPrice).
						Int("discount", result.DiscountPercent).
						Str("ussd", result.USSDCode).
						Msg("Ticket booked")

					return nil
				},
			},
			{
				Name:  "history",
				Usage: "list recorded bookings, most recent first",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "count",
						Value: 20,
						Usage: "maximum number of bookings to show",
					},
				},
				Action: func(c *cli.Context) error {
					engine, err := NewDefaultEngine()
					if err != nil {
						return err
					}

					entries := engine.History(c.Int("count"))
					if len(entries) == 0 {
						fmt.Println("No bookings yet")
						return nil
					}

					for _, entry := range entries {
						fmt.Printf("%s  %-30s %-16s %6d  %s (%s)\n",
							entry.Date, entry.RouteName, entry.Departure, entry.TotalPrice, entry.Username, entry.Seat)
					}

					return nil
				},
			},
			{
				Name:  "export",
				Usage: "export the booking ledger to a CSV file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Value: "booking_history.csv",
						Usage: "output file path",
					},
				},
				Action: func(c *cli.Context) error {
					engine, err := NewDefaultEngine()
					if err != nil {
						return err
					}

					if err := engine.Export(c.String("out")); err != nil {
						return err
					}

					log.Info().Str("path", c.String("out")).Int("bookings", engine.ledger.Len()).Msg("Booking ledger exported")

					return nil
				},
			},
		},
	}
}
