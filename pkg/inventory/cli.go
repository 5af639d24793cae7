package inventory

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/illuminado/illuminado/pkg/catalog"
	"github.com/illuminado/illuminado/pkg/storage"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "inventory",
		Usage: "Inspect and administer per-route seat inventory",
		Subcommands: []*cli.Command{
			{
				Name:  "status",
				Usage: "show the departure board with live availability",
				Action: func(c *cli.Context) error {
					store, err := NewStore(catalog.Load(), storage.NewStoreFromEnvironment())
					if err != nil {
						return err
					}

					for _, row := range store.Board() {
						marker := ""
						if row.SoldOut {
							marker = "  SOLD OUT"
						}
						fmt.Printf("%-32s %-18s %s  %6d RWF  %2d seats%s\n",
							row.Name, row.Destination, row.NextDeparture, row.BasePrice, row.SeatsRemaining, marker)
					}

					return nil
				},
			},
			{
				Name:  "reset",
				Usage: "reset every route to full capacity and schedule start",
				Action: func(c *cli.Context) error {
					store, err := NewStore(catalog.Load(), storage.NewStoreFromEnvironment())
					if err != nil {
						return err
					}

					if err := store.ResetAll(); err != nil {
						return err
					}

					log.Info().Int("routes", len(store.Board())).Msg("Inventory reset to full capacity")

					return nil
				},
			},
		},
	}
}
