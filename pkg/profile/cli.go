package profile

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/illuminado/illuminado/pkg/storage"
	"github.com/illuminado/illuminado/pkg/transit"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "loyalty",
		Usage: "Inspect rider loyalty standing",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "show a rider's loyalty tier and points",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "user",
						Usage:    "rider username",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					store := NewStore(storage.NewStoreFromEnvironment())

					status := transit.NewLoyaltyStatus(store.Get(c.String("user")))

					fmt.Printf("Tier:   %s (%d%% discount)\n", status.Tier.Name, status.Tier.DiscountPercent)
					fmt.Printf("Rides:  %d\n", status.Profile.TotalRides)
					fmt.Printf("Points: %d\n", status.Profile.LoyaltyPoints)
					if status.NextTier != nil {
						fmt.Printf("Next:   %s in %d rides\n", status.NextTier.Name, status.RidesToNext)
					}

					return nil
				},
			},
		},
	}
}
