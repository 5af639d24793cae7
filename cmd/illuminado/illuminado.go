package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/illuminado/illuminado/pkg/api"
	"github.com/illuminado/illuminado/pkg/booking"
	"github.com/illuminado/illuminado/pkg/inventory"
	"github.com/illuminado/illuminado/pkg/profile"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("ILLUMINADO_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("ILLUMINADO_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "illuminado",
		Description: "Single binary of truth for Illuminado - scheduled transport inventory & booking ledger",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			booking.RegisterCLI(),
			inventory.RegisterCLI(),
			profile.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
