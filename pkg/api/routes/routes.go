package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/illuminado/illuminado/pkg/booking"
	"github.com/illuminado/illuminado/pkg/transit"
)

func RoutesRouter(router fiber.Router, engine *booking.Engine) {
	router.Get("/", func(c *fiber.Ctx) error {
		return listRoutes(c, engine)
	})
	router.Get("/:name", func(c *fiber.Ctx) error {
		return getRoute(c, engine)
	})
	router.Get("/:name/departures", func(c *fiber.Ctx) error {
		return getRouteDepartures(c, engine)
	})
}

func listRoutes(c *fiber.Ctx, engine *booking.Engine) error {
	return c.JSON(engine.Board())
}

func getRoute(c *fiber.Ctx, engine *booking.Engine) error {
	name := c.Params("name")

	definition, err := engine.Inventory().Definition(name)
	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Route matching Route Name",
		})
	}

	seats, _ := engine.Inventory().SeatsRemaining(name)

	return c.JSON(fiber.Map{
		"route":           definition,
		"seats_remaining": seats,
		"sold_out":        seats == 0,
	})
}

func getRouteDepartures(c *fiber.Ctx, engine *booking.Engine) error {
	name := c.Params("name")

	departures, err := engine.Inventory().Departures(name)
	if err != nil {
		if transit.IsRouteNotFound(err) {
			c.SendStatus(fiber.StatusNotFound)
			return c.JSON(fiber.Map{
				"error": "Could not find Route matching Route Name",
			})
		}
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"route":      name,
		"departures": departures,
	})
}
