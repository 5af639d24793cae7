package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/illuminado/illuminado/pkg/booking"
	"github.com/illuminado/illuminado/pkg/transit"
)

func AdminRouter(router fiber.Router, engine *booking.Engine) {
	router.Post("/reset", func(c *fiber.Ctx) error {
		return resetInventory(c, engine)
	})
}

func resetInventory(c *fiber.Ctx, engine *booking.Engine) error {
	if err := engine.ResetAll(); err != nil {
		// Reset applied in memory; only the snapshot write failed.
		if transit.IsPersistence(err) {
			return c.JSON(fiber.Map{
				"reset":   true,
				"warning": err.Error(),
			})
		}

		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"reset": true,
	})
}
