package routes

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"

	"github.com/illuminado/illuminado/pkg/booking"
	"github.com/illuminado/illuminado/pkg/transit"
)

func BookingsRouter(router fiber.Router, engine *booking.Engine) {
	router.Get("/", func(c *fiber.Ctx) error {
		return listBookings(c, engine)
	})
	router.Post("/", func(c *fiber.Ctx) error {
		return createBooking(c, engine)
	})
}

func listBookings(c *fiber.Ctx, engine *booking.Engine) error {
	count := 20
	if countQuery := c.Query("count"); countQuery != "" {
		if n, err := strconv.Atoi(countQuery); err == nil {
			count = n
		}
	}

	entries := engine.History(count)

	entriesReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, entries)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce bookings",
		})
	}

	return c.JSON(entriesReduced)
}

func createBooking(c *fiber.Ctx, engine *booking.Engine) error {
	var request booking.PurchaseRequest
	if err := c.BodyParser(&request); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	result, err := engine.Purchase(request)
	if err != nil {
		switch {
		case transit.IsSoldOut(err):
			c.SendStatus(fiber.StatusConflict)
		case transit.IsRouteNotFound(err):
			c.SendStatus(fiber.StatusNotFound)
		case transit.IsValidation(err):
			c.SendStatus(fiber.StatusBadRequest)
		default:
			c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.SendStatus(fiber.StatusCreated)
	return c.JSON(result)
}
