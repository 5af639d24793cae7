package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"

	"github.com/illuminado/illuminado/pkg/booking"
	"github.com/illuminado/illuminado/pkg/transit"
)

func ProfilesRouter(router fiber.Router, engine *booking.Engine) {
	router.Get("/:username", func(c *fiber.Ctx) error {
		return getProfile(c, engine)
	})
	router.Post("/:username/preferences", func(c *fiber.Ctx) error {
		return setPreferences(c, engine)
	})
}

func getProfile(c *fiber.Ctx, engine *booking.Engine) error {
	username := c.Params("username")

	status := transit.NewLoyaltyStatus(engine.Profiles().Get(username))

	statusReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"detail"},
	}, status)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce loyalty status",
		})
	}

	return c.JSON(statusReduced)
}

func setPreferences(c *fiber.Ctx, engine *booking.Engine) error {
	username := c.Params("username")

	var requestBody struct {
		Language string `json:"language"`
		Payment  string `json:"payment"`
	}
	if err := c.BodyParser(&requestBody); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	profile, err := engine.Profiles().SetPreferences(username, requestBody.Language, requestBody.Payment)
	if err != nil {
		if transit.IsValidation(err) {
			c.SendStatus(fiber.StatusBadRequest)
		} else {
			c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(profile)
}
