package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/illuminado/illuminado/pkg/transit"
)

func ReferenceRouter(router fiber.Router) {
	router.Get("/luggage", listLuggageOptions)
	router.Get("/providers", listPaymentProviders)
	router.Get("/loyalty", listLoyaltyTiers)
	router.Get("/languages", listLanguages)
}

func listLuggageOptions(c *fiber.Ctx) error {
	return c.JSON(transit.LuggageOptions)
}

func listPaymentProviders(c *fiber.Ctx) error {
	return c.JSON(transit.PaymentProviders)
}

func listLoyaltyTiers(c *fiber.Ctx) error {
	return c.JSON(transit.LoyaltyTiers)
}

func listLanguages(c *fiber.Ctx) error {
	return c.JSON(transit.Languages)
}
