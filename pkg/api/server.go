package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/illuminado/illuminado/pkg/api/routes"
	"github.com/illuminado/illuminado/pkg/booking"
)

// CreateApp builds the web application around a booking engine. Catalog
// route names contain spaces, so path parameters must be unescaped before
// they reach the handlers.
func CreateApp(engine *booking.Engine) *fiber.App {
	webApp := fiber.New(fiber.Config{
		UnescapePath: true,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.RoutesRouter(group.Group("/routes"), engine)
	routes.BookingsRouter(group.Group("/bookings"), engine)
	routes.ProfilesRouter(group.Group("/profiles"), engine)
	routes.ReferenceRouter(group.Group("/reference"))
	routes.AdminRouter(group.Group("/admin"), engine)

	return webApp
}

func SetupServer(listen string, engine *booking.Engine) error {
	return CreateApp(engine).Listen(listen)
}
