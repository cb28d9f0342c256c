package routes

import (
	"ganaderia-app/config"
	"ganaderia-app/controllers"
	"ganaderia-app/database"
	"ganaderia-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupTicketRoutes(app *fiber.App) {
	api := app.Group(config.MAIN_ROUTES+"/tickets", middleware.AuthMiddleware)
	ticketController := controllers.NewTicketController(database.GetDB())

	api.Post("/:planta_id/next", ticketController.NextTicket)
	api.Get("/:planta_id/current", ticketController.CurrentCount)
	api.Post("/:planta_id/reset", ticketController.ResetCounter)
}
