package routes

import (
	"ganaderia-app/config"
	"ganaderia-app/controllers"
	"ganaderia-app/database"
	"ganaderia-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupGuiaRoutes(app *fiber.App) {
	api := app.Group(config.MAIN_ROUTES+"/guias", middleware.AuthMiddleware)
	guiaController := controllers.NewGuiaController(database.GetDB())

	api.Get("/", guiaController.GetAllGuias)
	api.Post("/", guiaController.CreateGuia)
	api.Get("/:id", guiaController.GetGuiaByID)
	api.Put("/:id", guiaController.UpdateGuia)
	api.Post("/:id/finalizar", guiaController.FinalizarGuia)
}
