package routes

import (
	"ganaderia-app/config"
	"ganaderia-app/controllers"
	"ganaderia-app/database"
	"ganaderia-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupTarifaRoutes(app *fiber.App) {
	api := app.Group(config.MAIN_ROUTES+"/tarifas", middleware.AuthMiddleware)
	tarifaController := controllers.NewTarifaController(database.GetDB())

	api.Get("/", tarifaController.GetAllTarifas)
	api.Post("/", tarifaController.CreateTarifa)
	api.Get("/:id", tarifaController.GetTarifaByID)
	api.Put("/:id", tarifaController.UpdateTarifa)
	api.Delete("/:id", tarifaController.DeleteTarifa)
}
