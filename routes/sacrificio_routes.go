package routes

import (
	"ganaderia-app/config"
	"ganaderia-app/controllers"
	"ganaderia-app/database"
	"ganaderia-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupSacrificioRoutes(app *fiber.App) {
	api := app.Group(config.MAIN_ROUTES+"/sacrificios", middleware.AuthMiddleware)
	sacrificioController := controllers.NewSacrificioController(database.GetDB())

	api.Get("/", sacrificioController.GetAllSacrificios)
	api.Post("/", sacrificioController.CreateSacrificio)
	api.Get("/:id", sacrificioController.GetSacrificioByID)
	api.Put("/:id", sacrificioController.UpdateSacrificio)
	api.Post("/:id/estado", sacrificioController.ChangeEstado)
}
