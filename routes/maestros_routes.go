package routes

import (
	"ganaderia-app/config"
	"ganaderia-app/controllers"
	"ganaderia-app/database"
	"ganaderia-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupMaestrosRoutes(app *fiber.App) {
	api := app.Group(config.MAIN_ROUTES, middleware.AuthMiddleware)

	plantaController := controllers.NewPlantaController(database.GetDB())
	api.Get("/plantas", plantaController.GetAllPlantas)
	api.Post("/plantas", plantaController.CreatePlanta)
	api.Get("/plantas/:id", plantaController.GetPlantaByID)
	api.Put("/plantas/:id", plantaController.UpdatePlanta)

	maestrosController := controllers.NewMaestrosController(database.GetDB())
	api.Get("/razas", maestrosController.GetAllRazas)
	api.Post("/razas", maestrosController.CreateRaza)
	api.Delete("/razas/:id", maestrosController.DeleteRaza)
	api.Get("/colores", maestrosController.GetAllColores)
	api.Post("/colores", maestrosController.CreateColor)
	api.Delete("/colores/:id", maestrosController.DeleteColor)
}
