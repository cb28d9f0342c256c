package routes

import (
	"ganaderia-app/config"
	"ganaderia-app/controllers"
	"ganaderia-app/database"
	"ganaderia-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupContactoRoutes(app *fiber.App) {
	api := app.Group(config.MAIN_ROUTES+"/contactos", middleware.AuthMiddleware)
	contactoController := controllers.NewContactoController(database.GetDB())

	api.Get("/", contactoController.GetAllContactos)
	api.Post("/", contactoController.CreateContacto)
	api.Get("/:id", contactoController.GetContactoByID)
	api.Put("/:id", contactoController.UpdateContacto)
	api.Delete("/:id", contactoController.DeleteContacto)
	api.Post("/:id/fincas", contactoController.AddFinca)
}
