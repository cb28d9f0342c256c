package routes

import (
	"ganaderia-app/config"
	"ganaderia-app/controllers"
	"ganaderia-app/database"
	"ganaderia-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App) {
	api := app.Group(config.MAIN_ROUTES+"/reportes", middleware.AuthMiddleware)
	reportController := controllers.NewReportController(database.GetDB())

	api.Get("/sacrificios", reportController.GetReporteSacrificios)
	api.Get("/sacrificios/excel", reportController.ExportExcel)
}
