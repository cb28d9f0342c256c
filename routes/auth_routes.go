package routes

import (
	"ganaderia-app/config"
	"ganaderia-app/controllers"
	"ganaderia-app/database"
	"ganaderia-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authController := controllers.NewAuthController(database.GetDB())

	api := app.Group(config.MAIN_ROUTES)
	api.Post("/login", authController.Login)
	api.Get("/logout", middleware.AuthMiddleware, authController.Logout)
	api.Get("/isLoggedIn", middleware.AuthMiddleware, authController.IsLoggedIn)
}
