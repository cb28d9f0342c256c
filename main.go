package main

import (
	"fmt"
	"log"

	"ganaderia-app/config"
	"ganaderia-app/controllers/idgen"
	"ganaderia-app/database"
	"ganaderia-app/migration"
	"ganaderia-app/routes"
	"ganaderia-app/scheduler"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	// Conexion a la base de datos
	db, err := database.Init()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	// CORS
	config.SetupCORS(app)

	// Rutas
	routes.SetupAuthRoutes(app)
	routes.SetupMaestrosRoutes(app)
	routes.SetupContactoRoutes(app)
	routes.SetupTarifaRoutes(app)
	routes.SetupGuiaRoutes(app)
	routes.SetupSacrificioRoutes(app)
	routes.SetupTicketRoutes(app)
	routes.SetupReportRoutes(app)

	// Resumen diario por correo
	sched := scheduler.NewScheduler(db)
	sched.Start()
	defer sched.Stop()

	port := config.APP_PORT
	fmt.Println("🚀 Servidor corriendo en el puerto " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
