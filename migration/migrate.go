package migration

import (
	"ganaderia-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.Planta{},
		&models.Raza{},
		&models.Color{},
		&models.Contacto{},
		&models.Finca{},
		&models.Tarifa{},
		&models.ContadorTicket{},
		&models.GuiaHeader{},
		&models.GuiaDetalle{},
		&models.Sacrificio{},
		&models.SacrificioImpuesto{},
	)
}
