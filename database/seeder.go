package database

import (
	"log"

	"ganaderia-app/liquidacion"
	"ganaderia-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedPlantas(db)
	SeedTarifas(db)
	SeedContadores(db)
	SeedRazas(db)
	SeedColores(db)
	SeedUserMaster(db)
}

func SeedPlantas(db *gorm.DB) {
	plantas := []models.Planta{
		{Codigo: "BOV", Nombre: "Linea Bovinos", Especie: "bovino", IsActive: true},
		{Codigo: "POR", Nombre: "Linea Porcinos", Especie: "porcino", IsActive: true},
	}

	for _, p := range plantas {
		var existing models.Planta
		if err := db.Where("codigo = ?", p.Codigo).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&p)
			}
		}
	}
}

// SeedTarifas crea las tres tarifas canonicas por planta.
func SeedTarifas(db *gorm.DB) {
	var plantas []models.Planta
	if err := db.Find(&plantas).Error; err != nil {
		return
	}

	base := []models.Tarifa{
		{Nombre: "Degüello", ValorUnit: 1500, Categoria: liquidacion.CategoriaOficial},
		{Nombre: "Fondo Fedegan", ValorUnit: 900, Categoria: liquidacion.CategoriaOficial},
		{Nombre: "Servicio Matadero", ValorUnit: 3000, Categoria: liquidacion.CategoriaMatadero},
	}

	for _, planta := range plantas {
		for _, t := range base {
			var existing models.Tarifa
			if err := db.Where("planta_id = ? AND nombre = ?", planta.ID, t.Nombre).First(&existing).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					t.PlantaID = planta.ID
					t.IsActive = true
					db.Create(&t)
				}
			}
		}
	}
}

// SeedContadores deja cada planta con su contador en cero.
func SeedContadores(db *gorm.DB) {
	var plantas []models.Planta
	if err := db.Find(&plantas).Error; err != nil {
		return
	}

	for _, planta := range plantas {
		var existing models.ContadorTicket
		if err := db.Where("planta_id = ?", planta.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&models.ContadorTicket{PlantaID: planta.ID, ValorActual: 0})
			}
		}
	}
}

func SeedRazas(db *gorm.DB) {
	razas := []models.Raza{
		{Codigo: "CEBU", Nombre: "Cebú", Especie: "bovino"},
		{Codigo: "HOLS", Nombre: "Holstein", Especie: "bovino"},
		{Codigo: "CRIO", Nombre: "Criolla", Especie: "porcino"},
	}

	for _, r := range razas {
		var existing models.Raza
		if err := db.Where("codigo = ?", r.Codigo).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&r)
			}
		}
	}
}

func SeedColores(db *gorm.DB) {
	colores := []models.Color{
		{Codigo: "BLA", Nombre: "Blanco"},
		{Codigo: "NEG", Nombre: "Negro"},
		{Codigo: "ROJ", Nombre: "Rojo"},
		{Codigo: "PIN", Nombre: "Pintado"},
	}

	for _, c := range colores {
		var existing models.Color
		if err := db.Where("codigo = ?", c.Codigo).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&c)
			}
		}
	}
}

func SeedUserMaster(db *gorm.DB) {
	var existing models.User
	if err := db.Where("username = ?", "admin").First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("Unexpected DB error: %v", err)
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Failed to hash password: %v", err)
			return
		}

		admin := models.User{
			Username: "admin",
			Password: string(hashed),
			Name:     "Administrador",
			Email:    "admin@localhost",
			Role:     "admin",
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("Failed to create admin user: %v", err)
		}
	}
}
