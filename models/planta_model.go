package models

import "gorm.io/gorm"

// Planta es la linea de beneficio por especie (bovinos, porcinos).
// Las tarifas y los contadores de tickets se escopan por planta.
type Planta struct {
	gorm.Model
	Codigo    string `json:"codigo" gorm:"unique"`
	Nombre    string `json:"nombre"`
	Especie   string `json:"especie"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type Raza struct {
	gorm.Model
	Codigo    string `json:"codigo" gorm:"unique"`
	Nombre    string `json:"nombre"`
	Especie   string `json:"especie"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type Color struct {
	gorm.Model
	Codigo    string `json:"codigo" gorm:"unique"`
	Nombre    string `json:"nombre"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
