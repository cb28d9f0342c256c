package models

import "gorm.io/gorm"

// Tarifa es el valor por animal de un impuesto o servicio.
// Categoria queda explicita en la tabla; la clasificacion por nombre
// del sistema anterior vive en liquidacion.ClassifyName como respaldo.
type Tarifa struct {
	gorm.Model
	Nombre    string  `json:"nombre"`
	PlantaID  uint    `json:"planta_id" gorm:"index"`
	ValorUnit float64 `json:"valor_unit"`
	Categoria string  `json:"categoria"`
	IsActive  bool    `json:"is_active" gorm:"default:true"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
