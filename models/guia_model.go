package models

import (
	"ganaderia-app/types"

	"gorm.io/gorm"
)

type GuiaHeader struct {
	gorm.Model
	Consecutivo    int           `json:"consecutivo" gorm:"index:idx_guia_consec"`
	NumeroGuia     string        `json:"numero_guia"`
	FechaDocumento string        `json:"fecha_documento"`
	PlantaID       uint          `json:"planta_id" gorm:"index"`
	AntiguoDuenoID uint          `json:"antiguo_dueno_id"`
	FincaID        *uint         `json:"finca_id"`
	Finalizada     bool          `json:"finalizada" gorm:"default:false"`
	Detalles       []GuiaDetalle `json:"detalles"`
	CreatedBy      int
	UpdatedBy      int
	DeletedBy      int
}

type GuiaDetalle struct {
	gorm.Model
	GuiaID    uint              `json:"guia_id" gorm:"index"`
	RazaID    uint              `json:"raza_id"`
	ColorID   uint              `json:"color_id"`
	Sexo      string            `json:"sexo"`
	PesoKg    float64           `json:"peso_kg"`
	Ticket    types.SnowflakeID `json:"ticket"`
	Ticket2   int               `json:"ticket2"`
	CreatedBy int
	UpdatedBy int
}
