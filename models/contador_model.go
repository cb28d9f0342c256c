package models

import "gorm.io/gorm"

// ContadorTicket lleva el numero de bascula por planta.
// ValorActual solo se modifica con el incremento CAS del repositorio
// o con el reset administrativo.
type ContadorTicket struct {
	gorm.Model
	PlantaID    uint `json:"planta_id" gorm:"uniqueIndex"`
	ValorActual int  `json:"valor_actual"`
}
