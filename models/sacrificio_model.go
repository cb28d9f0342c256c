package models

import (
	"fmt"

	"ganaderia-app/types"

	"gorm.io/gorm"
)

// Estados de un sacrificio. Anulado es terminal.
const (
	EstadoBorrador   = "borrador"
	EstadoConfirmado = "confirmado"
	EstadoAnulado    = "anulado"
)

type Sacrificio struct {
	gorm.Model
	Consecutivo    int                  `json:"consecutivo" gorm:"index:idx_sacrificio_consec"`
	FechaDocumento string               `json:"fecha_documento"`
	PlantaID       uint                 `json:"planta_id" gorm:"index"`
	AntiguoDuenoID uint                 `json:"antiguo_dueno_id"`
	NuevoDuenoID   *uint                `json:"nuevo_dueno_id"`
	DestinatarioID *uint                `json:"destinatario_id"`
	Machos         int                  `json:"machos"`
	Hembras        int                  `json:"hembras"`
	PesoTotalKg    float64              `json:"peso_total_kg"`
	Planilla       int                  `json:"planilla"`
	Ticket         types.SnowflakeID    `json:"ticket"`
	Ticket2        int                  `json:"ticket2"`
	TotalImpuestos int64                `json:"total_impuestos"`
	Estado         string               `json:"estado" gorm:"default:borrador"`
	Impuestos      []SacrificioImpuesto `json:"impuestos"`
	CreatedBy      int
	UpdatedBy      int
	DeletedBy      int
}

// SacrificioImpuesto es una linea de liquidacion congelada al momento
// de crear o editar el documento.
type SacrificioImpuesto struct {
	gorm.Model
	SacrificioID uint    `json:"sacrificio_id" gorm:"index"`
	TarifaID     uint    `json:"tarifa_id"`
	Nombre       string  `json:"nombre"`
	ValorUnit    float64 `json:"valor_unit"`
	Animales     int     `json:"animales"`
	Valor        int64   `json:"valor"`
	Categoria    string  `json:"categoria"`
}

// CanTransition valida el cambio de estado del documento.
func (s *Sacrificio) CanTransition(nuevo string) bool {
	switch s.Estado {
	case EstadoBorrador:
		return nuevo == EstadoConfirmado || nuevo == EstadoAnulado
	case EstadoConfirmado:
		return nuevo == EstadoAnulado
	default:
		return false
	}
}

// Transition aplica el cambio de estado o falla si no es valido.
func (s *Sacrificio) Transition(nuevo string) error {
	if !s.CanTransition(nuevo) {
		return fmt.Errorf("transicion invalida: %s -> %s", s.Estado, nuevo)
	}
	s.Estado = nuevo
	return nil
}
