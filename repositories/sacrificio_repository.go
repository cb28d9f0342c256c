package repositories

import (
	"ganaderia-app/models"

	"gorm.io/gorm"
)

type SacrificioRepository struct {
	db *gorm.DB
}

func NewSacrificioRepository(db *gorm.DB) *SacrificioRepository {
	return &SacrificioRepository{db: db}
}

// GenerateConsecutivo calcula MAX(consecutivo)+1 por planta. Se debe
// llamar dentro de la misma transaccion que inserta el documento para
// que un insert fallido no queme el numero.
func (r *SacrificioRepository) GenerateConsecutivo(plantaID uint) (int, error) {
	var max int
	err := r.db.Model(&models.Sacrificio{}).
		Where("planta_id = ?", plantaID).
		Select("COALESCE(MAX(consecutivo), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// GeneratePlanilla sigue el mismo patron MAX+1 sobre la planilla.
func (r *SacrificioRepository) GeneratePlanilla(plantaID uint) (int, error) {
	var max int
	err := r.db.Model(&models.Sacrificio{}).
		Where("planta_id = ?", plantaID).
		Select("COALESCE(MAX(planilla), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// Create inserta el encabezado con sus lineas de impuestos.
func (r *SacrificioRepository) Create(sacrificio *models.Sacrificio) error {
	return r.db.Create(sacrificio).Error
}

// ReplaceImpuestos borra y reinserta las lineas de un documento que
// se reliquida en modo borrador.
func (r *SacrificioRepository) ReplaceImpuestos(sacrificioID uint, lineas []models.SacrificioImpuesto) error {
	if err := r.db.Unscoped().
		Where("sacrificio_id = ?", sacrificioID).
		Delete(&models.SacrificioImpuesto{}).Error; err != nil {
		return err
	}
	if len(lineas) == 0 {
		return nil
	}
	return r.db.Create(&lineas).Error
}

// GetByID trae el documento con sus lineas.
func (r *SacrificioRepository) GetByID(id uint) (*models.Sacrificio, error) {
	var sacrificio models.Sacrificio
	if err := r.db.Preload("Impuestos").First(&sacrificio, id).Error; err != nil {
		return nil, err
	}
	return &sacrificio, nil
}

// List filtra por planta, estado y rango de fechas.
func (r *SacrificioRepository) List(plantaID uint, estado, desde, hasta string, limit, offset int) ([]models.Sacrificio, int64, error) {
	query := r.db.Model(&models.Sacrificio{})

	if plantaID != 0 {
		query = query.Where("planta_id = ?", plantaID)
	}
	if estado != "" {
		query = query.Where("estado = ?", estado)
	}
	if desde != "" {
		query = query.Where("fecha_documento >= ?", desde)
	}
	if hasta != "" {
		query = query.Where("fecha_documento <= ?", hasta)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sacrificios []models.Sacrificio
	err := query.Preload("Impuestos").
		Order("consecutivo DESC").
		Limit(limit).Offset(offset).
		Find(&sacrificios).Error
	return sacrificios, total, err
}

// ListForReport trae los confirmados del rango. Los anulados guardan
// sus valores pero no suman en los reportes.
func (r *SacrificioRepository) ListForReport(desde, hasta string) ([]models.Sacrificio, error) {
	var sacrificios []models.Sacrificio
	err := r.db.Preload("Impuestos").
		Where("estado = ? AND fecha_documento >= ? AND fecha_documento <= ?", models.EstadoConfirmado, desde, hasta).
		Order("planta_id ASC, consecutivo ASC").
		Find(&sacrificios).Error
	return sacrificios, err
}
