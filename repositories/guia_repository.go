package repositories

import (
	"ganaderia-app/models"

	"gorm.io/gorm"
)

type GuiaRepository struct {
	db *gorm.DB
}

func NewGuiaRepository(db *gorm.DB) *GuiaRepository {
	return &GuiaRepository{db: db}
}

// GenerateConsecutivo MAX+1 por planta, dentro de la transaccion del
// insert igual que en sacrificios.
func (r *GuiaRepository) GenerateConsecutivo(plantaID uint) (int, error) {
	var max int
	err := r.db.Model(&models.GuiaHeader{}).
		Where("planta_id = ?", plantaID).
		Select("COALESCE(MAX(consecutivo), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

func (r *GuiaRepository) Create(guia *models.GuiaHeader) error {
	return r.db.Create(guia).Error
}

func (r *GuiaRepository) GetByID(id uint) (*models.GuiaHeader, error) {
	var guia models.GuiaHeader
	if err := r.db.Preload("Detalles").First(&guia, id).Error; err != nil {
		return nil, err
	}
	return &guia, nil
}

func (r *GuiaRepository) List(plantaID uint, desde, hasta string, limit, offset int) ([]models.GuiaHeader, int64, error) {
	query := r.db.Model(&models.GuiaHeader{})

	if plantaID != 0 {
		query = query.Where("planta_id = ?", plantaID)
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

	var guias []models.GuiaHeader
	err := query.Preload("Detalles").
		Order("consecutivo DESC").
		Limit(limit).Offset(offset).
		Find(&guias).Error
	return guias, total, err
}
