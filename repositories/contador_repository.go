package repositories

import (
	"errors"
	"fmt"

	"ganaderia-app/models"

	"gorm.io/gorm"
)

// maxCASRetries limita el ciclo compare-and-swap bajo contencion.
const maxCASRetries = 50

// ContadorRepository implementa services.CounterStore sobre gorm.
// El incremento usa compare-and-swap en vez de SELECT FOR UPDATE para
// funcionar igual en mysql, postgres y sqlserver.
type ContadorRepository struct {
	db *gorm.DB
}

func NewContadorRepository(db *gorm.DB) *ContadorRepository {
	return &ContadorRepository{db: db}
}

// GetAndIncrement avanza el contador de la planta y devuelve el nuevo
// valor. Dos peticiones concurrentes nunca obtienen el mismo numero:
// el UPDATE condicionado por el valor leido solo gana una, la otra
// reintenta con el valor fresco.
func (r *ContadorRepository) GetAndIncrement(plantaID uint) (int, error) {
	for i := 0; i < maxCASRetries; i++ {
		contador, err := r.ensure(plantaID)
		if err != nil {
			return 0, err
		}

		nuevo := contador.ValorActual + 1
		res := r.db.Model(&models.ContadorTicket{}).
			Where("planta_id = ? AND valor_actual = ?", plantaID, contador.ValorActual).
			Update("valor_actual", nuevo)
		if res.Error != nil {
			return 0, res.Error
		}
		if res.RowsAffected == 1 {
			return nuevo, nil
		}
		// Otro proceso gano el turno, releer y reintentar
	}
	return 0, fmt.Errorf("contador planta %d: demasiada contencion", plantaID)
}

// Get devuelve el valor actual sin modificarlo.
func (r *ContadorRepository) Get(plantaID uint) (int, error) {
	contador, err := r.ensure(plantaID)
	if err != nil {
		return 0, err
	}
	return contador.ValorActual, nil
}

// Reset deja el contador en cero. La confirmacion previa del usuario
// es responsabilidad de la pantalla que lo invoca.
func (r *ContadorRepository) Reset(plantaID uint) error {
	if _, err := r.ensure(plantaID); err != nil {
		return err
	}
	return r.db.Model(&models.ContadorTicket{}).
		Where("planta_id = ?", plantaID).
		Update("valor_actual", 0).Error
}

// ensure lee el contador y lo crea en cero si no existe.
func (r *ContadorRepository) ensure(plantaID uint) (*models.ContadorTicket, error) {
	var contador models.ContadorTicket
	err := r.db.Where("planta_id = ?", plantaID).First(&contador).Error
	if err == nil {
		return &contador, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	contador = models.ContadorTicket{PlantaID: plantaID, ValorActual: 0}
	if err := r.db.Create(&contador).Error; err != nil {
		// Carrera en la creacion: otro proceso la gano, releer
		if lookupErr := r.db.Where("planta_id = ?", plantaID).First(&contador).Error; lookupErr != nil {
			return nil, err
		}
	}
	return &contador, nil
}
