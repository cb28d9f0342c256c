package controllers

import (
	"errors"

	"ganaderia-app/liquidacion"
	"ganaderia-app/models"
	"ganaderia-app/repositories"
	"ganaderia-app/services"
	"ganaderia-app/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type SacrificioController struct {
	DB *gorm.DB
}

func NewSacrificioController(DB *gorm.DB) *SacrificioController {
	return &SacrificioController{DB: DB}
}

// Los conteos llegan como string porque los formularios mandan campos
// vacios; se coercen con ParseIntOrZero igual que el sistema anterior.
type SacrificioPayload struct {
	ID             uint    `json:"id"`
	FechaDocumento string  `json:"fecha_documento"`
	PlantaID       uint    `json:"planta_id"`
	AntiguoDuenoID uint    `json:"antiguo_dueno_id"`
	NuevoDuenoID   *uint   `json:"nuevo_dueno_id"`
	DestinatarioID *uint   `json:"destinatario_id"`
	Machos         string  `json:"machos"`
	Hembras        string  `json:"hembras"`
	PesoTotalKg    float64 `json:"peso_total_kg"`
}

// tarifasActivas trae las tarifas vigentes de la planta ya convertidas
// al insumo de liquidacion.
func tarifasActivas(db *gorm.DB, plantaID uint) ([]liquidacion.Tarifa, []models.Tarifa, error) {
	var tarifas []models.Tarifa
	if err := db.Where("planta_id = ? AND is_active = ?", plantaID, true).Find(&tarifas).Error; err != nil {
		return nil, nil, err
	}

	insumo := make([]liquidacion.Tarifa, 0, len(tarifas))
	for _, t := range tarifas {
		insumo = append(insumo, liquidacion.Tarifa{
			ID:        t.ID,
			Nombre:    t.Nombre,
			ValorUnit: t.ValorUnit,
			Categoria: t.Categoria,
		})
	}
	return insumo, tarifas, nil
}

func (c *SacrificioController) CreateSacrificio(ctx *fiber.Ctx) error {
	var payload SacrificioPayload

	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payload",
			"error":   err.Error(),
		})
	}

	userID := int(ctx.Locals("userID").(float64))

	var planta models.Planta
	if err := c.DB.First(&planta, payload.PlantaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Planta not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var antiguo models.Contacto
	if err := c.DB.First(&antiguo, payload.AntiguoDuenoID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Antiguo dueño not found"})
	}

	machos := utils.ParseIntOrZero(payload.Machos)
	hembras := utils.ParseIntOrZero(payload.Hembras)

	insumo, _, err := tarifasActivas(c.DB, payload.PlantaID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	resultado := liquidacion.Compute(machos, hembras, insumo)

	// El ticket de bascula sale del contador atomico, fuera de la
	// transaccion del documento: un insert fallido no reusa numeros.
	ticketSvc := services.NewTicketService(repositories.NewContadorRepository(c.DB))
	ticket, err := ticketSvc.Issue(payload.PlantaID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to issue ticket",
			"error":   err.Error(),
		})
	}

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	repo := repositories.NewSacrificioRepository(tx)

	consecutivo, err := repo.GenerateConsecutivo(payload.PlantaID)
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate consecutivo",
			"error":   err.Error(),
		})
	}

	planilla, err := repo.GeneratePlanilla(payload.PlantaID)
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate planilla",
			"error":   err.Error(),
		})
	}

	sacrificio := models.Sacrificio{
		Consecutivo:    consecutivo,
		FechaDocumento: payload.FechaDocumento,
		PlantaID:       payload.PlantaID,
		AntiguoDuenoID: payload.AntiguoDuenoID,
		NuevoDuenoID:   payload.NuevoDuenoID,
		DestinatarioID: payload.DestinatarioID,
		Machos:         machos,
		Hembras:        hembras,
		PesoTotalKg:    payload.PesoTotalKg,
		Planilla:       planilla,
		Ticket:         ticket.Ticket,
		Ticket2:        ticket.Ticket2,
		TotalImpuestos: resultado.Total,
		Estado:         models.EstadoBorrador,
		CreatedBy:      userID,
		UpdatedBy:      userID,
	}

	for _, l := range resultado.Lineas {
		sacrificio.Impuestos = append(sacrificio.Impuestos, models.SacrificioImpuesto{
			TarifaID:  l.TarifaID,
			Nombre:    l.Nombre,
			ValorUnit: l.ValorUnit,
			Animales:  l.Animales,
			Valor:     l.Valor,
			Categoria: l.Categoria,
		})
	}

	if err := repo.Create(&sacrificio); err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to insert sacrificio",
			"error":   err.Error(),
		})
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to commit transaction",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Sacrificio created successfully",
		"data": fiber.Map{
			"sacrificio_id": sacrificio.ID,
			"consecutivo":   sacrificio.Consecutivo,
			"planilla":      sacrificio.Planilla,
			"ticket":        sacrificio.Ticket,
			"ticket2":       sacrificio.Ticket2,
			"liquidacion":   resultado,
		},
	})
}

// UpdateSacrificio reliquida un documento en borrador. Confirmados y
// anulados no se tocan.
func (c *SacrificioController) UpdateSacrificio(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var payload SacrificioPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var sacrificio models.Sacrificio
	if err := c.DB.First(&sacrificio, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sacrificio not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if sacrificio.Estado != models.EstadoBorrador {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Solo los borradores se pueden editar",
		})
	}

	userID := int(ctx.Locals("userID").(float64))

	machos := utils.ParseIntOrZero(payload.Machos)
	hembras := utils.ParseIntOrZero(payload.Hembras)

	insumo, _, err := tarifasActivas(c.DB, sacrificio.PlantaID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	resultado := liquidacion.Compute(machos, hembras, insumo)

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	repo := repositories.NewSacrificioRepository(tx)

	lineas := make([]models.SacrificioImpuesto, 0, len(resultado.Lineas))
	for _, l := range resultado.Lineas {
		lineas = append(lineas, models.SacrificioImpuesto{
			SacrificioID: sacrificio.ID,
			TarifaID:     l.TarifaID,
			Nombre:       l.Nombre,
			ValorUnit:    l.ValorUnit,
			Animales:     l.Animales,
			Valor:        l.Valor,
			Categoria:    l.Categoria,
		})
	}

	if err := repo.ReplaceImpuestos(sacrificio.ID, lineas); err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	sacrificio.FechaDocumento = payload.FechaDocumento
	sacrificio.Machos = machos
	sacrificio.Hembras = hembras
	sacrificio.PesoTotalKg = payload.PesoTotalKg
	sacrificio.NuevoDuenoID = payload.NuevoDuenoID
	sacrificio.DestinatarioID = payload.DestinatarioID
	sacrificio.TotalImpuestos = resultado.Total
	sacrificio.UpdatedBy = userID

	if err := tx.Save(&sacrificio).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Sacrificio updated successfully",
		"data":    fiber.Map{"liquidacion": resultado},
	})
}

// ChangeEstado maneja confirmar y anular segun la maquina de estados.
func (c *SacrificioController) ChangeEstado(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var payload struct {
		Estado string `json:"estado"`
	}
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	estadosValidos := []string{models.EstadoConfirmado, models.EstadoAnulado}
	if !slices.Contains(estadosValidos, payload.Estado) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Estado invalido"})
	}

	var sacrificio models.Sacrificio
	if err := c.DB.First(&sacrificio, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sacrificio not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := sacrificio.Transition(payload.Estado); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	sacrificio.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&sacrificio).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Estado updated",
		"data":    fiber.Map{"estado": sacrificio.Estado},
	})
}

func (c *SacrificioController) GetSacrificioByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewSacrificioRepository(c.DB)
	sacrificio, err := repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sacrificio not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sacrificio found", "data": sacrificio})
}

func (c *SacrificioController) GetAllSacrificios(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	page := ctx.QueryInt("page", 1)
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if page <= 0 {
		page = 1
	}

	repo := repositories.NewSacrificioRepository(c.DB)
	sacrificios, total, err := repo.List(
		uint(ctx.QueryInt("planta_id")),
		ctx.Query("estado"),
		ctx.Query("desde"),
		ctx.Query("hasta"),
		limit,
		(page-1)*limit,
	)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Sacrificios found",
		"data": fiber.Map{
			"sacrificios": sacrificios,
			"total":       total,
			"page":        page,
			"limit":       limit,
		},
	})
}
