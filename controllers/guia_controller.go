package controllers

import (
	"errors"

	"ganaderia-app/models"
	"ganaderia-app/repositories"
	"ganaderia-app/services"
	"ganaderia-app/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type GuiaController struct {
	DB *gorm.DB
}

func NewGuiaController(DB *gorm.DB) *GuiaController {
	return &GuiaController{DB: DB}
}

type GuiaPayload struct {
	ID             uint   `json:"id"`
	NumeroGuia     string `json:"numero_guia"`
	FechaDocumento string `json:"fecha_documento"`
	PlantaID       uint   `json:"planta_id"`
	AntiguoDuenoID uint   `json:"antiguo_dueno_id"`
	FincaID        *uint  `json:"finca_id"`
	Detalles       []struct {
		RazaID  uint   `json:"raza_id"`
		ColorID uint   `json:"color_id"`
		Sexo    string `json:"sexo"`
		PesoKg  string `json:"peso_kg"`
	} `json:"detalles"`
}

func (c *GuiaController) CreateGuia(ctx *fiber.Ctx) error {
	var payload GuiaPayload

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

	var dueno models.Contacto
	if err := c.DB.First(&dueno, payload.AntiguoDuenoID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Dueño not found"})
	}

	// Un ticket de bascula por animal de la guia
	ticketSvc := services.NewTicketService(repositories.NewContadorRepository(c.DB))

	tickets := make([]services.Ticket, 0, len(payload.Detalles))
	for range payload.Detalles {
		tk, err := ticketSvc.Issue(payload.PlantaID)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to issue ticket",
				"error":   err.Error(),
			})
		}
		tickets = append(tickets, tk)
	}

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	repo := repositories.NewGuiaRepository(tx)

	consecutivo, err := repo.GenerateConsecutivo(payload.PlantaID)
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate consecutivo",
			"error":   err.Error(),
		})
	}

	guia := models.GuiaHeader{
		Consecutivo:    consecutivo,
		NumeroGuia:     payload.NumeroGuia,
		FechaDocumento: payload.FechaDocumento,
		PlantaID:       payload.PlantaID,
		AntiguoDuenoID: payload.AntiguoDuenoID,
		FincaID:        payload.FincaID,
		CreatedBy:      userID,
		UpdatedBy:      userID,
	}

	for i, d := range payload.Detalles {
		guia.Detalles = append(guia.Detalles, models.GuiaDetalle{
			RazaID:    d.RazaID,
			ColorID:   d.ColorID,
			Sexo:      d.Sexo,
			PesoKg:    utils.ParseFloatOrZero(d.PesoKg),
			Ticket:    tickets[i].Ticket,
			Ticket2:   tickets[i].Ticket2,
			CreatedBy: userID,
			UpdatedBy: userID,
		})
	}

	if err := repo.Create(&guia); err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to insert guia",
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
		"message": "Guia created successfully",
		"data": fiber.Map{
			"guia_id":     guia.ID,
			"consecutivo": guia.Consecutivo,
		},
	})
}

// UpdateGuia edita encabezado y detalles mientras no este finalizada.
// Los tickets ya emitidos se conservan; animales nuevos reciben nuevos.
func (c *GuiaController) UpdateGuia(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var payload GuiaPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var guia models.GuiaHeader
	if err := c.DB.Preload("Detalles").First(&guia, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Guia not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if guia.Finalizada {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "La guia ya esta finalizada",
		})
	}

	userID := int(ctx.Locals("userID").(float64))
	ticketSvc := services.NewTicketService(repositories.NewContadorRepository(c.DB))

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	guia.NumeroGuia = payload.NumeroGuia
	guia.FechaDocumento = payload.FechaDocumento
	guia.FincaID = payload.FincaID
	guia.UpdatedBy = userID

	// Reemplazo simple de detalles: los existentes salen, los del
	// payload entran reusando tickets por posicion.
	if err := tx.Unscoped().Where("guia_id = ?", guia.ID).Delete(&models.GuiaDetalle{}).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	viejos := guia.Detalles
	guia.Detalles = nil

	for i, d := range payload.Detalles {
		detalle := models.GuiaDetalle{
			GuiaID:    guia.ID,
			RazaID:    d.RazaID,
			ColorID:   d.ColorID,
			Sexo:      d.Sexo,
			PesoKg:    utils.ParseFloatOrZero(d.PesoKg),
			CreatedBy: userID,
			UpdatedBy: userID,
		}
		if i < len(viejos) {
			detalle.Ticket = viejos[i].Ticket
			detalle.Ticket2 = viejos[i].Ticket2
		} else {
			tk, err := ticketSvc.Issue(guia.PlantaID)
			if err != nil {
				tx.Rollback()
				return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
			}
			detalle.Ticket = tk.Ticket
			detalle.Ticket2 = tk.Ticket2
		}
		if err := tx.Create(&detalle).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	if err := tx.Save(&guia).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Guia updated successfully"})
}

func (c *GuiaController) FinalizarGuia(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var guia models.GuiaHeader
	if err := c.DB.First(&guia, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Guia not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if guia.Finalizada {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "La guia ya esta finalizada",
		})
	}

	guia.Finalizada = true
	guia.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&guia).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Guia finalizada"})
}

func (c *GuiaController) GetGuiaByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewGuiaRepository(c.DB)
	guia, err := repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Guia not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Guia found", "data": guia})
}

func (c *GuiaController) GetAllGuias(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	page := ctx.QueryInt("page", 1)
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if page <= 0 {
		page = 1
	}

	repo := repositories.NewGuiaRepository(c.DB)
	guias, total, err := repo.List(
		uint(ctx.QueryInt("planta_id")),
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
		"message": "Guias found",
		"data": fiber.Map{
			"guias": guias,
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
