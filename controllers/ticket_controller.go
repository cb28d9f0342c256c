package controllers

import (
	"ganaderia-app/models"
	"ganaderia-app/repositories"
	"ganaderia-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TicketController struct {
	DB *gorm.DB
}

func NewTicketController(DB *gorm.DB) *TicketController {
	return &TicketController{DB: DB}
}

func (c *TicketController) service() *services.TicketService {
	return services.NewTicketService(repositories.NewContadorRepository(c.DB))
}

// NextTicket emite el siguiente numero de bascula de la planta.
func (c *TicketController) NextTicket(ctx *fiber.Ctx) error {
	plantaID, err := ctx.ParamsInt("planta_id")
	if err != nil || plantaID <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid planta ID"})
	}

	var planta models.Planta
	if err := c.DB.First(&planta, plantaID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Planta not found"})
	}

	ticket, err := c.service().Issue(uint(plantaID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "No se pudo generar el ticket",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Ticket issued",
		"data": fiber.Map{
			"ticket":  ticket.Ticket,
			"ticket2": ticket.Ticket2,
		},
	})
}

// CurrentCount consulta el contador sin avanzarlo.
func (c *TicketController) CurrentCount(ctx *fiber.Ctx) error {
	plantaID, err := ctx.ParamsInt("planta_id")
	if err != nil || plantaID <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid planta ID"})
	}

	actual, err := c.service().Current(uint(plantaID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"valor_actual": actual},
	})
}

// ResetCounter deja el contador en cero. La pantalla que llama debe
// pedir confirmacion antes.
func (c *TicketController) ResetCounter(ctx *fiber.Ctx) error {
	plantaID, err := ctx.ParamsInt("planta_id")
	if err != nil || plantaID <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid planta ID"})
	}

	var planta models.Planta
	if err := c.DB.First(&planta, plantaID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Planta not found"})
	}

	if err := c.service().Reset(uint(plantaID)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "No se pudo reiniciar el contador",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Contador reiniciado",
	})
}
