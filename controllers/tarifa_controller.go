package controllers

import (
	"errors"

	"ganaderia-app/liquidacion"
	"ganaderia-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TarifaController struct {
	DB *gorm.DB
}

func NewTarifaController(DB *gorm.DB) *TarifaController {
	return &TarifaController{DB: DB}
}

var tarifaInput struct {
	ID        uint    `json:"id"`
	Nombre    string  `json:"nombre" validate:"required,min=3"`
	PlantaID  uint    `json:"planta_id" validate:"required"`
	ValorUnit float64 `json:"valor_unit" validate:"required,gt=0"`
	Categoria string  `json:"categoria"`
	IsActive  *bool   `json:"is_active"`
}

func (c *TarifaController) GetAllTarifas(ctx *fiber.Ctx) error {
	var tarifas []models.Tarifa
	query := c.DB

	if plantaID := ctx.QueryInt("planta_id"); plantaID > 0 {
		query = query.Where("planta_id = ?", plantaID)
	}

	if err := query.Find(&tarifas).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Tarifas found", "data": tarifas})
}

func (c *TarifaController) GetTarifaByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Tarifa
	if err := c.DB.First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tarifa not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Tarifa found", "data": result})
}

func (c *TarifaController) CreateTarifa(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&tarifaInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(tarifaInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var planta models.Planta
	if err := c.DB.First(&planta, tarifaInput.PlantaID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Planta not found"})
	}

	userID := int(ctx.Locals("userID").(float64))

	// Sin categoria explicita se clasifica por nombre como antes
	categoria := tarifaInput.Categoria
	if categoria == "" {
		categoria = liquidacion.ClassifyName(tarifaInput.Nombre)
	}

	tarifa := models.Tarifa{
		Nombre:    tarifaInput.Nombre,
		PlantaID:  tarifaInput.PlantaID,
		ValorUnit: tarifaInput.ValorUnit,
		Categoria: categoria,
		IsActive:  true,
		CreatedBy: userID,
		UpdatedBy: userID,
	}

	if err := c.DB.Create(&tarifa).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create tarifa",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Tarifa created", "data": tarifa})
}

func (c *TarifaController) UpdateTarifa(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := ctx.BodyParser(&tarifaInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var tarifa models.Tarifa
	if err := c.DB.First(&tarifa, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tarifa not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	tarifa.Nombre = tarifaInput.Nombre
	tarifa.ValorUnit = tarifaInput.ValorUnit
	if tarifaInput.Categoria != "" {
		tarifa.Categoria = tarifaInput.Categoria
	}
	if tarifaInput.IsActive != nil {
		tarifa.IsActive = *tarifaInput.IsActive
	}
	tarifa.UpdatedBy = userID

	if err := c.DB.Save(&tarifa).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Tarifa updated", "data": tarifa})
}

func (c *TarifaController) DeleteTarifa(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.DB.Delete(&models.Tarifa{}, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Tarifa deleted"})
}
