package controllers

import (
	"errors"

	"ganaderia-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PlantaController struct {
	DB *gorm.DB
}

func NewPlantaController(DB *gorm.DB) *PlantaController {
	return &PlantaController{DB: DB}
}

var plantaInput struct {
	ID      uint   `json:"id"`
	Codigo  string `json:"codigo" validate:"required,min=2"`
	Nombre  string `json:"nombre" validate:"required,min=3"`
	Especie string `json:"especie" validate:"required"`
}

func (c *PlantaController) GetAllPlantas(ctx *fiber.Ctx) error {
	var plantas []models.Planta
	if err := c.DB.Find(&plantas).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Plantas found", "data": plantas})
}

func (c *PlantaController) GetPlantaByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Planta
	if err := c.DB.First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Planta not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Planta found", "data": result})
}

func (c *PlantaController) CreatePlanta(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&plantaInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(plantaInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	planta := models.Planta{
		Codigo:    plantaInput.Codigo,
		Nombre:    plantaInput.Nombre,
		Especie:   plantaInput.Especie,
		IsActive:  true,
		CreatedBy: userID,
		UpdatedBy: userID,
	}

	if err := c.DB.Create(&planta).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create planta",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Planta created", "data": planta})
}

func (c *PlantaController) UpdatePlanta(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := ctx.BodyParser(&plantaInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var planta models.Planta
	if err := c.DB.First(&planta, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Planta not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	planta.Codigo = plantaInput.Codigo
	planta.Nombre = plantaInput.Nombre
	planta.Especie = plantaInput.Especie
	planta.UpdatedBy = userID

	if err := c.DB.Save(&planta).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Planta updated", "data": planta})
}
