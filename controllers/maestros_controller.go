package controllers

import (
	"ganaderia-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MaestrosController atiende los maestros chicos: razas y colores.
type MaestrosController struct {
	DB *gorm.DB
}

func NewMaestrosController(DB *gorm.DB) *MaestrosController {
	return &MaestrosController{DB: DB}
}

var razaInput struct {
	Codigo  string `json:"codigo" validate:"required,min=2"`
	Nombre  string `json:"nombre" validate:"required,min=3"`
	Especie string `json:"especie"`
}

var colorInput struct {
	Codigo string `json:"codigo" validate:"required,min=2"`
	Nombre string `json:"nombre" validate:"required,min=3"`
}

func (c *MaestrosController) GetAllRazas(ctx *fiber.Ctx) error {
	var razas []models.Raza
	if err := c.DB.Find(&razas).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Razas found", "data": razas})
}

func (c *MaestrosController) CreateRaza(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&razaInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(razaInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	raza := models.Raza{
		Codigo:    razaInput.Codigo,
		Nombre:    razaInput.Nombre,
		Especie:   razaInput.Especie,
		CreatedBy: userID,
		UpdatedBy: userID,
	}

	if err := c.DB.Create(&raza).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Raza created", "data": raza})
}

func (c *MaestrosController) DeleteRaza(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.DB.Delete(&models.Raza{}, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Raza deleted"})
}

func (c *MaestrosController) GetAllColores(ctx *fiber.Ctx) error {
	var colores []models.Color
	if err := c.DB.Find(&colores).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Colores found", "data": colores})
}

func (c *MaestrosController) CreateColor(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&colorInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(colorInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	color := models.Color{
		Codigo:    colorInput.Codigo,
		Nombre:    colorInput.Nombre,
		CreatedBy: userID,
		UpdatedBy: userID,
	}

	if err := c.DB.Create(&color).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Color created", "data": color})
}

func (c *MaestrosController) DeleteColor(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.DB.Delete(&models.Color{}, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Color deleted"})
}
