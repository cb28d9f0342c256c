package controllers

import (
	"errors"

	"ganaderia-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type ContactoController struct {
	DB *gorm.DB
}

func NewContactoController(DB *gorm.DB) *ContactoController {
	return &ContactoController{DB: DB}
}

var contactoInput struct {
	ID        uint   `json:"id"`
	Nombres   string `json:"nombres" validate:"required,min=3"`
	Apellidos string `json:"apellidos"`
	Nit       string `json:"nit" validate:"required,min=5"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	Municipio string `json:"municipio"`
	Rol       string `json:"rol"`
	Fincas    []struct {
		Nombre    string `json:"nombre"`
		Vereda    string `json:"vereda"`
		Municipio string `json:"municipio"`
	} `json:"fincas"`
}

var rolesValidos = []string{models.RolAntiguoDueno, models.RolNuevoDueno, models.RolAmbos}

func (c *ContactoController) GetAllContactos(ctx *fiber.Ctx) error {
	var contactos []models.Contacto
	if err := c.DB.Preload("Fincas").Find(&contactos).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Contactos found", "data": contactos})
}

func (c *ContactoController) GetContactoByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Contacto
	if err := c.DB.Preload("Fincas").First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Contacto not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Contacto found", "data": result})
}

func (c *ContactoController) CreateContacto(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&contactoInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(contactoInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rol := contactoInput.Rol
	if rol == "" {
		rol = models.RolAmbos
	}
	if !slices.Contains(rolesValidos, rol) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rol invalido"})
	}

	userID := int(ctx.Locals("userID").(float64))

	contacto := models.Contacto{
		Nombres:   contactoInput.Nombres,
		Apellidos: contactoInput.Apellidos,
		Nit:       contactoInput.Nit,
		Telefono:  contactoInput.Telefono,
		Direccion: contactoInput.Direccion,
		Municipio: contactoInput.Municipio,
		Rol:       rol,
		CreatedBy: userID,
		UpdatedBy: userID,
	}

	for _, f := range contactoInput.Fincas {
		contacto.Fincas = append(contacto.Fincas, models.Finca{
			Nombre:    f.Nombre,
			Vereda:    f.Vereda,
			Municipio: f.Municipio,
			CreatedBy: userID,
			UpdatedBy: userID,
		})
	}

	if err := c.DB.Create(&contacto).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create contacto",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Contacto created", "data": contacto})
}

func (c *ContactoController) UpdateContacto(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := ctx.BodyParser(&contactoInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var contacto models.Contacto
	if err := c.DB.First(&contacto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Contacto not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	contacto.Nombres = contactoInput.Nombres
	contacto.Apellidos = contactoInput.Apellidos
	contacto.Nit = contactoInput.Nit
	contacto.Telefono = contactoInput.Telefono
	contacto.Direccion = contactoInput.Direccion
	contacto.Municipio = contactoInput.Municipio
	if contactoInput.Rol != "" {
		if !slices.Contains(rolesValidos, contactoInput.Rol) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rol invalido"})
		}
		contacto.Rol = contactoInput.Rol
	}
	contacto.UpdatedBy = userID

	if err := c.DB.Save(&contacto).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Contacto updated", "data": contacto})
}

func (c *ContactoController) DeleteContacto(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.DB.Delete(&models.Contacto{}, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Contacto deleted"})
}

// AddFinca agrega una finca a un contacto existente.
func (c *ContactoController) AddFinca(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var fincaInput struct {
		Nombre    string `json:"nombre" validate:"required"`
		Vereda    string `json:"vereda"`
		Municipio string `json:"municipio"`
	}

	if err := ctx.BodyParser(&fincaInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(fincaInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var contacto models.Contacto
	if err := c.DB.First(&contacto, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Contacto not found"})
	}

	userID := int(ctx.Locals("userID").(float64))

	finca := models.Finca{
		ContactoID: contacto.ID,
		Nombre:     fincaInput.Nombre,
		Vereda:     fincaInput.Vereda,
		Municipio:  fincaInput.Municipio,
		CreatedBy:  userID,
		UpdatedBy:  userID,
	}

	if err := c.DB.Create(&finca).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Finca created", "data": finca})
}
