package controllers

import (
	"net/http"
	"time"

	"ganaderia-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(DB *gorm.DB) *ReportController {
	return &ReportController{DB: DB}
}

func rangoFechas(ctx *fiber.Ctx) (string, string) {
	hoy := time.Now().Format("2006-01-02")
	desde := ctx.Query("desde", hoy)
	hasta := ctx.Query("hasta", hoy)
	return desde, hasta
}

// GetReporteSacrificios devuelve el reporte tabular del rango.
func (c *ReportController) GetReporteSacrificios(ctx *fiber.Ctx) error {
	desde, hasta := rangoFechas(ctx)

	summary, err := services.NewReportService(c.DB).Build(desde, hasta)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to build report",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Report built", "data": summary})
}

// ExportExcel genera y envia el archivo Excel del rango.
func (c *ReportController) ExportExcel(ctx *fiber.Ctx) error {
	desde, hasta := rangoFechas(ctx)

	svc := services.NewReportService(c.DB)
	summary, err := svc.Build(desde, hasta)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := svc.BuildExcel(summary)

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="reporte_sacrificios.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("No se pudo generar el Excel")
	}

	return nil
}
