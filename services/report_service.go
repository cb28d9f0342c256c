package services

import (
	"fmt"

	"ganaderia-app/liquidacion"
	"ganaderia-app/models"
	"ganaderia-app/repositories"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ReportService arma el reporte de sacrificios confirmados por rango
// de fechas, en JSON para las tablas y en Excel para descarga/correo.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

type ReportRow struct {
	Consecutivo      int    `json:"consecutivo"`
	FechaDocumento   string `json:"fecha_documento"`
	Planta           string `json:"planta"`
	AntiguoDueno     string `json:"antiguo_dueno"`
	Machos           int    `json:"machos"`
	Hembras          int    `json:"hembras"`
	SubtotalOficial  int64  `json:"subtotal_oficial"`
	SubtotalMatadero int64  `json:"subtotal_matadero"`
	Total            int64  `json:"total"`
}

type ReportSummary struct {
	Desde           string      `json:"desde"`
	Hasta           string      `json:"hasta"`
	Rows            []ReportRow `json:"rows"`
	TotalAnimales   int         `json:"total_animales"`
	TotalOficial    int64       `json:"total_oficial"`
	TotalMatadero   int64       `json:"total_matadero"`
	TotalRecaudado  int64       `json:"total_recaudado"`
	TotalDocumentos int         `json:"total_documentos"`
}

// Build junta los confirmados del rango con nombres resueltos.
func (s *ReportService) Build(desde, hasta string) (*ReportSummary, error) {
	repo := repositories.NewSacrificioRepository(s.db)
	sacrificios, err := repo.ListForReport(desde, hasta)
	if err != nil {
		return nil, err
	}

	plantas := map[uint]string{}
	contactos := map[uint]string{}

	summary := &ReportSummary{Desde: desde, Hasta: hasta, Rows: []ReportRow{}}

	for _, sac := range sacrificios {
		if _, ok := plantas[sac.PlantaID]; !ok {
			var planta models.Planta
			if err := s.db.First(&planta, sac.PlantaID).Error; err == nil {
				plantas[sac.PlantaID] = planta.Nombre
			}
		}
		if _, ok := contactos[sac.AntiguoDuenoID]; !ok {
			var contacto models.Contacto
			if err := s.db.First(&contacto, sac.AntiguoDuenoID).Error; err == nil {
				contactos[sac.AntiguoDuenoID] = contacto.Nombres + " " + contacto.Apellidos
			}
		}

		row := ReportRow{
			Consecutivo:    sac.Consecutivo,
			FechaDocumento: sac.FechaDocumento,
			Planta:         plantas[sac.PlantaID],
			AntiguoDueno:   contactos[sac.AntiguoDuenoID],
			Machos:         sac.Machos,
			Hembras:        sac.Hembras,
			Total:          sac.TotalImpuestos,
		}
		for _, l := range sac.Impuestos {
			if l.Categoria == liquidacion.CategoriaOficial {
				row.SubtotalOficial += l.Valor
			} else {
				row.SubtotalMatadero += l.Valor
			}
		}

		summary.Rows = append(summary.Rows, row)
		summary.TotalAnimales += sac.Machos + sac.Hembras
		summary.TotalOficial += row.SubtotalOficial
		summary.TotalMatadero += row.SubtotalMatadero
		summary.TotalRecaudado += sac.TotalImpuestos
		summary.TotalDocumentos++
	}

	return summary, nil
}

// BuildExcel vuelca el resumen a un libro de Excel.
func (s *ReportService) BuildExcel(summary *ReportSummary) *excelize.File {
	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Consecutivo")
	f.SetCellValue(sheet, "B1", "Fecha")
	f.SetCellValue(sheet, "C1", "Planta")
	f.SetCellValue(sheet, "D1", "Antiguo Dueño")
	f.SetCellValue(sheet, "E1", "Machos")
	f.SetCellValue(sheet, "F1", "Hembras")
	f.SetCellValue(sheet, "G1", "Impuestos Oficiales")
	f.SetCellValue(sheet, "H1", "Servicio Matadero")
	f.SetCellValue(sheet, "I1", "Total")

	for i, row := range summary.Rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), row.Consecutivo)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), row.FechaDocumento)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), row.Planta)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), row.AntiguoDueno)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), row.Machos)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), row.Hembras)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), row.SubtotalOficial)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", i+2), row.SubtotalMatadero)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", i+2), row.Total)
	}

	// Fila de totales al final
	fila := len(summary.Rows) + 2
	f.SetCellValue(sheet, fmt.Sprintf("D%d", fila), "TOTALES")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", fila), summary.TotalAnimales)
	f.SetCellValue(sheet, fmt.Sprintf("G%d", fila), summary.TotalOficial)
	f.SetCellValue(sheet, fmt.Sprintf("H%d", fila), summary.TotalMatadero)
	f.SetCellValue(sheet, fmt.Sprintf("I%d", fila), summary.TotalRecaudado)

	return f
}
