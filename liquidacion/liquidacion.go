package liquidacion

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Categorias de una tarifa. "oficial" agrupa deguello y fondo,
// "matadero" es el servicio de la planta.
const (
	CategoriaOficial  = "oficial"
	CategoriaMatadero = "matadero"
)

// Tarifa es el insumo de la liquidacion, ya desacoplado del modelo.
type Tarifa struct {
	ID        uint
	Nombre    string
	ValorUnit float64
	Categoria string
}

// Linea es una tarifa liquidada para un documento.
type Linea struct {
	TarifaID  uint    `json:"tarifa_id"`
	Nombre    string  `json:"nombre"`
	ValorUnit float64 `json:"valor_unit"`
	Animales  int     `json:"animales"`
	Valor     int64   `json:"valor"`
	Categoria string  `json:"categoria"`
}

// Resultado agrupa las lineas con sus subtotales por categoria.
type Resultado struct {
	Lineas     []Linea          `json:"lineas"`
	Subtotales map[string]int64 `json:"subtotales"`
	Total      int64            `json:"total"`
}

var quitarAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizar baja a minusculas y quita tildes/dieresis para que
// "Degüello" y "deguello" comparen igual.
func normalizar(s string) string {
	plano, _, err := transform.String(quitarAcentos, s)
	if err != nil {
		plano = s
	}
	return strings.ToLower(plano)
}

// ClassifyName reproduce la regla del sistema anterior: la categoria
// se deducia del nombre de la tarifa por subcadena.
func ClassifyName(nombre string) string {
	n := normalizar(nombre)
	if strings.Contains(n, "deguello") || strings.Contains(n, "fondo") {
		return CategoriaOficial
	}
	return CategoriaMatadero
}

// redondear aplica round-half-up a unidades enteras de peso moneda,
// igual que el formato de pantalla sin decimales.
func redondear(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// Compute liquida las tarifas para un conteo de animales.
// Funcion pura: cero tarifas o cero animales dan totales en cero.
func Compute(machos, hembras int, tarifas []Tarifa) Resultado {
	animales := machos + hembras

	resultado := Resultado{
		Lineas: make([]Linea, 0, len(tarifas)),
		Subtotales: map[string]int64{
			CategoriaOficial:  0,
			CategoriaMatadero: 0,
		},
	}

	for _, t := range tarifas {
		categoria := t.Categoria
		if categoria == "" {
			categoria = ClassifyName(t.Nombre)
		}

		valor := redondear(t.ValorUnit * float64(animales))

		resultado.Lineas = append(resultado.Lineas, Linea{
			TarifaID:  t.ID,
			Nombre:    t.Nombre,
			ValorUnit: t.ValorUnit,
			Animales:  animales,
			Valor:     valor,
			Categoria: categoria,
		})
		resultado.Subtotales[categoria] += valor
		resultado.Total += valor
	}

	return resultado
}
