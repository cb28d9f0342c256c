package utils

import (
	"strconv"
	"strings"
)

// ParseIntOrZero replica la coercion laxa de los formularios del
// sistema anterior: vacio o no numerico cuenta como cero. Los
// negativos tambien quedan en cero; los conteos de animales nunca
// deben ser negativos y el valor no llega a la liquidacion.
func ParseIntOrZero(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseFloatOrZero igual que ParseIntOrZero pero para pesos.
func ParseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// FormatMoney imprime pesos sin decimales con separador de miles.
func FormatMoney(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	if neg {
		return "$ -" + b.String()
	}
	return "$ " + b.String()
}
