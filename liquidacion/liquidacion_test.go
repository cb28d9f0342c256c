package liquidacion

import "testing"

func TestComputeEscenarioCompleto(t *testing.T) {
	tarifas := []Tarifa{
		{ID: 1, Nombre: "Degüello", ValorUnit: 1500},
		{ID: 2, Nombre: "Fondo Fedegan", ValorUnit: 900},
		{ID: 3, Nombre: "Servicio Matadero", ValorUnit: 3000},
	}

	r := Compute(12, 8, tarifas)

	if len(r.Lineas) != 3 {
		t.Fatalf("esperaba 3 lineas, hay %d", len(r.Lineas))
	}

	esperados := []int64{30000, 18000, 60000}
	for i, want := range esperados {
		if r.Lineas[i].Valor != want {
			t.Errorf("linea %s: valor = %d, esperaba %d", r.Lineas[i].Nombre, r.Lineas[i].Valor, want)
		}
		if r.Lineas[i].Animales != 20 {
			t.Errorf("linea %s: animales = %d, esperaba 20", r.Lineas[i].Nombre, r.Lineas[i].Animales)
		}
	}

	if r.Subtotales[CategoriaOficial] != 48000 {
		t.Errorf("subtotal oficial = %d, esperaba 48000", r.Subtotales[CategoriaOficial])
	}
	if r.Subtotales[CategoriaMatadero] != 60000 {
		t.Errorf("subtotal matadero = %d, esperaba 60000", r.Subtotales[CategoriaMatadero])
	}
	if r.Total != 108000 {
		t.Errorf("total = %d, esperaba 108000", r.Total)
	}
}

func TestComputeTotalEsSumaDeLineas(t *testing.T) {
	casos := []struct {
		nombre  string
		machos  int
		hembras int
		tarifas []Tarifa
	}{
		{"sin tarifas", 5, 3, nil},
		{"sin animales", 0, 0, []Tarifa{{ID: 1, Nombre: "Degüello", ValorUnit: 1500}}},
		{"una tarifa", 7, 0, []Tarifa{{ID: 1, Nombre: "Servicio Matadero", ValorUnit: 2750}}},
		{"varias tarifas", 3, 9, []Tarifa{
			{ID: 1, Nombre: "Degüello", ValorUnit: 1500},
			{ID: 2, Nombre: "Fondo Fedegan", ValorUnit: 900},
			{ID: 3, Nombre: "Servicio Matadero", ValorUnit: 3000},
		}},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			r := Compute(c.machos, c.hembras, c.tarifas)

			var suma int64
			for _, l := range r.Lineas {
				suma += l.Valor
			}
			if r.Total != suma {
				t.Errorf("total = %d, suma de lineas = %d", r.Total, suma)
			}

			// La particion por categoria es exhaustiva y disjunta
			if r.Subtotales[CategoriaOficial]+r.Subtotales[CategoriaMatadero] != r.Total {
				t.Errorf("subtotales %v no suman el total %d", r.Subtotales, r.Total)
			}
		})
	}
}

func TestComputeSinAnimalesDaCero(t *testing.T) {
	tarifas := []Tarifa{
		{ID: 1, Nombre: "Degüello", ValorUnit: 1500},
		{ID: 2, Nombre: "Fondo Fedegan", ValorUnit: 900},
	}

	r := Compute(0, 0, tarifas)
	if r.Total != 0 {
		t.Errorf("total = %d, esperaba 0", r.Total)
	}
	for _, l := range r.Lineas {
		if l.Valor != 0 {
			t.Errorf("linea %s: valor = %d, esperaba 0", l.Nombre, l.Valor)
		}
	}
}

func TestComputeRedondeaMitadHaciaArriba(t *testing.T) {
	// 3 animales x 166.5 = 499.5 -> 500
	r := Compute(2, 1, []Tarifa{{ID: 1, Nombre: "Degüello", ValorUnit: 166.5}})
	if r.Lineas[0].Valor != 500 {
		t.Errorf("valor = %d, esperaba 500", r.Lineas[0].Valor)
	}
}

func TestClassifyNameParidadConElOrigen(t *testing.T) {
	casos := []struct {
		nombre string
		want   string
	}{
		{"Degüello", CategoriaOficial},
		{"deguello", CategoriaOficial},
		{"DEGÜELLO BOVINO", CategoriaOficial},
		{"Fondo Fedegan", CategoriaOficial},
		{"fondo porcicultura", CategoriaOficial},
		{"Servicio Matadero", CategoriaMatadero},
		{"MATADERO", CategoriaMatadero},
		{"Otro servicio", CategoriaMatadero},
	}

	for _, c := range casos {
		if got := ClassifyName(c.nombre); got != c.want {
			t.Errorf("ClassifyName(%q) = %q, esperaba %q", c.nombre, got, c.want)
		}
	}
}

func TestComputeRespetaCategoriaExplicita(t *testing.T) {
	// Si la tarifa trae categoria no se clasifica por nombre
	r := Compute(1, 0, []Tarifa{{ID: 1, Nombre: "Matadero especial", ValorUnit: 100, Categoria: CategoriaOficial}})
	if r.Subtotales[CategoriaOficial] != 100 {
		t.Errorf("subtotal oficial = %d, esperaba 100", r.Subtotales[CategoriaOficial])
	}
	if r.Subtotales[CategoriaMatadero] != 0 {
		t.Errorf("subtotal matadero = %d, esperaba 0", r.Subtotales[CategoriaMatadero])
	}
}
