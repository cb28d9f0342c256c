package models

import "testing"

func TestTransicionesDeEstado(t *testing.T) {
	casos := []struct {
		desde string
		hacia string
		ok    bool
	}{
		{EstadoBorrador, EstadoConfirmado, true},
		{EstadoBorrador, EstadoAnulado, true},
		{EstadoConfirmado, EstadoAnulado, true},
		{EstadoConfirmado, EstadoBorrador, false},
		{EstadoAnulado, EstadoConfirmado, false},
		{EstadoAnulado, EstadoBorrador, false},
	}

	for _, c := range casos {
		s := Sacrificio{Estado: c.desde}
		err := s.Transition(c.hacia)
		if c.ok && err != nil {
			t.Errorf("%s -> %s: error inesperado %v", c.desde, c.hacia, err)
		}
		if !c.ok && err == nil {
			t.Errorf("%s -> %s: esperaba error", c.desde, c.hacia)
		}
		if c.ok && s.Estado != c.hacia {
			t.Errorf("%s -> %s: estado quedo en %s", c.desde, c.hacia, s.Estado)
		}
		if !c.ok && s.Estado != c.desde {
			t.Errorf("%s -> %s: transicion invalida modifico el estado", c.desde, c.hacia)
		}
	}
}

func TestAnuladoEsTerminal(t *testing.T) {
	s := Sacrificio{Estado: EstadoAnulado}
	for _, destino := range []string{EstadoBorrador, EstadoConfirmado, EstadoAnulado} {
		if s.CanTransition(destino) {
			t.Errorf("anulado no deberia permitir pasar a %s", destino)
		}
	}
}
