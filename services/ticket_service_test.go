package services

import (
	"sort"
	"sync"
	"testing"

	"ganaderia-app/controllers/idgen"
)

func TestMain(m *testing.M) {
	idgen.Init()
	m.Run()
}

func TestIssueSecuencial(t *testing.T) {
	svc := NewTicketService(NewMemoryCounterStore())

	for i := 1; i <= 3; i++ {
		tk, err := svc.Issue(1)
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		if tk.Ticket2 != i {
			t.Errorf("ticket2 = %d, esperaba %d", tk.Ticket2, i)
		}
		if tk.Ticket == 0 {
			t.Error("ticket interno vacio")
		}
	}
}

func TestIssueConcurrenteSinDuplicados(t *testing.T) {
	const n = 200

	svc := NewTicketService(NewMemoryCounterStore())

	var wg sync.WaitGroup
	resultados := make(chan int, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tk, err := svc.Issue(1)
			if err != nil {
				t.Errorf("Issue: %v", err)
				return
			}
			resultados <- tk.Ticket2
		}()
	}
	wg.Wait()
	close(resultados)

	var numeros []int
	for v := range resultados {
		numeros = append(numeros, v)
	}
	sort.Ints(numeros)

	if len(numeros) != n {
		t.Fatalf("se emitieron %d tickets, esperaba %d", len(numeros), n)
	}
	// Deben ser exactamente 1..n sin huecos ni repetidos
	for i, v := range numeros {
		if v != i+1 {
			t.Fatalf("posicion %d: ticket %d, esperaba %d", i, v, i+1)
		}
	}
}

func TestResetVuelveAUno(t *testing.T) {
	svc := NewTicketService(NewMemoryCounterStore())

	for i := 0; i < 7; i++ {
		if _, err := svc.Issue(1); err != nil {
			t.Fatalf("Issue: %v", err)
		}
	}

	if err := svc.Reset(1); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	actual, err := svc.Current(1)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if actual != 0 {
		t.Errorf("contador tras reset = %d, esperaba 0", actual)
	}

	tk, err := svc.Issue(1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if tk.Ticket2 != 1 {
		t.Errorf("ticket tras reset = %d, esperaba 1", tk.Ticket2)
	}
}

func TestPlantasIndependientes(t *testing.T) {
	svc := NewTicketService(NewMemoryCounterStore())

	for i := 0; i < 5; i++ {
		if _, err := svc.Issue(1); err != nil {
			t.Fatalf("Issue: %v", err)
		}
	}

	actual, err := svc.Current(2)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if actual != 0 {
		t.Errorf("la planta 2 quedo en %d, esperaba 0", actual)
	}

	tk, err := svc.Issue(2)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if tk.Ticket2 != 1 {
		t.Errorf("primer ticket planta 2 = %d, esperaba 1", tk.Ticket2)
	}
}
