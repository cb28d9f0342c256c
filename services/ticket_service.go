package services

import (
	"sync"

	"ganaderia-app/controllers/idgen"
	"ganaderia-app/types"
)

// CounterStore es el almacen del contador de bascula por planta.
// GetAndIncrement debe ser atomico: dos llamadas concurrentes nunca
// pueden devolver el mismo numero.
type CounterStore interface {
	GetAndIncrement(plantaID uint) (int, error)
	Get(plantaID uint) (int, error)
	Reset(plantaID uint) error
}

// Ticket es el par de numeros que imprime la bascula: el codigo
// interno (snowflake) y el consecutivo visible.
type Ticket struct {
	Ticket  types.SnowflakeID `json:"ticket"`
	Ticket2 int               `json:"ticket2"`
}

type TicketService struct {
	store CounterStore
}

func NewTicketService(store CounterStore) *TicketService {
	return &TicketService{store: store}
}

// Issue avanza el contador de la planta y arma el ticket completo.
func (s *TicketService) Issue(plantaID uint) (Ticket, error) {
	numero, err := s.store.GetAndIncrement(plantaID)
	if err != nil {
		return Ticket{}, err
	}
	return Ticket{Ticket: types.SnowflakeID(idgen.GenerateID()), Ticket2: numero}, nil
}

// Current devuelve el valor actual sin avanzar el contador.
func (s *TicketService) Current(plantaID uint) (int, error) {
	return s.store.Get(plantaID)
}

// Reset deja el contador en cero. El siguiente ticket sale en 1.
func (s *TicketService) Reset(plantaID uint) error {
	return s.store.Reset(plantaID)
}

// MemoryCounterStore es un CounterStore en memoria para pruebas.
type MemoryCounterStore struct {
	mu       sync.Mutex
	counters map[uint]int
}

func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{counters: make(map[uint]int)}
}

func (m *MemoryCounterStore) GetAndIncrement(plantaID uint) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[plantaID]++
	return m.counters[plantaID], nil
}

func (m *MemoryCounterStore) Get(plantaID uint) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[plantaID], nil
}

func (m *MemoryCounterStore) Reset(plantaID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[plantaID] = 0
	return nil
}
