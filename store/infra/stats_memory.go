package infra

import (
	"context"
	"sync"
	"time"

	"thrift-store/store/domain"
)

type Counters struct {
	Delivered int64
	Stocked   int64
	Collected int64

	// Waited é a soma das esperas registradas em eventos collected.
	Waited time.Duration
}

// OnShelves é o que foi estocado e ainda não foi levado por clientes.
func (c Counters) OnShelves() int64 { return c.Stocked - c.Collected }

// MemoryStatsStore é uma implementação simples em memória.
// Útil para testes e desenvolvimento.
//
// Não faz expiração e não é indicada para produção.
type MemoryStatsStore struct {
	mu        sync.Mutex
	total     Counters
	bySection map[string]Counters
}

func NewMemoryStatsStore() *MemoryStatsStore {
	return &MemoryStatsStore{
		bySection: make(map[string]Counters),
	}
}

func (s *MemoryStatsStore) Record(_ context.Context, ev domain.StatsEvent) error {
	if ev.Quantity < 0 {
		return domain.ErrInvalidQuantity
	}
	q := int64(ev.Quantity)

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.bySection[ev.Section]
	switch ev.Kind {
	case domain.StatsDelivered:
		s.total.Delivered += q
		c.Delivered += q
	case domain.StatsStocked:
		s.total.Stocked += q
		c.Stocked += q
	case domain.StatsCollected:
		s.total.Collected += q
		s.total.Waited += ev.Wait
		c.Collected += q
		c.Waited += ev.Wait
	default:
		return nil
	}
	s.bySection[ev.Section] = c
	return nil
}

func (s *MemoryStatsStore) Total() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *MemoryStatsStore) BySection() map[string]Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Counters, len(s.bySection))
	for k, v := range s.bySection {
		out[k] = v
	}
	return out
}
