package domain

import (
	"context"
	"time"
)

// StatsKind identifica o tipo de movimento de estoque registrado.
type StatsKind string

const (
	StatsDelivered StatsKind = "delivered"
	StatsStocked   StatsKind = "stocked"
	StatsCollected StatsKind = "collected"
)

// StatsEvent representa um movimento de itens de uma seção.
// Wait só é preenchido em StatsCollected.
type StatsEvent struct {
	Kind     StatsKind
	Section  string
	Quantity int
	Wait     time.Duration

	At time.Time
}

// StatsStore é a estratégia de persistência para estatísticas da loja.
//
// Implementações podem armazenar em Redis, memória, etc.
// Os atores tratam erro como best-effort (não interrompem a simulação).
type StatsStore interface {
	Record(ctx context.Context, ev StatsEvent) error
}
