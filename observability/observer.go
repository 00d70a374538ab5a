// Package observability fornece o pipeline de eventos estruturados emitidos
// pelos atores da loja (assistentes, clientes e entregas). Quem formata e para
// onde vai cada evento é decidido pelo Observer configurado no binário.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// Level é a severidade do evento.
type Level int

const (
	LevelVerbose Level = 5
	LevelInfo    Level = 9
	LevelWarning Level = 13
	LevelError   Level = 17
)

func (l Level) String() string {
	switch {
	case l <= 8:
		return "DEBUG"
	case l <= 12:
		return "INFO"
	case l <= 16:
		return "WARN"
	default:
		return "ERROR"
	}
}

// SlogLevel converte para o slog.Level correspondente.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= 8:
		return slog.LevelDebug
	case l <= 12:
		return slog.LevelInfo
	case l <= 16:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType identifica o tipo do evento (ex: "assistant.stocking.begin").
type EventType string

const (
	EventStockingBegin  EventType = "assistant.stocking.begin"
	EventStockingFinish EventType = "assistant.stocking.finish"
	EventMoved          EventType = "assistant.moved"
	EventReturned       EventType = "assistant.returned"
	EventBreakBegin     EventType = "assistant.break.begin"
	EventBreakFinish    EventType = "assistant.break.finish"
	EventCollected      EventType = "customer.collected"
	EventGaveUp         EventType = "customer.gave_up"
	EventDelivery       EventType = "delivery.arrived"
)

// Event é um evento emitido por um ator.
//
// Tick é o tick lógico da simulação no momento do evento; Source identifica o
// ator (ex: "assistant-2").
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Tick      int64
	Source    string
	Data      map[string]any
}

// Observer recebe os eventos. Implementações não devem bloquear por muito
// tempo: são chamadas na goroutine do ator.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}
