package store

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
	"time"

	"thrift-store/observability"
	"thrift-store/store/domain"
)

// actor reúne o que todos os atores usam para emitir eventos.
type actor struct {
	name     string
	observer observability.Observer
	stats    domain.StatsStore
	clock    domain.Clock
}

func newActor(kind string, id int, observer observability.Observer, stats domain.StatsStore, clock domain.Clock) actor {
	return actor{
		name:     kind + "-" + strconv.Itoa(id),
		observer: observer,
		stats:    stats,
		clock:    clock,
	}
}

func (a actor) emit(ctx context.Context, t observability.EventType, level observability.Level, data map[string]any) {
	if a.observer == nil {
		return
	}
	var tick int64
	if a.clock != nil {
		tick = a.clock.Tick()
	}
	a.observer.OnEvent(ctx, observability.Event{
		Type:      t,
		Level:     level,
		Timestamp: time.Now(),
		Tick:      tick,
		Source:    a.name,
		Data:      data,
	})
}

// record é best-effort: erro de estatística não derruba o ator.
func (a actor) record(ctx context.Context, ev domain.StatsEvent) {
	if a.stats == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	if err := a.stats.Record(ctx, ev); err != nil {
		a.emit(ctx, "stats.record_failed", observability.LevelVerbose, map[string]any{"error": err.Error()})
	}
}

// stopped traduz o fim do ctx em parada ordenada (nil).
func stopped(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func intn(r *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	if r == nil {
		return rand.IntN(n)
	}
	return r.IntN(n)
}
