package store

import (
	"context"
	"math/rand/v2"
	"time"

	"thrift-store/observability"
	"thrift-store/store/domain"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// DeliveryFeeder gera entregas com itens de seções aleatórias e as coloca na
// caixa de entregas, no ritmo de um rate.Limiter (uma entrega a cada
// intervalo, sem rajadas).
type DeliveryFeeder struct {
	actor

	area    domain.DeliveryArea
	catalog *domain.Catalog
	size    int
	limiter *rate.Limiter
	rnd     *rand.Rand
	newID   func() string
}

// newDeliveryLimiter espera every > 0 (garantido por Config.Validate).
func newDeliveryLimiter(every time.Duration) *rate.Limiter {
	return rate.NewLimiter(rate.Every(every), 1)
}

// Run executa até o ctx encerrar.
func (f *DeliveryFeeder) Run(ctx context.Context) error {
	for {
		if err := f.limiter.Wait(ctx); err != nil {
			// Wait também falha antes do prazo do ctx quando a próxima
			// entrega cairia depois dele; nesse caso só resta esperar o fim.
			<-ctx.Done()
			return nil
		}
		f.Deliver(ctx)
	}
}

// Deliver gera uma entrega de size itens e a coloca na caixa.
func (f *DeliveryFeeder) Deliver(ctx context.Context) []domain.Item {
	sections := f.catalog.Sections()
	items := make([]domain.Item, f.size)
	for i := range items {
		items[i] = domain.Item{
			ID:      f.newID(),
			Section: sections[intn(f.rnd, len(sections))],
		}
	}
	f.area.ReceiveDelivery(items)

	counts := make(map[string]any)
	for sec, n := range domain.CountBySection(items) {
		name := f.catalog.Name(sec)
		counts[name] = n
		f.record(context.WithoutCancel(ctx), domain.StatsEvent{
			Kind:     domain.StatsDelivered,
			Section:  name,
			Quantity: n,
		})
	}
	f.emit(ctx, observability.EventDelivery, observability.LevelInfo, counts)
	return items
}

func defaultItemID() string { return uuid.NewString() }
