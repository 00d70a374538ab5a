package store

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"thrift-store/observability"
	"thrift-store/store/application"
	"thrift-store/store/domain"
)

// Customer é o ator consumidor: escolhe uma seção ao acaso, espera até levar
// um item e "pensa" por um tempo aleatório antes da próxima compra.
type Customer struct {
	actor

	catalog    *domain.Catalog
	shopping   application.ShoppingService
	tick       time.Duration
	thinkTicks int
	rnd        *rand.Rand
	pause      application.PauseFunc
}

func (c *Customer) Name() string { return c.name }

// Run executa até o ctx encerrar. Cancelamento é parada ordenada e retorna nil,
// inclusive quando o cliente está parado esperando estoque.
func (c *Customer) Run(ctx context.Context) error {
	sections := c.catalog.Sections()
	for {
		if ctx.Err() != nil {
			return nil
		}

		section := sections[intn(c.rnd, len(sections))]
		if err := c.buy(ctx, section); err != nil {
			return stopped(err)
		}

		think := time.Duration(intn(c.rnd, c.thinkTicks)) * c.tick
		if err := c.pause(ctx, think); err != nil {
			return stopped(err)
		}
	}
}

func (c *Customer) buy(ctx context.Context, section domain.Section) error {
	name := c.catalog.Name(section)

	waited, err := c.shopping.Buy(ctx, section)
	switch {
	case errors.Is(err, domain.ErrPatienceExceeded):
		c.emit(ctx, observability.EventGaveUp, observability.LevelInfo, map[string]any{"section": name})
		return nil
	case err != nil:
		return err
	}

	// o item já saiu da prateleira: registra mesmo se o ctx acabou de encerrar
	c.record(context.WithoutCancel(ctx), domain.StatsEvent{
		Kind:     domain.StatsCollected,
		Section:  name,
		Quantity: 1,
		Wait:     waited,
	})
	c.emit(ctx, observability.EventCollected, observability.LevelInfo, map[string]any{
		"section":      name,
		"waited_ticks": ticks(waited, c.tick),
	})
	return nil
}

func ticks(d, tick time.Duration) int64 {
	if tick <= 0 {
		return 0
	}
	return int64(d / tick)
}
