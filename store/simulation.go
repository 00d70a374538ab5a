package store

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"thrift-store/observability"
	"thrift-store/store/application"
	"thrift-store/store/domain"
	"thrift-store/store/infra"

	"golang.org/x/sync/errgroup"
)

// Simulation é o driver: cria o estoque e os atores e os executa até o ctx
// encerrar.
type Simulation struct {
	cfg       Config
	catalog   *domain.Catalog
	inventory *infra.Inventory
	clock     *TickClock

	observer observability.Observer
	stats    domain.StatsStore
	seed     *uint64
	pause    application.PauseFunc

	assistants []*Assistant
	customers  []*Customer
	feeder     *DeliveryFeeder
}

type Option func(*Simulation)

// WithObserver define quem recebe os eventos dos atores. Com mais de um,
// cada evento vai para todos, na ordem informada.
func WithObserver(obs ...observability.Observer) Option {
	return func(s *Simulation) { s.observer = observability.Tee(obs...) }
}

func WithStats(stats domain.StatsStore) Option {
	return func(s *Simulation) { s.stats = stats }
}

// WithSeed torna as escolhas aleatórias (seções de clientes e entregas)
// reproduzíveis.
func WithSeed(seed uint64) Option {
	return func(s *Simulation) { s.seed = &seed }
}

// WithPause troca a função de espera de todos os atores.
func WithPause(p application.PauseFunc) Option {
	return func(s *Simulation) { s.pause = p }
}

func NewSimulation(cfg Config, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	catalog, err := domain.NewCatalog(cfg.Sections...)
	if err != nil {
		return nil, fmt.Errorf("invalid sections: %w", err)
	}

	s := &Simulation{
		cfg:       cfg,
		catalog:   catalog,
		inventory: infra.NewInventory(catalog, cfg.SectionMaxCapacity),
		clock:     NewTickClock(cfg.Tick),
		observer:  observability.NoOpObserver{},
		pause:     application.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}

	for i := 0; i < cfg.Assistants; i++ {
		a := newActor("assistant", i, s.observer, s.stats, s.clock)
		s.assistants = append(s.assistants, &Assistant{
			actor: a,
			stocking: application.StockingService{
				Store:         s.inventory,
				Catalog:       catalog,
				CarryCapacity: cfg.CarryCapacity,
				StockingBase:  cfg.StockingBaseTicks,
				Tick:          cfg.Tick,
				Pause:         s.pause,
				Clock:         s.clock,
				Observer:      s.observer,
				Stats:         s.stats,
			},
			tick:          cfg.Tick,
			restFrequency: cfg.RestFrequencyTicks,
			restDuration:  cfg.RestDurationTicks,
			pause:         s.pause,
		})
	}

	for i := 0; i < cfg.Customers; i++ {
		s.customers = append(s.customers, &Customer{
			actor:   newActor("customer", cfg.Assistants+i, s.observer, s.stats, s.clock),
			catalog: catalog,
			shopping: application.ShoppingService{
				Shelves:  s.inventory,
				Patience: cfg.CustomerPatience,
			},
			tick:       cfg.Tick,
			thinkTicks: cfg.CustomerThinkTicks,
			rnd:        s.newRand(uint64(cfg.Assistants + i)),
			pause:      s.pause,
		})
	}

	s.feeder = &DeliveryFeeder{
		actor:   newActor("delivery", 0, s.observer, s.stats, s.clock),
		area:    s.inventory,
		catalog: catalog,
		size:    cfg.DeliverySize,
		limiter: newDeliveryLimiter(time.Duration(cfg.DeliveryEveryTicks) * cfg.Tick),
		rnd:     s.newRand(1 << 32),
		newID:   defaultItemID,
	}

	return s, nil
}

// newRand retorna nil sem seed: os atores usam então o gerador global, que é
// seguro para uso concorrente.
func (s *Simulation) newRand(stream uint64) *rand.Rand {
	if s.seed == nil {
		return nil
	}
	return rand.New(rand.NewPCG(*s.seed, stream))
}

func (s *Simulation) Catalog() *domain.Catalog    { return s.catalog }
func (s *Simulation) Inventory() *infra.Inventory { return s.inventory }
func (s *Simulation) Clock() *TickClock           { return s.clock }
func (s *Simulation) Feeder() *DeliveryFeeder     { return s.feeder }
func (s *Simulation) Assistants() []*Assistant    { return s.assistants }
func (s *Simulation) Customers() []*Customer      { return s.customers }

// Run inicia todos os atores e bloqueia até o ctx encerrar e todos pararem.
// Retorna nil na parada ordenada; qualquer outro erro de um ator cancela os
// demais e é retornado.
func (s *Simulation) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, a := range s.assistants {
		g.Go(func() error { return a.Run(gctx) })
	}
	for _, c := range s.customers {
		g.Go(func() error { return c.Run(gctx) })
	}
	g.Go(func() error { return s.feeder.Run(gctx) })

	return g.Wait()
}
