package application

import (
	"context"
	"sort"
	"time"

	"thrift-store/observability"
	"thrift-store/store/domain"
)

const DefaultCarryCapacity = 10

// StockingService concentra a regra de distribuição de uma entrega entre as
// seções, sem saber nada sobre goroutines ou locks.
//
// Cada chamada de Run esvazia a caixa de entregas uma vez e faz quantas
// viagens forem necessárias, cada uma com no máximo CarryCapacity itens.
// Seções com mais interesse de clientes são atendidas primeiro.
type StockingService struct {
	Store   domain.Store
	Catalog *domain.Catalog

	CarryCapacity int
	// StockingBase é o custo fixo, em ticks, de cada ação de estocagem e de
	// cada volta à área de entregas. Estocar n itens custa StockingBase+n ticks.
	StockingBase int
	Tick         time.Duration

	Pause    PauseFunc
	Clock    domain.Clock
	Observer observability.Observer
	Stats    domain.StatsStore
}

// Report resume o que uma chamada de Run fez.
type Report struct {
	// Trips conta as viagens em que ao menos um item foi colocado.
	Trips int
	// PerTrip tem a quantidade colocada em cada viagem; nunca passa de CarryCapacity.
	PerTrip  []int
	Stocked  int
	Returned int
}

// Run distribui a entrega pendente. actor identifica o assistente nos eventos.
//
// Itens que não cabem em nenhuma seção (todas as seções alvo cheias) voltam
// para a caixa de entregas e serão tentados no próximo ciclo; nada é
// descartado. Se o ctx encerrar no meio, os itens ainda pendentes também
// voltam para a caixa e Run retorna ctx.Err().
func (s StockingService) Run(ctx context.Context, actor string) (Report, error) {
	var rep Report
	if s.Store == nil {
		return rep, nil
	}

	items := s.Store.DrainDeliveries()
	if len(items) == 0 {
		return rep, nil
	}

	capacity := s.CarryCapacity
	if capacity <= 0 {
		capacity = DefaultCarryCapacity
	}

	pending := make(map[domain.Section][]domain.Item)
	for _, it := range items {
		pending[it.Section] = append(pending[it.Section], it)
	}

	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			rep.Returned += s.giveBack(pending)
			return rep, err
		}

		remaining := min(countPending(pending), capacity)
		placedThisTrip := 0

		for _, sec := range s.order(pending) {
			its := pending[sec]
			if len(its) == 0 {
				continue
			}

			placed := s.Store.StockUpTo(sec, min(len(its), remaining))
			if placed == 0 {
				// seção cheia: nada desta seção nesta viagem
				continue
			}
			pending[sec] = its[placed:]
			remaining -= placed
			placedThisTrip += placed

			name := s.sectionName(sec)
			s.emit(ctx, actor, observability.EventStockingBegin, map[string]any{"section": name, "quantity": placed})
			s.record(ctx, domain.StatsEvent{Kind: domain.StatsStocked, Section: name, Quantity: placed})
			if err := s.pause(ctx, s.StockingBase+placed); err != nil {
				rep.Stocked += placedThisTrip
				rep.Trips++
				rep.PerTrip = append(rep.PerTrip, placedThisTrip)
				rep.Returned += s.giveBack(pending)
				return rep, err
			}
			s.emit(ctx, actor, observability.EventStockingFinish, map[string]any{"section": name, "quantity": placed})

			if remaining == 0 {
				break
			}
		}

		if placedThisTrip > 0 {
			rep.Trips++
			rep.PerTrip = append(rep.PerTrip, placedThisTrip)
			rep.Stocked += placedThisTrip
		}

		for sec, its := range pending {
			if len(its) == 0 {
				delete(pending, sec)
			}
		}
		if len(pending) == 0 {
			break
		}

		s.emit(ctx, actor, observability.EventMoved, map[string]any{
			"section":  "delivery_area",
			"quantity": countPending(pending),
		})

		if placedThisTrip == 0 {
			n := s.giveBack(pending)
			rep.Returned += n
			s.emit(ctx, actor, observability.EventReturned, map[string]any{"quantity": n})
			return rep, nil
		}

		if err := s.pause(ctx, s.StockingBase); err != nil {
			rep.Returned += s.giveBack(pending)
			return rep, err
		}
	}

	return rep, nil
}

// order retorna as seções pendentes na ordem de prioridade corrente. Seções
// pendentes que não aparecem na ordem de prioridade vão para o fim: a
// prioridade decide a ordem, não quem é atendido.
func (s StockingService) order(pending map[domain.Section][]domain.Item) []domain.Section {
	prioritized := s.Store.PrioritizedSections()
	out := make([]domain.Section, 0, len(pending))
	seen := make(map[domain.Section]bool, len(pending))
	for _, sec := range prioritized {
		if _, ok := pending[sec]; ok && !seen[sec] {
			out = append(out, sec)
			seen[sec] = true
		}
	}

	var missing []domain.Section
	for sec := range pending {
		if !seen[sec] {
			missing = append(missing, sec)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return append(out, missing...)
}

func (s StockingService) giveBack(pending map[domain.Section][]domain.Item) int {
	var back []domain.Item
	for _, its := range pending {
		back = append(back, its...)
	}
	s.Store.ReceiveDelivery(back)
	return len(back)
}

func (s StockingService) pause(ctx context.Context, ticks int) error {
	p := s.Pause
	if p == nil {
		p = Sleep
	}
	return p(ctx, time.Duration(ticks)*s.Tick)
}

func (s StockingService) sectionName(sec domain.Section) string {
	if s.Catalog == nil {
		return ""
	}
	return s.Catalog.Name(sec)
}

func (s StockingService) emit(ctx context.Context, actor string, t observability.EventType, data map[string]any) {
	if s.Observer == nil {
		return
	}
	var tick int64
	if s.Clock != nil {
		tick = s.Clock.Tick()
	}
	s.Observer.OnEvent(ctx, observability.Event{
		Type:      t,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Tick:      tick,
		Source:    actor,
		Data:      data,
	})
}

func (s StockingService) record(ctx context.Context, ev domain.StatsEvent) {
	if s.Stats == nil {
		return
	}
	ev.At = time.Now()
	// os itens já estão na prateleira: registra mesmo com o ctx encerrando
	_ = s.Stats.Record(context.WithoutCancel(ctx), ev)
}

func countPending(pending map[domain.Section][]domain.Item) int {
	total := 0
	for _, its := range pending {
		total += len(its)
	}
	return total
}
