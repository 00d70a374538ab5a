package infra

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"thrift-store/store/domain"
)

// Inventory é a implementação de infra do estoque compartilhada entre
// assistentes e clientes.
//
// Cada seção tem seu próprio mutex e sua própria condição (sync.Cond), em um
// slice de tamanho fixo indexado por domain.Section. A caixa de entregas tem
// um lock independente. Nenhum método segura dois locks ao mesmo tempo.
//
// A espera usa Broadcast: todos os clientes parados na seção acordam e
// disputam o lock. Não há garantia de ordem (FIFO) entre eles.
type Inventory struct {
	catalog     *domain.Catalog
	maxCapacity int

	sections []sectionState

	deliveryMu sync.Mutex
	delivery   []domain.Item
}

type sectionState struct {
	mu    sync.Mutex
	cond  *sync.Cond
	count int

	// interest não é protegido por mu; só é alterado via atomic.
	interest atomic.Int64
}

type InventoryOption func(*Inventory)

// WithInitialStock define o estoque inicial de todas as seções, limitado à
// capacidade máxima.
func WithInitialStock(n int) InventoryOption {
	return func(inv *Inventory) {
		n = max(0, min(n, inv.maxCapacity))
		for i := range inv.sections {
			inv.sections[i].count = n
		}
	}
}

// NewInventory cria o estoque com todas as seções do catálogo zeradas.
// maxCapacity < 0 é tratado como 0.
func NewInventory(catalog *domain.Catalog, maxCapacity int, opts ...InventoryOption) *Inventory {
	inv := &Inventory{
		catalog:     catalog,
		maxCapacity: max(0, maxCapacity),
		sections:    make([]sectionState, catalog.Len()),
	}
	for i := range inv.sections {
		st := &inv.sections[i]
		st.cond = sync.NewCond(&st.mu)
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

func (inv *Inventory) Catalog() *domain.Catalog { return inv.catalog }
func (inv *Inventory) MaxCapacity() int         { return inv.maxCapacity }

func (inv *Inventory) section(s domain.Section) *sectionState {
	if !inv.catalog.Valid(s) {
		panic(&domain.SectionError{Name: "#" + strconv.Itoa(int(s)), Err: domain.ErrUnknownSection})
	}
	return &inv.sections[s]
}

// ReceiveDelivery implementa domain.DeliveryArea.
func (inv *Inventory) ReceiveDelivery(items []domain.Item) {
	if len(items) == 0 {
		return
	}
	inv.deliveryMu.Lock()
	defer inv.deliveryMu.Unlock()
	inv.delivery = append(inv.delivery, items...)
}

// DrainDeliveries remove e retorna todos os itens pendentes, deixando a
// caixa vazia. Retorna nil se não havia nada.
func (inv *Inventory) DrainDeliveries() []domain.Item {
	inv.deliveryMu.Lock()
	defer inv.deliveryMu.Unlock()
	items := inv.delivery
	inv.delivery = nil
	return items
}

// Pending retorna quantos itens aguardam na caixa de entregas.
func (inv *Inventory) Pending() int {
	inv.deliveryMu.Lock()
	defer inv.deliveryMu.Unlock()
	return len(inv.delivery)
}

// CanStock informa se n itens caberiam na seção agora.
//
// É apenas consultivo: o resultado pode mudar assim que o lock é liberado.
// Para estocar use TryStock ou StockUpTo, que verificam e alteram na mesma
// seção crítica.
func (inv *Inventory) CanStock(s domain.Section, n int) bool {
	st := inv.section(s)
	st.mu.Lock()
	defer st.mu.Unlock()
	return n >= 0 && st.count+n <= inv.maxCapacity
}

// TryStock coloca exatamente n itens na seção se couberem (tudo ou nada).
func (inv *Inventory) TryStock(s domain.Section, n int) bool {
	if n < 0 {
		return false
	}
	st := inv.section(s)
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.count+n > inv.maxCapacity {
		return false
	}
	if n > 0 {
		st.count += n
		st.cond.Broadcast()
	}
	return true
}

// StockUpTo implementa domain.Shelves.
func (inv *Inventory) StockUpTo(s domain.Section, n int) int {
	if n <= 0 {
		return 0
	}
	st := inv.section(s)
	st.mu.Lock()
	defer st.mu.Unlock()

	placed := min(n, inv.maxCapacity-st.count)
	if placed <= 0 {
		return 0
	}
	st.count += placed
	st.cond.Broadcast()
	return placed
}

func (inv *Inventory) CanTakeItem(s domain.Section) bool {
	st := inv.section(s)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.count > 0
}

// TakeItem retira uma unidade sem esperar. Retorna domain.ErrSectionEmpty
// em vez de deixar a contagem negativa.
func (inv *Inventory) TakeItem(s domain.Section) error {
	st := inv.section(s)
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.count == 0 {
		return domain.ErrSectionEmpty
	}
	st.count--
	return nil
}

// WaitForItem bloqueia até a seção ter estoque ou até o ctx encerrar.
// Não retira nada: outro cliente pode levar o item antes de quem chamou.
func (inv *Inventory) WaitForItem(ctx context.Context, s domain.Section) error {
	st := inv.section(s)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.waitLocked(ctx)
}

// Take implementa domain.Shelves: espera e retirada na mesma seção crítica.
func (inv *Inventory) Take(ctx context.Context, s domain.Section) error {
	st := inv.section(s)
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := st.waitLocked(ctx); err != nil {
		return err
	}
	st.count--
	return nil
}

// waitLocked espera count > 0 com st.mu já adquirido. O predicado é testado
// de novo a cada despertar (Broadcast acorda todos, e pode haver despertar
// espúrio). O cancelamento do ctx também faz Broadcast, via AfterFunc.
func (st *sectionState) waitLocked(ctx context.Context) error {
	if st.count > 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	stop := context.AfterFunc(ctx, func() {
		st.mu.Lock()
		defer st.mu.Unlock()
		st.cond.Broadcast()
	})
	defer stop()

	for st.count == 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		st.cond.Wait()
	}
	return nil
}

// IncreaseInterest implementa domain.Shelves.
func (inv *Inventory) IncreaseInterest(s domain.Section) {
	inv.section(s).interest.Add(1)
}

// DecreaseInterest decrementa o interesse com piso em zero.
func (inv *Inventory) DecreaseInterest(s domain.Section) {
	in := &inv.section(s).interest
	for {
		cur := in.Load()
		if cur <= 0 {
			return
		}
		if in.CompareAndSwap(cur, cur-1) {
			return
		}
	}
}

func (inv *Inventory) Interest(s domain.Section) int64 {
	return inv.section(s).interest.Load()
}

func (inv *Inventory) Count(s domain.Section) int {
	st := inv.section(s)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.count
}

// PrioritizedSections implementa domain.Shelves. O interesse de cada seção é
// lido uma vez; a ordem é uma foto e pode ficar desatualizada logo depois.
func (inv *Inventory) PrioritizedSections() []domain.Section {
	out := inv.catalog.Sections()
	interest := make([]int64, len(out))
	for i, s := range out {
		interest[i] = inv.Interest(s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return interest[out[i]] > interest[out[j]]
	})
	return out
}

// Snapshot retorna a contagem de cada seção, pelo nome. Cada seção é lida
// sob o seu próprio lock, uma de cada vez.
func (inv *Inventory) Snapshot() map[string]int {
	out := make(map[string]int, inv.catalog.Len())
	for _, s := range inv.catalog.Sections() {
		out[inv.catalog.Name(s)] = inv.Count(s)
	}
	return out
}

// Stocked retorna o total de itens nas prateleiras.
func (inv *Inventory) Stocked() int {
	total := 0
	for _, s := range inv.catalog.Sections() {
		total += inv.Count(s)
	}
	return total
}
